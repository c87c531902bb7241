package app

import (
	"context"
	"time"

	"wellness/internal/domain"
)

// TrackerService encapsulates the daily check-in and weekly tracker use cases
// for one session's entry log.
type TrackerService struct {
	repo domain.EntryRepository
	now  func() time.Time
}

// NewTrackerService creates a TrackerService backed by the given repository.
func NewTrackerService(repo domain.EntryRepository) *TrackerService {
	return &TrackerService{repo: repo, now: time.Now}
}

// CheckIn validates e, stores it under its date (today when e.Date is empty)
// replacing any earlier check-in for that date, and returns the
// recommendations for it.
func (s *TrackerService) CheckIn(ctx context.Context, e domain.DailyEntry) ([]Recommendation, domain.DailyEntry, error) {
	if e.Date == "" {
		e.Date = s.now().In(time.Local).Format(domain.DateLayout)
	}
	if err := e.Validate(); err != nil {
		return nil, e, err
	}
	recs := Assess(e)
	if err := s.repo.Upsert(ctx, e); err != nil {
		return nil, e, err
	}
	return recs, e, nil
}

// Entries returns the raw entry log in insertion order.
func (s *TrackerService) Entries(ctx context.Context) ([]domain.DailyEntry, error) {
	return s.repo.All(ctx)
}

// Weekly returns the weekly report, or ErrNoWeeklyData when nothing has been
// logged in this session.
func (s *TrackerService) Weekly(ctx context.Context) (WeeklyReport, error) {
	entries, err := s.repo.All(ctx)
	if err != nil {
		return WeeklyReport{}, err
	}
	return WeeklyView(entries)
}
