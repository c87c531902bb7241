package app

import (
	"errors"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"wellness/internal/domain"
)

// ErrNoWeeklyData is returned by WeeklyView when nothing has been logged yet.
var ErrNoWeeklyData = errors.New("no weekly data yet")

// NoWeeklyDataMessage is the user-facing text shown instead of an empty report.
const NoWeeklyDataMessage = "No weekly data yet. Fill your daily input to start tracking!"

// StreakWindow is the number of most recent entries habit streaks look at.
const StreakWindow = 7

// SeriesPoint is one charted value.
type SeriesPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// HabitStreak is the completion count of one habit over the streak window.
type HabitStreak struct {
	Habit     domain.Habit `json:"habit"`
	Label     string       `json:"label"`
	Completed int          `json:"completed"`
	Window    int          `json:"window"`
	Tier      domain.Tier  `json:"tier"`
}

// WeeklyReport is the read-only projection shown on the weekly tracker.
type WeeklyReport struct {
	Table  []domain.DailyEntry             `json:"table"`
	Series map[domain.Metric][]SeriesPoint `json:"series"`
	Habits []HabitStreak                   `json:"habits"`
}

// Streak returns the streak for h.
func (r WeeklyReport) Streak(h domain.Habit) (HabitStreak, bool) {
	for _, s := range r.Habits {
		if s.Habit == h {
			return s, true
		}
	}
	return HabitStreak{}, false
}

// WeeklyView builds the weekly report from raw store contents. Duplicate dates
// keep their last occurrence; the table is sorted by date ascending.
func WeeklyView(entries []domain.DailyEntry) (WeeklyReport, error) {
	if len(entries) == 0 {
		return WeeklyReport{}, ErrNoWeeklyData
	}

	table := dedupeLast(entries)
	sort.SliceStable(table, func(i, j int) bool { return table[i].Date < table[j].Date })

	series := make(map[domain.Metric][]SeriesPoint, len(domain.Metrics))
	for _, m := range domain.Metrics {
		points := make([]SeriesPoint, len(table))
		for i, e := range table {
			points[i] = SeriesPoint{Date: e.Date, Value: e.Value(m)}
		}
		series[m] = points
	}

	recent := table
	if len(recent) > StreakWindow {
		recent = recent[len(recent)-StreakWindow:]
	}
	caser := cases.Title(language.English)
	habits := make([]HabitStreak, 0, len(domain.Habits))
	for _, h := range domain.Habits {
		n := 0
		for _, e := range recent {
			if e.Done(h) {
				n++
			}
		}
		habits = append(habits, HabitStreak{
			Habit:     h,
			Label:     caser.String(string(h)),
			Completed: n,
			Window:    StreakWindow,
			Tier:      domain.TierFor(n),
		})
	}

	return WeeklyReport{Table: table, Series: series, Habits: habits}, nil
}

func dedupeLast(entries []domain.DailyEntry) []domain.DailyEntry {
	last := make(map[string]int, len(entries))
	for i, e := range entries {
		last[e.Date] = i
	}
	out := make([]domain.DailyEntry, 0, len(last))
	for i, e := range entries {
		if last[e.Date] == i {
			out = append(out, e)
		}
	}
	return out
}
