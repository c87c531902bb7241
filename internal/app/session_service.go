package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"wellness/internal/domain"
)

var (
	// ErrSessionNotFound indicates that the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has been idle too long.
	ErrSessionExpired = errors.New("session expired")
	// ErrInvalidGoal indicates a profile goal outside domain.Goals.
	ErrInvalidGoal = errors.New("goal must be one of Weight Loss, Stress Relief, Better Sleep")
)

// SessionService hands out and tracks per-visitor sessions.
type SessionService struct {
	sessions domain.SessionRepository
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionService creates a session service whose sessions expire after
// ttl of inactivity.
func NewSessionService(sessions domain.SessionRepository, ttl time.Duration) *SessionService {
	return &SessionService{sessions: sessions, ttl: ttl, now: time.Now}
}

// WithClock replaces the time source.
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

// Start creates a fresh session with its own empty stores.
func (s *SessionService) Start(ctx context.Context) (*domain.Session, error) {
	return s.sessions.Create(ctx, uuid.NewString(), s.now())
}

// Validate returns the live session for token and records the activity.
func (s *SessionService) Validate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	sess, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	now := s.now()
	if s.ttl > 0 && now.Sub(sess.LastSeen) > s.ttl {
		return nil, ErrSessionExpired
	}
	if err := s.sessions.Touch(ctx, token, now); err != nil {
		return nil, err
	}
	sess.LastSeen = now
	return sess, nil
}

// Resolve returns the session for token, starting a new one when token is
// unknown or expired. created reports whether a new session was started.
func (s *SessionService) Resolve(ctx context.Context, token string) (sess *domain.Session, created bool, err error) {
	sess, err = s.Validate(ctx, token)
	if err == nil {
		return sess, false, nil
	}
	if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrSessionExpired) {
		return nil, false, err
	}
	sess, err = s.Start(ctx)
	return sess, err == nil, err
}

// UpdateProfile stores the visitor's name and goal.
func (s *SessionService) UpdateProfile(ctx context.Context, token string, p domain.Profile) (domain.Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	if !p.Goal.Valid() {
		return p, ErrInvalidGoal
	}
	return p, s.sessions.SetProfile(ctx, token, p)
}

// Sweep removes sessions idle for longer than the TTL.
func (s *SessionService) Sweep(ctx context.Context) (int, error) {
	return s.sessions.DeleteExpired(ctx, s.now().Add(-s.ttl))
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *SessionService) RunSweeper(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := s.Sweep(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "session sweep failed", "error", err)
				continue
			}
			if n > 0 {
				slog.DebugContext(ctx, "expired sessions removed", "count", n)
			}
		}
	}
}
