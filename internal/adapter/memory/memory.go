// Package memory implements the process-local, session-scoped repositories.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"wellness/internal/domain"
)

// Ensure interfaces are met.
var _ domain.EntryRepository = (*EntryStore)(nil)
var _ domain.TranscriptRepository = (*Transcript)(nil)
var _ domain.SessionRepository = (*DB)(nil)

// ErrSessionExists is returned when a token is reused.
var ErrSessionExists = errors.New("session already exists")

// --- EntryRepository ---

// EntryStore holds one session's daily entries.
type EntryStore struct {
	mu      sync.Mutex
	entries []domain.DailyEntry
}

// NewEntryStore creates an empty entry store.
func NewEntryStore() *EntryStore {
	return &EntryStore{}
}

// Upsert drops any entry with the same date and appends e.
func (s *EntryStore) Upsert(ctx context.Context, e domain.DailyEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	for _, old := range s.entries {
		if old.Date != e.Date {
			kept = append(kept, old)
		}
	}
	s.entries = append(kept, e)
	return nil
}

// All returns a copy of the stored entries in insertion order.
func (s *EntryStore) All(ctx context.Context) ([]domain.DailyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.DailyEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// --- TranscriptRepository ---

// Transcript holds one session's chat turns.
type Transcript struct {
	mu    sync.Mutex
	turns []domain.ChatTurn
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds turns to the end of the transcript.
func (t *Transcript) Append(ctx context.Context, turns ...domain.ChatTurn) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.turns = append(t.turns, turns...)
	return nil
}

// Turns returns a copy of the transcript.
func (t *Transcript) Turns(ctx context.Context) ([]domain.ChatTurn, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]domain.ChatTurn, len(t.turns))
	copy(out, t.turns)
	return out, nil
}

// --- SessionRepository ---

// DB tracks live sessions. Each session owns its own EntryStore and
// Transcript; nothing is shared between sessions.
type DB struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

// New creates an empty session registry.
func New() *DB {
	return &DB{sessions: make(map[string]*domain.Session)}
}

// Create registers a new session under token.
func (db *DB) Create(ctx context.Context, token string, now time.Time) (*domain.Session, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.sessions[token]; ok {
		return nil, ErrSessionExists
	}
	s := &domain.Session{
		Token:      token,
		Entries:    NewEntryStore(),
		Transcript: NewTranscript(),
		LastSeen:   now,
		CreatedAt:  now,
	}
	db.sessions[token] = s
	ret := *s
	return &ret, nil
}

// GetByToken returns a snapshot of the session, or nil if it does not exist.
func (db *DB) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	s, ok := db.sessions[token]
	if !ok {
		return nil, nil
	}
	ret := *s
	return &ret, nil
}

// Touch records activity on the session.
func (db *DB) Touch(ctx context.Context, token string, now time.Time) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if s, ok := db.sessions[token]; ok {
		s.LastSeen = now
	}
	return nil
}

// SetProfile replaces the session's profile.
func (db *DB) SetProfile(ctx context.Context, token string, p domain.Profile) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	s, ok := db.sessions[token]
	if !ok {
		return errors.New("session not found")
	}
	s.Profile = p
	return nil
}

// DeleteExpired drops sessions idle since before cutoff and returns how many
// were removed.
func (db *DB) DeleteExpired(ctx context.Context, cutoff time.Time) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	n := 0
	for k, v := range db.sessions {
		if v.LastSeen.Before(cutoff) {
			delete(db.sessions, k)
			n++
		}
	}
	return n, nil
}
