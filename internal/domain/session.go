package domain

import (
	"context"
	"time"
)

// Goal is the user's self-selected focus area.
type Goal string

const (
	GoalWeightLoss   Goal = "Weight Loss"
	GoalStressRelief Goal = "Stress Relief"
	GoalBetterSleep  Goal = "Better Sleep"
)

// Goals lists the selectable goals in menu order.
var Goals = []Goal{GoalWeightLoss, GoalStressRelief, GoalBetterSleep}

// Valid reports whether g is one of Goals.
func (g Goal) Valid() bool {
	for _, v := range Goals {
		if g == v {
			return true
		}
	}
	return false
}

// Profile holds the optional personal info entered in the settings panel.
type Profile struct {
	Name string `json:"name"`
	Goal Goal   `json:"goal"`
}

// Session is one visitor's private workspace: its own entry log, chat
// transcript and profile.
type Session struct {
	Token      string
	Entries    EntryRepository
	Transcript TranscriptRepository
	Profile    Profile
	LastSeen   time.Time
	CreatedAt  time.Time
}

// SessionRepository defines the port for session bookkeeping.
type SessionRepository interface {
	Create(ctx context.Context, token string, now time.Time) (*Session, error)
	GetByToken(ctx context.Context, token string) (*Session, error)
	Touch(ctx context.Context, token string, now time.Time) error
	SetProfile(ctx context.Context, token string, p Profile) error
	DeleteExpired(ctx context.Context, cutoff time.Time) (int, error)
}
