package domain

import (
	"context"
	"time"
)

// Speaker identifies who produced a ChatTurn.
type Speaker string

const (
	SpeakerUser  Speaker = "user"
	SpeakerCoach Speaker = "coach"
)

// ChatTurn is one message in a session's chat transcript.
type ChatTurn struct {
	Speaker Speaker   `json:"speaker"`
	Text    string    `json:"text"`
	At      time.Time `json:"at"`
}

// TranscriptRepository is the port for a session's append-only chat log.
type TranscriptRepository interface {
	Append(ctx context.Context, turns ...ChatTurn) error
	Turns(ctx context.Context) ([]ChatTurn, error)
}

// Chat message roles understood by completion providers.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatMessage is a single role-tagged message sent to a completion provider.
type ChatMessage struct {
	Role    string
	Content string
}

// CompletionRequest is what the coach sends to a completion provider.
type CompletionRequest struct {
	Model       string
	Messages    []ChatMessage
	Temperature float32
	MaxTokens   int
}

// ChatCompleter is the port for an external chat-completion service.
type ChatCompleter interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// TextTranslator is the port for an external machine-translation service.
// Implementations report failures; the fail-open policy lives in the app
// layer.
type TextTranslator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}
