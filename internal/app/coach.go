package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wellness/internal/domain"
)

const (
	// MissingCredentialWarning is returned by an unconfigured coach.
	MissingCredentialWarning = "⚠️ Missing GROQ_API_KEY."

	// CoachInstruction is the fixed system prompt sent with every message.
	CoachInstruction = "You are a friendly wellness coach. Track and guide the user on sleep, steps, water, stress, " +
		"nutrition, mindfulness, screen time, social connection, reflection, exercise, and sunlight. " +
		"Be supportive and interactive. Keep answers concise (5-7 sentences) and ask a small follow-up."

	// MotivationQuote is the daily motivation shown on demand.
	MotivationQuote = "🌸 You are stronger than you think!"

	DefaultChatModel   = "llama-3.1-8b-instant"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 200
)

// ErrEmptyMood is returned by Reflect when no mood text was given.
var ErrEmptyMood = errors.New("mood is empty")

// EmptyMoodMessage is the user-facing prompt shown for ErrEmptyMood.
const EmptyMoodMessage = "Please enter your mood first."

// CoachConfig tunes completion requests.
type CoachConfig struct {
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration // 0 disables the per-call bound
}

// DefaultCoachConfig returns the model and sampling settings the coach was
// tuned with.
func DefaultCoachConfig() CoachConfig {
	return CoachConfig{
		Model:       DefaultChatModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		Timeout:     20 * time.Second,
	}
}

// Coach talks to the completion service on the user's behalf, round-tripping
// through the pivot language when the user writes in another one.
type Coach struct {
	completer  domain.ChatCompleter
	translator *Translator
	cfg        CoachConfig
}

// NewCoach creates a Coach. A nil completer leaves the coach unconfigured:
// every Converse call returns MissingCredentialWarning without network I/O.
func NewCoach(completer domain.ChatCompleter, translator *Translator, cfg CoachConfig) *Coach {
	return &Coach{completer: completer, translator: translator, cfg: cfg}
}

// Configured reports whether a completion provider is available.
func (c *Coach) Configured() bool {
	return c.completer != nil
}

// Converse sends message to the coach and returns the reply in targetLang.
// It never fails: provider errors come back as a formatted error string.
func (c *Coach) Converse(ctx context.Context, message, targetLang string) string {
	if !c.Configured() {
		return MissingCredentialWarning
	}

	msg := message
	if targetLang != domain.PivotLanguage {
		msg = c.translator.Translate(ctx, message, domain.PivotLanguage)
	}

	callCtx := ctx
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	reply, err := c.completer.Complete(callCtx, domain.CompletionRequest{
		Model: c.cfg.Model,
		Messages: []domain.ChatMessage{
			{Role: domain.RoleSystem, Content: CoachInstruction},
			{Role: domain.RoleUser, Content: msg},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	})
	if err != nil {
		slog.WarnContext(ctx, "chat completion failed", "model", c.cfg.Model, "error", err)
		return fmt.Sprintf("❌ Error: %v", err)
	}

	if targetLang != domain.PivotLanguage {
		return c.translator.Translate(ctx, reply, targetLang)
	}
	return reply
}

// Reflect asks the coach for a short supportive reflection on today's mood.
func (c *Coach) Reflect(ctx context.Context, mood, targetLang string) (string, error) {
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return "", ErrEmptyMood
	}
	prompt := fmt.Sprintf("My mood today: %s. Give me a short supportive reflection and one tiny action.", mood)
	return c.Converse(ctx, prompt, targetLang), nil
}

// Motivation returns the daily motivation quote in targetLang.
func (c *Coach) Motivation(ctx context.Context, targetLang string) string {
	if targetLang == domain.PivotLanguage {
		return MotivationQuote
	}
	return c.translator.Translate(ctx, MotivationQuote, targetLang)
}
