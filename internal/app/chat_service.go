package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"wellness/internal/domain"
)

// ErrEmptyMessage is returned by Send when the message is blank.
var ErrEmptyMessage = errors.New("message is empty")

// ChatService runs the coach chat for one session and keeps its transcript.
type ChatService struct {
	coach      *Coach
	transcript domain.TranscriptRepository
	now        func() time.Time
}

// NewChatService creates a ChatService that records turns into transcript.
func NewChatService(coach *Coach, transcript domain.TranscriptRepository) *ChatService {
	return &ChatService{coach: coach, transcript: transcript, now: time.Now}
}

// Send asks the coach and appends the user's message and the reply, in that
// order, to the transcript.
func (s *ChatService) Send(ctx context.Context, message, lang string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	reply := s.coach.Converse(ctx, message, lang)
	at := s.now().UTC()
	err := s.transcript.Append(ctx,
		domain.ChatTurn{Speaker: domain.SpeakerUser, Text: message, At: at},
		domain.ChatTurn{Speaker: domain.SpeakerCoach, Text: reply, At: at},
	)
	return reply, err
}

// Transcript returns every turn so far.
func (s *ChatService) Transcript(ctx context.Context) ([]domain.ChatTurn, error) {
	return s.transcript.Turns(ctx)
}
