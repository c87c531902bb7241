package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness/internal/adapter/memory"
	"wellness/internal/app"
	"wellness/internal/config"
	"wellness/internal/domain"
)

type stubCompleter struct {
	reply string
	err   error
	last  domain.CompletionRequest
}

func (s *stubCompleter) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	s.last = req
	return s.reply, s.err
}

type stubTranslator struct {
	err error
}

func (s stubTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "[" + target + "] " + text, nil
}

// testApp wires an App with in-memory stores and the given providers.
func testApp(t *testing.T, completer domain.ChatCompleter, translator domain.TextTranslator) *App {
	t.Helper()
	tr := app.NewTranslator(translator)
	return &App{
		Config:      config.FromEnv(),
		Sessions:    app.NewSessionService(memory.New(), time.Hour),
		Coach:       app.NewCoach(completer, tr, app.DefaultCoachConfig()),
		Translator:  tr,
		Entries:     memory.NewEntryStore(),
		Interactive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	output, err := executeCmd(t, testApp(t, nil, nil))
	require.NoError(t, err)
	assert.Contains(t, output, "wellness")
	assert.Contains(t, output, "recommend")
}

func TestRecommendCmd_AllPositive(t *testing.T) {
	output, err := executeCmd(t, testApp(t, nil, nil), "recommend",
		"--date", "2024-03-01", "--sleep", "8", "--steps", "9000", "--water", "8", "--stress", "3",
		"--nutrition", "8", "--screen-time", "2", "--mindfulness", "--social", "--exercise", "--sunlight")
	require.NoError(t, err)
	assert.Contains(t, output, "RECOMMENDATIONS")
	assert.Contains(t, output, "✅ Great job on your sleep!")
	assert.Contains(t, output, "🌿 Fresh air does wonders, great job!")
	assert.NotContains(t, output, "🌞")
	assert.NotContains(t, output, "○")
}

func TestRecommendCmd_Defaults(t *testing.T) {
	output, err := executeCmd(t, testApp(t, nil, nil), "recommend")
	require.NoError(t, err)
	assert.Contains(t, output, "😴 Try to sleep at least 7–8 hours tonight.")
	assert.Contains(t, output, "✨ Stress level is under control.")
}

func TestRecommendCmd_Invalid(t *testing.T) {
	_, err := executeCmd(t, testApp(t, nil, nil), "recommend", "--stress", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidEntry)
}

func TestRecommendCmd_Translated(t *testing.T) {
	output, err := executeCmd(t, testApp(t, nil, stubTranslator{}), "recommend", "--lang", "ur")
	require.NoError(t, err)
	assert.Contains(t, output, "[ur] 😴 Try to sleep")
}

func TestCheckInCmd_RequiresTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t, nil, nil), "checkin")
	assert.ErrorIs(t, err, errNotInteractive)
}

func TestCheckInAnswers_Entry(t *testing.T) {
	ans := checkInAnswers{sleep: "7", steps: "8000", water: "8", stress: "4", nutrition: "7", screen: "3", social: true}
	e, err := ans.entry()
	require.NoError(t, err)
	assert.Equal(t, 8000, e.Steps)
	assert.True(t, e.SocialConnected)

	ans.steps = "lots"
	_, err = ans.entry()
	assert.ErrorContains(t, err, "steps")
}

func TestValidateIntRange(t *testing.T) {
	v := validateIntRange(1, 10)
	assert.NoError(t, v("10"))
	assert.Error(t, v("0"))
	assert.Error(t, v("five"))
}

func TestChatCmd_Unconfigured(t *testing.T) {
	output, err := executeCmd(t, testApp(t, nil, nil), "chat", "hello", "coach")
	require.NoError(t, err)
	assert.Contains(t, output, app.MissingCredentialWarning)
}

func TestChatCmd_Configured(t *testing.T) {
	c := &stubCompleter{reply: "Take a walk."}
	output, err := executeCmd(t, testApp(t, c, nil), "chat", "I", "feel", "stuck")
	require.NoError(t, err)
	assert.Contains(t, output, "Take a walk.")
	assert.Equal(t, "I feel stuck", c.last.Messages[1].Content)
}

func TestChatCmd_RequiresMessage(t *testing.T) {
	_, err := executeCmd(t, testApp(t, nil, nil), "chat")
	assert.Error(t, err)
}

func TestTranslateCmd(t *testing.T) {
	output, err := executeCmd(t, testApp(t, nil, stubTranslator{}), "translate", "Good", "morning", "--to", "fr")
	require.NoError(t, err)
	assert.Contains(t, output, "[fr] Good morning")

	output, err = executeCmd(t, testApp(t, nil, stubTranslator{err: errors.New("down")}), "translate", "Hi", "--to", "fr")
	require.NoError(t, err)
	assert.Contains(t, output, "Hi")
	assert.Contains(t, output, "translation unavailable")

	_, err = executeCmd(t, testApp(t, nil, nil), "translate", "Hi", "--to", "xx")
	assert.ErrorContains(t, err, "unsupported language")

	_, err = executeCmd(t, testApp(t, nil, nil), "translate", "Hi")
	assert.Error(t, err)
}

func TestSweepInterval(t *testing.T) {
	assert.Equal(t, 3*time.Hour, sweepInterval(12*time.Hour))
	assert.Equal(t, time.Minute, sweepInterval(time.Minute))
}
