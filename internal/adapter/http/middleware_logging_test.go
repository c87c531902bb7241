package adapthttp

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness/internal/adapter/memory"
	"wellness/internal/app"
)

func TestLoggingMiddleware(t *testing.T) {
	s := &Server{}
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("OK"))
	})

	handler := s.loggingMiddleware(nextHandler)

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	out := buf.String()
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/test-path")
	assert.Contains(t, out, "status=418")
}

func TestSessionMiddleware_ReplacesExpiredSession(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	sessions := app.NewSessionService(memory.New(), time.Hour).WithClock(func() time.Time { return now })
	s := &Server{sessions: sessions}

	old, err := sessions.Start(context.Background())
	require.NoError(t, err)

	var seen string
	handler := s.sessionMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = sessionFrom(r.Context()).Token
	}))

	req := httptest.NewRequest("GET", "/entries", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: old.Token})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, old.Token, seen)
	assert.Empty(t, w.Result().Cookies())

	now = now.Add(2 * time.Hour)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.NotEqual(t, old.Token, seen)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, seen, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}
