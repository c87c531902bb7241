package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"wellness/internal/app"
	"wellness/internal/domain"
)

type turnView struct {
	Speaker domain.Speaker `json:"speaker"`
	Text    string         `json:"text"`
	HTML    string         `json:"html"`
	At      time.Time      `json:"at"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Message string `json:"message"`
		Lang    string `json:"lang"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	chat := app.NewChatService(s.coach, sessionFrom(r.Context()).Transcript)
	reply, err := chat.Send(r.Context(), body.Message, domain.ResolveLanguage(body.Lang))
	if errors.Is(err, app.ErrEmptyMessage) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reply": reply, "configured": s.coach.Configured()})
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	turns, err := app.NewChatService(s.coach, sessionFrom(r.Context()).Transcript).Transcript(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]turnView, 0, len(turns))
	for _, t := range turns {
		html, err := renderMarkdown(t.Text)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		out = append(out, turnView{Speaker: t.Speaker, Text: t.Text, HTML: html, At: t.At})
	}
	writeJSON(w, http.StatusOK, map[string]any{"turns": out})
}

func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Mood string `json:"mood"`
		Lang string `json:"lang"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	reflection, err := s.coach.Reflect(r.Context(), body.Mood, domain.ResolveLanguage(body.Lang))
	if errors.Is(err, app.ErrEmptyMood) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": app.EmptyMoodMessage})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reflection": reflection})
}

func (s *Server) handleMotivation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"text": s.coach.Motivation(r.Context(), langQuery(r))})
}
