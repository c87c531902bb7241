package adapthttp

import (
	"errors"
	"net/http"
	"strings"

	"wellness/internal/app"
	"wellness/internal/domain"
)

var errUnsupportedLanguage = errors.New("unsupported language")

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"languages": domain.Languages, "default": domain.PivotLanguage})
}

func (s *Server) handlePanels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	lang := langQuery(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"lang":   lang,
		"panels": app.LocalizedPanels(r.Context(), s.translator, lang),
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"profile": sess.Profile, "goals": domain.Goals})
	case http.MethodPut:
		var body domain.Profile
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		p, err := s.sessions.UpdateProfile(r.Context(), sess.Token, body)
		if errors.Is(err, app.ErrInvalidGoal) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"profile": p})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Text   string `json:"text"`
		Target string `json:"target"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	target := strings.TrimSpace(body.Target)
	if domain.ResolveLanguage(target) != target {
		writeError(w, http.StatusBadRequest, errUnsupportedLanguage)
		return
	}

	out, translated := s.translator.TranslateTagged(r.Context(), body.Text, target)
	writeJSON(w, http.StatusOK, map[string]any{"text": out, "translated": translated})
}
