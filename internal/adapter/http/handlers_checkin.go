package adapthttp

import (
	"errors"
	"net/http"

	"wellness/internal/app"
	"wellness/internal/domain"
)

func (s *Server) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		domain.DailyEntry
		Lang string `json:"lang"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	tracker := app.NewTrackerService(sessionFrom(r.Context()).Entries)
	recs, entry, err := tracker.CheckIn(r.Context(), body.DailyEntry)
	if errors.Is(err, domain.ErrInvalidEntry) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	lang := domain.ResolveLanguage(body.Lang)
	if lang != domain.PivotLanguage {
		for i := range recs {
			recs[i].Message = s.translator.Translate(r.Context(), recs[i].Message, lang)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"entry": entry, "recommendations": recs})
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	items, err := app.NewTrackerService(sessionFrom(r.Context()).Entries).Entries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if items == nil {
		items = []domain.DailyEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
