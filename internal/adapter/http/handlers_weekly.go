package adapthttp

import (
	"errors"
	"net/http"

	"wellness/internal/app"
)

func (s *Server) handleWeekly(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	report, err := app.NewTrackerService(sessionFrom(r.Context()).Entries).Weekly(r.Context())
	if errors.Is(err, app.ErrNoWeeklyData) {
		writeJSON(w, http.StatusOK, map[string]any{
			"hasData": false,
			"message": s.translator.Translate(r.Context(), app.NoWeeklyDataMessage, langQuery(r)),
		})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"hasData": true,
		"table":   report.Table,
		"series":  report.Series,
		"habits":  report.Habits,
	})
}
