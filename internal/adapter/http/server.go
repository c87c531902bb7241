package adapthttp

import (
	"net/http"

	"wellness/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	sessions   *app.SessionService
	coach      *app.Coach
	translator *app.Translator
	webDir     string
}

// New creates a Server wired to the given application services. Per-session
// services are built on each request from the session's own stores.
func New(sessions *app.SessionService, coach *app.Coach, translator *app.Translator, webDir string) *Server {
	return &Server{sessions: sessions, coach: coach, translator: translator, webDir: webDir}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	scoped := http.NewServeMux()
	scoped.HandleFunc("/panels", s.handlePanels)
	scoped.HandleFunc("/profile", s.handleProfile)

	scoped.HandleFunc("/checkin", s.handleCheckIn)
	scoped.HandleFunc("/entries", s.handleEntries)
	scoped.HandleFunc("/weekly", s.handleWeekly)

	scoped.HandleFunc("/chat", s.handleChat)
	scoped.HandleFunc("/chat/transcript", s.handleTranscript)
	scoped.HandleFunc("/journal", s.handleJournal)
	scoped.HandleFunc("/motivation", s.handleMotivation)

	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "chatConfigured": s.coach.Configured()})
	})
	api.HandleFunc("/languages", s.handleLanguages)
	api.HandleFunc("/translate", s.handleTranslate)
	api.Handle("/", s.sessionMiddleware(scoped))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
