package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/hooplab/internal/catalog"
	"github.com/claude/hooplab/internal/session"
	"github.com/claude/hooplab/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	catalog *catalog.Catalog
	store   *storage.Gateway
	session *session.Controller
	log     *slog.Logger
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(cat *catalog.Catalog, store *storage.Gateway, ctrl *session.Controller, log *slog.Logger) *Server {
	s := &Server{
		catalog: cat,
		store:   store,
		session: ctrl,
		log:     log,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// No auth — access control is the listener's concern (localhost or tsnet).
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/workouts", s.handleListWorkouts)
		r.Get("/workouts/{id}", s.handleGetWorkout)

		r.Get("/bookmarks", s.handleListBookmarks)
		r.Post("/bookmarks/{id}/toggle", s.handleToggleBookmark)

		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handleSaveProfile)

		r.Get("/sessions", s.handleListSessions)
		r.Get("/sessions/grouped", s.handleGroupedSessions)
		r.Get("/stats", s.handleStats)

		r.Get("/session", s.handleGetSession)
		r.Post("/session/start", s.handleStartSession)
		r.Post("/session/advance", s.handleAdvance)
		r.Post("/session/drills/{drillID}/toggle", s.handleToggleDrill)
		r.Post("/session/rest", s.handleStartRest)
		r.Post("/session/end", s.handleEndSession)
	})
}
