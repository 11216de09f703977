package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/claude/hooplab/internal/models"
	"github.com/claude/hooplab/internal/progress"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts := s.catalog.Workouts()

	category := r.URL.Query().Get("category")
	if category != "" {
		filtered := make([]models.Workout, 0, len(workouts))
		for _, wk := range workouts {
			if string(wk.Category) == category {
				filtered = append(filtered, wk)
			}
		}
		workouts = filtered
	}

	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	workout := s.catalog.Get(chi.URLParam(r, "id"))
	if workout == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListBookmarks(r.Context()))
}

func (s *Server) handleToggleBookmark(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if s.catalog.Get(id) == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	bookmarked := s.store.ToggleBookmark(r.Context(), id)
	writeJSON(w, http.StatusOK, map[string]bool{"bookmarked": bookmarked})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.GetProfile(r.Context()))
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if profile.DisplayName == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "displayName is required"})
		return
	}
	if !models.ValidAvatar(profile.Avatar) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown avatar"})
		return
	}
	s.store.SaveProfile(r.Context(), profile)
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListSessions(r.Context()))
}

func (s *Server) handleGroupedSessions(w http.ResponseWriter, r *http.Request) {
	sessions := s.store.ListSessions(r.Context())
	writeJSON(w, http.StatusOK, progress.GroupByDate(sessions))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	sessions := s.store.ListSessions(r.Context())
	writeJSON(w, http.StatusOK, progress.Summarize(sessions, time.Now()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
