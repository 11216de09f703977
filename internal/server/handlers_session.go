package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/claude/hooplab/internal/session"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WorkoutID string `json:"workoutId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	workout := s.catalog.Get(req.WorkoutID)
	if workout == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}

	if err := s.session.Start(*workout); err != nil {
		if errors.Is(err, session.ErrNoDrills) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	dir := session.Direction(req.Direction)
	if dir != session.Next && dir != session.Previous {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "direction must be \"next\" or \"previous\""})
		return
	}

	s.session.Advance(dir)
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleToggleDrill(w http.ResponseWriter, r *http.Request) {
	s.session.ToggleDrill(chi.URLParam(r, "drillID"))
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleStartRest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Seconds int `json:"seconds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	seconds := req.Seconds
	if seconds <= 0 {
		// Default to the current drill's prescribed rest length.
		snap := s.session.Snapshot()
		if snap.Active {
			seconds = snap.Workout.Drills[snap.CurrentDrillIndex].RestSeconds
		}
	}

	s.session.StartRest(seconds)
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Discard    bool   `json:"discard"`
		Notes      string `json:"notes"`
		Difficulty int    `json:"difficulty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if !s.session.Active() {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "no active session"})
		return
	}

	if req.Discard {
		s.session.End(true)
		writeJSON(w, http.StatusOK, map[string]bool{"saved": false})
		return
	}

	// The record builder passes difficulty through unclamped; range
	// validation happens here at the API boundary. Zero means unset.
	if req.Difficulty != 0 && (req.Difficulty < 1 || req.Difficulty > 5) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "difficulty must be between 1 and 5"})
		return
	}

	record, err := s.session.BuildRecord(req.Notes, req.Difficulty)
	if err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}

	s.store.AppendSession(r.Context(), record)
	s.session.End(false)

	writeJSON(w, http.StatusOK, record)
}
