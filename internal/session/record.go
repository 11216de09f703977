package session

import (
	"github.com/claude/hooplab/internal/models"
	"github.com/google/uuid"
)

// BuildRecord assembles the immutable historical record for the active
// session: a fresh unique id, a frozen copy of the drill completion
// snapshot, and the elapsed time at build time. Notes and difficulty are
// passed through as given; range-checking difficulty is the caller's
// responsibility. BuildRecord performs no I/O and does not end the
// session — callers persist the record and then call End.
func (c *Controller) BuildRecord(notes string, difficulty int) (models.WorkoutSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.workout == nil {
		return models.WorkoutSession{}, ErrNoActiveSession
	}

	drills := make([]models.CompletedDrill, len(c.completed))
	copy(drills, c.completed)

	return models.WorkoutSession{
		ID:              uuid.NewString(),
		WorkoutID:       c.workout.ID,
		WorkoutName:     c.workout.Name,
		Date:            c.startedAt.UnixMilli(),
		TotalTime:       int(c.now().Sub(c.startedAt).Seconds()),
		CompletedDrills: drills,
		Notes:           notes,
		Difficulty:      difficulty,
	}, nil
}
