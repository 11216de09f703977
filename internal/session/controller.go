// Package session drives one active workout attempt: drill navigation,
// per-drill completion, the running session clock, and the rest countdown.
// A Controller owns at most one active session at a time and serializes
// every mutation behind a single mutex, so the one-second ticker and the
// HTTP handlers can never interleave partial updates.
package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/claude/hooplab/internal/models"
)

// Direction selects which way Advance moves through the drill list.
type Direction string

const (
	Next     Direction = "next"
	Previous Direction = "previous"
)

// ErrNoDrills is returned by Start for a workout with an empty drill list.
var ErrNoDrills = errors.New("workout has no drills")

// ErrNoActiveSession is returned by BuildRecord when no session is active.
var ErrNoActiveSession = errors.New("no active session")

// Controller is the single serialized owner of the active session.
// Navigation and completion toggles are total: out-of-bounds moves and
// unknown drill ids are no-ops, never errors.
type Controller struct {
	mu  sync.Mutex
	log *slog.Logger
	now func() time.Time

	// onRestComplete fires (outside the lock) when the rest countdown
	// reaches zero. Collaborators use it for haptic/audio cues.
	onRestComplete func()

	workout       *models.Workout
	drillIndex    int
	completed     []models.CompletedDrill
	startedAt     time.Time
	resting       bool
	restRemaining int

	stopTick chan struct{}
}

// NewController creates an idle controller.
func NewController(log *slog.Logger) *Controller {
	return &Controller{log: log, now: time.Now}
}

// OnRestComplete registers the rest-complete notification callback.
func (c *Controller) OnRestComplete(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onRestComplete = fn
}

// Start begins a session for workout: drill index 0, one CompletedDrill
// per drill with the drill name frozen, start timestamp now. Starting
// while a session is active replaces it; the previous unsaved state is
// lost. A workout with no drills is rejected.
func (c *Controller) Start(workout models.Workout) error {
	if len(workout.Drills) == 0 {
		return ErrNoDrills
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.workout != nil {
		c.log.Info("replacing active session", "old", c.workout.ID, "new", workout.ID)
		c.stopTickerLocked()
	}

	completed := make([]models.CompletedDrill, len(workout.Drills))
	for i, d := range workout.Drills {
		completed[i] = models.CompletedDrill{DrillID: d.ID, DrillName: d.Name}
	}

	c.workout = &workout
	c.drillIndex = 0
	c.completed = completed
	c.startedAt = c.now()
	c.resting = false
	c.restRemaining = 0

	c.stopTick = make(chan struct{})
	go c.runTicker(c.stopTick)

	return nil
}

// Active reports whether a session is in progress.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.workout != nil
}

// Advance moves to the adjacent drill. At either end of the drill list the
// index is left unchanged (clamped, not wrapping). Any call clears the
// rest countdown, even when the move itself is a no-op.
func (c *Controller) Advance(dir Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.workout == nil {
		return
	}

	c.resting = false
	c.restRemaining = 0

	switch dir {
	case Next:
		if c.drillIndex < len(c.workout.Drills)-1 {
			c.drillIndex++
		}
	case Previous:
		if c.drillIndex > 0 {
			c.drillIndex--
		}
	}
}

// ToggleDrill flips the completion flag of the drill with the given id.
// An id not in the active session is ignored.
func (c *Controller) ToggleDrill(drillID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.completed {
		if c.completed[i].DrillID == drillID {
			c.completed[i].Completed = !c.completed[i].Completed
			return
		}
	}
}

// StartRest begins a rest countdown of the given length. No-op when idle
// or for a non-positive duration.
func (c *Controller) StartRest(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.workout == nil || seconds <= 0 {
		return
	}
	c.resting = true
	c.restRemaining = seconds
}

// RestTick advances the rest countdown by one second. At zero the resting
// flag clears and the rest-complete callback fires. The internal ticker
// calls this once per second; tests may call it directly.
func (c *Controller) RestTick() {
	c.mu.Lock()
	if c.workout == nil || !c.resting {
		c.mu.Unlock()
		return
	}
	c.restRemaining--
	if c.restRemaining > 0 {
		c.mu.Unlock()
		return
	}
	c.resting = false
	c.restRemaining = 0
	fn := c.onRestComplete
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// End finishes the session and returns the controller to idle, stopping
// the ticker so no further ticks can mutate state. With discard=true any
// unsaved state is dropped; on the save path the caller builds and
// persists the record before calling End(false).
func (c *Controller) End(discard bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.workout == nil {
		return
	}
	if discard {
		c.log.Info("session discarded", "workout", c.workout.ID)
	}

	c.stopTickerLocked()
	c.workout = nil
	c.drillIndex = 0
	c.completed = nil
	c.startedAt = time.Time{}
	c.resting = false
	c.restRemaining = 0
}

func (c *Controller) stopTickerLocked() {
	if c.stopTick != nil {
		close(c.stopTick)
		c.stopTick = nil
	}
}

func (c *Controller) runTicker(stop chan struct{}) {
	t := time.NewTicker(time.Second)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			c.RestTick()
		}
	}
}

// Snapshot is a point-in-time view of the active session for display.
// All derived values are total: an idle controller yields the zero
// snapshot with Active=false.
type Snapshot struct {
	Active             bool                    `json:"active"`
	Workout            *models.Workout         `json:"workout,omitempty"`
	CurrentDrillIndex  int                     `json:"currentDrillIndex"`
	CompletedDrills    []models.CompletedDrill `json:"completedDrills,omitempty"`
	StartedAt          int64                   `json:"startedAt,omitempty"`
	ElapsedSeconds     int                     `json:"elapsedSeconds"`
	Resting            bool                    `json:"resting"`
	RestRemaining      int                     `json:"restRemaining"`
	CompletedCount     int                     `json:"completedCount"`
	CompletionFraction float64                 `json:"completionFraction"`
}

// Snapshot returns the current session state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.workout == nil {
		return Snapshot{}
	}

	drills := make([]models.CompletedDrill, len(c.completed))
	copy(drills, c.completed)

	count := 0
	for _, d := range drills {
		if d.Completed {
			count++
		}
	}

	fraction := 0.0
	if len(drills) > 0 {
		fraction = float64(count) / float64(len(drills))
	}

	w := *c.workout
	return Snapshot{
		Active:             true,
		Workout:            &w,
		CurrentDrillIndex:  c.drillIndex,
		CompletedDrills:    drills,
		StartedAt:          c.startedAt.UnixMilli(),
		ElapsedSeconds:     int(c.now().Sub(c.startedAt).Seconds()),
		Resting:            c.resting,
		RestRemaining:      c.restRemaining,
		CompletedCount:     count,
		CompletionFraction: fraction,
	}
}
