package session

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/claude/hooplab/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testWorkout(drillCount int) models.Workout {
	drills := make([]models.Drill, drillCount)
	for i := range drills {
		drills[i] = models.Drill{
			ID:          fmt.Sprintf("drill-%d", i),
			Name:        fmt.Sprintf("Drill %d", i),
			Sets:        3,
			Reps:        10,
			RestSeconds: 30,
		}
	}
	return models.Workout{
		ID:         "test-workout",
		Name:       "Test Workout",
		Category:   models.CategoryShooting,
		SkillLevel: models.SkillBeginner,
		Duration:   20,
		Drills:     drills,
	}
}

// newTestController returns a controller with a frozen clock. The returned
// advance function moves the clock forward.
func newTestController(t *testing.T, start time.Time) (*Controller, func(d time.Duration)) {
	t.Helper()
	c := NewController(testLogger())
	current := start
	c.now = func() time.Time { return current }
	t.Cleanup(func() { c.End(true) })
	return c, func(d time.Duration) { current = current.Add(d) }
}

// TestStartInitializesSession verifies that starting a workout with N drills
// produces exactly N completion entries, all incomplete, at drill index 0,
// with the start timestamp taken from the clock.
func TestStartInitializesSession(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	c, _ := newTestController(t, start)

	if err := c.Start(testWorkout(4)); err != nil {
		t.Fatalf("Start: %v", err)
	}

	snap := c.Snapshot()
	if !snap.Active {
		t.Fatal("expected active session")
	}
	if snap.CurrentDrillIndex != 0 {
		t.Errorf("index = %d, want 0", snap.CurrentDrillIndex)
	}
	if len(snap.CompletedDrills) != 4 {
		t.Fatalf("completed drills = %d, want 4", len(snap.CompletedDrills))
	}
	for i, d := range snap.CompletedDrills {
		if d.Completed {
			t.Errorf("drill %d marked complete at start", i)
		}
		if d.DrillID != fmt.Sprintf("drill-%d", i) {
			t.Errorf("drill %d id = %q, order not preserved", i, d.DrillID)
		}
		if d.DrillName == "" {
			t.Errorf("drill %d name not frozen", i)
		}
	}
	if snap.StartedAt != start.UnixMilli() {
		t.Errorf("startedAt = %d, want %d", snap.StartedAt, start.UnixMilli())
	}
}

// TestStartRejectsEmptyWorkout verifies the zero-drill precondition is
// enforced instead of producing an unusable session.
func TestStartRejectsEmptyWorkout(t *testing.T) {
	c, _ := newTestController(t, time.Now())

	if err := c.Start(testWorkout(0)); err != ErrNoDrills {
		t.Errorf("Start with no drills = %v, want ErrNoDrills", err)
	}
	if c.Active() {
		t.Error("controller should remain idle")
	}
}

// TestAdvanceClampsAtBounds verifies that navigation never wraps: previous
// at the first drill and next at the last drill leave the index unchanged.
func TestAdvanceClampsAtBounds(t *testing.T) {
	c, _ := newTestController(t, time.Now())
	if err := c.Start(testWorkout(3)); err != nil {
		t.Fatal(err)
	}

	c.Advance(Previous)
	if got := c.Snapshot().CurrentDrillIndex; got != 0 {
		t.Errorf("previous at index 0: index = %d, want 0", got)
	}

	c.Advance(Next)
	c.Advance(Next)
	if got := c.Snapshot().CurrentDrillIndex; got != 2 {
		t.Errorf("index = %d, want 2", got)
	}

	c.Advance(Next)
	if got := c.Snapshot().CurrentDrillIndex; got != 2 {
		t.Errorf("next at last index: index = %d, want 2", got)
	}
}

// TestAdvanceClearsRest verifies that navigating always cancels an
// in-progress rest countdown, including when the move itself is a
// clamped no-op.
func TestAdvanceClearsRest(t *testing.T) {
	c, _ := newTestController(t, time.Now())
	if err := c.Start(testWorkout(2)); err != nil {
		t.Fatal(err)
	}

	c.StartRest(60)
	c.Advance(Next)
	snap := c.Snapshot()
	if snap.Resting || snap.RestRemaining != 0 {
		t.Errorf("after advance: resting=%v remaining=%d, want cleared", snap.Resting, snap.RestRemaining)
	}

	// Bounds no-op still clears rest.
	c.StartRest(60)
	c.Advance(Next) // already at last drill
	snap = c.Snapshot()
	if snap.CurrentDrillIndex != 1 {
		t.Errorf("index = %d, want 1", snap.CurrentDrillIndex)
	}
	if snap.Resting || snap.RestRemaining != 0 {
		t.Errorf("after clamped advance: resting=%v remaining=%d, want cleared", snap.Resting, snap.RestRemaining)
	}
}

// TestToggleDrill verifies the toggle flips completion, double-toggling
// restores the original value, and unknown drill ids are ignored.
func TestToggleDrill(t *testing.T) {
	c, _ := newTestController(t, time.Now())
	if err := c.Start(testWorkout(3)); err != nil {
		t.Fatal(err)
	}

	c.ToggleDrill("drill-1")
	snap := c.Snapshot()
	if !snap.CompletedDrills[1].Completed {
		t.Error("drill-1 not marked complete after toggle")
	}
	if snap.CompletedCount != 1 {
		t.Errorf("completedCount = %d, want 1", snap.CompletedCount)
	}

	c.ToggleDrill("drill-1")
	if c.Snapshot().CompletedDrills[1].Completed {
		t.Error("double toggle should restore incomplete")
	}

	c.ToggleDrill("no-such-drill")
	snap = c.Snapshot()
	for i, d := range snap.CompletedDrills {
		if d.Completed {
			t.Errorf("unknown id toggle changed drill %d", i)
		}
	}
}

// TestRestCountdown verifies the countdown decrements per tick, clears the
// resting flag at zero, and fires the rest-complete notification exactly
// once.
func TestRestCountdown(t *testing.T) {
	c, _ := newTestController(t, time.Now())
	fired := 0
	c.OnRestComplete(func() { fired++ })
	if err := c.Start(testWorkout(1)); err != nil {
		t.Fatal(err)
	}

	c.StartRest(2)
	snap := c.Snapshot()
	if !snap.Resting || snap.RestRemaining != 2 {
		t.Fatalf("after StartRest: resting=%v remaining=%d", snap.Resting, snap.RestRemaining)
	}

	c.RestTick()
	snap = c.Snapshot()
	if !snap.Resting || snap.RestRemaining != 1 {
		t.Errorf("after 1 tick: resting=%v remaining=%d, want resting with 1", snap.Resting, snap.RestRemaining)
	}
	if fired != 0 {
		t.Errorf("notification fired early")
	}

	c.RestTick()
	snap = c.Snapshot()
	if snap.Resting || snap.RestRemaining != 0 {
		t.Errorf("after 2 ticks: resting=%v remaining=%d, want cleared", snap.Resting, snap.RestRemaining)
	}
	if fired != 1 {
		t.Errorf("notification fired %d times, want 1", fired)
	}

	// Ticks while not resting are no-ops.
	c.RestTick()
	if fired != 1 {
		t.Errorf("tick while idle fired notification")
	}
}

// TestStartRestWhileIdle verifies rest cannot be started without an
// active session.
func TestStartRestWhileIdle(t *testing.T) {
	c, _ := newTestController(t, time.Now())
	c.StartRest(30)
	if snap := c.Snapshot(); snap.Resting {
		t.Error("rest started with no active session")
	}
}

// TestElapsedSeconds verifies the session clock runs continuously from
// start, unaffected by navigation or rest.
func TestElapsedSeconds(t *testing.T) {
	c, advance := newTestController(t, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	if err := c.Start(testWorkout(2)); err != nil {
		t.Fatal(err)
	}

	advance(95 * time.Second)
	c.Advance(Next)
	c.StartRest(30)

	if got := c.Snapshot().ElapsedSeconds; got != 95 {
		t.Errorf("elapsed = %d, want 95", got)
	}
}

// TestEndClearsStateAndStopsTicks verifies End returns the controller to
// idle and later ticks cannot mutate anything.
func TestEndClearsStateAndStopsTicks(t *testing.T) {
	c, _ := newTestController(t, time.Now())
	if err := c.Start(testWorkout(2)); err != nil {
		t.Fatal(err)
	}
	c.StartRest(10)
	c.End(true)

	snap := c.Snapshot()
	if snap.Active {
		t.Fatal("expected idle after End")
	}
	if snap.CompletedDrills != nil || snap.Resting || snap.RestRemaining != 0 {
		t.Errorf("state not cleared: %+v", snap)
	}

	c.RestTick()
	c.Advance(Next)
	c.ToggleDrill("drill-0")
	if c.Snapshot().Active {
		t.Error("operations after End revived the session")
	}
}

// TestStartReplacesActiveSession verifies starting a new workout while one
// is active discards the previous in-session state.
func TestStartReplacesActiveSession(t *testing.T) {
	c, _ := newTestController(t, time.Now())
	if err := c.Start(testWorkout(3)); err != nil {
		t.Fatal(err)
	}
	c.Advance(Next)
	c.ToggleDrill("drill-0")

	second := testWorkout(2)
	second.ID = "second-workout"
	if err := c.Start(second); err != nil {
		t.Fatal(err)
	}

	snap := c.Snapshot()
	if snap.Workout.ID != "second-workout" {
		t.Errorf("workout = %q, want second-workout", snap.Workout.ID)
	}
	if snap.CurrentDrillIndex != 0 {
		t.Errorf("index = %d, want 0", snap.CurrentDrillIndex)
	}
	if len(snap.CompletedDrills) != 2 {
		t.Errorf("completed drills = %d, want 2", len(snap.CompletedDrills))
	}
	if snap.CompletedCount != 0 {
		t.Errorf("completedCount = %d, want 0", snap.CompletedCount)
	}
}

// TestCompletionFraction verifies the derived fraction and that the idle
// snapshot defaults to zero rather than dividing by zero.
func TestCompletionFraction(t *testing.T) {
	c, _ := newTestController(t, time.Now())
	if got := c.Snapshot().CompletionFraction; got != 0 {
		t.Errorf("idle fraction = %v, want 0", got)
	}

	if err := c.Start(testWorkout(4)); err != nil {
		t.Fatal(err)
	}
	c.ToggleDrill("drill-0")
	c.ToggleDrill("drill-2")

	if got := c.Snapshot().CompletionFraction; got != 0.5 {
		t.Errorf("fraction = %v, want 0.5", got)
	}
}
