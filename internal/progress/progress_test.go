package progress

import (
	"testing"
	"time"

	"github.com/claude/hooplab/internal/models"
)

// sessionOn builds a session whose date falls on now shifted by dayOffset
// days, at the given hour of day.
func sessionOn(now time.Time, dayOffset, hour int) models.WorkoutSession {
	day := now.AddDate(0, 0, dayOffset)
	d := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, now.Location())
	return models.WorkoutSession{
		ID:          d.Format(time.RFC3339Nano),
		WorkoutID:   "w",
		WorkoutName: "Workout",
		Date:        d.UnixMilli(),
		TotalTime:   600,
	}
}

// TestCurrentStreak verifies the consecutive-day streak: the run must
// include today, and any missing day ends it.
func TestCurrentStreak(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		offsets []int
		want    int
	}{
		{name: "no sessions", offsets: nil, want: 0},
		{name: "today only", offsets: []int{0}, want: 1},
		{name: "three consecutive days", offsets: []int{0, -1, -2}, want: 3},
		{name: "gap at yesterday", offsets: []int{0, -2}, want: 1},
		{name: "yesterday only", offsets: []int{-1}, want: 0},
		{name: "stale history", offsets: []int{-3, -4, -5}, want: 0},
		{name: "run then gap", offsets: []int{0, -1, -3, -4}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := make([]models.WorkoutSession, 0, len(tt.offsets))
			for _, off := range tt.offsets {
				sessions = append(sessions, sessionOn(now, off, 10))
			}
			if got := CurrentStreak(sessions, now); got != tt.want {
				t.Errorf("CurrentStreak(%v) = %d, want %d", tt.offsets, got, tt.want)
			}
		})
	}
}

// TestCurrentStreakDeduplicatesDays verifies multiple sessions on one
// calendar day count as a single streak day.
func TestCurrentStreakDeduplicatesDays(t *testing.T) {
	now := time.Date(2026, 8, 30, 22, 0, 0, 0, time.UTC)
	sessions := []models.WorkoutSession{
		sessionOn(now, 0, 7),
		sessionOn(now, 0, 19),
		sessionOn(now, -1, 12),
	}
	if got := CurrentStreak(sessions, now); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

// TestCurrentStreakIgnoresInputOrder verifies the streak does not depend
// on storage order.
func TestCurrentStreakIgnoresInputOrder(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	sessions := []models.WorkoutSession{
		sessionOn(now, -2, 9),
		sessionOn(now, 0, 9),
		sessionOn(now, -1, 9),
	}
	if got := CurrentStreak(sessions, now); got != 3 {
		t.Errorf("streak on shuffled input = %d, want 3", got)
	}
}

// TestTotals verifies the workout count and the floored minute total.
func TestTotals(t *testing.T) {
	sessions := []models.WorkoutSession{
		{TotalTime: 610}, // 10m10s
		{TotalTime: 59},  // under a minute
		{TotalTime: 120},
	}
	if got := TotalWorkouts(sessions); got != 3 {
		t.Errorf("TotalWorkouts = %d, want 3", got)
	}
	// 789 seconds total → 13 whole minutes
	if got := TotalMinutes(sessions); got != 13 {
		t.Errorf("TotalMinutes = %d, want 13", got)
	}
	if got := TotalMinutes(nil); got != 0 {
		t.Errorf("TotalMinutes(nil) = %d, want 0", got)
	}
}

// TestGroupByDate verifies buckets appear in first-encounter order and
// sessions keep their relative order within a bucket.
func TestGroupByDate(t *testing.T) {
	day := func(y int, m time.Month, d int) int64 {
		return time.Date(y, m, d, 12, 0, 0, 0, time.Local).UnixMilli()
	}
	sessions := []models.WorkoutSession{
		{ID: "a", Date: day(2024, time.January, 2)},
		{ID: "b", Date: day(2024, time.January, 1)},
		{ID: "c", Date: day(2024, time.January, 2)},
	}

	groups := GroupByDate(sessions)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Date != "Jan 2, 2024" || groups[1].Date != "Jan 1, 2024" {
		t.Errorf("bucket order = [%q, %q], want encounter order", groups[0].Date, groups[1].Date)
	}
	if len(groups[0].Sessions) != 2 || groups[0].Sessions[0].ID != "a" || groups[0].Sessions[1].ID != "c" {
		t.Errorf("first bucket = %+v, want [a c] in input order", groups[0].Sessions)
	}
	if len(groups[1].Sessions) != 1 || groups[1].Sessions[0].ID != "b" {
		t.Errorf("second bucket = %+v, want [b]", groups[1].Sessions)
	}
}

// TestGroupByDateEmpty verifies an empty history yields no buckets.
func TestGroupByDateEmpty(t *testing.T) {
	if groups := GroupByDate(nil); len(groups) != 0 {
		t.Errorf("groups = %d, want 0", len(groups))
	}
}

// TestSummarize verifies the bundled stats agree with the individual
// functions.
func TestSummarize(t *testing.T) {
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
	sessions := []models.WorkoutSession{
		sessionOn(now, 0, 9),
		sessionOn(now, -1, 9),
	}

	stats := Summarize(sessions, now)
	if stats.TotalWorkouts != 2 {
		t.Errorf("totalWorkouts = %d, want 2", stats.TotalWorkouts)
	}
	if stats.TotalMinutes != 20 {
		t.Errorf("totalMinutes = %d, want 20", stats.TotalMinutes)
	}
	if stats.CurrentStreak != 2 {
		t.Errorf("currentStreak = %d, want 2", stats.CurrentStreak)
	}
}
