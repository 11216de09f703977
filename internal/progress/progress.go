// Package progress derives summary statistics from the persisted session
// history. All functions are pure and make no assumption about the order
// of the input: storage order is a persistence-layer detail, so anything
// order-sensitive sorts or groups explicitly.
package progress

import (
	"sort"
	"time"

	"github.com/claude/hooplab/internal/models"
)

// dateFormat renders the calendar-day bucket key, e.g. "Jan 2, 2026".
const dateFormat = "Jan 2, 2006"

// TotalWorkouts is the number of recorded sessions.
func TotalWorkouts(sessions []models.WorkoutSession) int {
	return len(sessions)
}

// TotalMinutes is the whole minutes trained across all sessions.
func TotalMinutes(sessions []models.WorkoutSession) int {
	total := 0
	for _, s := range sessions {
		total += s.TotalTime
	}
	return total / 60
}

// CurrentStreak counts consecutive calendar days with at least one
// session, walking back from today. The run must include today; any
// missing day ends it. Session dates are normalized to local midnight in
// now's location, so a late-night and an early-morning session on the
// same calendar day count once.
func CurrentStreak(sessions []models.WorkoutSession, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}

	loc := now.Location()
	seen := make(map[time.Time]bool, len(sessions))
	for _, s := range sessions {
		seen[midnight(time.UnixMilli(s.Date).In(loc))] = true
	}

	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 0
	expected := midnight(now)
	for _, day := range days {
		if !day.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateGroup is one calendar-day bucket of sessions.
type DateGroup struct {
	Date     string                  `json:"date"`
	Sessions []models.WorkoutSession `json:"sessions"`
}

// GroupByDate partitions sessions into calendar-day buckets. Buckets
// appear in the order their day first occurs in the input, and sessions
// within a bucket keep their input order. Callers wanting chronological
// buckets sort the input first.
func GroupByDate(sessions []models.WorkoutSession) []DateGroup {
	groups := make([]DateGroup, 0)
	index := make(map[string]int)

	for _, s := range sessions {
		key := time.UnixMilli(s.Date).Format(dateFormat)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DateGroup{Date: key})
		}
		groups[i].Sessions = append(groups[i].Sessions, s)
	}
	return groups
}

// Stats bundles the headline numbers shown on the progress screen.
type Stats struct {
	TotalWorkouts int `json:"totalWorkouts"`
	TotalMinutes  int `json:"totalMinutes"`
	CurrentStreak int `json:"currentStreak"`
}

// Summarize computes all headline stats in one pass over the history.
func Summarize(sessions []models.WorkoutSession, now time.Time) Stats {
	return Stats{
		TotalWorkouts: TotalWorkouts(sessions),
		TotalMinutes:  TotalMinutes(sessions),
		CurrentStreak: CurrentStreak(sessions, now),
	}
}
