package mcp

import (
	"context"
	"time"

	"github.com/claude/hooplab/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// sessionRange filters sessions to those starting within [start, end).
// Empty bounds are open.
func sessionRange(sessions []models.WorkoutSession, startStr, endStr string) ([]models.WorkoutSession, error) {
	var start, end time.Time
	var err error

	if startStr != "" {
		start, _, err = parseFlexTime(startStr)
		if err != nil {
			return nil, err
		}
	}
	if endStr != "" {
		var dateOnly bool
		end, dateOnly, err = parseFlexTime(endStr)
		if err != nil {
			return nil, err
		}
		// A date-only end bound is inclusive: extend it to end of day.
		// A full timestamp is taken as given.
		if dateOnly {
			end = end.Add(24 * time.Hour)
		}
	}

	filtered := make([]models.WorkoutSession, 0, len(sessions))
	for _, s := range sessions {
		date := time.UnixMilli(s.Date)
		if !start.IsZero() && date.Before(start) {
			continue
		}
		if !end.IsZero() && !date.Before(end) {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered, nil
}

// parseFlexTime accepts RFC 3339 timestamps or bare dates. The second
// return reports whether the value was date-only.
func parseFlexTime(s string) (time.Time, bool, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, false, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, true, nil
	}
	return time.Time{}, false, err
}

// --- Tool definitions ---

var toolGetProgressStats = mcp.NewTool("get_progress_stats",
	mcp.WithDescription("Get the headline progress statistics: total workouts completed, total minutes trained, and the current consecutive-day training streak."),
)

var toolGetSessionHistory = mcp.NewTool("get_session_history",
	mcp.WithDescription("Retrieve recorded workout sessions, most recent first. Each session includes the drill-by-drill completion snapshot, duration, and optional notes and difficulty rating."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to the beginning of history.")),
	mcp.WithString("end", mcp.Description("End bound (ISO 8601 timestamp, exclusive; or YYYY-MM-DD, inclusive of that day). Defaults to now.")),
)

var toolGetWorkoutCatalog = mcp.NewTool("get_workout_catalog",
	mcp.WithDescription("List the predefined workouts: category, skill level, equipment, and the full drill plan with sets, reps, and rest durations."),
)

var toolGetProfile = mcp.NewTool("get_profile",
	mcp.WithDescription("Get the user's profile: display name, avatar, and sound preference."),
)

// --- Tool handlers ---

func (h *handlers) getProgressStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.ds.GetStats(ctx)
	if err != nil {
		return mcp.NewToolResultError("stats query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSessionHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions, err := h.ds.ListSessions(ctx)
	if err != nil {
		return mcp.NewToolResultError("history query failed: " + err.Error()), nil
	}

	filtered, err := sessionRange(sessions, req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(filtered)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutCatalog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workouts, err := h.ds.ListWorkouts(ctx)
	if err != nil {
		return mcp.NewToolResultError("catalog query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := h.ds.GetProfile(ctx)
	if err != nil {
		return mcp.NewToolResultError("profile query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(profile)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
