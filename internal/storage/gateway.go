package storage

import (
	"context"
	"log/slog"

	"github.com/claude/hooplab/internal/models"
)

// Gateway is the app-facing persistence surface. It implements the
// degrade-on-failure policy in one place: every storage error is logged
// and swallowed, and callers receive the same empty or default value they
// would see with no stored data. Callers cannot distinguish "no data"
// from "storage failed", and must not try to.
type Gateway struct {
	store *Store
	log   *slog.Logger
}

// NewGateway wraps store with the degrade-on-failure policy.
func NewGateway(store *Store, log *slog.Logger) *Gateway {
	return &Gateway{store: store, log: log}
}

// ListSessions returns the session history, most recent first. Never nil.
func (g *Gateway) ListSessions(ctx context.Context) []models.WorkoutSession {
	sessions, err := g.store.Sessions(ctx)
	if err != nil {
		g.log.Warn("loading sessions failed", "error", err)
		return []models.WorkoutSession{}
	}
	if sessions == nil {
		return []models.WorkoutSession{}
	}
	return sessions
}

// AppendSession prepends record to the session history. The record is
// visible to the next ListSessions call. On storage failure the record is
// dropped silently, per the degradation policy.
func (g *Gateway) AppendSession(ctx context.Context, record models.WorkoutSession) {
	sessions := g.ListSessions(ctx)
	updated := make([]models.WorkoutSession, 0, len(sessions)+1)
	updated = append(updated, record)
	updated = append(updated, sessions...)
	if err := g.store.SetSessions(ctx, updated); err != nil {
		g.log.Warn("saving session failed", "id", record.ID, "error", err)
	}
}

// GetProfile returns the stored profile, or the documented default when
// none exists.
func (g *Gateway) GetProfile(ctx context.Context) models.UserProfile {
	profile, ok, err := g.store.Profile(ctx)
	if err != nil {
		g.log.Warn("loading profile failed", "error", err)
		return models.DefaultProfile()
	}
	if !ok {
		return models.DefaultProfile()
	}
	return profile
}

// SaveProfile stores the profile.
func (g *Gateway) SaveProfile(ctx context.Context, profile models.UserProfile) {
	if err := g.store.SetProfile(ctx, profile); err != nil {
		g.log.Warn("saving profile failed", "error", err)
	}
}

// ListBookmarks returns the bookmarked workout ids. Never nil.
func (g *Gateway) ListBookmarks(ctx context.Context) []string {
	ids, err := g.store.Bookmarks(ctx)
	if err != nil {
		g.log.Warn("loading bookmarks failed", "error", err)
		return []string{}
	}
	if ids == nil {
		return []string{}
	}
	return ids
}

// ToggleBookmark flips membership of workoutID in the bookmark set and
// returns the new membership. On storage failure it returns false.
func (g *Gateway) ToggleBookmark(ctx context.Context, workoutID string) bool {
	ids := g.ListBookmarks(ctx)
	updated := make([]string, 0, len(ids)+1)
	found := false
	for _, id := range ids {
		if id == workoutID {
			found = true
			continue
		}
		updated = append(updated, id)
	}
	if !found {
		updated = append(updated, workoutID)
	}
	if err := g.store.SetBookmarks(ctx, updated); err != nil {
		g.log.Warn("toggling bookmark failed", "id", workoutID, "error", err)
		return false
	}
	return !found
}
