package mcp

import (
	"context"
	"time"

	"github.com/claude/hooplab/internal/catalog"
	"github.com/claude/hooplab/internal/models"
	"github.com/claude/hooplab/internal/progress"
	"github.com/claude/hooplab/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. LocalSource (direct
// store access) and HTTPClient (remote via REST API) both satisfy it.
type DataSource interface {
	GetStats(ctx context.Context) (progress.Stats, error)
	ListSessions(ctx context.Context) ([]models.WorkoutSession, error)
	ListWorkouts(ctx context.Context) ([]models.Workout, error)
	GetProfile(ctx context.Context) (models.UserProfile, error)
}

// LocalSource serves MCP tools directly from the local store and catalog.
// The storage Gateway already degrades failures to defaults, so these
// methods never return an error.
type LocalSource struct {
	store   *storage.Gateway
	catalog *catalog.Catalog
}

// Compile-time check: *LocalSource satisfies DataSource.
var _ DataSource = (*LocalSource)(nil)

// NewLocalSource creates a LocalSource over the given store and catalog.
func NewLocalSource(store *storage.Gateway, cat *catalog.Catalog) *LocalSource {
	return &LocalSource{store: store, catalog: cat}
}

func (s *LocalSource) GetStats(ctx context.Context) (progress.Stats, error) {
	return progress.Summarize(s.store.ListSessions(ctx), time.Now()), nil
}

func (s *LocalSource) ListSessions(ctx context.Context) ([]models.WorkoutSession, error) {
	return s.store.ListSessions(ctx), nil
}

func (s *LocalSource) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	return s.catalog.Workouts(), nil
}

func (s *LocalSource) GetProfile(ctx context.Context) (models.UserProfile, error) {
	return s.store.GetProfile(ctx), nil
}
