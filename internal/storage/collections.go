package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/claude/hooplab/internal/models"
)

// Sessions returns the stored session history. A never-written collection
// yields an empty slice.
func (s *Store) Sessions(ctx context.Context) ([]models.WorkoutSession, error) {
	data, ok, err := s.get(ctx, keySessions)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var sessions []models.WorkoutSession
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("decoding sessions: %w", err)
	}
	return sessions, nil
}

// SetSessions replaces the stored session history.
func (s *Store) SetSessions(ctx context.Context, sessions []models.WorkoutSession) error {
	data, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("encoding sessions: %w", err)
	}
	return s.set(ctx, keySessions, data)
}

// Profile returns the stored profile. The second return is false when no
// profile has been saved yet.
func (s *Store) Profile(ctx context.Context) (models.UserProfile, bool, error) {
	var profile models.UserProfile
	data, ok, err := s.get(ctx, keyProfile)
	if err != nil || !ok {
		return profile, false, err
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, false, fmt.Errorf("decoding profile: %w", err)
	}
	return profile, true, nil
}

// SetProfile replaces the stored profile.
func (s *Store) SetProfile(ctx context.Context, profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return s.set(ctx, keyProfile, data)
}

// Bookmarks returns the stored bookmarked workout ids.
func (s *Store) Bookmarks(ctx context.Context) ([]string, error) {
	data, ok, err := s.get(ctx, keyBookmarks)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decoding bookmarks: %w", err)
	}
	return ids, nil
}

// SetBookmarks replaces the stored bookmark list.
func (s *Store) SetBookmarks(ctx context.Context, ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encoding bookmarks: %w", err)
	}
	return s.set(ctx, keyBookmarks, data)
}
