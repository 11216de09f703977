package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/hooplab/internal/models"
	"github.com/claude/hooplab/internal/progress"
)

// HTTPClient implements DataSource by calling the HoopLab REST API. Used
// for remote MCP mode where the binary runs locally (stdio) but data
// lives on the server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: *HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("httpclient: %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("httpclient: %s: decoding response: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) GetStats(ctx context.Context) (progress.Stats, error) {
	var stats progress.Stats
	err := c.get(ctx, "/api/v1/stats", &stats)
	return stats, err
}

func (c *HTTPClient) ListSessions(ctx context.Context) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	err := c.get(ctx, "/api/v1/sessions", &sessions)
	return sessions, err
}

func (c *HTTPClient) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	var workouts []models.Workout
	err := c.get(ctx, "/api/v1/workouts", &workouts)
	return workouts, err
}

func (c *HTTPClient) GetProfile(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile
	err := c.get(ctx, "/api/v1/profile", &profile)
	return profile, err
}
