// Package mcp exposes training history and progress statistics to AI
// assistants over the Model Context Protocol.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("HoopLab", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("HoopLab basketball training companion. Query the workout catalog, the user's session history, and derived progress statistics (totals and current streak)."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetProgressStats, Handler: h.getProgressStats},
		server.ServerTool{Tool: toolGetSessionHistory, Handler: h.getSessionHistory},
		server.ServerTool{Tool: toolGetWorkoutCatalog, Handler: h.getWorkoutCatalog},
		server.ServerTool{Tool: toolGetProfile, Handler: h.getProfile},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resProgressSummary, Handler: h.progressSummary},
		server.ServerResource{Resource: resRecentSessions, Handler: h.recentSessions},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resProgressSummary = mcp.NewResource(
	"hooplab://progress_summary",
	"Progress Summary",
	mcp.WithResourceDescription("Headline progress stats: total workouts, total minutes trained, and the current consecutive-day streak"),
	mcp.WithMIMEType("application/json"),
)

var resRecentSessions = mcp.NewResource(
	"hooplab://recent_sessions",
	"Recent Sessions",
	mcp.WithResourceDescription("Workout sessions from the last 14 days"),
	mcp.WithMIMEType("application/json"),
)
