// Package resources implements MCP resource handlers for the companion.
//
// Resources provide read-only data the host can consume for context.
// They use URI-based addressing (pulse://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"pulse/internal/analytics"
	"pulse/internal/store"
)

// timeNow is a package-level variable for testability.
var timeNow = time.Now

// Handler manages the companion's resource endpoints.
type Handler struct {
	store  *store.Store
	policy analytics.Policy
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(s *store.Store, p analytics.Policy) *Handler {
	return &Handler{store: s, policy: p}
}

// reportDocument is the JSON shape served at pulse://report.
type reportDocument struct {
	Report       analytics.Report       `json:"report"`
	Achievements analytics.Achievements `json:"achievements"`
	GeneratedAt  string                 `json:"generated_at"`
}

// ReportResource returns the MCP resource definition for the live
// productivity report.
func (h *Handler) ReportResource() mcp.Resource {
	return mcp.NewResource(
		"pulse://report",
		"Productivity Report",
		mcp.WithResourceDescription("Current task totals, completion rate, level, streak, and badges"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleReport returns the current productivity report as JSON.
func (h *Handler) HandleReport(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	tasks, err := h.store.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	report := analytics.BuildReport(h.policy, tasks)
	streak := analytics.Streak(tasks, timeNow())
	doc := reportDocument{
		Report:       report,
		Achievements: analytics.EvaluateAchievements(h.policy, report.TotalPoints, streak),
		GeneratedAt:  timeNow().Format(store.TimestampLayout),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
