package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"pulse/internal/analytics"
	"pulse/internal/store"
)

// ReportTool handles the productivity_report MCP tool.
type ReportTool struct {
	store  *store.Store
	policy analytics.Policy
}

// NewReportTool creates a ReportTool with its dependencies.
func NewReportTool(s *store.Store, p analytics.Policy) *ReportTool {
	return &ReportTool{store: s, policy: p}
}

// Definition returns the MCP tool definition for registration.
func (t *ReportTool) Definition() mcp.Tool {
	return mcp.NewTool("productivity_report",
		mcp.WithDescription(
			"Summarize productivity: task counts, points earned, completion rate, and level.",
		),
	)
}

// Handle processes the productivity_report tool call.
func (t *ReportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tasks, err := t.store.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	r := analytics.BuildReport(t.policy, tasks)

	response := fmt.Sprintf(
		"# Productivity Report\n\n"+
			"- **Total tasks:** %d\n"+
			"- **Completed:** %d\n"+
			"- **Pending:** %d\n"+
			"- **Points earned:** %d\n"+
			"- **Completion rate:** %.2f%%\n"+
			"- **Level:** %s\n",
		r.TotalTasks, r.CompletedTasks, r.PendingTasks,
		r.TotalPoints, r.CompletionRate, r.Level,
	)
	return mcp.NewToolResultText(response), nil
}
