package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"pulse/internal/analytics"
	"pulse/internal/store"
)

// StreakTool handles the streak MCP tool.
type StreakTool struct {
	store *store.Store
}

// NewStreakTool creates a StreakTool with the given store.
func NewStreakTool(s *store.Store) *StreakTool {
	return &StreakTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *StreakTool) Definition() mcp.Tool {
	return mcp.NewTool("streak",
		mcp.WithDescription(
			"Show the current streak: consecutive calendar days ending today "+
				"with at least one completed task.",
		),
	)
}

// Handle processes the streak tool call.
func (t *StreakTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tasks, err := t.store.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	days := analytics.Streak(tasks, timeNow())

	var response string
	switch {
	case days == 0:
		response = "**Current streak:** 0 days\n\nComplete a task today to start a streak."
	case days == 1:
		response = "**Current streak:** 1 day\n\nCome back tomorrow to keep it going."
	default:
		response = fmt.Sprintf("**Current streak:** %d days 🔥", days)
	}
	return mcp.NewToolResultText(response), nil
}
