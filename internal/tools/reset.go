package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"pulse/internal/store"
)

// ClearAllTool handles the clear_all MCP tool.
type ClearAllTool struct {
	store *store.Store
}

// NewClearAllTool creates a ClearAllTool with the given store.
func NewClearAllTool(s *store.Store) *ClearAllTool {
	return &ClearAllTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *ClearAllTool) Definition() mcp.Tool {
	return mcp.NewTool("clear_all",
		mcp.WithDescription(
			"Delete all tasks, logs, and goals, and restart task IDs at 1. "+
				"This cannot be undone.",
		),
	)
}

// Handle processes the clear_all tool call.
func (t *ClearAllTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := t.store.Reset(ctx); err != nil {
		return nil, fmt.Errorf("clearing data: %w", err)
	}
	return mcp.NewToolResultText(
		"All tasks, logs, and goals cleared. Task IDs restart at 1.",
	), nil
}
