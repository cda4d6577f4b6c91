package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"pulse/internal/store"
)

// ListTasksTool handles the list_tasks MCP tool.
type ListTasksTool struct {
	store *store.Store
}

// NewListTasksTool creates a ListTasksTool with the given store.
func NewListTasksTool(s *store.Store) *ListTasksTool {
	return &ListTasksTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *ListTasksTool) Definition() mcp.Tool {
	return mcp.NewTool("list_tasks",
		mcp.WithDescription("List every task in creation order, with status, points, and metadata."),
	)
}

// Handle processes the list_tasks tool call.
func (t *ListTasksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tasks, err := t.store.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	if len(tasks) == 0 {
		return mcp.NewToolResultText("No tasks yet. Add one with `add_task`."), nil
	}

	completed := 0
	var sb strings.Builder
	sb.WriteString("# Tasks\n\n")
	for _, task := range tasks {
		sb.WriteString(formatTask(task))
		sb.WriteString("\n")
		if task.Status == store.StatusCompleted {
			completed++
		}
	}
	fmt.Fprintf(&sb, "\n%d total, %d completed, %d pending\n",
		len(tasks), completed, len(tasks)-completed)

	return mcp.NewToolResultText(sb.String()), nil
}

// PendingTasksTool handles the pending_tasks MCP tool.
type PendingTasksTool struct {
	store *store.Store
}

// NewPendingTasksTool creates a PendingTasksTool with the given store.
func NewPendingTasksTool(s *store.Store) *PendingTasksTool {
	return &PendingTasksTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *PendingTasksTool) Definition() mcp.Tool {
	return mcp.NewTool("pending_tasks",
		mcp.WithDescription("List only the tasks that are still pending, in creation order."),
	)
}

// Handle processes the pending_tasks tool call.
func (t *PendingTasksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tasks, err := t.store.ListPendingTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pending tasks: %w", err)
	}

	if len(tasks) == 0 {
		return mcp.NewToolResultText("Nothing pending, all caught up."), nil
	}

	var hours float64
	var sb strings.Builder
	sb.WriteString("# Pending Tasks\n\n")
	for _, task := range tasks {
		sb.WriteString(formatTask(task))
		sb.WriteString("\n")
		hours += task.DurationHours
	}
	fmt.Fprintf(&sb, "\n%d pending, %.1fh of work queued\n", len(tasks), hours)

	return mcp.NewToolResultText(sb.String()), nil
}
