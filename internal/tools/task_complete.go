package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"pulse/internal/store"
)

// CompleteTaskTool handles the complete_task MCP tool.
// Completion is idempotent: re-completing an already-completed task
// reports that fact and leaves point totals untouched.
type CompleteTaskTool struct {
	store *store.Store
}

// NewCompleteTaskTool creates a CompleteTaskTool with the given store.
func NewCompleteTaskTool(s *store.Store) *CompleteTaskTool {
	return &CompleteTaskTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *CompleteTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("complete_task",
		mcp.WithDescription(
			"Mark a pending task as completed, earning its points. "+
				"Completing an already-completed task is a no-op.",
		),
		mcp.WithNumber("task_id",
			mcp.Required(),
			mcp.Description("The ID of the task to complete (from list_tasks)"),
		),
	)
}

// Handle processes the complete_task tool call.
func (t *CompleteTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := intArg(req, "task_id", 0)
	if id <= 0 {
		return mcp.NewToolResultError("'task_id' is required and must be a positive integer"), nil
	}

	task, err := t.store.CompleteTask(ctx, int64(id))
	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return mcp.NewToolResultError(fmt.Sprintf("Task %d not found", id)), nil
	case errors.Is(err, store.ErrTaskAlreadyCompleted):
		return mcp.NewToolResultText(fmt.Sprintf(
			"Task %d is already completed, points unchanged.", id)), nil
	case err != nil:
		return nil, fmt.Errorf("completing task: %w", err)
	}

	response := fmt.Sprintf(
		"# Task Completed\n\n**%s** is done.\n\n**Points earned:** %d\n\n"+
			"Check `productivity_report` for your updated totals and `achievements` for new badges.",
		task.Title, task.Points,
	)
	return mcp.NewToolResultText(response), nil
}
