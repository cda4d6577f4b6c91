package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"pulse/internal/analytics"
	"pulse/internal/store"
)

// AddTaskTool handles the add_task MCP tool.
// Points are computed once here, at creation time, and stored immutably
// on the task; completing the task later never recomputes them.
type AddTaskTool struct {
	store  *store.Store
	policy analytics.Policy
}

// NewAddTaskTool creates an AddTaskTool with its dependencies.
func NewAddTaskTool(s *store.Store, p analytics.Policy) *AddTaskTool {
	return &AddTaskTool{store: s, policy: p}
}

// Definition returns the MCP tool definition for registration.
func (t *AddTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("add_task",
		mcp.WithDescription(
			"Add a new task. Points are assigned immediately from the duration, "+
				"priority, and category, and are earned when the task is completed.",
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Short task title, e.g. 'Read chapter 4'"),
		),
		mcp.WithNumber("duration_hours",
			mcp.Required(),
			mcp.Description("Estimated duration in hours (non-negative, fractions allowed)"),
		),
		mcp.WithString("category",
			mcp.Description("Task category, e.g. Study, Work, Exercise. Defaults to Study."),
		),
		mcp.WithString("priority",
			mcp.Description("Task priority: High, Medium, or Low. Defaults to Medium. "+
				"High priority earns a bonus."),
		),
		mcp.WithString("due_date",
			mcp.Description("Optional due date (YYYY-MM-DD). Informational only."),
		),
	)
}

// Handle processes the add_task tool call.
func (t *AddTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := strings.TrimSpace(req.GetString("title", ""))
	if title == "" {
		return mcp.NewToolResultError("'title' is required"), nil
	}

	duration := floatArg(req, "duration_hours", -1)
	if duration < 0 {
		return mcp.NewToolResultError("'duration_hours' is required and must be non-negative"), nil
	}

	category := strings.TrimSpace(req.GetString("category", ""))
	if category == "" {
		category = "Study"
	}
	priority := strings.TrimSpace(req.GetString("priority", ""))
	if priority == "" {
		priority = "Medium"
	}
	dueDate := strings.TrimSpace(req.GetString("due_date", ""))

	points := analytics.Score(t.policy, duration, priority, category)

	task, err := t.store.AddTask(ctx, store.AddTaskParams{
		Title:         title,
		Category:      category,
		Priority:      priority,
		DurationHours: duration,
		DueDate:       dueDate,
		Points:        points,
	})
	if err != nil {
		return nil, fmt.Errorf("adding task: %w", err)
	}

	response := fmt.Sprintf(
		"# Task Added\n\n"+
			"**ID:** %d\n"+
			"**Title:** %s\n"+
			"**Category:** %s\n"+
			"**Priority:** %s\n"+
			"**Duration:** %.1fh\n"+
			"**Points assigned:** %d\n\n"+
			"Complete it with `complete_task` to earn the points.",
		task.ID, task.Title, task.Category, task.Priority, task.DurationHours, task.Points,
	)
	return mcp.NewToolResultText(response), nil
}
