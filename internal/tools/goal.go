package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"pulse/internal/analytics"
	"pulse/internal/store"
)

// SetGoalTool handles the set_goal MCP tool.
type SetGoalTool struct {
	store *store.Store
}

// NewSetGoalTool creates a SetGoalTool with the given store.
func NewSetGoalTool(s *store.Store) *SetGoalTool {
	return &SetGoalTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *SetGoalTool) Definition() mcp.Tool {
	return mcp.NewTool("set_goal",
		mcp.WithDescription(
			"Create or replace a goal: a target number of hours for a task "+
				"category. Progress is recomputed from completed tasks on every read.",
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Goal title (unique key), e.g. 'Spring fitness'"),
		),
		mcp.WithNumber("target_hours",
			mcp.Required(),
			mcp.Description("Target hours of completed work in the category"),
		),
		mcp.WithString("category",
			mcp.Description("Task category counted toward this goal. Defaults to the title."),
		),
	)
}

// Handle processes the set_goal tool call.
func (t *SetGoalTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := strings.TrimSpace(req.GetString("title", ""))
	if title == "" {
		return mcp.NewToolResultError("'title' is required"), nil
	}
	target := floatArg(req, "target_hours", -1)
	if target < 0 {
		return mcp.NewToolResultError("'target_hours' is required and must be non-negative"), nil
	}
	category := strings.TrimSpace(req.GetString("category", ""))
	if category == "" {
		category = title
	}

	goal, err := t.store.SetGoal(ctx, title, category, target)
	if err != nil {
		return nil, fmt.Errorf("setting goal: %w", err)
	}

	response := fmt.Sprintf(
		"# Goal Set\n\n**%s**: %.1fh of completed %s tasks.\n\n"+
			"Track it with `goal_progress`.",
		goal.Title, goal.TargetHours, goal.Category,
	)
	return mcp.NewToolResultText(response), nil
}

// GoalProgressTool handles the goal_progress MCP tool.
type GoalProgressTool struct {
	store *store.Store
}

// NewGoalProgressTool creates a GoalProgressTool with the given store.
func NewGoalProgressTool(s *store.Store) *GoalProgressTool {
	return &GoalProgressTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *GoalProgressTool) Definition() mcp.Tool {
	return mcp.NewTool("goal_progress",
		mcp.WithDescription(
			"Show goal progress: completed hours per goal category against "+
				"the target, as a percentage. A zero-hour target reads as 0%.",
		),
		mcp.WithString("title",
			mcp.Description("Show a single goal by title. Omit for all goals."),
		),
	)
}

// Handle processes the goal_progress tool call.
func (t *GoalProgressTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goals, err := t.store.ListGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}

	if title := strings.TrimSpace(req.GetString("title", "")); title != "" {
		filtered := goals[:0]
		for _, g := range goals {
			if strings.EqualFold(g.Title, title) {
				filtered = append(filtered, g)
			}
		}
		if len(filtered) == 0 {
			return mcp.NewToolResultError(fmt.Sprintf("Goal %q not found", title)), nil
		}
		goals = filtered
	}

	if len(goals) == 0 {
		return mcp.NewToolResultText("No goals yet. Create one with `set_goal`."), nil
	}

	var sb strings.Builder
	sb.WriteString("# Goal Progress\n\n")
	for _, g := range goals {
		completed, err := t.store.CompletedHoursByCategory(ctx, g.Category)
		if err != nil {
			return nil, fmt.Errorf("computing completed hours: %w", err)
		}
		p := analytics.ProgressFor(g.Title, g.Category, g.TargetHours, completed)
		fmt.Fprintf(&sb, "- **%s** (%s): %.1f / %.1fh (%.2f%%)\n",
			p.Title, p.Category, p.CompletedHours, p.TargetHours, p.ProgressPercent)
	}

	return mcp.NewToolResultText(sb.String()), nil
}
