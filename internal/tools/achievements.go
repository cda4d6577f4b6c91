package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"pulse/internal/analytics"
	"pulse/internal/store"
)

// AchievementsTool handles the achievements MCP tool.
type AchievementsTool struct {
	store  *store.Store
	policy analytics.Policy
}

// NewAchievementsTool creates an AchievementsTool with its dependencies.
func NewAchievementsTool(s *store.Store, p analytics.Policy) *AchievementsTool {
	return &AchievementsTool{store: s, policy: p}
}

// Definition returns the MCP tool definition for registration.
func (t *AchievementsTool) Definition() mcp.Tool {
	return mcp.NewTool("achievements",
		mcp.WithDescription(
			"Show current points, streak, and every badge unlocked by "+
				"points or streak thresholds.",
		),
	)
}

// Handle processes the achievements tool call.
func (t *AchievementsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tasks, err := t.store.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	report := analytics.BuildReport(t.policy, tasks)
	streak := analytics.Streak(tasks, timeNow())
	a := analytics.EvaluateAchievements(t.policy, report.TotalPoints, streak)

	var sb strings.Builder
	sb.WriteString("# Achievements\n\n")
	fmt.Fprintf(&sb, "- **Points:** %d\n", a.CurrentPoints)
	fmt.Fprintf(&sb, "- **Streak:** %d days\n\n", a.CurrentStreak)
	sb.WriteString("## Badges\n\n")
	for _, badge := range a.UnlockedBadges {
		fmt.Fprintf(&sb, "- 🏆 %s\n", badge)
	}

	return mcp.NewToolResultText(sb.String()), nil
}
