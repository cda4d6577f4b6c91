package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"pulse/internal/analytics"
	"pulse/internal/store"
)

// BurnoutRiskTool handles the burnout_risk MCP tool: the extended policy
// combining pending workload with average sleep and mood. Missing sleep
// or mood logs contribute 0 to the score, they are not an error.
type BurnoutRiskTool struct {
	store  *store.Store
	policy analytics.Policy
}

// NewBurnoutRiskTool creates a BurnoutRiskTool with its dependencies.
func NewBurnoutRiskTool(s *store.Store, p analytics.Policy) *BurnoutRiskTool {
	return &BurnoutRiskTool{store: s, policy: p}
}

// Definition returns the MCP tool definition for registration.
func (t *BurnoutRiskTool) Definition() mcp.Tool {
	return mcp.NewTool("burnout_risk",
		mcp.WithDescription(
			"Assess burnout risk from pending workload, average sleep, and "+
				"average mood. Returns a Low/Moderate/High tier with a suggestion.",
		),
	)
}

// Handle processes the burnout_risk tool call.
func (t *BurnoutRiskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pending, err := t.store.ListPendingTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pending tasks: %w", err)
	}
	sleep, err := t.store.SleepLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading sleep logs: %w", err)
	}
	mood, err := t.store.MoodLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading mood logs: %w", err)
	}

	a := analytics.AssessBurnout(
		t.policy,
		analytics.PendingHours(pending),
		analytics.AverageSleep(sleep),
		analytics.AverageMood(mood),
	)

	response := fmt.Sprintf(
		"# Burnout Risk\n\n"+
			"- **Pending hours:** %.1f\n"+
			"- **Avg sleep:** %.2fh\n"+
			"- **Avg mood:** %.2f/10\n"+
			"- **Score:** %.2f\n"+
			"- **Risk:** %s\n"+
			"- **Suggestion:** %s\n",
		a.PendingHours, a.AvgSleepHours, a.AvgMoodScore, a.Score, a.Risk, a.Suggestion,
	)
	return mcp.NewToolResultText(response), nil
}
