package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"pulse/internal/analytics"
	"pulse/internal/store"
)

// SuggestBreaksTool handles the suggest_breaks MCP tool: the simple,
// workload-only risk policy. The extended policy that also weighs sleep
// and mood lives in burnout_risk.
type SuggestBreaksTool struct {
	store  *store.Store
	policy analytics.Policy
}

// NewSuggestBreaksTool creates a SuggestBreaksTool with its dependencies.
func NewSuggestBreaksTool(s *store.Store, p analytics.Policy) *SuggestBreaksTool {
	return &SuggestBreaksTool{store: s, policy: p}
}

// Definition returns the MCP tool definition for registration.
func (t *SuggestBreaksTool) Definition() mcp.Tool {
	return mcp.NewTool("suggest_breaks",
		mcp.WithDescription(
			"Classify the pending workload (summed pending hours) into a "+
				"Low/Moderate/High tier with a break suggestion.",
		),
	)
}

// Handle processes the suggest_breaks tool call.
func (t *SuggestBreaksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pending, err := t.store.ListPendingTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pending tasks: %w", err)
	}

	advice := analytics.SuggestBreaks(t.policy, analytics.PendingHours(pending))

	response := fmt.Sprintf(
		"# Break Suggestion\n\n"+
			"- **Pending hours:** %.1f\n"+
			"- **Workload:** %s\n"+
			"- **Suggestion:** %s\n",
		advice.PendingHours, advice.Risk, advice.Suggestion,
	)
	return mcp.NewToolResultText(response), nil
}
