package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReviewPrompt handles the weekly-review MCP prompt.
// It instructs the AI to pull the full analytics picture and present it.
type ReviewPrompt struct{}

// NewReviewPrompt creates a ReviewPrompt.
func NewReviewPrompt() *ReviewPrompt {
	return &ReviewPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ReviewPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("weekly-review",
		mcp.WithPromptDescription(
			"Review the week: productivity report, achievements, goal progress, "+
				"and burnout risk, with suggestions for next week.",
		),
	)
}

// Handle processes the weekly-review prompt request.
func (p *ReviewPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Weekly Review",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please run my weekly review.\n\n" +
						"1. Call `productivity_report`, `achievements`, and `goal_progress`\n" +
						"2. Call `burnout_risk` and flag anything concerning\n" +
						"3. Summarize the week in a few sentences: what went well, what slipped\n" +
						"4. Suggest 2-3 adjustments for next week based on the numbers",
				),
			},
		},
	}, nil
}
