// Package prompts implements the MCP prompts for the companion.
//
// Prompts are canned conversation starters the host can offer the user;
// they instruct the AI which tools to call and how to present the result.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// CheckinPrompt handles the daily-checkin MCP prompt.
type CheckinPrompt struct{}

// NewCheckinPrompt creates a CheckinPrompt.
func NewCheckinPrompt() *CheckinPrompt {
	return &CheckinPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *CheckinPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("daily-checkin",
		mcp.WithPromptDescription(
			"Run a daily check-in: review pending work, streak, hydration, "+
				"and log today's mood and sleep.",
		),
	)
}

// Handle processes the daily-checkin prompt request.
func (p *CheckinPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Daily Check-in",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Let's do my daily check-in.\n\n" +
						"1. Call `pending_tasks` and `streak` and summarize where I stand\n" +
						"2. Ask me how I slept and how I'm feeling, then log it with `log_sleep` and `log_mood`\n" +
						"3. Ask how much water I've had so far and log it with `log_water`\n" +
						"4. Finish with `suggest_breaks` and one concrete recommendation for the day",
				),
			},
		},
	}, nil
}
