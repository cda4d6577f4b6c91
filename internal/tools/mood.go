package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"pulse/internal/store"
)

// LogMoodTool handles the log_mood MCP tool. Mood entries feed the
// extended burnout assessment.
type LogMoodTool struct {
	store *store.Store
}

// NewLogMoodTool creates a LogMoodTool with the given store.
func NewLogMoodTool(s *store.Store) *LogMoodTool {
	return &LogMoodTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *LogMoodTool) Definition() mcp.Tool {
	return mcp.NewTool("log_mood",
		mcp.WithDescription(
			"Log a mood check-in on a 1-10 scale. Entries are append-only; "+
				"several check-ins a day all count toward the average used by burnout_risk.",
		),
		mcp.WithNumber("score",
			mcp.Required(),
			mcp.Description("Mood score from 1 (rough) to 10 (great)"),
		),
		mcp.WithString("date",
			mcp.Description("Day of the check-in (YYYY-MM-DD). Defaults to today."),
		),
	)
}

// Handle processes the log_mood tool call.
func (t *LogMoodTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	score := floatArg(req, "score", -1)
	if score < 0 {
		return mcp.NewToolResultError("'score' is required and must be non-negative"), nil
	}
	day := strings.TrimSpace(req.GetString("date", ""))

	entry, err := t.store.LogMood(ctx, day, score)
	if err != nil {
		return nil, fmt.Errorf("logging mood: %w", err)
	}

	response := fmt.Sprintf("Mood logged: **%.1f/10** on %s.", entry.Score, entry.Day)
	return mcp.NewToolResultText(response), nil
}
