package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"pulse/internal/store"
)

// LogSleepTool handles the log_sleep MCP tool. Sleep entries feed the
// extended burnout assessment.
type LogSleepTool struct {
	store *store.Store
}

// NewLogSleepTool creates a LogSleepTool with the given store.
func NewLogSleepTool(s *store.Store) *LogSleepTool {
	return &LogSleepTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *LogSleepTool) Definition() mcp.Tool {
	return mcp.NewTool("log_sleep",
		mcp.WithDescription(
			"Log hours slept for a night. Entries are append-only and feed "+
				"the average used by burnout_risk.",
		),
		mcp.WithNumber("hours",
			mcp.Required(),
			mcp.Description("Hours slept (non-negative, fractions allowed)"),
		),
		mcp.WithString("date",
			mcp.Description("Day the night belongs to (YYYY-MM-DD). Defaults to today."),
		),
	)
}

// Handle processes the log_sleep tool call.
func (t *LogSleepTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hours := floatArg(req, "hours", -1)
	if hours < 0 {
		return mcp.NewToolResultError("'hours' is required and must be non-negative"), nil
	}
	day := strings.TrimSpace(req.GetString("date", ""))

	entry, err := t.store.LogSleep(ctx, day, hours)
	if err != nil {
		return nil, fmt.Errorf("logging sleep: %w", err)
	}

	response := fmt.Sprintf("Sleep logged: **%.1fh** on %s.", entry.Hours, entry.Day)
	return mcp.NewToolResultText(response), nil
}
