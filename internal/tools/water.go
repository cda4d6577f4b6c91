package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"pulse/internal/analytics"
	"pulse/internal/store"
)

// LogWaterTool handles the log_water MCP tool.
// Water intake accumulates per calendar day: logging adds to the day's
// running total, it never replaces it.
type LogWaterTool struct {
	store  *store.Store
	policy analytics.Policy
}

// NewLogWaterTool creates a LogWaterTool with its dependencies.
func NewLogWaterTool(s *store.Store, p analytics.Policy) *LogWaterTool {
	return &LogWaterTool{store: s, policy: p}
}

// Definition returns the MCP tool definition for registration.
func (t *LogWaterTool) Definition() mcp.Tool {
	return mcp.NewTool("log_water",
		mcp.WithDescription(
			"Log water intake in liters. Amounts accumulate per day and the "+
				"day's hydration status is reported back.",
		),
		mcp.WithNumber("amount_liters",
			mcp.Required(),
			mcp.Description("Liters to add to the day's total (non-negative)"),
		),
		mcp.WithString("date",
			mcp.Description("Day to log against (YYYY-MM-DD). Defaults to today."),
		),
	)
}

// Handle processes the log_water tool call.
func (t *LogWaterTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	amount := floatArg(req, "amount_liters", -1)
	if amount < 0 {
		return mcp.NewToolResultError("'amount_liters' is required and must be non-negative"), nil
	}
	day := strings.TrimSpace(req.GetString("date", ""))
	if day == "" {
		day = timeNow().Format(store.DayLayout)
	}

	total, err := t.store.LogWater(ctx, day, amount)
	if err != nil {
		return nil, fmt.Errorf("logging water: %w", err)
	}

	status := analytics.HydrationStatus(t.policy, total)
	response := fmt.Sprintf(
		"# Hydration\n\n**Date:** %s\n**Total today:** %.2f L\n**Status:** %s",
		day, total, status,
	)
	return mcp.NewToolResultText(response), nil
}
