// Package tools implements the MCP tool handlers for the companion.
//
// Each tool follows the same pattern:
// - A struct with dependencies (store, policy) injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
//
// Handlers return domain problems as tool error results; the Go error
// return is reserved for infrastructure faults.
package tools

import (
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"pulse/internal/store"
)

// timeNow is a package-level variable for testability.
// Tests can replace this to control "today" in streak assertions.
var timeNow = time.Now

// floatArg extracts a numeric argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func floatArg(req mcp.CallToolRequest, key string, defaultVal float64) float64 {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return v
}

// intArg extracts an integer argument from a tool request.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// formatTask renders one task as a markdown checklist line.
func formatTask(t store.Task) string {
	marker := " "
	if t.Status == store.StatusCompleted {
		marker = "x"
	}
	line := fmt.Sprintf("- [%s] #%d %s: %s, %s priority, %.1fh, %d pts (created %s)",
		marker, t.ID, t.Title, t.Category, t.Priority, t.DurationHours, t.Points, t.CreatedDay())
	if t.DueDate != "" {
		line += fmt.Sprintf(", due %s", t.DueDate)
	}
	return line
}
