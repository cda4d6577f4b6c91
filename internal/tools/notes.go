package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// GenerateNotesTool handles the generate_notes MCP tool. It produces a
// fixed study-notes skeleton for a topic. Pure templating, no stored state.
type GenerateNotesTool struct{}

// NewGenerateNotesTool creates a GenerateNotesTool.
func NewGenerateNotesTool() *GenerateNotesTool {
	return &GenerateNotesTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *GenerateNotesTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_notes",
		mcp.WithDescription("Generate a structured study-notes outline for a topic."),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("The topic to outline, e.g. 'Binary search trees'"),
		),
	)
}

// Handle processes the generate_notes tool call.
func (t *GenerateNotesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := strings.TrimSpace(req.GetString("topic", ""))
	if topic == "" {
		return mcp.NewToolResultError("'topic' is required"), nil
	}

	response := fmt.Sprintf(
		"# %s\n\n"+
			"## Introduction\n\nOverview of %s.\n\n"+
			"## Core Concepts\n\n- Key principles\n- Important terminology\n- Foundational rules\n\n"+
			"## Applications\n\n- Real-world use cases\n- Implementation scenarios\n\n"+
			"## Common Mistakes\n\n- Conceptual misunderstandings\n- Incorrect implementation patterns\n\n"+
			"## Revision Points\n\n- Quick recap\n- Exam-focused highlights\n",
		topic, topic,
	)
	return mcp.NewToolResultText(response), nil
}
