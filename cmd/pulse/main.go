// Pulse: Productivity & Wellness Companion MCP Server
//
// A universal MCP server that integrates with any AI tool (Claude Code,
// OpenCode, Gemini CLI, Cursor, VS Code Copilot) to track tasks, points,
// streaks, hydration, mood, and sleep, and to surface burnout risk.
//
// Usage:
//
//	pulse serve                  # Start MCP server (stdio transport)
//	pulse serve --http :8000     # Start MCP server (streamable HTTP)
//	pulse --version              # Print version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	mcpserver "github.com/mark3labs/mcp-go/server"

	pulseserver "pulse/internal/server"
)

var cli struct {
	Version kong.VersionFlag `help:"Print version and exit."`

	Serve serveCmd `cmd:"" default:"1" help:"Start the MCP server."`
}

type serveCmd struct {
	HTTP string `help:"Serve MCP over streamable HTTP on this address instead of stdio." placeholder:"ADDR"`
}

func (c *serveCmd) Run() error {
	s, cleanup, err := pulseserver.New()
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	if c.HTTP != "" {
		httpServer := mcpserver.NewStreamableHTTPServer(s)

		// Graceful shutdown on interrupt for the HTTP transport.
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigCh
			_ = httpServer.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "pulse: serving MCP over HTTP on %s\n", c.HTTP)
		return httpServer.Start(c.HTTP)
	}

	// stdio: the transport owns stdout, so nothing else may print there.
	return mcpserver.ServeStdio(s)
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("pulse"),
		kong.Description("Productivity & wellness companion MCP server: tasks, points, streaks, hydration, mood, sleep, and burnout risk."),
		kong.UsageOnError(),
		kong.Vars{"version": "pulse v" + pulseserver.Version},
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
