// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it opens the store, loads the analytics
// policy, and injects both into the tools/prompts/resources that depend
// on them. No business logic lives here, only wiring.
package server

import (
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"pulse/internal/config"
	"pulse/internal/prompts"
	"pulse/internal/resources"
	"pulse/internal/store"
	"pulse/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts, and
// resources registered. This is the single place where dependencies are
// resolved.
//
// The returned cleanup function closes the store's database connection
// and must be called on shutdown (typically via defer). It is always
// non-nil and safe to call.
func New() (*server.MCPServer, func(), error) {
	// --- Create shared dependencies ---

	cfg := store.DefaultConfig()

	st, err := store.New(cfg)
	if err != nil {
		return nil, noop, fmt.Errorf("opening store: %w", err)
	}
	cleanup := func() {
		if err := st.Close(); err != nil {
			log.Printf("WARNING: store close: %v", err)
		}
	}

	policy, err := config.LoadPolicy(config.PolicyPath(cfg.DataDir))
	if err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("loading policy: %w", err)
	}

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"pulse",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register task tools ---

	addTask := tools.NewAddTaskTool(st, policy)
	s.AddTool(addTask.Definition(), addTask.Handle)

	listTasks := tools.NewListTasksTool(st)
	s.AddTool(listTasks.Definition(), listTasks.Handle)

	pendingTasks := tools.NewPendingTasksTool(st)
	s.AddTool(pendingTasks.Definition(), pendingTasks.Handle)

	completeTask := tools.NewCompleteTaskTool(st)
	s.AddTool(completeTask.Definition(), completeTask.Handle)

	// --- Register analytics tools ---

	report := tools.NewReportTool(st, policy)
	s.AddTool(report.Definition(), report.Handle)

	streak := tools.NewStreakTool(st)
	s.AddTool(streak.Definition(), streak.Handle)

	achievements := tools.NewAchievementsTool(st, policy)
	s.AddTool(achievements.Definition(), achievements.Handle)

	suggestBreaks := tools.NewSuggestBreaksTool(st, policy)
	s.AddTool(suggestBreaks.Definition(), suggestBreaks.Handle)

	burnoutRisk := tools.NewBurnoutRiskTool(st, policy)
	s.AddTool(burnoutRisk.Definition(), burnoutRisk.Handle)

	// --- Register wellness tools ---

	logWater := tools.NewLogWaterTool(st, policy)
	s.AddTool(logWater.Definition(), logWater.Handle)

	logMood := tools.NewLogMoodTool(st)
	s.AddTool(logMood.Definition(), logMood.Handle)

	logSleep := tools.NewLogSleepTool(st)
	s.AddTool(logSleep.Definition(), logSleep.Handle)

	// --- Register goal tools ---

	setGoal := tools.NewSetGoalTool(st)
	s.AddTool(setGoal.Definition(), setGoal.Handle)

	goalProgress := tools.NewGoalProgressTool(st)
	s.AddTool(goalProgress.Definition(), goalProgress.Handle)

	// --- Register utility tools ---

	notes := tools.NewGenerateNotesTool()
	s.AddTool(notes.Definition(), notes.Handle)

	clearAll := tools.NewClearAllTool(st)
	s.AddTool(clearAll.Definition(), clearAll.Handle)

	// --- Register prompts ---

	checkin := prompts.NewCheckinPrompt()
	s.AddPrompt(checkin.Definition(), checkin.Handle)

	review := prompts.NewReviewPrompt()
	s.AddPrompt(review.Definition(), review.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(st, policy)
	s.AddResource(resourceHandler.ReportResource(), resourceHandler.HandleReport)

	return s, cleanup, nil
}

// noop is a no-op cleanup function used when store init failed.
func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to use the companion effectively.
func serverInstructions() string {
	return `You have access to Pulse, a productivity and wellness companion MCP server.

## What Pulse tracks
- Tasks with categories, priorities, durations, and points assigned at creation
- Daily water intake, mood check-ins, and sleep logs
- Goals: target hours of completed work per task category

## Core workflow
1. Add work with add_task; points are assigned immediately from duration and priority
2. Mark work done with complete_task to earn the points
3. Review with productivity_report, streak, and achievements
4. Log wellness throughout the day: log_water, log_mood, log_sleep
5. Watch workload with suggest_breaks (pending hours only) and
   burnout_risk (pending hours + average sleep + average mood)

## Things to know
- The streak counts consecutive calendar days ending today with at least one
  completed task, keyed by the day the task was CREATED. Completing an old
  task extends the streak of its creation day, not today.
- Points are frozen at creation. Completing a task never recomputes them.
- complete_task is idempotent: completing a completed task changes nothing.
- Goal progress is recomputed from completed tasks on every read; a goal
  with a zero-hour target always reads as 0%.
- clear_all wipes everything and restarts task IDs at 1. Confirm with the
  user before calling it.

## Prompts
- daily-checkin: morning routine to review pending work and log sleep/mood/water
- weekly-review: full analytics review with suggestions

## Resources
- pulse://report: the live productivity report as JSON`
}
