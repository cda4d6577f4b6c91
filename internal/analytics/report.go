package analytics

import (
	"math"

	"pulse/internal/store"
)

// Report is the productivity summary derived from the current task snapshot.
type Report struct {
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	PendingTasks   int     `json:"pending_tasks"`
	TotalPoints    int     `json:"total_points"`
	CompletionRate float64 `json:"completion_rate"`
	Level          string  `json:"level"`
}

// BuildReport partitions tasks into completed/pending, sums points over
// completed tasks only, and derives the completion rate and level title.
// An empty snapshot yields a zeroed report with the default level, never
// an error.
func BuildReport(p Policy, tasks []store.Task) Report {
	r := Report{TotalTasks: len(tasks)}
	for _, t := range tasks {
		if t.Status == store.StatusCompleted {
			r.CompletedTasks++
			r.TotalPoints += t.Points
		}
	}
	r.PendingTasks = r.TotalTasks - r.CompletedTasks
	if r.TotalTasks > 0 {
		r.CompletionRate = round2(float64(r.CompletedTasks) / float64(r.TotalTasks) * 100)
	}
	r.Level = LevelFor(p, r.TotalPoints)
	return r
}

// LevelFor returns the title of the highest level tier whose threshold
// the point total meets, or the policy default below the lowest tier.
func LevelFor(p Policy, points int) string {
	for i := len(p.Levels) - 1; i >= 0; i-- {
		if points >= p.Levels[i].MinPoints {
			return p.Levels[i].Label
		}
	}
	return p.DefaultLevel
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
