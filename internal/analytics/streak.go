package analytics

import (
	"sort"
	"time"

	"pulse/internal/store"
)

// Streak returns the number of consecutive calendar days, counting
// backward from today, on which at least one task was completed.
//
// The streak is keyed off the *creation* date of completed tasks, not the
// completion date: a task created yesterday and completed today extends
// yesterday's streak, not today's.
//
// Rules: multiple completions on one day count once; any gap stops the
// walk; a day zero that isn't today yields a streak of 0.
func Streak(tasks []store.Task, today time.Time) int {
	seen := make(map[string]struct{})
	for _, t := range tasks {
		if t.Status == store.StatusCompleted {
			seen[t.CreatedDay()] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return 0
	}

	days := make([]string, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	streak := 0
	for i, day := range days {
		expected := today.AddDate(0, 0, -i).Format(store.DayLayout)
		if day != expected {
			break
		}
		streak++
	}
	return streak
}
