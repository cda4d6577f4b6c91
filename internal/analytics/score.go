package analytics

import "strings"

// Score computes the points for a task at creation time. The value is
// frozen on the task afterward; completion realizes it, never recomputes.
//
// points = trunc(durationHours * BaseRate) + priority bonus + category bonus.
// Truncation is toward zero, matching the historical behavior. Priority
// and category comparisons are case-insensitive.
func Score(p Policy, durationHours float64, priority, category string) int {
	points := int(durationHours * float64(p.BaseRate))
	if strings.EqualFold(priority, "high") {
		points += p.HighPriorityBonus
	}
	if p.CategoryBonus != 0 && strings.EqualFold(category, p.BonusCategory) {
		points += p.CategoryBonus
	}
	return points
}
