package analytics

// GoalProgress is a goal's derived completion state.
type GoalProgress struct {
	Title           string  `json:"title"`
	Category        string  `json:"category"`
	TargetHours     float64 `json:"target_hours"`
	CompletedHours  float64 `json:"completed_hours"`
	ProgressPercent float64 `json:"progress_percent"`
}

// ProgressFor derives a goal's progress from its recomputed completed
// hours. A zero (or negative) target reports 0% rather than dividing by
// zero; the progress is otherwise completed/target*100 rounded to two
// decimals and is not capped at 100.
func ProgressFor(title, category string, targetHours, completedHours float64) GoalProgress {
	g := GoalProgress{
		Title:          title,
		Category:       category,
		TargetHours:    targetHours,
		CompletedHours: completedHours,
	}
	if targetHours > 0 {
		g.ProgressPercent = round2(completedHours / targetHours * 100)
	}
	return g
}
