package analytics

import "pulse/internal/store"

// BreakAdvice is the simple, workload-only classification: pending hours
// against the policy's workload ladder.
type BreakAdvice struct {
	PendingHours float64   `json:"pending_hours"`
	Risk         RiskLevel `json:"risk"`
	Suggestion   string    `json:"suggestion"`
}

// BurnoutAssessment is the extended classification combining pending
// workload with average sleep and mood.
type BurnoutAssessment struct {
	PendingHours  float64   `json:"pending_hours"`
	AvgSleepHours float64   `json:"avg_sleep_hours"`
	AvgMoodScore  float64   `json:"avg_mood_score"`
	Score         float64   `json:"score"`
	Risk          RiskLevel `json:"risk"`
	Suggestion    string    `json:"suggestion"`
}

// PendingHours sums duration over pending tasks.
func PendingHours(tasks []store.Task) float64 {
	var hours float64
	for _, t := range tasks {
		if t.Status == store.StatusPending {
			hours += t.DurationHours
		}
	}
	return hours
}

// SuggestBreaks classifies pending workload against the workload ladder,
// highest tier first.
func SuggestBreaks(p Policy, pendingHours float64) BreakAdvice {
	advice := BreakAdvice{PendingHours: pendingHours, Risk: RiskLow}
	for i := len(p.Workload) - 1; i >= 0; i-- {
		if pendingHours >= p.Workload[i].MinHours {
			advice.Risk = p.Workload[i].Risk
			advice.Suggestion = p.Workload[i].Suggestion
			return advice
		}
	}
	return advice
}

// AverageSleep is the arithmetic mean over all sleep entries, 0 when none
// exist. Missing logs are a neutral signal, not an error.
func AverageSleep(entries []store.SleepEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += e.Hours
	}
	return sum / float64(len(entries))
}

// AverageMood is the arithmetic mean over all mood entries, 0 when none exist.
func AverageMood(entries []store.MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += e.Score
	}
	return sum / float64(len(entries))
}

// AssessBurnout computes the extended burnout score
//
//	score = pending*PendingWeight - avgSleep*SleepWeight - avgMood*MoodWeight
//
// and classifies it against the policy cutoffs (> HighAbove is High,
// > ModerateAbove is Moderate, else Low).
func AssessBurnout(p Policy, pendingHours, avgSleep, avgMood float64) BurnoutAssessment {
	b := p.Burnout
	score := pendingHours*b.PendingWeight - avgSleep*b.SleepWeight - avgMood*b.MoodWeight

	a := BurnoutAssessment{
		PendingHours:  pendingHours,
		AvgSleepHours: round2(avgSleep),
		AvgMoodScore:  round2(avgMood),
		Score:         round2(score),
	}
	switch {
	case score > b.HighAbove:
		a.Risk = RiskHigh
		a.Suggestion = "High burnout risk: cut today's workload and prioritize sleep"
	case score > b.ModerateAbove:
		a.Risk = RiskModerate
		a.Suggestion = "Moderate burnout risk: schedule breaks and an earlier night"
	default:
		a.Risk = RiskLow
		a.Suggestion = "Burnout risk is low: keep your current rhythm"
	}
	return a
}
