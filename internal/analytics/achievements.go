package analytics

// Achievements holds the badge evaluation result.
type Achievements struct {
	CurrentPoints  int      `json:"current_points"`
	CurrentStreak  int      `json:"current_streak"`
	UnlockedBadges []string `json:"unlocked_badges"`
}

// EvaluateAchievements unlocks every badge whose point and streak
// minimums are both met. Rules are independent, so crossing several
// thresholds unlocks several badges at once. When nothing is unlocked
// the fallback badge is returned as a sentinel; callers distinguish
// "nothing unlocked yet" only by that string.
func EvaluateAchievements(p Policy, points, streak int) Achievements {
	var badges []string
	for _, rule := range p.Badges {
		if points >= rule.MinPoints && streak >= rule.MinStreak {
			badges = append(badges, rule.Name)
		}
	}
	if len(badges) == 0 {
		badges = []string{p.FallbackBadge}
	}
	return Achievements{
		CurrentPoints:  points,
		CurrentStreak:  streak,
		UnlockedBadges: badges,
	}
}
