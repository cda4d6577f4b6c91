// Package analytics derives streaks, point totals, levels, badges, and
// burnout risk from snapshots of the task and wellness stores.
//
// Every function here is pure: it consumes a snapshot plus a Policy and
// returns a value, mutating nothing. All thresholds live in the Policy as
// ordered (threshold, label) tables so a deployment can retune scoring
// and tiers without touching code.
package analytics

// RiskLevel is the coarse burnout/workload classification.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// Tier maps a minimum point total to a level title. Tables are kept in
// ascending threshold order and evaluated highest-first.
type Tier struct {
	MinPoints int    `json:"min_points" validate:"gte=0"`
	Label     string `json:"label" validate:"required"`
}

// BadgeRule unlocks a badge when both minimums are met. Rules are
// independent: several badges can unlock at once.
type BadgeRule struct {
	MinPoints int    `json:"min_points" validate:"gte=0"`
	MinStreak int    `json:"min_streak" validate:"gte=0"`
	Name      string `json:"name" validate:"required"`
}

// WorkloadTier classifies summed pending hours. Ascending order,
// evaluated highest-first; the zero-threshold tier is the floor.
type WorkloadTier struct {
	MinHours   float64   `json:"min_hours" validate:"gte=0"`
	Risk       RiskLevel `json:"risk" validate:"required,oneof=Low Moderate High"`
	Suggestion string    `json:"suggestion" validate:"required"`
}

// BurnoutPolicy holds the extended burnout score weights and cutoffs:
// score = pending*PendingWeight - avgSleep*SleepWeight - avgMood*MoodWeight.
type BurnoutPolicy struct {
	PendingWeight float64 `json:"pending_weight" validate:"gte=0"`
	SleepWeight   float64 `json:"sleep_weight" validate:"gte=0"`
	MoodWeight    float64 `json:"mood_weight" validate:"gte=0"`
	HighAbove     float64 `json:"high_above"`
	ModerateAbove float64 `json:"moderate_above"`
}

// Policy bundles every tunable constant of the analytics engine. The
// historical deployments of this companion differed only in these
// numbers, so each variant is a Policy value, not a reimplementation.
type Policy struct {
	// Scoring: points = trunc(durationHours * BaseRate) + bonuses.
	BaseRate          int    `json:"base_rate" validate:"min=1"`
	HighPriorityBonus int    `json:"high_priority_bonus" validate:"gte=0"`
	CategoryBonus     int    `json:"category_bonus" validate:"gte=0"`
	BonusCategory     string `json:"bonus_category"`

	Levels        []Tier         `json:"levels" validate:"min=1,dive"`
	DefaultLevel  string         `json:"default_level" validate:"required"`
	Badges        []BadgeRule    `json:"badges" validate:"min=1,dive"`
	FallbackBadge string         `json:"fallback_badge" validate:"required"`
	Workload      []WorkloadTier `json:"workload" validate:"min=1,dive"`
	Burnout       BurnoutPolicy  `json:"burnout"`

	// HydrationTarget is the daily liters above which hydration is
	// considered excellent.
	HydrationTarget float64 `json:"hydration_target" validate:"gt=0"`
}

// DefaultPolicy returns the stock companion policy.
func DefaultPolicy() Policy {
	return Policy{
		BaseRate:          10,
		HighPriorityBonus: 5,
		CategoryBonus:     0,
		BonusCategory:     "Exercise",
		Levels: []Tier{
			{MinPoints: 50, Label: "Apprentice"},
			{MinPoints: 150, Label: "Achiever"},
			{MinPoints: 300, Label: "Expert"},
			{MinPoints: 500, Label: "Productivity Master"},
		},
		DefaultLevel: "Beginner",
		Badges: []BadgeRule{
			{MinPoints: 50, Name: "Rookie Productivity"},
			{MinPoints: 100, Name: "Pro Productivity"},
			{MinStreak: 3, Name: "3-Day Consistency"},
			{MinStreak: 7, Name: "7-Day Discipline Master"},
		},
		FallbackBadge: "Keep progressing to unlock achievements",
		Workload: []WorkloadTier{
			{MinHours: 0, Risk: RiskLow, Suggestion: "Study load balanced"},
			{MinHours: 4, Risk: RiskModerate, Suggestion: "Take a short 5-10 minute break between tasks"},
			{MinHours: 8, Risk: RiskHigh, Suggestion: "Heavy pending load: split work into blocks and schedule real rest"},
		},
		Burnout: BurnoutPolicy{
			PendingWeight: 2,
			SleepWeight:   1.5,
			MoodWeight:    1,
			HighAbove:     10,
			ModerateAbove: 5,
		},
		HydrationTarget: 2.5,
	}
}
