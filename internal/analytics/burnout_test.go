package analytics

import (
	"testing"

	"pulse/internal/store"
)

func TestPendingHours(t *testing.T) {
	tasks := []store.Task{
		{Status: store.StatusPending, DurationHours: 2.5},
		{Status: store.StatusCompleted, DurationHours: 4},
		{Status: store.StatusPending, DurationHours: 1},
	}
	if got := PendingHours(tasks); got != 3.5 {
		t.Errorf("PendingHours = %v, want 3.5", got)
	}
	if got := PendingHours(nil); got != 0 {
		t.Errorf("PendingHours(nil) = %v, want 0", got)
	}
}

func TestSuggestBreaks_Tiers(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		hours float64
		want  RiskLevel
	}{
		{0, RiskLow},
		{3.9, RiskLow},
		{4, RiskModerate},
		{7.9, RiskModerate},
		{8, RiskHigh},
		{40, RiskHigh},
	}

	for _, tt := range tests {
		advice := SuggestBreaks(p, tt.hours)
		if advice.Risk != tt.want {
			t.Errorf("SuggestBreaks(%v) risk = %s, want %s", tt.hours, advice.Risk, tt.want)
		}
		if advice.Suggestion == "" {
			t.Errorf("SuggestBreaks(%v) has empty suggestion", tt.hours)
		}
		if advice.PendingHours != tt.hours {
			t.Errorf("SuggestBreaks(%v) echoed %v pending hours", tt.hours, advice.PendingHours)
		}
	}
}

func TestAverages_EmptyLogsAreNeutral(t *testing.T) {
	if got := AverageSleep(nil); got != 0 {
		t.Errorf("AverageSleep(nil) = %v, want 0", got)
	}
	if got := AverageMood(nil); got != 0 {
		t.Errorf("AverageMood(nil) = %v, want 0", got)
	}
}

func TestAverages(t *testing.T) {
	sleep := []store.SleepEntry{{Hours: 6}, {Hours: 8}}
	if got := AverageSleep(sleep); got != 7 {
		t.Errorf("AverageSleep = %v, want 7", got)
	}

	mood := []store.MoodEntry{{Score: 4}, {Score: 5}, {Score: 9}}
	if got := AverageMood(mood); got != 6 {
		t.Errorf("AverageMood = %v, want 6", got)
	}
}

func TestAssessBurnout(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name     string
		pending  float64
		avgSleep float64
		avgMood  float64
		want     RiskLevel
		score    float64
	}{
		// score = pending*2 - sleep*1.5 - mood
		{"no data at all", 0, 0, 0, RiskLow, 0},
		{"rested and light load", 2, 8, 7, RiskLow, -15},
		{"moderate", 8, 5, 2, RiskModerate, 6.5},
		{"high", 10, 4, 3, RiskHigh, 11},
		{"boundary: exactly 10 is moderate", 5, 0, 0, RiskModerate, 10},
		{"boundary: exactly 5 is low", 2.5, 0, 0, RiskLow, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AssessBurnout(p, tt.pending, tt.avgSleep, tt.avgMood)
			if a.Risk != tt.want {
				t.Errorf("Risk = %s, want %s", a.Risk, tt.want)
			}
			if a.Score != tt.score {
				t.Errorf("Score = %v, want %v", a.Score, tt.score)
			}
			if a.Suggestion == "" {
				t.Error("Suggestion is empty")
			}
		})
	}
}
