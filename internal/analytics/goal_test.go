package analytics

import "testing"

func TestProgressFor(t *testing.T) {
	tests := []struct {
		name      string
		target    float64
		completed float64
		want      float64
	}{
		{"halfway", 10, 5, 50},
		{"rounds to two decimals", 3, 1, 33.33},
		{"over target is not capped", 10, 15, 150},
		{"zero target reads as zero percent", 0, 5, 0},
		{"nothing completed", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ProgressFor("g", "Study", tt.target, tt.completed)
			if g.ProgressPercent != tt.want {
				t.Errorf("ProgressPercent = %v, want %v", g.ProgressPercent, tt.want)
			}
		})
	}
}

func TestHydrationStatus(t *testing.T) {
	p := DefaultPolicy()

	if got := HydrationStatus(p, 2.5); got != "Excellent hydration" {
		t.Errorf("at target = %q, want Excellent hydration", got)
	}
	if got := HydrationStatus(p, 2.49); got != "Drink more water" {
		t.Errorf("below target = %q, want Drink more water", got)
	}
}
