package analytics

// HydrationStatus classifies a day's cumulative liters against the
// policy's daily target.
func HydrationStatus(p Policy, liters float64) string {
	if liters >= p.HydrationTarget {
		return "Excellent hydration"
	}
	return "Drink more water"
}
