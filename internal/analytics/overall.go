package analytics

import "math"

// OverallStats rolls per-category analytics into global totals.
type OverallStats struct {
	TotalQuestions    int     `json:"total_questions"`
	TotalMastered     int     `json:"total_mastered"`
	TotalStruggling   int     `json:"total_struggling"`
	OverallAccuracy   float64 `json:"overall_accuracy"`   // one decimal
	MasteryPercentage int     `json:"mastery_percentage"` // rounded
}

// AggregateOverallStats sums category analytics into global totals. The
// overall accuracy is a question-weighted mean, so categories with more
// questions count more.
func AggregateOverallStats(list []CategoryAnalytics) OverallStats {
	var stats OverallStats
	var weighted float64

	for _, a := range list {
		stats.TotalQuestions += a.TotalQuestions
		stats.TotalMastered += a.MasteredQuestions
		stats.TotalStruggling += a.StrugglingQuestions
		weighted += a.AverageAccuracy * float64(a.TotalQuestions)
	}

	if stats.TotalQuestions > 0 {
		stats.OverallAccuracy = round1(weighted / float64(stats.TotalQuestions))
		stats.MasteryPercentage = int(math.Round(
			float64(stats.TotalMastered) / float64(stats.TotalQuestions) * 100))
	}
	return stats
}
