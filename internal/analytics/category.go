// Package analytics reduces collections of performance records into the
// summary views that drive review selection: per-category rollups,
// global totals, weak-spot rankings, and the due queue. Everything here
// is a pure, single-pass computation over caller-supplied snapshots;
// reading the records out of storage is the caller's concern.
package analytics

import (
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/nshant/revise/internal/srs"
)

// CategoryAnalytics summarizes one user's standing in one category,
// recomputed on demand from a snapshot of records.
type CategoryAnalytics struct {
	CategoryID          string    `json:"category_id"`
	UserID              string    `json:"user_id"`
	TotalQuestions      int       `json:"total_questions"`
	MasteredQuestions   int       `json:"mastered_questions"`
	StrugglingQuestions int       `json:"struggling_questions"`
	AverageAccuracy     float64   `json:"average_accuracy"` // one decimal
	LastUpdated         time.Time `json:"last_updated"`
}

// BuildCategoryAnalytics rolls a category's records into a summary.
// totalQuestions is supplied by the caller: the records only cover
// questions the user has touched, not the category's full inventory.
func BuildCategoryAnalytics(categoryID, userID string, records []srs.PerformanceRecord, totalQuestions int, now time.Time) CategoryAnalytics {
	attempted := lo.Filter(records, func(r srs.PerformanceRecord, _ int) bool {
		return r.TotalAttempts > 0
	})

	var avg float64
	if len(attempted) > 0 {
		sum := lo.SumBy(attempted, func(r srs.PerformanceRecord) float64 {
			return srs.Accuracy(r)
		})
		avg = round1(sum / float64(len(attempted)))
	}

	return CategoryAnalytics{
		CategoryID:          categoryID,
		UserID:              userID,
		TotalQuestions:      totalQuestions,
		MasteredQuestions:   lo.CountBy(records, srs.IsMastered),
		StrugglingQuestions: lo.CountBy(records, srs.IsWeakSpot),
		AverageAccuracy:     avg,
		LastUpdated:         now,
	}
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
