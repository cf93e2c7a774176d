package analytics

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/nshant/revise/internal/srs"
)

// UnknownCategory is the display name used when a category cannot be
// resolved during enrichment.
const UnknownCategory = "Unknown Category"

// QuestionInfo is the question content joined into a WeakSpot.
type QuestionInfo struct {
	ID     string
	Prompt string
}

// WeakSpot is an ephemeral ranking view: a weak record's derived stats
// joined with question content and a display category name.
type WeakSpot struct {
	QuestionID    string    `json:"question_id"`
	Prompt        string    `json:"prompt"`
	CategoryName  string    `json:"category_name"`
	Accuracy      float64   `json:"accuracy"`
	Attempts      int       `json:"attempts"`
	LastAttempted time.Time `json:"last_attempted"`
}

// RankWeakSpots filters records to weak spots, enriches them through the
// lookups, and returns up to limit entries ordered worst accuracy first.
// Records whose question cannot be resolved are silently dropped: a
// partial list beats failing the whole computation. The sort is stable,
// so ties keep their input order.
func RankWeakSpots(
	records []srs.PerformanceRecord,
	question func(questionID string) (QuestionInfo, bool),
	categoryName func(categoryID string) (string, bool),
	limit int,
) []WeakSpot {
	weak := lo.Filter(records, func(r srs.PerformanceRecord, _ int) bool {
		return srs.IsWeakSpot(r)
	})

	spots := make([]WeakSpot, 0, len(weak))
	for _, r := range weak {
		q, ok := question(r.QuestionID)
		if !ok {
			continue
		}
		name, ok := categoryName(r.CategoryID)
		if !ok || name == "" {
			name = UnknownCategory
		}
		spots = append(spots, WeakSpot{
			QuestionID:    r.QuestionID,
			Prompt:        q.Prompt,
			CategoryName:  name,
			Accuracy:      srs.Accuracy(r),
			Attempts:      r.TotalAttempts,
			LastAttempted: r.LastReviewed,
		})
	}

	sort.SliceStable(spots, func(i, j int) bool {
		return spots[i].Accuracy < spots[j].Accuracy
	})

	if limit >= 0 && len(spots) > limit {
		spots = spots[:limit]
	}
	return spots
}
