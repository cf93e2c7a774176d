package analytics

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/nshant/revise/internal/srs"
)

// SelectDue is the review-queue selection contract: records due at now,
// most urgent (earliest next-review) first, capped at limit. The storage
// layer executes the same ordering as an indexed range query; this is
// the in-memory form for callers that already hold a snapshot.
func SelectDue(records []srs.PerformanceRecord, now time.Time, limit int) []srs.PerformanceRecord {
	due := lo.Filter(records, func(r srs.PerformanceRecord, _ int) bool {
		return srs.IsDue(r, now)
	})

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].NextReview.Before(due[j].NextReview)
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due
}
