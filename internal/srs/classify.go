package srs

import "time"

const (
	// WeakAccuracyThreshold is the accuracy (percent) below which a
	// question counts as a weak spot.
	WeakAccuracyThreshold = 50.0
	// WeakMinAttempts is how many attempts a record needs before it can
	// be classified as a weak spot at all.
	WeakMinAttempts = 2
)

// IsMastered reports whether the record's consecutive-correct streak has
// reached the mastery threshold.
func IsMastered(rec PerformanceRecord) bool {
	return rec.Repetitions >= MasteryThreshold
}

// Accuracy returns the record's lifetime accuracy in percent.
// A record with no attempts has accuracy 0.
func Accuracy(rec PerformanceRecord) float64 {
	if rec.TotalAttempts == 0 {
		return 0
	}
	return float64(rec.CorrectAttempts) / float64(rec.TotalAttempts) * 100
}

// IsWeakSpot reports whether the record is a persistent problem:
// sub-threshold accuracy over at least WeakMinAttempts attempts.
func IsWeakSpot(rec PerformanceRecord) bool {
	return Accuracy(rec) < WeakAccuracyThreshold && rec.TotalAttempts >= WeakMinAttempts
}

// IsDue reports whether the record's scheduled review moment has passed.
func IsDue(rec PerformanceRecord, now time.Time) bool {
	return !rec.NextReview.After(now)
}
