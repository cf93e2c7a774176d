package srs

import (
	"math"
	"time"
)

// failureDelays is the short-term retry ladder for failed answers: a
// first failure comes back in a minute, a repeated one in an hour, then
// a day.
var failureDelays = [...]time.Duration{
	time.Minute,
	time.Hour,
	24 * time.Hour,
}

// Apply advances a record by one answer event and returns the updated
// record. The input is never mutated; callers sample now once and pass
// it in so every timestamp within the update agrees.
//
// Quality >= 3 follows the SM-2 growth curve: the streak advances, the
// ease factor shifts by the quality-derived modifier (floored at
// MinEaseFactor), and the interval runs 1 day, 6 days, then
// round(previous * ease). Quality < 3 resets the streak and schedules a
// short-term retry from the failure ladder.
func Apply(rec PerformanceRecord, correct bool, confidence Confidence, now time.Time) PerformanceRecord {
	quality := Quality(correct, confidence)

	rec.ConfidenceHistory = appendHistory(rec.ConfidenceHistory, confidence)
	rec.TotalAttempts++
	if correct {
		rec.CorrectAttempts++
	} else {
		rec.IncorrectAttempts++
	}

	if quality < 3 {
		// The ladder only escalates while the record has never held a
		// streak; any failure after a success streak restarts at the
		// 1-minute rung.
		failStreak := 0
		if rec.Repetitions == 0 {
			failStreak = min(rec.IncorrectAttempts-1, len(failureDelays)-1)
		}
		rec.Repetitions = 0

		delay := failureDelays[failStreak]
		rec.NextReview = now.Add(delay)
		rec.Interval = int(delay / (24 * time.Hour)) // bookkeeping only
	} else {
		rec.Repetitions++

		modifier := 0.1 - float64(5-quality)*(0.08+float64(5-quality)*0.02)
		rec.EaseFactor = math.Max(MinEaseFactor, rec.EaseFactor+modifier)

		switch rec.Repetitions {
		case 1:
			rec.Interval = 1
		case 2:
			rec.Interval = 6
		default:
			rec.Interval = int(math.Round(float64(rec.Interval) * rec.EaseFactor))
		}
		rec.NextReview = now.AddDate(0, 0, rec.Interval)
	}

	rec.LastReviewed = now
	return rec
}

// appendHistory appends to a fresh backing array so the returned slice
// shares nothing with the input record.
func appendHistory(history []Confidence, c Confidence) []Confidence {
	if len(history) >= HistorySize {
		history = history[len(history)-HistorySize+1:]
	}
	out := make([]Confidence, 0, HistorySize)
	out = append(out, history...)
	return append(out, c)
}
