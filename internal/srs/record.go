package srs

import "time"

const (
	// DefaultEaseFactor is the starting ease factor for new records.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the floor below which the ease factor never drops.
	MinEaseFactor = 1.3
	// MasteryThreshold is the consecutive-correct streak at which a
	// question counts as mastered.
	MasteryThreshold = 3
	// HistorySize bounds the confidence history kept per record.
	HistorySize = 5
)

// PerformanceRecord tracks one (question, user) pair through the
// spaced-repetition lifecycle. Records are values: updates return a new
// record and never mutate the old one.
type PerformanceRecord struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	UserID     string `json:"user_id"`
	CategoryID string `json:"category_id"`

	EaseFactor   float64   `json:"ease_factor"`
	Interval     int       `json:"interval"` // days until next review
	Repetitions  int       `json:"repetitions"`
	NextReview   time.Time `json:"next_review"`
	LastReviewed time.Time `json:"last_reviewed"`

	TotalAttempts     int `json:"total_attempts"`
	CorrectAttempts   int `json:"correct_attempts"`
	IncorrectAttempts int `json:"incorrect_attempts"`

	ConfidenceHistory []Confidence `json:"confidence_history"`
}

// RecordID builds the composite key for a (question, user) pair.
func RecordID(questionID, userID string) string {
	return questionID + "_" + userID
}

// NewRecord returns a default-valued record for a first interaction.
func NewRecord(questionID, userID, categoryID string, now time.Time) PerformanceRecord {
	return PerformanceRecord{
		ID:           RecordID(questionID, userID),
		QuestionID:   questionID,
		UserID:       userID,
		CategoryID:   categoryID,
		EaseFactor:   DefaultEaseFactor,
		NextReview:   now,
		LastReviewed: now,
	}
}
