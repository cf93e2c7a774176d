package store

import (
	"context"
	"errors"
	"time"

	"github.com/nshant/revise/internal/srs"
)

// ErrDuplicateAttempt reports that an attempt with the same attempt_id
// was already appended. Callers treat the replay as a no-op.
var ErrDuplicateAttempt = errors.New("duplicate attempt")

// Question is a quiz item from the content bank.
type Question struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Prompt     string `json:"prompt"`
	Answer     string `json:"answer"`
	Active     bool   `json:"active"`
}

// Category is a topic grouping for questions.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AttemptData is one graded answer to append to the attempt log.
type AttemptData struct {
	AttemptID  string
	QuestionID string
	UserID     string
	CategoryID string
	Correct    bool
	Confidence srs.Confidence
	Quality    int
	Timestamp  time.Time
}

// PerformanceRepo stores scheduling state, one record per
// (question, user) pair.
type PerformanceRepo interface {
	// Get returns the record for the pair, or (zero, false) if none exists.
	Get(ctx context.Context, questionID, userID string) (srs.PerformanceRecord, bool, error)

	// Put inserts or replaces the record for its (question, user) pair.
	Put(ctx context.Context, rec srs.PerformanceRecord) error

	// ListByUser returns all records owned by userID.
	ListByUser(ctx context.Context, userID string) ([]srs.PerformanceRecord, error)

	// ListByUserCategory returns the user's records within one category.
	ListByUserCategory(ctx context.Context, userID, categoryID string) ([]srs.PerformanceRecord, error)

	// ListDue returns records with next_review <= now, most overdue
	// first, capped at limit when limit > 0.
	ListDue(ctx context.Context, userID string, now time.Time, limit int) ([]srs.PerformanceRecord, error)

	// DeleteByUser removes all records owned by userID and reports how
	// many were deleted.
	DeleteByUser(ctx context.Context, userID string) (int, error)

	// DeleteAll removes every record.
	DeleteAll(ctx context.Context) (int, error)
}

// QuestionRepo stores the question bank.
type QuestionRepo interface {
	// Get returns the question, or (zero, false) if unknown.
	Get(ctx context.Context, questionID string) (Question, bool, error)

	// ByIDs returns the questions found among ids, keyed by ID. Missing
	// ids are simply absent from the map.
	ByIDs(ctx context.Context, ids []string) (map[string]Question, error)

	// CountByCategory returns the number of active questions per category.
	CountByCategory(ctx context.Context) (map[string]int, error)

	// BulkUpsert inserts new questions and rewrites existing ones by ID.
	BulkUpsert(ctx context.Context, questions []Question) error
}

// CategoryRepo stores the category list.
type CategoryRepo interface {
	// Get returns the category, or (zero, false) if unknown.
	Get(ctx context.Context, categoryID string) (Category, bool, error)

	// All returns every category.
	All(ctx context.Context) ([]Category, error)

	// BulkUpsert inserts new categories and rewrites existing ones by ID.
	BulkUpsert(ctx context.Context, categories []Category) error
}

// AttemptRepo provides append access to the graded-answer log.
type AttemptRepo interface {
	// Append records one attempt. A repeated attempt_id returns
	// ErrDuplicateAttempt without writing anything.
	Append(ctx context.Context, data AttemptData) error

	// CountForUser returns how many attempts the user has logged.
	CountForUser(ctx context.Context, userID string) (int, error)

	// DeleteByUser removes the user's attempts and reports how many
	// were deleted.
	DeleteByUser(ctx context.Context, userID string) (int, error)

	// DeleteAll removes every attempt.
	DeleteAll(ctx context.Context) (int, error)
}
