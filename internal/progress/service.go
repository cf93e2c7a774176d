// Package progress coordinates the scheduler, the analytics layer, and
// the repositories: it is the surface the CLI talks to.
package progress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nshant/revise/internal/analytics"
	"github.com/nshant/revise/internal/srs"
	"github.com/nshant/revise/internal/store"
)

// ErrUnknownQuestion reports an answer for a question not in the bank.
var ErrUnknownQuestion = errors.New("unknown question")

// Service wires the repositories to the scheduling and analytics logic.
type Service struct {
	performance store.PerformanceRepo
	questions   store.QuestionRepo
	categories  store.CategoryRepo
	attempts    store.AttemptRepo
	logger      *slog.Logger
}

// NewService creates a progress service. A nil logger discards logs.
func NewService(
	performance store.PerformanceRepo,
	questions store.QuestionRepo,
	categories store.CategoryRepo,
	attempts store.AttemptRepo,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		performance: performance,
		questions:   questions,
		categories:  categories,
		attempts:    attempts,
		logger:      logger,
	}
}

// AnswerEvent is one graded answer submitted for scheduling.
type AnswerEvent struct {
	// AttemptID is the idempotency key. Left empty, the service
	// generates one, and the submission cannot be deduplicated.
	AttemptID  string
	QuestionID string
	UserID     string
	Correct    bool
	Confidence srs.Confidence
	// At is the answer time. Zero means now.
	At time.Time
}

// RecordAnswer logs the attempt and advances the pair's scheduling
// state. Replaying an attempt_id returns the stored record unchanged.
func (s *Service) RecordAnswer(ctx context.Context, ev AnswerEvent) (srs.PerformanceRecord, error) {
	now := ev.At
	if now.IsZero() {
		now = time.Now().UTC()
	}

	q, ok, err := s.questions.Get(ctx, ev.QuestionID)
	if err != nil {
		return srs.PerformanceRecord{}, err
	}
	if !ok {
		return srs.PerformanceRecord{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, ev.QuestionID)
	}

	rec, found, err := s.performance.Get(ctx, ev.QuestionID, ev.UserID)
	if err != nil {
		return srs.PerformanceRecord{}, err
	}
	if !found {
		rec = srs.NewRecord(ev.QuestionID, ev.UserID, q.CategoryID, now)
	}

	attemptID := ev.AttemptID
	if attemptID == "" {
		attemptID = uuid.NewString()
	}

	// The log entry goes in first. If the attempt_id was already
	// appended, the scheduling state already reflects this answer.
	err = s.attempts.Append(ctx, store.AttemptData{
		AttemptID:  attemptID,
		QuestionID: ev.QuestionID,
		UserID:     ev.UserID,
		CategoryID: q.CategoryID,
		Correct:    ev.Correct,
		Confidence: ev.Confidence,
		Quality:    srs.Quality(ev.Correct, ev.Confidence),
		Timestamp:  now,
	})
	if errors.Is(err, store.ErrDuplicateAttempt) {
		s.logger.Warn("duplicate attempt ignored",
			"attempt_id", attemptID,
			"question_id", ev.QuestionID,
			"user_id", ev.UserID)
		return rec, nil
	}
	if err != nil {
		return srs.PerformanceRecord{}, err
	}

	updated := srs.Apply(rec, ev.Correct, ev.Confidence, now)
	if err := s.performance.Put(ctx, updated); err != nil {
		return srs.PerformanceRecord{}, err
	}

	s.logger.Info("answer recorded",
		"question_id", ev.QuestionID,
		"user_id", ev.UserID,
		"correct", ev.Correct,
		"confidence", ev.Confidence.String(),
		"interval_days", updated.Interval,
		"next_review", updated.NextReview)
	return updated, nil
}

// DueItem is a due record joined with its question content.
type DueItem struct {
	Record   srs.PerformanceRecord
	Question store.Question
}

// DueQueue returns the user's due questions, most overdue first, capped
// at limit when limit > 0.
func (s *Service) DueQueue(ctx context.Context, userID string, now time.Time, limit int) ([]DueItem, error) {
	records, err := s.performance.ListDue(ctx, userID, now, limit)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.QuestionID)
	}
	questions, err := s.questions.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]DueItem, 0, len(records))
	for _, r := range records {
		q, ok := questions[r.QuestionID]
		if !ok {
			// Record survived a question removal. Skip it rather
			// than surface a prompt-less item.
			s.logger.Warn("due record has no question", "question_id", r.QuestionID)
			continue
		}
		items = append(items, DueItem{Record: r, Question: q})
	}
	return items, nil
}

// CategoryAnalytics computes the on-demand analytics for one category.
func (s *Service) CategoryAnalytics(ctx context.Context, userID, categoryID string, now time.Time) (analytics.CategoryAnalytics, error) {
	records, err := s.performance.ListByUserCategory(ctx, userID, categoryID)
	if err != nil {
		return analytics.CategoryAnalytics{}, err
	}
	counts, err := s.questions.CountByCategory(ctx)
	if err != nil {
		return analytics.CategoryAnalytics{}, err
	}
	return analytics.BuildCategoryAnalytics(categoryID, userID, records, counts[categoryID], now), nil
}

// Overview computes per-category analytics for every category plus the
// rolled-up totals.
func (s *Service) Overview(ctx context.Context, userID string, now time.Time) ([]analytics.CategoryAnalytics, analytics.OverallStats, error) {
	cats, err := s.categories.All(ctx)
	if err != nil {
		return nil, analytics.OverallStats{}, err
	}
	counts, err := s.questions.CountByCategory(ctx)
	if err != nil {
		return nil, analytics.OverallStats{}, err
	}

	perCategory := make([]analytics.CategoryAnalytics, 0, len(cats))
	for _, c := range cats {
		records, err := s.performance.ListByUserCategory(ctx, userID, c.ID)
		if err != nil {
			return nil, analytics.OverallStats{}, err
		}
		perCategory = append(perCategory,
			analytics.BuildCategoryAnalytics(c.ID, userID, records, counts[c.ID], now))
	}
	return perCategory, analytics.AggregateOverallStats(perCategory), nil
}

// WeakSpots returns the user's weakest questions, worst accuracy first.
func (s *Service) WeakSpots(ctx context.Context, userID string, limit int) ([]analytics.WeakSpot, error) {
	records, err := s.performance.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.QuestionID)
	}
	questions, err := s.questions.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	cats, err := s.categories.All(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}

	return analytics.RankWeakSpots(records,
		func(questionID string) (analytics.QuestionInfo, bool) {
			q, ok := questions[questionID]
			if !ok {
				s.logger.Warn("weak spot has no question", "question_id", questionID)
				return analytics.QuestionInfo{}, false
			}
			return analytics.QuestionInfo{ID: q.ID, Prompt: q.Prompt}, true
		},
		func(categoryID string) (string, bool) {
			name, ok := names[categoryID]
			return name, ok
		},
		limit,
	), nil
}

// ImportResult reports what an Import call wrote.
type ImportResult struct {
	Categories int
	Questions  int
}

// Import upserts categories then questions, in that order, so question
// category references always resolve.
func (s *Service) Import(ctx context.Context, categories []store.Category, questions []store.Question) (ImportResult, error) {
	if err := s.categories.BulkUpsert(ctx, categories); err != nil {
		return ImportResult{}, err
	}
	if err := s.questions.BulkUpsert(ctx, questions); err != nil {
		return ImportResult{}, err
	}
	return ImportResult{Categories: len(categories), Questions: len(questions)}, nil
}

// ResetResult reports what a Reset call deleted.
type ResetResult struct {
	Records  int
	Attempts int
}

// Reset deletes one user's scheduling state and attempt log. An empty
// userID wipes every user.
func (s *Service) Reset(ctx context.Context, userID string) (ResetResult, error) {
	var res ResetResult
	var err error
	if userID == "" {
		res.Records, err = s.performance.DeleteAll(ctx)
		if err != nil {
			return res, err
		}
		res.Attempts, err = s.attempts.DeleteAll(ctx)
		return res, err
	}
	res.Records, err = s.performance.DeleteByUser(ctx, userID)
	if err != nil {
		return res, err
	}
	res.Attempts, err = s.attempts.DeleteByUser(ctx, userID)
	return res, err
}
