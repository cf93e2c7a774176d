package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nshant/revise/ent"
	"github.com/nshant/revise/ent/performancerecord"
	"github.com/nshant/revise/internal/srs"
)

// performanceRepo implements PerformanceRepo using the ent client.
type performanceRepo struct {
	client *ent.Client
}

func (r *performanceRepo) Get(ctx context.Context, questionID, userID string) (srs.PerformanceRecord, bool, error) {
	row, err := r.client.PerformanceRecord.Query().
		Where(
			performancerecord.QuestionID(questionID),
			performancerecord.UserID(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return srs.PerformanceRecord{}, false, nil
		}
		return srs.PerformanceRecord{}, false, fmt.Errorf("query record %s/%s: %w", questionID, userID, err)
	}
	return toDomainRecord(row), true, nil
}

func (r *performanceRepo) Put(ctx context.Context, rec srs.PerformanceRecord) error {
	history := historyToStrings(rec.ConfidenceHistory)

	existing, err := r.client.PerformanceRecord.Query().
		Where(
			performancerecord.QuestionID(rec.QuestionID),
			performancerecord.UserID(rec.UserID),
		).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetCategoryID(rec.CategoryID).
			SetEaseFactor(rec.EaseFactor).
			SetInterval(rec.Interval).
			SetRepetitions(rec.Repetitions).
			SetNextReview(rec.NextReview).
			SetLastReviewed(rec.LastReviewed).
			SetTotalAttempts(rec.TotalAttempts).
			SetCorrectAttempts(rec.CorrectAttempts).
			SetIncorrectAttempts(rec.IncorrectAttempts).
			SetConfidenceHistory(history).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update record %s: %w", rec.ID, err)
		}
		return nil

	case ent.IsNotFound(err):
		_, err = r.client.PerformanceRecord.Create().
			SetQuestionID(rec.QuestionID).
			SetUserID(rec.UserID).
			SetCategoryID(rec.CategoryID).
			SetEaseFactor(rec.EaseFactor).
			SetInterval(rec.Interval).
			SetRepetitions(rec.Repetitions).
			SetNextReview(rec.NextReview).
			SetLastReviewed(rec.LastReviewed).
			SetTotalAttempts(rec.TotalAttempts).
			SetCorrectAttempts(rec.CorrectAttempts).
			SetIncorrectAttempts(rec.IncorrectAttempts).
			SetConfidenceHistory(history).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create record %s: %w", rec.ID, err)
		}
		return nil

	default:
		return fmt.Errorf("lookup record %s: %w", rec.ID, err)
	}
}

func (r *performanceRepo) ListByUser(ctx context.Context, userID string) ([]srs.PerformanceRecord, error) {
	rows, err := r.client.PerformanceRecord.Query().
		Where(performancerecord.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records for %s: %w", userID, err)
	}
	return toDomainRecords(rows), nil
}

func (r *performanceRepo) ListByUserCategory(ctx context.Context, userID, categoryID string) ([]srs.PerformanceRecord, error) {
	rows, err := r.client.PerformanceRecord.Query().
		Where(
			performancerecord.UserID(userID),
			performancerecord.CategoryID(categoryID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records for %s in %s: %w", userID, categoryID, err)
	}
	return toDomainRecords(rows), nil
}

func (r *performanceRepo) ListDue(ctx context.Context, userID string, now time.Time, limit int) ([]srs.PerformanceRecord, error) {
	q := r.client.PerformanceRecord.Query().
		Where(
			performancerecord.UserID(userID),
			performancerecord.NextReviewLTE(now),
		).
		Order(ent.Asc(performancerecord.FieldNextReview))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list due records for %s: %w", userID, err)
	}
	return toDomainRecords(rows), nil
}

func (r *performanceRepo) DeleteByUser(ctx context.Context, userID string) (int, error) {
	n, err := r.client.PerformanceRecord.Delete().
		Where(performancerecord.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete records for %s: %w", userID, err)
	}
	return n, nil
}

func (r *performanceRepo) DeleteAll(ctx context.Context) (int, error) {
	n, err := r.client.PerformanceRecord.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all records: %w", err)
	}
	return n, nil
}

// toDomainRecord converts an ent row to the scheduler's record type.
func toDomainRecord(row *ent.PerformanceRecord) srs.PerformanceRecord {
	return srs.PerformanceRecord{
		ID:                srs.RecordID(row.QuestionID, row.UserID),
		QuestionID:        row.QuestionID,
		UserID:            row.UserID,
		CategoryID:        row.CategoryID,
		EaseFactor:        row.EaseFactor,
		Interval:          row.Interval,
		Repetitions:       row.Repetitions,
		NextReview:        row.NextReview,
		LastReviewed:      row.LastReviewed,
		TotalAttempts:     row.TotalAttempts,
		CorrectAttempts:   row.CorrectAttempts,
		IncorrectAttempts: row.IncorrectAttempts,
		ConfidenceHistory: historyFromStrings(row.ConfidenceHistory),
	}
}

func toDomainRecords(rows []*ent.PerformanceRecord) []srs.PerformanceRecord {
	out := make([]srs.PerformanceRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainRecord(row))
	}
	return out
}

func historyToStrings(history []srs.Confidence) []string {
	out := make([]string, 0, len(history))
	for _, c := range history {
		out = append(out, c.String())
	}
	return out
}

// historyFromStrings drops labels it cannot parse rather than failing
// the whole read.
func historyFromStrings(labels []string) []srs.Confidence {
	out := make([]srs.Confidence, 0, len(labels))
	for _, s := range labels {
		c, err := srs.ParseConfidence(s)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}
