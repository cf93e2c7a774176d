package store

import (
	"context"
	"fmt"

	"github.com/nshant/revise/ent"
	"github.com/nshant/revise/ent/attemptevent"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client  *ent.Client
	counter *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptData) error {
	seq, err := r.counter.Next(ctx)
	if err != nil {
		return err
	}

	create := r.client.AttemptEvent.Create().
		SetSequence(seq).
		SetAttemptID(data.AttemptID).
		SetQuestionID(data.QuestionID).
		SetUserID(data.UserID).
		SetCategoryID(data.CategoryID).
		SetCorrect(data.Correct).
		SetConfidence(data.Confidence.String()).
		SetQuality(data.Quality)
	if !data.Timestamp.IsZero() {
		create = create.SetTimestamp(data.Timestamp)
	}

	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrDuplicateAttempt
		}
		return fmt.Errorf("append attempt %s: %w", data.AttemptID, err)
	}
	return nil
}

func (r *attemptRepo) CountForUser(ctx context.Context, userID string) (int, error) {
	n, err := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts for %s: %w", userID, err)
	}
	return n, nil
}

func (r *attemptRepo) DeleteByUser(ctx context.Context, userID string) (int, error) {
	n, err := r.client.AttemptEvent.Delete().
		Where(attemptevent.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete attempts for %s: %w", userID, err)
	}
	return n, nil
}

func (r *attemptRepo) DeleteAll(ctx context.Context) (int, error) {
	n, err := r.client.AttemptEvent.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all attempts: %w", err)
	}
	return n, nil
}
