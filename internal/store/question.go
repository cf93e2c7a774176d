package store

import (
	"context"
	"fmt"

	"github.com/nshant/revise/ent"
	"github.com/nshant/revise/ent/category"
	"github.com/nshant/revise/ent/question"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Get(ctx context.Context, questionID string) (Question, bool, error) {
	row, err := r.client.Question.Query().
		Where(question.QuestionID(questionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Question{}, false, nil
		}
		return Question{}, false, fmt.Errorf("query question %s: %w", questionID, err)
	}
	return toQuestion(row), true, nil
}

func (r *questionRepo) ByIDs(ctx context.Context, ids []string) (map[string]Question, error) {
	if len(ids) == 0 {
		return map[string]Question{}, nil
	}
	rows, err := r.client.Question.Query().
		Where(question.QuestionIDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions by ids: %w", err)
	}
	out := make(map[string]Question, len(rows))
	for _, row := range rows {
		out[row.QuestionID] = toQuestion(row)
	}
	return out, nil
}

func (r *questionRepo) CountByCategory(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		CategoryID string `json:"category_id"`
		Count      int    `json:"count"`
	}
	err := r.client.Question.Query().
		Where(question.Active(true)).
		GroupBy(question.FieldCategoryID).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("count questions by category: %w", err)
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.CategoryID] = row.Count
	}
	return out, nil
}

func (r *questionRepo) BulkUpsert(ctx context.Context, questions []Question) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	for _, q := range questions {
		if err := upsertQuestion(ctx, tx, q); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert: %w", err)
	}
	return nil
}

func upsertQuestion(ctx context.Context, tx *ent.Tx, q Question) error {
	existing, err := tx.Question.Query().
		Where(question.QuestionID(q.ID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetCategoryID(q.CategoryID).
			SetPrompt(q.Prompt).
			SetAnswer(q.Answer).
			SetActive(q.Active).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update question %s: %w", q.ID, err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = tx.Question.Create().
			SetQuestionID(q.ID).
			SetCategoryID(q.CategoryID).
			SetPrompt(q.Prompt).
			SetAnswer(q.Answer).
			SetActive(q.Active).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create question %s: %w", q.ID, err)
		}
		return nil
	default:
		return fmt.Errorf("lookup question %s: %w", q.ID, err)
	}
}

func toQuestion(row *ent.Question) Question {
	return Question{
		ID:         row.QuestionID,
		CategoryID: row.CategoryID,
		Prompt:     row.Prompt,
		Answer:     row.Answer,
		Active:     row.Active,
	}
}

// categoryRepo implements CategoryRepo using the ent client.
type categoryRepo struct {
	client *ent.Client
}

func (r *categoryRepo) Get(ctx context.Context, categoryID string) (Category, bool, error) {
	row, err := r.client.Category.Query().
		Where(category.CategoryID(categoryID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Category{}, false, nil
		}
		return Category{}, false, fmt.Errorf("query category %s: %w", categoryID, err)
	}
	return Category{ID: row.CategoryID, Name: row.Name}, true, nil
}

func (r *categoryRepo) All(ctx context.Context) ([]Category, error) {
	rows, err := r.client.Category.Query().
		Order(ent.Asc(category.FieldCategoryID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, Category{ID: row.CategoryID, Name: row.Name})
	}
	return out, nil
}

func (r *categoryRepo) BulkUpsert(ctx context.Context, categories []Category) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	for _, c := range categories {
		if err := upsertCategory(ctx, tx, c); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert: %w", err)
	}
	return nil
}

func upsertCategory(ctx context.Context, tx *ent.Tx, c Category) error {
	existing, err := tx.Category.Query().
		Where(category.CategoryID(c.ID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().SetName(c.Name).Save(ctx)
		if err != nil {
			return fmt.Errorf("update category %s: %w", c.ID, err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = tx.Category.Create().
			SetCategoryID(c.ID).
			SetName(c.Name).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create category %s: %w", c.ID, err)
		}
		return nil
	default:
		return fmt.Errorf("lookup category %s: %w", c.ID, err)
	}
}
