package progress

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/nshant/revise/internal/srs"
	"github.com/nshant/revise/internal/store"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// fakePerformanceRepo keeps records in a map keyed by record ID.
type fakePerformanceRepo struct {
	records map[string]srs.PerformanceRecord
}

func newFakePerformanceRepo() *fakePerformanceRepo {
	return &fakePerformanceRepo{records: map[string]srs.PerformanceRecord{}}
}

func (f *fakePerformanceRepo) Get(_ context.Context, questionID, userID string) (srs.PerformanceRecord, bool, error) {
	rec, ok := f.records[srs.RecordID(questionID, userID)]
	return rec, ok, nil
}

func (f *fakePerformanceRepo) Put(_ context.Context, rec srs.PerformanceRecord) error {
	f.records[rec.ID] = rec
	return nil
}

func (f *fakePerformanceRepo) ListByUser(_ context.Context, userID string) ([]srs.PerformanceRecord, error) {
	var out []srs.PerformanceRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePerformanceRepo) ListByUserCategory(_ context.Context, userID, categoryID string) ([]srs.PerformanceRecord, error) {
	var out []srs.PerformanceRecord
	for _, r := range f.records {
		if r.UserID == userID && r.CategoryID == categoryID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePerformanceRepo) ListDue(_ context.Context, userID string, now time.Time, limit int) ([]srs.PerformanceRecord, error) {
	var out []srs.PerformanceRecord
	for _, r := range f.records {
		if r.UserID == userID && srs.IsDue(r, now) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NextReview.Before(out[j].NextReview) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePerformanceRepo) DeleteByUser(_ context.Context, userID string) (int, error) {
	n := 0
	for id, r := range f.records {
		if r.UserID == userID {
			delete(f.records, id)
			n++
		}
	}
	return n, nil
}

func (f *fakePerformanceRepo) DeleteAll(_ context.Context) (int, error) {
	n := len(f.records)
	f.records = map[string]srs.PerformanceRecord{}
	return n, nil
}

// fakeQuestionRepo serves a fixed question bank.
type fakeQuestionRepo struct {
	questions map[string]store.Question
}

func newFakeQuestionRepo(questions ...store.Question) *fakeQuestionRepo {
	m := map[string]store.Question{}
	for _, q := range questions {
		m[q.ID] = q
	}
	return &fakeQuestionRepo{questions: m}
}

func (f *fakeQuestionRepo) Get(_ context.Context, questionID string) (store.Question, bool, error) {
	q, ok := f.questions[questionID]
	return q, ok, nil
}

func (f *fakeQuestionRepo) ByIDs(_ context.Context, ids []string) (map[string]store.Question, error) {
	out := map[string]store.Question{}
	for _, id := range ids {
		if q, ok := f.questions[id]; ok {
			out[id] = q
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) CountByCategory(_ context.Context) (map[string]int, error) {
	out := map[string]int{}
	for _, q := range f.questions {
		if q.Active {
			out[q.CategoryID]++
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) BulkUpsert(_ context.Context, questions []store.Question) error {
	for _, q := range questions {
		f.questions[q.ID] = q
	}
	return nil
}

// fakeCategoryRepo serves a fixed category list.
type fakeCategoryRepo struct {
	categories map[string]store.Category
}

func newFakeCategoryRepo(categories ...store.Category) *fakeCategoryRepo {
	m := map[string]store.Category{}
	for _, c := range categories {
		m[c.ID] = c
	}
	return &fakeCategoryRepo{categories: m}
}

func (f *fakeCategoryRepo) Get(_ context.Context, categoryID string) (store.Category, bool, error) {
	c, ok := f.categories[categoryID]
	return c, ok, nil
}

func (f *fakeCategoryRepo) All(_ context.Context) ([]store.Category, error) {
	var out []store.Category
	for _, c := range f.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCategoryRepo) BulkUpsert(_ context.Context, categories []store.Category) error {
	for _, c := range categories {
		f.categories[c.ID] = c
	}
	return nil
}

// fakeAttemptRepo enforces attempt_id uniqueness like the real store.
type fakeAttemptRepo struct {
	attempts []store.AttemptData
	seen     map[string]bool
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{seen: map[string]bool{}}
}

func (f *fakeAttemptRepo) Append(_ context.Context, data store.AttemptData) error {
	if f.seen[data.AttemptID] {
		return store.ErrDuplicateAttempt
	}
	f.seen[data.AttemptID] = true
	f.attempts = append(f.attempts, data)
	return nil
}

func (f *fakeAttemptRepo) CountForUser(_ context.Context, userID string) (int, error) {
	n := 0
	for _, a := range f.attempts {
		if a.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeAttemptRepo) DeleteByUser(_ context.Context, userID string) (int, error) {
	var kept []store.AttemptData
	n := 0
	for _, a := range f.attempts {
		if a.UserID == userID {
			delete(f.seen, a.AttemptID)
			n++
			continue
		}
		kept = append(kept, a)
	}
	f.attempts = kept
	return n, nil
}

func (f *fakeAttemptRepo) DeleteAll(_ context.Context) (int, error) {
	n := len(f.attempts)
	f.attempts = nil
	f.seen = map[string]bool{}
	return n, nil
}

type fixture struct {
	svc         *Service
	performance *fakePerformanceRepo
	questions   *fakeQuestionRepo
	categories  *fakeCategoryRepo
	attempts    *fakeAttemptRepo
}

func newFixture() *fixture {
	performance := newFakePerformanceRepo()
	questions := newFakeQuestionRepo(
		store.Question{ID: "q1", CategoryID: "algebra", Prompt: "2+2?", Answer: "4", Active: true},
		store.Question{ID: "q2", CategoryID: "algebra", Prompt: "3*3?", Answer: "9", Active: true},
		store.Question{ID: "q3", CategoryID: "history", Prompt: "Moon landing?", Answer: "1969", Active: true},
	)
	categories := newFakeCategoryRepo(
		store.Category{ID: "algebra", Name: "Algebra"},
		store.Category{ID: "history", Name: "History"},
	)
	attempts := newFakeAttemptRepo()
	return &fixture{
		svc:         NewService(performance, questions, categories, attempts, nil),
		performance: performance,
		questions:   questions,
		categories:  categories,
		attempts:    attempts,
	}
}

func TestRecordAnswerFirstCorrect(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	rec, err := fx.svc.RecordAnswer(ctx, AnswerEvent{
		AttemptID:  "a1",
		QuestionID: "q1",
		UserID:     "u1",
		Correct:    true,
		Confidence: srs.Sure,
		At:         testNow,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	if rec.Repetitions != 1 || rec.Interval != 1 {
		t.Errorf("state = (reps %d, interval %d), want (1, 1)", rec.Repetitions, rec.Interval)
	}
	if rec.CategoryID != "algebra" {
		t.Errorf("CategoryID = %q, want algebra (resolved from bank)", rec.CategoryID)
	}
	want := testNow.AddDate(0, 0, 1)
	if !rec.NextReview.Equal(want) {
		t.Errorf("NextReview = %v, want %v", rec.NextReview, want)
	}

	stored, ok, _ := fx.performance.Get(ctx, "q1", "u1")
	if !ok {
		t.Fatal("record not persisted")
	}
	if stored.Repetitions != 1 {
		t.Errorf("persisted Repetitions = %d, want 1", stored.Repetitions)
	}
	if len(fx.attempts.attempts) != 1 {
		t.Fatalf("attempt log len = %d, want 1", len(fx.attempts.attempts))
	}
	if got := fx.attempts.attempts[0].Quality; got != 4 {
		t.Errorf("logged quality = %d, want 4 (correct + sure)", got)
	}
}

func TestRecordAnswerUnknownQuestion(t *testing.T) {
	fx := newFixture()

	_, err := fx.svc.RecordAnswer(context.Background(), AnswerEvent{
		AttemptID:  "a1",
		QuestionID: "nope",
		UserID:     "u1",
		Correct:    true,
		Confidence: srs.Sure,
		At:         testNow,
	})
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("err = %v, want ErrUnknownQuestion", err)
	}
	if len(fx.attempts.attempts) != 0 {
		t.Error("no attempt should be logged for an unknown question")
	}
}

func TestRecordAnswerDuplicateAttemptIsNoOp(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	ev := AnswerEvent{
		AttemptID:  "a1",
		QuestionID: "q1",
		UserID:     "u1",
		Correct:    true,
		Confidence: srs.Sure,
		At:         testNow,
	}
	first, err := fx.svc.RecordAnswer(ctx, ev)
	if err != nil {
		t.Fatalf("first record: %v", err)
	}

	replay, err := fx.svc.RecordAnswer(ctx, ev)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if replay.Repetitions != first.Repetitions || replay.TotalAttempts != first.TotalAttempts {
		t.Errorf("replay changed state: %+v vs %+v", replay, first)
	}
	if len(fx.attempts.attempts) != 1 {
		t.Errorf("attempt log len = %d, want 1", len(fx.attempts.attempts))
	}
}

func TestRecordAnswerGeneratesAttemptID(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	ev := AnswerEvent{
		QuestionID: "q1",
		UserID:     "u1",
		Correct:    false,
		Confidence: srs.Guess,
		At:         testNow,
	}
	if _, err := fx.svc.RecordAnswer(ctx, ev); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := fx.svc.RecordAnswer(ctx, ev); err != nil {
		t.Fatalf("second: %v", err)
	}

	// Without a caller-supplied id, each submission is a fresh attempt.
	if len(fx.attempts.attempts) != 2 {
		t.Fatalf("attempt log len = %d, want 2", len(fx.attempts.attempts))
	}
	if fx.attempts.attempts[0].AttemptID == fx.attempts.attempts[1].AttemptID {
		t.Error("generated attempt ids must differ")
	}
	if fx.attempts.attempts[0].AttemptID == "" {
		t.Error("attempt id must be generated when empty")
	}
}

func TestRecordAnswerFailureLadder(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	delays := []time.Duration{time.Minute, time.Hour, 24 * time.Hour, 24 * time.Hour}
	for i, want := range delays {
		rec, err := fx.svc.RecordAnswer(ctx, AnswerEvent{
			QuestionID: "q1",
			UserID:     "u1",
			Correct:    false,
			Confidence: srs.Guess,
			At:         testNow,
		})
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		if got := rec.NextReview.Sub(testNow); got != want {
			t.Errorf("attempt %d delay = %v, want %v", i+1, got, want)
		}
	}
}

func TestDueQueueJoinsQuestions(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	for _, ev := range []AnswerEvent{
		{QuestionID: "q1", UserID: "u1", Correct: false, Confidence: srs.Guess, At: testNow.Add(-2 * time.Hour)},
		{QuestionID: "q2", UserID: "u1", Correct: false, Confidence: srs.Guess, At: testNow.Add(-time.Hour)},
		{QuestionID: "q3", UserID: "u1", Correct: true, Confidence: srs.Sure, At: testNow},
	} {
		if _, err := fx.svc.RecordAnswer(ctx, ev); err != nil {
			t.Fatalf("seed %s: %v", ev.QuestionID, err)
		}
	}

	// q1 failed 2h ago (due after 1 minute), q2 failed 1h ago, q3 is
	// scheduled a day out.
	items, err := fx.svc.DueQueue(ctx, "u1", testNow, 0)
	if err != nil {
		t.Fatalf("due queue: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].Record.QuestionID != "q1" {
		t.Errorf("first due = %s, want q1 (most overdue)", items[0].Record.QuestionID)
	}
	if items[0].Question.Prompt != "2+2?" {
		t.Errorf("joined prompt = %q", items[0].Question.Prompt)
	}
}

func TestDueQueueSkipsRemovedQuestions(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	rec := srs.NewRecord("ghost", "u1", "algebra", testNow.Add(-time.Hour))
	if err := fx.performance.Put(ctx, rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	items, err := fx.svc.DueQueue(ctx, "u1", testNow, 0)
	if err != nil {
		t.Fatalf("due queue: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len = %d, want 0 (record without question skipped)", len(items))
	}
}

func TestCategoryAnalytics(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	// q1 answered correctly 3 times: mastered, 100% accuracy.
	for i := 0; i < 3; i++ {
		if _, err := fx.svc.RecordAnswer(ctx, AnswerEvent{
			QuestionID: "q1", UserID: "u1", Correct: true, Confidence: srs.Sure,
			At: testNow.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("seed q1 #%d: %v", i, err)
		}
	}
	// q2 failed twice: weak spot, 0% accuracy.
	for i := 0; i < 2; i++ {
		if _, err := fx.svc.RecordAnswer(ctx, AnswerEvent{
			QuestionID: "q2", UserID: "u1", Correct: false, Confidence: srs.Guess,
			At: testNow.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("seed q2 #%d: %v", i, err)
		}
	}

	got, err := fx.svc.CategoryAnalytics(ctx, "u1", "algebra", testNow)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if got.TotalQuestions != 2 {
		t.Errorf("TotalQuestions = %d, want 2", got.TotalQuestions)
	}
	if got.AverageAccuracy != 50.0 {
		t.Errorf("AverageAccuracy = %v, want 50", got.AverageAccuracy)
	}
	if got.MasteredQuestions != 1 {
		t.Errorf("MasteredQuestions = %d, want 1", got.MasteredQuestions)
	}
	if got.StrugglingQuestions != 1 {
		t.Errorf("StrugglingQuestions = %d, want 1", got.StrugglingQuestions)
	}
}

func TestOverview(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	if _, err := fx.svc.RecordAnswer(ctx, AnswerEvent{
		QuestionID: "q1", UserID: "u1", Correct: true, Confidence: srs.Sure, At: testNow,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	perCategory, overall, err := fx.svc.Overview(ctx, "u1", testNow)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(perCategory) != 2 {
		t.Fatalf("categories = %d, want 2", len(perCategory))
	}
	// Sorted by category id: algebra before history.
	if perCategory[0].CategoryID != "algebra" || perCategory[1].CategoryID != "history" {
		t.Errorf("category order = %s, %s", perCategory[0].CategoryID, perCategory[1].CategoryID)
	}
	if overall.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", overall.TotalQuestions)
	}
}

func TestWeakSpots(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	// q2: 0/2, the only weak spot.
	for i := 0; i < 2; i++ {
		if _, err := fx.svc.RecordAnswer(ctx, AnswerEvent{
			QuestionID: "q2", UserID: "u1", Correct: false, Confidence: srs.Unsure,
			At: testNow.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("seed #%d: %v", i, err)
		}
	}
	// q1: 1/1, not weak.
	if _, err := fx.svc.RecordAnswer(ctx, AnswerEvent{
		QuestionID: "q1", UserID: "u1", Correct: true, Confidence: srs.Sure, At: testNow,
	}); err != nil {
		t.Fatalf("seed q1: %v", err)
	}

	spots, err := fx.svc.WeakSpots(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("weak spots: %v", err)
	}
	if len(spots) != 1 {
		t.Fatalf("len = %d, want 1", len(spots))
	}
	if spots[0].QuestionID != "q2" || spots[0].CategoryName != "Algebra" {
		t.Errorf("spot = %+v", spots[0])
	}
	if spots[0].Accuracy != 0 || spots[0].Attempts != 2 {
		t.Errorf("spot stats = (%v, %d), want (0, 2)", spots[0].Accuracy, spots[0].Attempts)
	}
}

func TestImportThenRecord(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	res, err := fx.svc.Import(ctx,
		[]store.Category{{ID: "science", Name: "Science"}},
		[]store.Question{{ID: "q9", CategoryID: "science", Prompt: "H2O?", Answer: "water", Active: true}},
	)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Categories != 1 || res.Questions != 1 {
		t.Errorf("result = %+v", res)
	}

	rec, err := fx.svc.RecordAnswer(ctx, AnswerEvent{
		QuestionID: "q9", UserID: "u1", Correct: true, Confidence: srs.KnewIt, At: testNow,
	})
	if err != nil {
		t.Fatalf("record imported question: %v", err)
	}
	if rec.CategoryID != "science" {
		t.Errorf("CategoryID = %q, want science", rec.CategoryID)
	}
}

func TestResetSingleUser(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	for _, u := range []string{"u1", "u2"} {
		if _, err := fx.svc.RecordAnswer(ctx, AnswerEvent{
			QuestionID: "q1", UserID: u, Correct: true, Confidence: srs.Sure, At: testNow,
		}); err != nil {
			t.Fatalf("seed %s: %v", u, err)
		}
	}

	res, err := fx.svc.Reset(ctx, "u1")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if res.Records != 1 || res.Attempts != 1 {
		t.Errorf("result = %+v, want 1 record and 1 attempt", res)
	}

	if _, ok, _ := fx.performance.Get(ctx, "q1", "u1"); ok {
		t.Error("u1 record should be gone")
	}
	if _, ok, _ := fx.performance.Get(ctx, "q1", "u2"); !ok {
		t.Error("u2 record should survive")
	}
}

func TestResetAll(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	for _, u := range []string{"u1", "u2"} {
		if _, err := fx.svc.RecordAnswer(ctx, AnswerEvent{
			QuestionID: "q1", UserID: u, Correct: true, Confidence: srs.Sure, At: testNow,
		}); err != nil {
			t.Fatalf("seed %s: %v", u, err)
		}
	}

	res, err := fx.svc.Reset(ctx, "")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if res.Records != 2 || res.Attempts != 2 {
		t.Errorf("result = %+v, want 2 and 2", res)
	}
}
