package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/nshant/revise/internal/srs"
)

// openTestStore opens an in-memory database unique to the test, so
// parallel tests never share state.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testRecord(questionID, userID string) srs.PerformanceRecord {
	rec := srs.NewRecord(questionID, userID, "cat-1", time.Now().UTC().Truncate(time.Second))
	return rec
}

func TestPerformanceGetMissing(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, ok, err := s.Performance().Get(ctx, "q1", "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for missing record")
	}
}

func TestPerformancePutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Performance()
	ctx := context.Background()

	rec := testRecord("q1", "u1")
	rec.EaseFactor = 2.6
	rec.Interval = 6
	rec.Repetitions = 2
	rec.TotalAttempts = 2
	rec.CorrectAttempts = 2
	rec.LastReviewed = time.Now().UTC().Truncate(time.Second)
	rec.ConfidenceHistory = []srs.Confidence{srs.Sure, srs.KnewIt}

	if err := repo.Put(ctx, rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := repo.Get(ctx, "q1", "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected record to exist")
	}
	if got.ID != "q1_u1" {
		t.Errorf("ID = %q, want q1_u1", got.ID)
	}
	if got.EaseFactor != 2.6 || got.Interval != 6 || got.Repetitions != 2 {
		t.Errorf("scheduling state = (%v, %d, %d), want (2.6, 6, 2)",
			got.EaseFactor, got.Interval, got.Repetitions)
	}
	if len(got.ConfidenceHistory) != 2 || got.ConfidenceHistory[1] != srs.KnewIt {
		t.Errorf("ConfidenceHistory = %v", got.ConfidenceHistory)
	}
}

func TestPerformancePutReplacesExisting(t *testing.T) {
	s := openTestStore(t)
	repo := s.Performance()
	ctx := context.Background()

	rec := testRecord("q1", "u1")
	if err := repo.Put(ctx, rec); err != nil {
		t.Fatalf("first put: %v", err)
	}

	rec.Repetitions = 3
	rec.TotalAttempts = 3
	if err := repo.Put(ctx, rec); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, _, err := repo.Get(ctx, "q1", "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Repetitions != 3 {
		t.Errorf("Repetitions = %d, want 3", got.Repetitions)
	}

	all, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("record count = %d, want 1 (put must replace, not duplicate)", len(all))
	}
}

func TestPerformanceListByUserCategory(t *testing.T) {
	s := openTestStore(t)
	repo := s.Performance()
	ctx := context.Background()
	now := time.Now().UTC()

	for _, rc := range []struct{ q, cat string }{
		{"q1", "algebra"}, {"q2", "algebra"}, {"q3", "history"},
	} {
		rec := srs.NewRecord(rc.q, "u1", rc.cat, now)
		if err := repo.Put(ctx, rec); err != nil {
			t.Fatalf("put %s: %v", rc.q, err)
		}
	}
	// Another user's record must not leak in.
	if err := repo.Put(ctx, srs.NewRecord("q1", "u2", "algebra", now)); err != nil {
		t.Fatalf("put u2: %v", err)
	}

	got, err := repo.ListByUserCategory(ctx, "u1", "algebra")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
	for _, r := range got {
		if r.UserID != "u1" || r.CategoryID != "algebra" {
			t.Errorf("unexpected record %s/%s", r.UserID, r.CategoryID)
		}
	}
}

func TestPerformanceListDue(t *testing.T) {
	s := openTestStore(t)
	repo := s.Performance()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	put := func(q string, next time.Time) {
		rec := srs.NewRecord(q, "u1", "cat-1", now)
		rec.NextReview = next
		if err := repo.Put(ctx, rec); err != nil {
			t.Fatalf("put %s: %v", q, err)
		}
	}
	put("overdue", now.Add(-48*time.Hour))
	put("recent", now.Add(-time.Minute))
	put("future", now.Add(time.Hour))

	got, err := repo.ListDue(ctx, "u1", now, 0)
	if err != nil {
		t.Fatalf("list due: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].QuestionID != "overdue" || got[1].QuestionID != "recent" {
		t.Errorf("order = %s, %s; want overdue, recent", got[0].QuestionID, got[1].QuestionID)
	}

	capped, err := repo.ListDue(ctx, "u1", now, 1)
	if err != nil {
		t.Fatalf("list due capped: %v", err)
	}
	if len(capped) != 1 || capped[0].QuestionID != "overdue" {
		t.Errorf("capped = %v", capped)
	}
}

func TestPerformanceDeleteByUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.Performance()
	ctx := context.Background()
	now := time.Now().UTC()

	if err := repo.Put(ctx, srs.NewRecord("q1", "u1", "c", now)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put(ctx, srs.NewRecord("q2", "u1", "c", now)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put(ctx, srs.NewRecord("q1", "u2", "c", now)); err != nil {
		t.Fatalf("put: %v", err)
	}

	n, err := repo.DeleteByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}
	left, err := repo.ListByUser(ctx, "u2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(left) != 1 {
		t.Errorf("u2 records = %d, want 1", len(left))
	}
}

func TestQuestionBulkUpsertAndLookup(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()

	err := repo.BulkUpsert(ctx, []Question{
		{ID: "q1", CategoryID: "algebra", Prompt: "2+2?", Answer: "4", Active: true},
		{ID: "q2", CategoryID: "algebra", Prompt: "3*3?", Answer: "9", Active: true},
		{ID: "q3", CategoryID: "history", Prompt: "First moon landing?", Answer: "1969", Active: false},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	q, ok, err := repo.Get(ctx, "q1")
	if err != nil || !ok {
		t.Fatalf("get q1: ok=%v err=%v", ok, err)
	}
	if q.Prompt != "2+2?" {
		t.Errorf("Prompt = %q", q.Prompt)
	}

	// Rewrite q1; re-upsert must not duplicate.
	err = repo.BulkUpsert(ctx, []Question{
		{ID: "q1", CategoryID: "algebra", Prompt: "2+2=?", Answer: "4", Active: true},
	})
	if err != nil {
		t.Fatalf("re-upsert: %v", err)
	}
	q, _, err = repo.Get(ctx, "q1")
	if err != nil {
		t.Fatalf("get q1 after rewrite: %v", err)
	}
	if q.Prompt != "2+2=?" {
		t.Errorf("Prompt after rewrite = %q", q.Prompt)
	}

	byIDs, err := repo.ByIDs(ctx, []string{"q1", "q3", "missing"})
	if err != nil {
		t.Fatalf("by ids: %v", err)
	}
	if len(byIDs) != 2 {
		t.Errorf("byIDs len = %d, want 2", len(byIDs))
	}
	if _, present := byIDs["missing"]; present {
		t.Error("missing id must be absent from result")
	}

	counts, err := repo.CountByCategory(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts["algebra"] != 2 {
		t.Errorf("algebra count = %d, want 2", counts["algebra"])
	}
	if counts["history"] != 0 {
		t.Errorf("history count = %d, want 0 (inactive excluded)", counts["history"])
	}
}

func TestCategoryBulkUpsertAndAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.Categories()
	ctx := context.Background()

	err := repo.BulkUpsert(ctx, []Category{
		{ID: "algebra", Name: "Algebra"},
		{ID: "history", Name: "History"},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	err = repo.BulkUpsert(ctx, []Category{{ID: "algebra", Name: "Algebra I"}})
	if err != nil {
		t.Fatalf("re-upsert: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].ID != "algebra" || all[0].Name != "Algebra I" {
		t.Errorf("first category = %+v", all[0])
	}

	_, ok, err := repo.Get(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if ok {
		t.Error("expected ok=false for unknown category")
	}
}

func TestAttemptAppendAndDuplicate(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	data := AttemptData{
		AttemptID:  "attempt-1",
		QuestionID: "q1",
		UserID:     "u1",
		CategoryID: "algebra",
		Correct:    true,
		Confidence: srs.Sure,
		Quality:    4,
		Timestamp:  time.Now().UTC(),
	}
	if err := repo.Append(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	err := repo.Append(ctx, data)
	if !errors.Is(err, ErrDuplicateAttempt) {
		t.Fatalf("replay err = %v, want ErrDuplicateAttempt", err)
	}

	n, err := repo.CountForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1 (replay must not write)", n)
	}
}

func TestAttemptSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, AttemptData{
			AttemptID:  fmt.Sprintf("a-%d", i),
			QuestionID: "q1",
			UserID:     "u1",
			CategoryID: "c",
			Confidence: srs.Guess,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	rows, err := s.Client().AttemptEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	seen := map[int64]bool{}
	for _, row := range rows {
		if seen[row.Sequence] {
			t.Errorf("duplicate sequence %d", row.Sequence)
		}
		seen[row.Sequence] = true
	}
	if len(rows) != 3 {
		t.Errorf("rows = %d, want 3", len(rows))
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.counter.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
