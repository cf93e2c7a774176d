package analytics

import (
	"testing"
	"time"

	"github.com/nshant/revise/internal/srs"
)

func weakRecord(questionID, categoryID string, correct, total int) srs.PerformanceRecord {
	return srs.PerformanceRecord{
		QuestionID:        questionID,
		CategoryID:        categoryID,
		TotalAttempts:     total,
		CorrectAttempts:   correct,
		IncorrectAttempts: total - correct,
		LastReviewed:      testNow,
	}
}

func questionLookup(known map[string]string) func(string) (QuestionInfo, bool) {
	return func(id string) (QuestionInfo, bool) {
		prompt, ok := known[id]
		return QuestionInfo{ID: id, Prompt: prompt}, ok
	}
}

func categoryLookup(known map[string]string) func(string) (string, bool) {
	return func(id string) (string, bool) {
		name, ok := known[id]
		return name, ok
	}
}

func TestRankWeakSpots_SortedWorstFirst(t *testing.T) {
	records := []srs.PerformanceRecord{
		weakRecord("q1", "c1", 2, 5), // 40%
		weakRecord("q2", "c1", 0, 4), // 0%
		weakRecord("q3", "c1", 1, 4), // 25%
		weakRecord("q4", "c1", 4, 5), // 80%, not weak
	}
	questions := questionLookup(map[string]string{"q1": "p1", "q2": "p2", "q3": "p3", "q4": "p4"})
	categories := categoryLookup(map[string]string{"c1": "Algebra"})

	got := RankWeakSpots(records, questions, categories, 10)

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].QuestionID != "q2" || got[1].QuestionID != "q3" || got[2].QuestionID != "q1" {
		t.Errorf("unexpected order: %s, %s, %s", got[0].QuestionID, got[1].QuestionID, got[2].QuestionID)
	}
	if got[0].CategoryName != "Algebra" {
		t.Errorf("CategoryName = %q, want Algebra", got[0].CategoryName)
	}
	if got[2].Attempts != 5 {
		t.Errorf("Attempts = %d, want 5", got[2].Attempts)
	}
}

func TestRankWeakSpots_TiesKeepInputOrder(t *testing.T) {
	records := []srs.PerformanceRecord{
		weakRecord("first", "c1", 1, 4),  // 25%
		weakRecord("second", "c1", 1, 4), // 25%
		weakRecord("third", "c1", 1, 4),  // 25%
	}
	questions := questionLookup(map[string]string{"first": "a", "second": "b", "third": "c"})
	categories := categoryLookup(map[string]string{"c1": "History"})

	got := RankWeakSpots(records, questions, categories, 10)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got[i].QuestionID != want {
			t.Errorf("got[%d] = %s, want %s", i, got[i].QuestionID, want)
		}
	}
}

func TestRankWeakSpots_DropsUnresolvedQuestions(t *testing.T) {
	records := []srs.PerformanceRecord{
		weakRecord("known", "c1", 0, 3),
		weakRecord("orphan", "c1", 0, 3),
	}
	questions := questionLookup(map[string]string{"known": "prompt"})
	categories := categoryLookup(map[string]string{"c1": "Chemistry"})

	got := RankWeakSpots(records, questions, categories, 10)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (orphan dropped)", len(got))
	}
	if got[0].QuestionID != "known" {
		t.Errorf("QuestionID = %q, want known", got[0].QuestionID)
	}
}

func TestRankWeakSpots_UnknownCategoryFallback(t *testing.T) {
	records := []srs.PerformanceRecord{weakRecord("q1", "missing", 0, 2)}
	questions := questionLookup(map[string]string{"q1": "p"})
	categories := categoryLookup(nil)

	got := RankWeakSpots(records, questions, categories, 10)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].CategoryName != UnknownCategory {
		t.Errorf("CategoryName = %q, want %q", got[0].CategoryName, UnknownCategory)
	}
}

func TestRankWeakSpots_Truncates(t *testing.T) {
	var records []srs.PerformanceRecord
	known := make(map[string]string)
	for _, id := range []string{"a", "b", "c", "d"} {
		records = append(records, weakRecord(id, "c1", 0, 2))
		known[id] = "prompt " + id
	}
	got := RankWeakSpots(records, questionLookup(known), categoryLookup(nil), 2)
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestSelectDue_OrderAndCap(t *testing.T) {
	now := testNow
	records := []srs.PerformanceRecord{
		{QuestionID: "later", NextReview: now.Add(-time.Hour)},
		{QuestionID: "oldest", NextReview: now.Add(-48 * time.Hour)},
		{QuestionID: "future", NextReview: now.Add(time.Hour)},
		{QuestionID: "recent", NextReview: now.Add(-time.Minute)},
	}

	got := SelectDue(records, now, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].QuestionID != "oldest" || got[1].QuestionID != "later" {
		t.Errorf("unexpected order: %s, %s", got[0].QuestionID, got[1].QuestionID)
	}
}

func TestSelectDue_NoLimit(t *testing.T) {
	now := testNow
	records := []srs.PerformanceRecord{
		{QuestionID: "a", NextReview: now},
		{QuestionID: "b", NextReview: now.Add(-time.Hour)},
	}
	got := SelectDue(records, now, 0)
	if len(got) != 2 {
		t.Errorf("len = %d, want 2 with no cap", len(got))
	}
}
