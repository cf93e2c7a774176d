package analytics

import (
	"testing"
	"time"

	"github.com/nshant/revise/internal/srs"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// recordWith builds a record with a given accuracy profile and streak.
func recordWith(questionID string, correct, total, repetitions int) srs.PerformanceRecord {
	return srs.PerformanceRecord{
		ID:              srs.RecordID(questionID, "u1"),
		QuestionID:      questionID,
		UserID:          "u1",
		CategoryID:      "cat-1",
		EaseFactor:      srs.DefaultEaseFactor,
		Repetitions:     repetitions,
		TotalAttempts:   total,
		CorrectAttempts: correct,
		IncorrectAttempts: total - correct,
	}
}

func TestBuildCategoryAnalytics(t *testing.T) {
	// Accuracies 100, 80, 20; two mastered; one weak spot; plus an
	// untouched record that must not drag the average down.
	records := []srs.PerformanceRecord{
		recordWith("q1", 5, 5, 4),  // 100%, mastered
		recordWith("q2", 4, 5, 3),  // 80%, mastered
		recordWith("q3", 1, 5, 0),  // 20%, weak spot
		recordWith("q4", 0, 0, 0),  // never attempted
	}

	got := BuildCategoryAnalytics("cat-1", "u1", records, 10, testNow)

	if got.AverageAccuracy != 66.7 {
		t.Errorf("AverageAccuracy = %v, want 66.7", got.AverageAccuracy)
	}
	if got.MasteredQuestions != 2 {
		t.Errorf("MasteredQuestions = %d, want 2", got.MasteredQuestions)
	}
	if got.StrugglingQuestions != 1 {
		t.Errorf("StrugglingQuestions = %d, want 1", got.StrugglingQuestions)
	}
	if got.TotalQuestions != 10 {
		t.Errorf("TotalQuestions = %d, want 10", got.TotalQuestions)
	}
	if got.CategoryID != "cat-1" || got.UserID != "u1" {
		t.Errorf("identity fields = (%q, %q)", got.CategoryID, got.UserID)
	}
	if !got.LastUpdated.Equal(testNow) {
		t.Errorf("LastUpdated = %v, want %v", got.LastUpdated, testNow)
	}
}

func TestBuildCategoryAnalytics_NoAttempts(t *testing.T) {
	records := []srs.PerformanceRecord{
		recordWith("q1", 0, 0, 0),
		recordWith("q2", 0, 0, 0),
	}

	got := BuildCategoryAnalytics("cat-1", "u1", records, 5, testNow)
	if got.AverageAccuracy != 0 {
		t.Errorf("AverageAccuracy = %v, want 0", got.AverageAccuracy)
	}
}

func TestBuildCategoryAnalytics_Empty(t *testing.T) {
	got := BuildCategoryAnalytics("cat-1", "u1", nil, 0, testNow)
	if got.AverageAccuracy != 0 || got.MasteredQuestions != 0 || got.StrugglingQuestions != 0 {
		t.Errorf("expected zero-valued analytics, got %+v", got)
	}
}

func TestAggregateOverallStats(t *testing.T) {
	list := []CategoryAnalytics{
		{TotalQuestions: 10, MasteredQuestions: 2, StrugglingQuestions: 1, AverageAccuracy: 66.7},
		{TotalQuestions: 5, MasteredQuestions: 1, StrugglingQuestions: 2, AverageAccuracy: 40.0},
	}

	got := AggregateOverallStats(list)

	if got.TotalQuestions != 15 {
		t.Errorf("TotalQuestions = %d, want 15", got.TotalQuestions)
	}
	if got.TotalMastered != 3 {
		t.Errorf("TotalMastered = %d, want 3", got.TotalMastered)
	}
	if got.TotalStruggling != 3 {
		t.Errorf("TotalStruggling = %d, want 3", got.TotalStruggling)
	}
	if got.MasteryPercentage != 20 { // round(3/15*100)
		t.Errorf("MasteryPercentage = %d, want 20", got.MasteryPercentage)
	}
	// Weighted mean: (66.7*10 + 40*5) / 15 = 57.8
	if got.OverallAccuracy != 57.8 {
		t.Errorf("OverallAccuracy = %v, want 57.8", got.OverallAccuracy)
	}
}

func TestAggregateOverallStats_Empty(t *testing.T) {
	got := AggregateOverallStats(nil)
	if got.OverallAccuracy != 0 || got.MasteryPercentage != 0 || got.TotalQuestions != 0 {
		t.Errorf("expected zero stats, got %+v", got)
	}
}
