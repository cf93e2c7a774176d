package srs

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	rec := NewRecord("q1", "u1", "c1", testNow)
	rec.ConfidenceHistory = []Confidence{Sure}

	before := rec
	beforeHistory := append([]Confidence(nil), rec.ConfidenceHistory...)

	updated := Apply(rec, true, KnewIt, testNow.Add(time.Hour))

	if rec.TotalAttempts != before.TotalAttempts || rec.Repetitions != before.Repetitions {
		t.Error("input record was mutated")
	}
	if len(rec.ConfidenceHistory) != len(beforeHistory) {
		t.Error("input confidence history was mutated")
	}
	if updated.TotalAttempts != 1 {
		t.Errorf("TotalAttempts = %d, want 1", updated.TotalAttempts)
	}
	// Appending to the updated record must not leak into the original.
	updated.ConfidenceHistory[0] = Guess
	if rec.ConfidenceHistory[0] != Sure {
		t.Error("updated history shares backing array with input")
	}
}

func TestApply_SuccessCurve(t *testing.T) {
	// Fresh record answered correctly three times: knew_it, sure, unsure.
	rec := NewRecord("q1", "u1", "c1", testNow)

	now := testNow
	rec = Apply(rec, true, KnewIt, now)
	if !almostEqual(rec.EaseFactor, 2.6) {
		t.Errorf("after 1st: EaseFactor = %v, want 2.6", rec.EaseFactor)
	}
	if rec.Interval != 1 {
		t.Errorf("after 1st: Interval = %d, want 1", rec.Interval)
	}
	if !rec.NextReview.Equal(now.AddDate(0, 0, 1)) {
		t.Errorf("after 1st: NextReview = %v, want %v", rec.NextReview, now.AddDate(0, 0, 1))
	}

	now = now.AddDate(0, 0, 1)
	rec = Apply(rec, true, Sure, now) // quality 4: modifier is 0
	if !almostEqual(rec.EaseFactor, 2.6) {
		t.Errorf("after 2nd: EaseFactor = %v, want 2.6", rec.EaseFactor)
	}
	if rec.Interval != 6 {
		t.Errorf("after 2nd: Interval = %d, want 6", rec.Interval)
	}

	now = now.AddDate(0, 0, 6)
	rec = Apply(rec, true, Unsure, now) // quality 3: modifier is -0.14
	if !almostEqual(rec.EaseFactor, 2.46) {
		t.Errorf("after 3rd: EaseFactor = %v, want 2.46", rec.EaseFactor)
	}
	if rec.Interval != 15 { // round(6 * 2.46)
		t.Errorf("after 3rd: Interval = %d, want 15", rec.Interval)
	}
	if rec.Repetitions != 3 {
		t.Errorf("after 3rd: Repetitions = %d, want 3", rec.Repetitions)
	}
	if !IsMastered(rec) {
		t.Error("expected mastered after 3 consecutive correct")
	}
}

func TestApply_FailureAfterStreakIsFreshFailure(t *testing.T) {
	rec := NewRecord("q1", "u1", "c1", testNow)
	now := testNow
	for _, c := range []Confidence{KnewIt, Sure, Unsure} {
		rec = Apply(rec, true, c, now)
		now = now.AddDate(0, 0, rec.Interval)
	}
	if rec.Repetitions != 3 {
		t.Fatalf("Repetitions = %d, want 3", rec.Repetitions)
	}

	// Wrong answer with a recognized guess (quality 2). Repetitions was
	// non-zero, so the ladder restarts at the 1-minute rung.
	rec = Apply(rec, false, Guess, now)
	if rec.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0 after failure", rec.Repetitions)
	}
	if !rec.NextReview.Equal(now.Add(time.Minute)) {
		t.Errorf("NextReview = %v, want %v", rec.NextReview, now.Add(time.Minute))
	}
}

func TestApply_FailureLadderEscalates(t *testing.T) {
	// A record that has never held a streak escalates 1m -> 1h -> 1d and
	// then stays at the 1-day rung.
	rec := NewRecord("q1", "u1", "c1", testNow)

	steps := []struct {
		delay time.Duration
	}{
		{time.Minute},
		{time.Hour},
		{24 * time.Hour},
		{24 * time.Hour},
	}

	now := testNow
	for i, step := range steps {
		rec = Apply(rec, false, KnewIt, now)
		want := now.Add(step.delay)
		if !rec.NextReview.Equal(want) {
			t.Errorf("failure %d: NextReview = %v, want %v", i+1, rec.NextReview, want)
		}
		now = want
	}
}

func TestApply_FailureKeepsEaseFactor(t *testing.T) {
	rec := NewRecord("q1", "u1", "c1", testNow)
	rec = Apply(rec, true, KnewIt, testNow)
	before := rec.EaseFactor

	rec = Apply(rec, false, Sure, testNow.AddDate(0, 0, 1))
	if rec.EaseFactor != before {
		t.Errorf("EaseFactor = %v, want unchanged %v", rec.EaseFactor, before)
	}
}

func TestApply_QualityBelowThreeAlwaysResetsRepetitions(t *testing.T) {
	for _, c := range []Confidence{Guess, Unsure, Sure, KnewIt} {
		rec := NewRecord("q1", "u1", "c1", testNow)
		rec.Repetitions = 7
		rec = Apply(rec, false, c, testNow)
		if rec.Repetitions != 0 {
			t.Errorf("confidence %v: Repetitions = %d, want 0", c, rec.Repetitions)
		}
	}
}

func TestApply_EaseFactorNeverBelowFloor(t *testing.T) {
	rec := NewRecord("q1", "u1", "c1", testNow)
	now := testNow

	// Long alternating run of hesitant successes (quality 3 shrinks the
	// ease factor each time) and failures.
	for i := 0; i < 40; i++ {
		correct := i%2 == 0
		rec = Apply(rec, correct, Unsure, now)
		if rec.EaseFactor < MinEaseFactor {
			t.Fatalf("step %d: EaseFactor = %v, below floor %v", i, rec.EaseFactor, MinEaseFactor)
		}
		now = now.Add(time.Hour)
	}
}

func TestApply_CounterInvariant(t *testing.T) {
	rec := NewRecord("q1", "u1", "c1", testNow)
	now := testNow
	answers := []bool{true, false, false, true, true, false, true}
	for _, correct := range answers {
		rec = Apply(rec, correct, Sure, now)
		if rec.TotalAttempts != rec.CorrectAttempts+rec.IncorrectAttempts {
			t.Fatalf("counter invariant broken: %d != %d + %d",
				rec.TotalAttempts, rec.CorrectAttempts, rec.IncorrectAttempts)
		}
		now = now.Add(time.Minute)
	}
	if rec.TotalAttempts != len(answers) {
		t.Errorf("TotalAttempts = %d, want %d", rec.TotalAttempts, len(answers))
	}
}

func TestApply_ConfidenceHistoryBounded(t *testing.T) {
	rec := NewRecord("q1", "u1", "c1", testNow)
	seq := []Confidence{Guess, Unsure, Sure, KnewIt, Guess, Unsure, Sure}
	now := testNow
	for _, c := range seq {
		rec = Apply(rec, true, c, now)
		now = now.Add(time.Minute)
	}

	if len(rec.ConfidenceHistory) != HistorySize {
		t.Fatalf("history length = %d, want %d", len(rec.ConfidenceHistory), HistorySize)
	}
	// Oldest entries evicted first: the last 5 of seq survive.
	want := seq[len(seq)-HistorySize:]
	for i, c := range want {
		if rec.ConfidenceHistory[i] != c {
			t.Errorf("history[%d] = %v, want %v", i, rec.ConfidenceHistory[i], c)
		}
	}
}

func TestApply_SetsLastReviewed(t *testing.T) {
	rec := NewRecord("q1", "u1", "c1", testNow)
	later := testNow.Add(3 * time.Hour)
	rec = Apply(rec, false, Guess, later)
	if !rec.LastReviewed.Equal(later) {
		t.Errorf("LastReviewed = %v, want %v", rec.LastReviewed, later)
	}
}

func TestNewRecord_Defaults(t *testing.T) {
	rec := NewRecord("q1", "u1", "c1", testNow)

	if rec.ID != "q1_u1" {
		t.Errorf("ID = %q, want %q", rec.ID, "q1_u1")
	}
	if rec.EaseFactor != DefaultEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", rec.EaseFactor, DefaultEaseFactor)
	}
	if rec.Interval != 0 || rec.Repetitions != 0 || rec.TotalAttempts != 0 {
		t.Error("expected zero interval, repetitions, and attempts")
	}
	if !rec.NextReview.Equal(testNow) || !rec.LastReviewed.Equal(testNow) {
		t.Error("expected review timestamps set to now")
	}
	if len(rec.ConfidenceHistory) != 0 {
		t.Error("expected empty confidence history")
	}
}
