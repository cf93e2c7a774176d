package srs

import (
	"math"
	"testing"
	"time"
)

func TestAccuracy_NoAttempts(t *testing.T) {
	rec := PerformanceRecord{}
	if got := Accuracy(rec); got != 0 {
		t.Errorf("Accuracy = %v, want 0", got)
	}
}

func TestAccuracy_OneOfThree(t *testing.T) {
	rec := PerformanceRecord{TotalAttempts: 3, CorrectAttempts: 1, IncorrectAttempts: 2}
	got := Accuracy(rec)
	if math.Abs(got-100.0/3.0) > 1e-9 {
		t.Errorf("Accuracy = %v, want %v", got, 100.0/3.0)
	}
	if !IsWeakSpot(rec) {
		t.Error("expected weak spot at 33%% over 3 attempts")
	}
}

func TestIsWeakSpot_NeedsTwoAttempts(t *testing.T) {
	rec := PerformanceRecord{TotalAttempts: 1, IncorrectAttempts: 1}
	if IsWeakSpot(rec) {
		t.Error("single attempt must not classify as weak spot")
	}
}

func TestIsWeakSpot_BoundaryAccuracy(t *testing.T) {
	// Exactly 50% is not weak.
	rec := PerformanceRecord{TotalAttempts: 4, CorrectAttempts: 2, IncorrectAttempts: 2}
	if IsWeakSpot(rec) {
		t.Error("50%% accuracy must not classify as weak spot")
	}
}

func TestIsMastered_Threshold(t *testing.T) {
	for reps, want := range map[int]bool{0: false, 2: false, 3: true, 5: true} {
		rec := PerformanceRecord{Repetitions: reps}
		if got := IsMastered(rec); got != want {
			t.Errorf("IsMastered(repetitions=%d) = %v, want %v", reps, got, want)
		}
	}
}

func TestIsDue(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		next time.Time
		want bool
	}{
		{"past", now.Add(-time.Minute), true},
		{"exactly now", now, true},
		{"future", now.Add(time.Minute), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := PerformanceRecord{NextReview: tt.next}
			if got := IsDue(rec, now); got != tt.want {
				t.Errorf("IsDue = %v, want %v", got, tt.want)
			}
		})
	}
}
