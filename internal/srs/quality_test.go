package srs

import "testing"

func TestQuality_FullTable(t *testing.T) {
	tests := []struct {
		name       string
		correct    bool
		confidence Confidence
		want       int
	}{
		{"incorrect knew_it", false, KnewIt, 0},
		{"incorrect sure", false, Sure, 0},
		{"incorrect unsure", false, Unsure, 1},
		{"incorrect guess", false, Guess, 2},
		{"correct knew_it", true, KnewIt, 5},
		{"correct sure", true, Sure, 4},
		{"correct unsure", true, Unsure, 3},
		{"correct guess", true, Guess, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quality(tt.correct, tt.confidence); got != tt.want {
				t.Errorf("Quality(%v, %v) = %d, want %d", tt.correct, tt.confidence, got, tt.want)
			}
		})
	}
}

func TestParseConfidence_RoundTrip(t *testing.T) {
	for _, c := range []Confidence{Guess, Unsure, Sure, KnewIt} {
		got, err := ParseConfidence(c.String())
		if err != nil {
			t.Fatalf("ParseConfidence(%q): %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseConfidence(%q) = %v, want %v", c.String(), got, c)
		}
	}
}

func TestParseConfidence_Unknown(t *testing.T) {
	if _, err := ParseConfidence("certain"); err == nil {
		t.Error("expected error for unknown confidence")
	}
}
