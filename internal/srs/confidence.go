package srs

import "fmt"

// Confidence is the learner's self-reported certainty for an answer,
// ordered from blind guess to certain recall.
type Confidence int

const (
	Guess Confidence = iota
	Unsure
	Sure
	KnewIt
)

func (c Confidence) String() string {
	switch c {
	case Guess:
		return "guess"
	case Unsure:
		return "unsure"
	case Sure:
		return "sure"
	case KnewIt:
		return "knew_it"
	default:
		return fmt.Sprintf("confidence(%d)", int(c))
	}
}

// ParseConfidence converts the string form back to a Confidence.
func ParseConfidence(s string) (Confidence, error) {
	switch s {
	case "guess":
		return Guess, nil
	case "unsure":
		return Unsure, nil
	case "sure":
		return Sure, nil
	case "knew_it":
		return KnewIt, nil
	default:
		return 0, fmt.Errorf("unknown confidence %q", s)
	}
}
