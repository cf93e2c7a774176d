package srs

// qualityTable maps (correctness, confidence) to an SM-2 quality score.
// A confidently wrong answer is penalized hardest; a correct blind guess
// earns no more than a correct-but-uncertain answer.
var qualityTable = map[bool]map[Confidence]int{
	true: {
		KnewIt: 5,
		Sure:   4,
		Unsure: 3,
		Guess:  3,
	},
	false: {
		KnewIt: 0,
		Sure:   0,
		Unsure: 1,
		Guess:  2,
	},
}

// Quality derives the 0-5 quality score feeding the scheduler update.
// Total over the 2x4 input space.
func Quality(correct bool, confidence Confidence) int {
	return qualityTable[correct][confidence]
}
