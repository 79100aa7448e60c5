package predictiontypes

// Point tiers awarded by Score. Highest matching tier wins, no stacking.
const (
	PointsExact             = 3
	PointsCorrectDifference = 2
	PointsCorrectWinner     = 1
	PointsWrong             = 0
)

// Outcome is the result class of a score pair.
type Outcome int

const (
	OutcomeDraw Outcome = iota
	OutcomeHomeWin
	OutcomeAwayWin
)

// OutcomeOf derives the outcome class from the sign of the goal difference.
func OutcomeOf(homeGoals, awayGoals int) Outcome {
	switch {
	case homeGoals > awayGoals:
		return OutcomeHomeWin
	case homeGoals < awayGoals:
		return OutcomeAwayWin
	default:
		return OutcomeDraw
	}
}

// Score maps a predicted score and an actual final score to points. Pure and
// deterministic; the recalculation sweep relies on repeated calls with the same
// inputs producing the same result. Callers must not invoke it before the match
// has non-negative final scores.
func Score(predHome, predAway, actualHome, actualAway int) int {
	if predHome == actualHome && predAway == actualAway {
		return PointsExact
	}

	if OutcomeOf(predHome, predAway) != OutcomeOf(actualHome, actualAway) {
		return PointsWrong
	}

	predDiff := absInt(predHome - predAway)
	actualDiff := absInt(actualHome - actualAway)
	if predDiff == actualDiff {
		return PointsCorrectDifference
	}

	return PointsCorrectWinner
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
