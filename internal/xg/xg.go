package xg

import (
	"errors"
	"math"
)

var ErrNonPositive = errors.New("expected goals must be positive")

// Transform converts between the rating space and the expected-goals space.
// ExpectedGoals(0) equals Constant; Factor controls how fast the expectation
// grows with the strength difference.
type Transform struct {
	Constant float64
	Factor   float64
}

func Default() Transform {
	return Transform{
		Constant: 1.3,
		Factor:   1.3,
	}
}

// ExpectedGoals converts a strength difference (attacker's attack minus
// defender's defense) to the mean number of goals the attacker is expected
// to score.
func (t Transform) ExpectedGoals(difference float64) float64 {
	return t.Constant * math.Pow(t.Factor, difference)
}

// StrengthDifference is the inverse of ExpectedGoals.
func (t Transform) StrengthDifference(expectedGoals float64) (float64, error) {
	if expectedGoals <= 0 {
		return 0, ErrNonPositive
	}
	return math.Log(expectedGoals/t.Constant) / math.Log(t.Factor), nil
}
