package domain

import "fmt"

// Result is a value type and is comparable, so it can be used as a map key
// when tallying scoreline frequencies.
type Result struct {
	HomeGoals int
	AwayGoals int
}

// IsWin reports a win from the home side's perspective.
func (r Result) IsWin() bool {
	return r.HomeGoals > r.AwayGoals
}

func (r Result) IsDraw() bool {
	return r.HomeGoals == r.AwayGoals
}

func (r Result) IsLoss() bool {
	return r.HomeGoals < r.AwayGoals
}

func (r Result) String() string {
	return fmt.Sprintf("%d - %d", r.HomeGoals, r.AwayGoals)
}
