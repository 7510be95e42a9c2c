package domain

import (
	"errors"
	"fmt"

	"github.com/goserg/leaguesim/internal/xg"
)

var (
	ErrSameTeam      = errors.New("a team cannot play against itself")
	ErrAlreadyPlayed = errors.New("match already has a result")
	ErrNotPlayed     = errors.New("match has no result")
	ErrNotContestant = errors.New("team is not a contestant in the match")
)

// Match is a fixture between two teams, played once it carries a Result.
// Expected goals for both sides are fixed at construction: the teams are
// immutable, so there is nothing to recompute later.
type Match struct {
	Home   Team
	Away   Team
	HomeXG float64
	AwayXG float64
	Result *Result
}

func NewMatch(home, away Team, transform xg.Transform) (Match, error) {
	if home.ID == away.ID {
		return Match{}, fmt.Errorf("%w: %s", ErrSameTeam, home.Name)
	}
	return Match{
		Home:   home,
		Away:   away,
		HomeXG: transform.ExpectedGoals(float64(home.Attack - away.Defense)),
		AwayXG: transform.ExpectedGoals(float64(away.Attack - home.Defense)),
	}, nil
}

func (m Match) Played() bool {
	return m.Result != nil
}

// WithResult returns a played copy of the match. A result is assigned at
// most once.
func (m Match) WithResult(r Result) (Match, error) {
	if m.Played() {
		return Match{}, fmt.Errorf("%w: %s", ErrAlreadyPlayed, m)
	}
	m.Result = &r
	return m, nil
}

// Swapped returns the same fixture with home and away exchanged. It is
// defined only for unplayed fixtures.
func (m Match) Swapped() (Match, error) {
	if m.Played() {
		return Match{}, fmt.Errorf("%w: %s", ErrAlreadyPlayed, m)
	}
	m.Home, m.Away = m.Away, m.Home
	m.HomeXG, m.AwayXG = m.AwayXG, m.HomeXG
	return m, nil
}

// Winner returns the winning team, or a zero team on a draw.
func (m Match) Winner() (Team, error) {
	if !m.Played() {
		return Team{}, fmt.Errorf("%w: %s", ErrNotPlayed, m)
	}
	switch {
	case m.Result.IsWin():
		return m.Home, nil
	case m.Result.IsLoss():
		return m.Away, nil
	}
	return Team{}, nil
}

// Loser returns the losing team, or a zero team on a draw.
func (m Match) Loser() (Team, error) {
	if !m.Played() {
		return Team{}, fmt.Errorf("%w: %s", ErrNotPlayed, m)
	}
	switch {
	case m.Result.IsWin():
		return m.Away, nil
	case m.Result.IsLoss():
		return m.Home, nil
	}
	return Team{}, nil
}

func (m Match) IsContestant(team Team) bool {
	return m.Home.ID == team.ID || m.Away.ID == team.ID
}

func (m Match) Opponent(team Team) (Team, error) {
	switch team.ID {
	case m.Home.ID:
		return m.Away, nil
	case m.Away.ID:
		return m.Home, nil
	}
	return Team{}, fmt.Errorf("%w: %s in %s", ErrNotContestant, team.Name, m)
}

// Goals returns the number of goals the given team scored.
func (m Match) Goals(team Team) (int, error) {
	if !m.Played() {
		return 0, fmt.Errorf("%w: %s", ErrNotPlayed, m)
	}
	switch team.ID {
	case m.Home.ID:
		return m.Result.HomeGoals, nil
	case m.Away.ID:
		return m.Result.AwayGoals, nil
	}
	return 0, fmt.Errorf("%w: %s in %s", ErrNotContestant, team.Name, m)
}

// GoalsConceded returns the number of goals scored against the given team.
func (m Match) GoalsConceded(team Team) (int, error) {
	opponent, err := m.Opponent(team)
	if err != nil {
		return 0, err
	}
	return m.Goals(opponent)
}

func (m Match) String() string {
	if !m.Played() {
		return fmt.Sprintf("%s - %s", m.Home.Name, m.Away.Name)
	}
	return fmt.Sprintf("%s %s %s", m.Home.Name, m.Result, m.Away.Name)
}
