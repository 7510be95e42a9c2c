// Package stats aggregates played matches into corpus, per-team and
// head-to-head statistics.
package stats

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/goserg/leaguesim/internal/domain"
)

var ErrNoMatches = errors.New("at least one played match is required")

// MatchStats describes a corpus of played matches, possibly involving many
// different teams.
type MatchStats struct {
	NumberOfMatches int
	Goals           int
	Frequency       map[domain.Result]int
}

func NewMatchStats(matches []domain.Match) (MatchStats, error) {
	played := Played(matches)
	if len(played) == 0 {
		return MatchStats{}, ErrNoMatches
	}
	s := MatchStats{
		NumberOfMatches: len(played),
		Frequency:       make(map[domain.Result]int),
	}
	for _, m := range played {
		s.Goals += m.Result.HomeGoals + m.Result.AwayGoals
		s.Frequency[*m.Result]++
	}
	return s, nil
}

func (s MatchStats) AverageGoals() float64 {
	return float64(s.Goals) / float64(s.NumberOfMatches)
}

// TeamStats describes one team's record over a set of played matches it
// took part in.
type TeamStats struct {
	Team            domain.Team
	NumberOfMatches int
	Wins            int
	Draws           int
	Losses          int
	GoalsScored     int
	GoalsConceded   int
}

func NewTeamStats(team domain.Team, matches []domain.Match) (TeamStats, error) {
	own := MatchesOf(team, matches)
	if len(own) == 0 {
		return TeamStats{}, fmt.Errorf("%w: %s", ErrNoMatches, team.Name)
	}
	s := TeamStats{Team: team, NumberOfMatches: len(own)}
	for _, m := range own {
		scored, err := m.Goals(team)
		if err != nil {
			return TeamStats{}, err
		}
		conceded, err := m.GoalsConceded(team)
		if err != nil {
			return TeamStats{}, err
		}
		s.GoalsScored += scored
		s.GoalsConceded += conceded
		switch {
		case scored > conceded:
			s.Wins++
		case scored < conceded:
			s.Losses++
		default:
			s.Draws++
		}
	}
	return s, nil
}

func (s TeamStats) WinPercentage() float64 {
	return float64(s.Wins) / float64(s.NumberOfMatches)
}

func (s TeamStats) DrawPercentage() float64 {
	return float64(s.Draws) / float64(s.NumberOfMatches)
}

func (s TeamStats) LossPercentage() float64 {
	return float64(s.Losses) / float64(s.NumberOfMatches)
}

func (s TeamStats) AverageGoalsScored() float64 {
	return float64(s.GoalsScored) / float64(s.NumberOfMatches)
}

func (s TeamStats) AverageGoalsConceded() float64 {
	return float64(s.GoalsConceded) / float64(s.NumberOfMatches)
}

// HeadToHead is a team's record against one specific opponent.
type HeadToHead struct {
	TeamStats
	Opponent domain.Team
}

func NewHeadToHead(team, opponent domain.Team, matches []domain.Match) (HeadToHead, error) {
	shared := make([]domain.Match, 0, len(matches))
	for _, m := range MatchesOf(team, matches) {
		if m.IsContestant(opponent) {
			shared = append(shared, m)
		}
	}
	teamStats, err := NewTeamStats(team, shared)
	if err != nil {
		return HeadToHead{}, err
	}
	return HeadToHead{TeamStats: teamStats, Opponent: opponent}, nil
}

// Played filters the matches that have a result.
func Played(matches []domain.Match) []domain.Match {
	played := make([]domain.Match, 0, len(matches))
	for _, m := range matches {
		if m.Played() {
			played = append(played, m)
		}
	}
	return played
}

// MatchesOf filters the played matches the team took part in.
func MatchesOf(team domain.Team, matches []domain.Match) []domain.Match {
	own := make([]domain.Match, 0, len(matches))
	for _, m := range Played(matches) {
		if m.IsContestant(team) {
			own = append(own, m)
		}
	}
	return own
}

// Teams lists the distinct teams of the matches in order of first
// appearance.
func Teams(matches []domain.Match) []domain.Team {
	seen := mapset.NewThreadUnsafeSet[uuid.UUID]()
	var teams []domain.Team
	for _, m := range matches {
		if seen.Add(m.Home.ID) {
			teams = append(teams, m.Home)
		}
		if seen.Add(m.Away.ID) {
			teams = append(teams, m.Away)
		}
	}
	return teams
}
