// Package rating reconstructs team attack/defense ratings from observed
// scorelines by running average goals through the inverse expected-goals
// transform.
package rating

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/goserg/leaguesim/internal/domain"
	"github.com/goserg/leaguesim/internal/stats"
	"github.com/goserg/leaguesim/internal/xg"
)

var ErrInsufficientData = errors.New("no played matches for team")

type Estimator struct {
	transform xg.Transform
}

func NewEstimator(transform xg.Transform) Estimator {
	return Estimator{transform: transform}
}

// implied converts a head-to-head sample into the attack/defense rating the
// sample implies, relative to the opponent's current rating. A zero average
// is substituted with 1/(k+1) over k matches so the inverse transform stays
// defined; the substitute shrinks with the sample size.
func (e Estimator) implied(h2h stats.HeadToHead, opponent domain.Team) (attack, defense float64, err error) {
	scored := h2h.AverageGoalsScored()
	if scored == 0 {
		scored = 1 / float64(h2h.NumberOfMatches+1)
	}
	scoredDiff, err := e.transform.StrengthDifference(scored)
	if err != nil {
		return 0, 0, err
	}

	conceded := h2h.AverageGoalsConceded()
	if conceded == 0 {
		conceded = 1 / float64(h2h.NumberOfMatches+1)
	}
	concededDiff, err := e.transform.StrengthDifference(conceded)
	if err != nil {
		return 0, 0, err
	}

	attack = float64(opponent.Defense) + scoredDiff
	defense = float64(opponent.Attack) - concededDiff
	return attack, defense, nil
}

// Estimate infers one team's rating from its played matches, taking every
// opponent's rating from the ratings map when present and from the match
// record otherwise. Per-opponent implied ratings are combined with a
// match-count-weighted mean.
func (e Estimator) Estimate(team domain.Team, matches []domain.Match, ratings map[uuid.UUID]domain.Team) (domain.Team, error) {
	own := stats.MatchesOf(team, matches)
	if len(own) == 0 {
		return domain.Team{}, fmt.Errorf("%w: %s", ErrInsufficientData, team.Name)
	}

	var opponents []domain.Team
	seen := make(map[uuid.UUID]bool)
	for _, m := range own {
		opponent, err := m.Opponent(team)
		if err != nil {
			return domain.Team{}, err
		}
		if seen[opponent.ID] {
			continue
		}
		seen[opponent.ID] = true
		if current, ok := ratings[opponent.ID]; ok {
			opponent = current
		}
		opponents = append(opponents, opponent)
	}

	var attackSum, defenseSum, weightSum float64
	for _, opponent := range opponents {
		h2h, err := stats.NewHeadToHead(team, opponent, own)
		if err != nil {
			return domain.Team{}, err
		}
		attack, defense, err := e.implied(h2h, opponent)
		if err != nil {
			return domain.Team{}, err
		}
		weight := float64(h2h.NumberOfMatches)
		attackSum += attack * weight
		defenseSum += defense * weight
		weightSum += weight
	}

	return team.WithRating(
		int(math.Round(attackSum/weightSum)),
		int(math.Round(defenseSum/weightSum)),
	), nil
}

// EstimateAll infers ratings for a whole universe of teams with no priors.
// Every team is first seeded against a neutral anchor built from population
// medians, then refined in a single pass in ascending order of current
// strength, each team using the latest ratings of all the others.
func (e Estimator) EstimateAll(teams []domain.Team, matches []domain.Match) ([]domain.Team, error) {
	if len(teams) == 0 {
		return nil, ErrInsufficientData
	}
	played := stats.Played(matches)

	perTeam := make([]stats.TeamStats, 0, len(teams))
	for _, team := range teams {
		s, err := stats.NewTeamStats(team, played)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInsufficientData, team.Name)
		}
		perTeam = append(perTeam, s)
	}

	scored := make([]float64, 0, len(perTeam))
	conceded := make([]float64, 0, len(perTeam))
	sizes := make([]float64, 0, len(perTeam))
	for _, s := range perTeam {
		scored = append(scored, s.AverageGoalsScored())
		conceded = append(conceded, s.AverageGoalsConceded())
		sizes = append(sizes, float64(s.NumberOfMatches))
	}

	seedAttack, seedDefense, err := e.anchorSeed(median(scored), median(conceded), median(sizes))
	if err != nil {
		return nil, err
	}

	ratings := make(map[uuid.UUID]domain.Team, len(teams))
	order := make([]domain.Team, 0, len(teams))
	for _, team := range teams {
		seeded := team.WithRating(seedAttack, seedDefense)
		ratings[team.ID] = seeded
		order = append(order, seeded)
	}

	// One ordered pass, weakest first, not a fixed-point loop.
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Strength() < order[j].Strength()
	})
	for _, team := range order {
		estimated, err := e.Estimate(ratings[team.ID], played, ratings)
		if err != nil {
			return nil, err
		}
		ratings[team.ID] = estimated
	}

	estimated := make([]domain.Team, 0, len(teams))
	for _, team := range teams {
		estimated = append(estimated, ratings[team.ID])
	}
	return estimated, nil
}

// anchorSeed rates a team that scored medianScored and conceded
// medianConceded per match against a neutral (0, 0) opponent.
func (e Estimator) anchorSeed(medianScored, medianConceded, medianSize float64) (attack, defense int, err error) {
	if medianScored == 0 {
		medianScored = 1 / (medianSize + 1)
	}
	if medianConceded == 0 {
		medianConceded = 1 / (medianSize + 1)
	}
	scoredDiff, err := e.transform.StrengthDifference(medianScored)
	if err != nil {
		return 0, 0, err
	}
	concededDiff, err := e.transform.StrengthDifference(medianConceded)
	if err != nil {
		return 0, 0, err
	}
	return int(math.Round(scoredDiff)), int(math.Round(-concededDiff)), nil
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
