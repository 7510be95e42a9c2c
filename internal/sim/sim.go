// Package sim draws match results from expected goals. Each side's goal
// count is an independent Poisson sample with mean equal to that side's
// expected goals.
package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/goserg/leaguesim/internal/domain"
)

type Simulator struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Simulator {
	return &Simulator{rng: rng}
}

// Poisson samples a Poisson-distributed integer with mean lambda using
// Knuth's algorithm. The accumulator starts from a fresh uniform draw.
func Poisson(rng *rand.Rand, lambda float64) int {
	limit := math.Exp(-lambda)
	product := rng.Float64()
	n := 0
	for product >= limit {
		product *= rng.Float64()
		n++
	}
	return n
}

// Match plays an unplayed match, drawing both scorelines independently from
// the sides' expected goals.
func (s *Simulator) Match(m domain.Match) (domain.Match, error) {
	if m.Played() {
		return domain.Match{}, fmt.Errorf("%w: %s", domain.ErrAlreadyPlayed, m)
	}
	return m.WithResult(domain.Result{
		HomeGoals: Poisson(s.rng, m.HomeXG),
		AwayGoals: Poisson(s.rng, m.AwayXG),
	})
}

// Round plays every unplayed match in the round, preserving match order.
// Already played matches are kept as they are.
func (s *Simulator) Round(r domain.Round) (domain.Round, error) {
	matches := make([]domain.Match, 0, len(r.Matches))
	for _, m := range r.Matches {
		if m.Played() {
			matches = append(matches, m)
			continue
		}
		played, err := s.Match(m)
		if err != nil {
			return domain.Round{}, err
		}
		matches = append(matches, played)
	}
	return domain.Round{Matches: matches}, nil
}

// Tournament plays every round in order.
func (s *Simulator) Tournament(t domain.Tournament) (domain.Tournament, error) {
	rounds := make([]domain.Round, 0, len(t.Rounds))
	for _, r := range t.Rounds {
		played, err := s.Round(r)
		if err != nil {
			return domain.Tournament{}, err
		}
		rounds = append(rounds, played)
	}
	return domain.Tournament{Rounds: rounds}, nil
}
