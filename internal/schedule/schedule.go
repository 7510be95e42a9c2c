// Package schedule builds round-robin tournaments with the classic
// pivot-and-rotate (polygon) method.
package schedule

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/goserg/leaguesim/internal/domain"
	"github.com/goserg/leaguesim/internal/xg"
)

var (
	ErrTooFewTeams       = errors.New("at least two teams are required")
	ErrInvalidIterations = errors.New("at least one iteration is required")
)

type Scheduler struct {
	rng       *rand.Rand
	transform xg.Transform
}

func New(rng *rand.Rand, transform xg.Transform) *Scheduler {
	return &Scheduler{
		rng:       rng,
		transform: transform,
	}
}

// Tournament schedules the given teams for the given number of round-robin
// iterations. Within one iteration every team plays every other team exactly
// once; with an odd team count one team sits out per round. Home and away
// are assigned with a coin flip in the first iteration and alternate in the
// following ones.
func (s *Scheduler) Tournament(teams []domain.Team, iterations int) (domain.Tournament, error) {
	if len(teams) < 2 {
		return domain.Tournament{}, fmt.Errorf("%w: got %d", ErrTooFewTeams, len(teams))
	}
	if iterations < 1 {
		return domain.Tournament{}, fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}

	// Pad with a single bye slot (nil) when the team count is odd, then
	// shuffle once before the first iteration.
	line := make([]*domain.Team, 0, len(teams)+1)
	for i := range teams {
		line = append(line, &teams[i])
	}
	if len(line)%2 != 0 {
		line = append(line, nil)
	}
	s.rng.Shuffle(len(line), func(i, j int) {
		line[i], line[j] = line[j], line[i]
	})

	pivot, rest := line[0], line[1:]
	first := make([]domain.Round, 0, len(rest))
	for shift := 0; shift < len(rest); shift++ {
		round, err := s.buildRound(pivot, rest, shift)
		if err != nil {
			return domain.Tournament{}, err
		}
		first = append(first, round)
	}

	rounds := append([]domain.Round{}, first...)
	previous := first
	for i := 1; i < iterations; i++ {
		next := make([]domain.Round, 0, len(previous))
		for _, r := range previous {
			swapped, err := r.Swapped()
			if err != nil {
				return domain.Tournament{}, err
			}
			next = append(next, swapped)
		}
		rounds = append(rounds, next...)
		previous = next
	}
	return domain.Tournament{Rounds: rounds}, nil
}

// buildRound pairs the arrangement [pivot, rest rotated left by shift] from
// the two ends inward. Pairings involving the bye slot are dropped.
func (s *Scheduler) buildRound(pivot *domain.Team, rest []*domain.Team, shift int) (domain.Round, error) {
	n := len(rest) + 1
	arrangement := make([]*domain.Team, 0, n)
	arrangement = append(arrangement, pivot)
	for i := 0; i < len(rest); i++ {
		arrangement = append(arrangement, rest[(shift+i)%len(rest)])
	}

	matches := make([]domain.Match, 0, n/2)
	for i := 0; i < n/2; i++ {
		home, away := arrangement[i], arrangement[n-1-i]
		if home == nil || away == nil {
			continue
		}
		match, err := domain.NewMatch(*home, *away, s.transform)
		if err != nil {
			return domain.Round{}, err
		}
		if s.rng.Float64() < 0.5 {
			match, err = match.Swapped()
			if err != nil {
				return domain.Round{}, err
			}
		}
		matches = append(matches, match)
	}
	return domain.NewRound(matches)
}
