package domain

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

var (
	ErrEmptyRound    = errors.New("round must contain at least one match")
	ErrDuplicateTeam = errors.New("team appears twice in one round")
)

// Round is a non-empty set of matches played concurrently, so no team may
// appear in it twice.
type Round struct {
	Matches []Match
}

func NewRound(matches []Match) (Round, error) {
	if len(matches) == 0 {
		return Round{}, ErrEmptyRound
	}
	seen := mapset.NewThreadUnsafeSet[uuid.UUID]()
	for _, m := range matches {
		if !seen.Add(m.Home.ID) {
			return Round{}, fmt.Errorf("%w: %s", ErrDuplicateTeam, m.Home.Name)
		}
		if !seen.Add(m.Away.ID) {
			return Round{}, fmt.Errorf("%w: %s", ErrDuplicateTeam, m.Away.Name)
		}
	}
	return Round{Matches: matches}, nil
}

// Swapped returns the round with home and away exchanged in every match.
func (r Round) Swapped() (Round, error) {
	swapped := make([]Match, 0, len(r.Matches))
	for _, m := range r.Matches {
		s, err := m.Swapped()
		if err != nil {
			return Round{}, err
		}
		swapped = append(swapped, s)
	}
	return Round{Matches: swapped}, nil
}

// Tournament is an ordered sequence of rounds.
type Tournament struct {
	Rounds []Round
}

// Matches flattens the tournament preserving round order.
func (t Tournament) Matches() []Match {
	var matches []Match
	for _, r := range t.Rounds {
		matches = append(matches, r.Matches...)
	}
	return matches
}
