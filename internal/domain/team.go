package domain

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// Team is identified by its ID, not by name: two teams with the same name
// are still distinct contestants.
type Team struct {
	ID      uuid.UUID
	Name    string
	Attack  int
	Defense int
}

func NewTeam(name string, attack, defense int) Team {
	return Team{
		ID:      uuid.New(),
		Name:    name,
		Attack:  attack,
		Defense: defense,
	}
}

// TeamFromStrength builds a team from its overall strength and the
// difference between its attack and defense.
func TeamFromStrength(name string, strength, adDifference int) Team {
	return NewTeam(name, strength+adDifference, strength-adDifference)
}

// GenerateTeams creates one team per name with a random strength in
// [minStrength, maxStrength] and a random attack/defense split.
func GenerateTeams(rng *rand.Rand, names []string, minStrength, maxStrength int) []Team {
	teams := make([]Team, 0, len(names))
	for _, name := range names {
		strength := minStrength + rng.Intn(maxStrength-minStrength+1)
		sign := 1
		if rng.Intn(2) == 1 {
			sign = -1
		}
		adDifference := int(rng.Float64()*math.Sqrt(float64(strength))) * sign
		teams = append(teams, TeamFromStrength(name, strength, adDifference))
	}
	return teams
}

func (t Team) Strength() float64 {
	return float64(t.Attack+t.Defense) / 2
}

// WithRating returns a copy of the team carrying new ratings but the same
// identity.
func (t Team) WithRating(attack, defense int) Team {
	t.Attack = attack
	t.Defense = defense
	return t
}

func (t Team) IsZero() bool {
	return t.ID == uuid.Nil
}

func (t Team) String() string {
	return t.Name
}
