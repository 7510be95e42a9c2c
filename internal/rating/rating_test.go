package rating

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/goserg/leaguesim/internal/domain"
	"github.com/goserg/leaguesim/internal/xg"
)

func playedMatch(t *testing.T, home, away domain.Team, homeGoals, awayGoals int) domain.Match {
	t.Helper()
	m, err := domain.NewMatch(home, away, xg.Default())
	require.NoError(t, err)
	m, err = m.WithResult(domain.Result{HomeGoals: homeGoals, AwayGoals: awayGoals})
	require.NoError(t, err)
	return m
}

func TestEstimateAgainstKnownOpponent(t *testing.T) {
	e := NewEstimator(xg.Default())
	a := domain.NewTeam("A", 0, 0)
	b := domain.NewTeam("B", 2, 3)

	// a scores on average exactly what a side 1 above b's defense would
	transform := xg.Default()
	scored := int(transform.ExpectedGoals(float64(4 - b.Defense)))
	matches := make([]domain.Match, 0, 4)
	for i := 0; i < 4; i++ {
		matches = append(matches, playedMatch(t, a, b, scored, 1))
	}

	ratings := map[uuid.UUID]domain.Team{b.ID: b}
	estimated, err := e.Estimate(a, matches, ratings)
	require.NoError(t, err)
	require.Equal(t, a.ID, estimated.ID)
	require.Greater(t, estimated.Strength(), a.Strength())
}

func TestEstimateInsufficientData(t *testing.T) {
	e := NewEstimator(xg.Default())
	a := domain.NewTeam("Lonely", 0, 0)
	b := domain.NewTeam("B", 0, 0)
	c := domain.NewTeam("C", 0, 0)

	_, err := e.Estimate(a, []domain.Match{playedMatch(t, b, c, 1, 0)}, nil)
	require.ErrorIs(t, err, ErrInsufficientData)
	require.ErrorContains(t, err, "Lonely")
}

func TestEstimateWeightsByMatchCount(t *testing.T) {
	e := NewEstimator(xg.Default())
	a := domain.NewTeam("A", 0, 0)
	weak := domain.NewTeam("Weak", 0, 0)
	strong := domain.NewTeam("Strong", 10, 10)

	// same scorelines against both opponents, but far more samples against
	// the strong one: the estimate must sit closer to the strong-implied
	// rating than an evenly weighted mean would
	few := []domain.Match{playedMatch(t, a, weak, 1, 1)}
	var many []domain.Match
	for i := 0; i < 9; i++ {
		many = append(many, playedMatch(t, a, strong, 1, 1))
	}

	evenish, err := e.Estimate(a, append(few[:1:1], many[:1]...), nil)
	require.NoError(t, err)
	skewed, err := e.Estimate(a, append(few, many...), nil)
	require.NoError(t, err)
	require.Greater(t, skewed.Strength(), evenish.Strength())
}

func TestEstimateAllRecoversOrdering(t *testing.T) {
	e := NewEstimator(xg.Default())
	a := domain.NewTeam("A", 0, 0)
	b := domain.NewTeam("B", 0, 0)

	// a beats b by the same margin in every one of 20 matches
	matches := make([]domain.Match, 0, 20)
	for i := 0; i < 20; i++ {
		matches = append(matches, playedMatch(t, a, b, 2, 0))
	}

	estimated, err := e.EstimateAll([]domain.Team{a, b}, matches)
	require.NoError(t, err)
	require.Len(t, estimated, 2)
	require.Equal(t, a.ID, estimated[0].ID)
	require.Equal(t, b.ID, estimated[1].ID)
	require.Greater(t, estimated[0].Strength(), estimated[1].Strength())
}

func TestEstimateAllLargerUniverse(t *testing.T) {
	e := NewEstimator(xg.Default())
	a := domain.NewTeam("A", 0, 0)
	b := domain.NewTeam("B", 0, 0)
	c := domain.NewTeam("C", 0, 0)

	// a dominates everyone, b dominates c
	var matches []domain.Match
	for i := 0; i < 10; i++ {
		matches = append(matches,
			playedMatch(t, a, b, 3, 0),
			playedMatch(t, a, c, 4, 0),
			playedMatch(t, b, c, 2, 0),
		)
	}

	estimated, err := e.EstimateAll([]domain.Team{a, b, c}, matches)
	require.NoError(t, err)
	require.Greater(t, estimated[0].Strength(), estimated[1].Strength())
	require.Greater(t, estimated[1].Strength(), estimated[2].Strength())
}

func TestEstimateAllMissingTeam(t *testing.T) {
	e := NewEstimator(xg.Default())
	a := domain.NewTeam("A", 0, 0)
	b := domain.NewTeam("B", 0, 0)
	ghost := domain.NewTeam("Ghost", 0, 0)

	_, err := e.EstimateAll([]domain.Team{a, b, ghost}, []domain.Match{playedMatch(t, a, b, 1, 0)})
	require.ErrorIs(t, err, ErrInsufficientData)
	require.ErrorContains(t, err, "Ghost")
}

func TestEstimateAllNoTeams(t *testing.T) {
	e := NewEstimator(xg.Default())
	_, err := e.EstimateAll(nil, nil)
	require.ErrorIs(t, err, ErrInsufficientData)
}
