package csvload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goserg/leaguesim/internal/xg"
)

func TestReadMatches(t *testing.T) {
	input := strings.Join([]string{
		"home_team,away_team,home_goals,away_goals",
		"Arsenal,Chelsea,2,1",
		"Chelsea,Everton,0,0",
		"Everton,Arsenal,,",
	}, "\n")

	matches, teams, err := ReadMatches(strings.NewReader(input), Columns{}, xg.Default())
	require.NoError(t, err)
	require.Len(t, matches, 3)
	require.Len(t, teams, 3)

	require.Equal(t, "Arsenal", teams[0].Name)
	require.Equal(t, "Chelsea", teams[1].Name)
	require.Equal(t, "Everton", teams[2].Name)

	require.True(t, matches[0].Played())
	require.Equal(t, 2, matches[0].Result.HomeGoals)
	require.Equal(t, 1, matches[0].Result.AwayGoals)
	require.True(t, matches[1].Played())
	require.False(t, matches[2].Played(), "missing goals produce a scheduled fixture")
}

func TestReadMatchesOneTeamPerName(t *testing.T) {
	input := strings.Join([]string{
		"home_team,away_team,home_goals,away_goals",
		"Arsenal,Chelsea,1,0",
		"Chelsea,Arsenal,2,2",
	}, "\n")

	matches, teams, err := ReadMatches(strings.NewReader(input), Columns{}, xg.Default())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	require.Equal(t, matches[0].Home.ID, matches[1].Away.ID)
	require.Equal(t, matches[0].Away.ID, matches[1].Home.ID)
}

func TestReadMatchesCustomColumns(t *testing.T) {
	input := strings.Join([]string{
		"date,h,a,hg,ag",
		"2024-01-01,Arsenal,Chelsea,3,1",
	}, "\n")

	cols := Columns{HomeTeam: "h", AwayTeam: "a", HomeGoals: "hg", AwayGoals: "ag"}
	matches, teams, err := ReadMatches(strings.NewReader(input), cols, xg.Default())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	require.True(t, matches[0].Played())
	require.Equal(t, 3, matches[0].Result.HomeGoals)
}

func TestReadMatchesMissingColumn(t *testing.T) {
	input := "home_team,home_goals,away_goals\nArsenal,1,0\n"
	_, _, err := ReadMatches(strings.NewReader(input), Columns{}, xg.Default())
	require.ErrorIs(t, err, ErrMissingColumn)
}

func TestReadMatchesNoResultColumns(t *testing.T) {
	input := "home_team,away_team\nArsenal,Chelsea\n"
	matches, _, err := ReadMatches(strings.NewReader(input), Columns{}, xg.Default())
	require.NoError(t, err)
	require.False(t, matches[0].Played())
}
