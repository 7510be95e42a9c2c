// Package csvload reads teams and matches from delimited records with a
// header row. It builds at most one team per distinct name.
package csvload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goserg/leaguesim/internal/domain"
	"github.com/goserg/leaguesim/internal/xg"
)

var ErrMissingColumn = errors.New("required column is missing")

// Columns names the columns of interest; zero values fall back to the
// defaults.
type Columns struct {
	HomeTeam  string
	AwayTeam  string
	HomeGoals string
	AwayGoals string
}

func (c Columns) withDefaults() Columns {
	if c.HomeTeam == "" {
		c.HomeTeam = "home_team"
	}
	if c.AwayTeam == "" {
		c.AwayTeam = "away_team"
	}
	if c.HomeGoals == "" {
		c.HomeGoals = "home_goals"
	}
	if c.AwayGoals == "" {
		c.AwayGoals = "away_goals"
	}
	return c
}

// ReadMatches parses matches from r. Rows with non-numeric goals become
// unplayed fixtures. The returned teams are in order of first appearance.
func ReadMatches(r io.Reader, cols Columns, transform xg.Transform) ([]domain.Match, []domain.Team, error) {
	cols = cols.withDefaults()

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, nil, err
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, required := range []string{cols.HomeTeam, cols.AwayTeam} {
		if _, ok := index[required]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	byName := make(map[string]domain.Team)
	var teams []domain.Team
	team := func(name string) domain.Team {
		if t, ok := byName[name]; ok {
			return t
		}
		t := domain.NewTeam(name, 0, 0)
		byName[name] = t
		teams = append(teams, t)
		return t
	}

	var matches []domain.Match
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		match, err := domain.NewMatch(team(record[index[cols.HomeTeam]]), team(record[index[cols.AwayTeam]]), transform)
		if err != nil {
			return nil, nil, err
		}
		if result, ok := parseResult(record, index, cols); ok {
			match, err = match.WithResult(result)
			if err != nil {
				return nil, nil, err
			}
		}
		matches = append(matches, match)
	}
	return matches, teams, nil
}

func parseResult(record []string, index map[string]int, cols Columns) (domain.Result, bool) {
	hi, ok := index[cols.HomeGoals]
	if !ok || hi >= len(record) {
		return domain.Result{}, false
	}
	ai, ok := index[cols.AwayGoals]
	if !ok || ai >= len(record) {
		return domain.Result{}, false
	}
	home, err := strconv.Atoi(record[hi])
	if err != nil || home < 0 {
		return domain.Result{}, false
	}
	away, err := strconv.Atoi(record[ai])
	if err != nil || away < 0 {
		return domain.Result{}, false
	}
	return domain.Result{HomeGoals: home, AwayGoals: away}, true
}
