// Package standings keeps a ranked league table. Tables are immutable:
// folding a batch of results produces a new table, so one snapshot per round
// can be retained for a running history.
package standings

import (
	"errors"
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/goserg/leaguesim/internal/domain"
)

var ErrUnknownTeam = errors.New("team is not present in the table")

const (
	DefaultWinPoints  = 3
	DefaultDrawPoints = 1
)

// Row is one team's aggregate record. Position is the 1-based rank assigned
// at the last fold.
type Row struct {
	Team          domain.Team
	Wins          int
	Draws         int
	Losses        int
	GoalsScored   int
	GoalsConceded int
	Points        int
	Position      int
}

func (r Row) MatchesPlayed() int {
	return r.Wins + r.Draws + r.Losses
}

func (r Row) GoalsDifference() int {
	return r.GoalsScored - r.GoalsConceded
}

// TieBreak orders rows by comparing keys lexicographically, each component
// descending.
type TieBreak interface {
	Key(row Row) []int
}

type defaultTieBreak struct{}

func (defaultTieBreak) Key(row Row) []int {
	return []int{row.Points, row.GoalsDifference(), row.GoalsScored}
}

// DefaultTieBreak ranks by points, then goal difference, then goals scored.
func DefaultTieBreak() TieBreak {
	return defaultTieBreak{}
}

type Table struct {
	rows       []Row
	tieBreak   TieBreak
	winPoints  int
	drawPoints int
}

func New(teams []domain.Team) Table {
	return NewWithRules(teams, DefaultTieBreak(), DefaultWinPoints, DefaultDrawPoints)
}

func NewWithRules(teams []domain.Team, tieBreak TieBreak, winPoints, drawPoints int) Table {
	rows := make([]Row, 0, len(teams))
	for i, team := range teams {
		rows = append(rows, Row{Team: team, Position: i + 1})
	}
	return Table{
		rows:       rows,
		tieBreak:   tieBreak,
		winPoints:  winPoints,
		drawPoints: drawPoints,
	}
}

// Rows returns the rows in rank order.
func (t Table) Rows() []Row {
	rows := make([]Row, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Update folds played matches into a new, re-ranked table. Unplayed matches
// are skipped. A match involving a team the table was not seeded with is a
// programming error upstream and fails immediately.
func (t Table) Update(matches []domain.Match) (Table, error) {
	known := mapset.NewThreadUnsafeSet[uuid.UUID]()
	for _, row := range t.rows {
		known.Add(row.Team.ID)
	}

	deltas := make(map[uuid.UUID]Row)
	for _, m := range matches {
		if !m.Played() {
			continue
		}
		for _, team := range []domain.Team{m.Home, m.Away} {
			if !known.Contains(team.ID) {
				return Table{}, fmt.Errorf("%w: %s in %s", ErrUnknownTeam, team.Name, m)
			}
		}

		home := deltas[m.Home.ID]
		away := deltas[m.Away.ID]
		switch {
		case m.Result.IsWin():
			home.Wins++
			away.Losses++
		case m.Result.IsLoss():
			home.Losses++
			away.Wins++
		default:
			home.Draws++
			away.Draws++
		}
		home.GoalsScored += m.Result.HomeGoals
		home.GoalsConceded += m.Result.AwayGoals
		away.GoalsScored += m.Result.AwayGoals
		away.GoalsConceded += m.Result.HomeGoals
		deltas[m.Home.ID] = home
		deltas[m.Away.ID] = away
	}

	rows := make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		delta := deltas[row.Team.ID]
		row.Wins += delta.Wins
		row.Draws += delta.Draws
		row.Losses += delta.Losses
		row.GoalsScored += delta.GoalsScored
		row.GoalsConceded += delta.GoalsConceded
		row.Points = t.winPoints*row.Wins + t.drawPoints*row.Draws
		rows = append(rows, row)
	}

	// Stable sort keeps the previous relative order among exact ties, which
	// traces back to the original seeding order.
	sort.SliceStable(rows, func(i, j int) bool {
		return lessKey(t.tieBreak.Key(rows[j]), t.tieBreak.Key(rows[i]))
	})
	for i := range rows {
		rows[i].Position = i + 1
	}

	return Table{
		rows:       rows,
		tieBreak:   t.tieBreak,
		winPoints:  t.winPoints,
		drawPoints: t.drawPoints,
	}, nil
}

func lessKey(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
