// Package view renders rounds, tables and ratings as aligned text for
// human consumption.
package view

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/goserg/leaguesim/internal/domain"
	"github.com/goserg/leaguesim/internal/standings"
	"github.com/goserg/leaguesim/internal/stats"
)

func Table(t standings.Table) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tTEAM\tMP\tW\tD\tL\tGS\tGC\tGD\tPTS")
	for _, row := range t.Rows() {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			row.Position,
			row.Team.Name,
			row.MatchesPlayed(),
			row.Wins,
			row.Draws,
			row.Losses,
			row.GoalsScored,
			row.GoalsConceded,
			row.GoalsDifference(),
			row.Points,
		)
	}
	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func Round(r domain.Round) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HOME\tRESULT\tAWAY")
	for _, m := range r.Matches {
		result := "-"
		if m.Played() {
			result = m.Result.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.Home.Name, result, m.Away.Name)
	}
	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func Ratings(teams []domain.Team) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TEAM\tATTACK\tDEFENSE\tSTRENGTH")
	for _, t := range teams {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\n", t.Name, t.Attack, t.Defense, t.Strength())
	}
	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func Stats(s stats.MatchStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Number of matches:  %d\n", s.NumberOfMatches)
	fmt.Fprintf(&b, "Avg. goals:         %.2f\n", s.AverageGoals())
	fmt.Fprintf(&b, "Results frequency\n")
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, result := range sortedResults(s.Frequency) {
		share := float64(s.Frequency[result]) / float64(s.NumberOfMatches)
		fmt.Fprintf(w, "%s\t%.2f%%\n", result, share*100)
	}
	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func sortedResults(frequency map[domain.Result]int) []domain.Result {
	results := make([]domain.Result, 0, len(frequency))
	for r := range frequency {
		results = append(results, r)
	}
	// most frequent first, scoreline as the tie break
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if frequency[a] != frequency[b] {
			return frequency[a] > frequency[b]
		}
		if a.HomeGoals != b.HomeGoals {
			return a.HomeGoals < b.HomeGoals
		}
		return a.AwayGoals < b.AwayGoals
	})
	return results
}
