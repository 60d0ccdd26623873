// Package report renders achievements, leaderboards, and relationship
// tables for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/maeel/garoustats/internal/model"
	"github.com/maeel/garoustats/internal/rank"
	"github.com/maeel/garoustats/internal/relation"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// PrintAchievements prints one partition's achievement list.
// Comparison facts have no global rank and render "—" in the rank column.
func PrintAchievements(w io.Writer, player, label string, achievements []model.Achievement) {
	fmt.Fprintf(w, "\n=== %s — %s ===\n\n", player, label)
	if len(achievements) == 0 {
		fmt.Fprintln(w, "No achievements in this partition.")
		return
	}

	table := newTable(w)
	table.Header("CATEGORY", "TITLE", "RANK", "DESCRIPTION")
	for _, a := range achievements {
		rankStr := "—"
		if a.Rank > 0 {
			rankStr = fmt.Sprintf("%d/%d", a.Rank, a.TotalRanked)
		}
		marker := ""
		if a.Polarity == model.PolarityBad {
			marker = " (!)"
		}
		table.Append(string(a.Category), a.Title+marker, rankStr, a.Description)
	}
	table.Render()
}

// PrintLeaderboard prints a full metric ranking. If focus is non-empty,
// that player's row is marked with ">".
func PrintLeaderboard(w io.Writer, metric string, r *rank.Ranking, focus string) {
	fmt.Fprintf(w, "\n=== %s — %d eligible ===\n\n", metric, r.Len())
	if r.Len() == 0 {
		fmt.Fprintln(w, "No eligible players for this metric.")
		return
	}

	table := newTable(w)
	table.Header(" ", "RANK", "PLAYER", "VALUE", "SAMPLE")
	for i, e := range r.Entries {
		marker := " "
		if focus != "" && e.Player == focus {
			marker = ">"
		}
		table.Append(marker, strconv.Itoa(i+1), e.Player,
			fmt.Sprintf("%.2f", e.Value), strconv.Itoa(e.Sample))
	}
	table.Render()
}

// PrintRelations prints the pairwise table for one player, marking the
// superlative rows.
func PrintRelations(w io.Writer, player string, rels []model.RelationStats, sup relation.Superlatives) {
	fmt.Fprintf(w, "\n=== %s — relationships ===\n\n", player)
	if len(rels) == 0 {
		fmt.Fprintln(w, "No relationships above the shared-games threshold.")
		return
	}

	mark := func(r *model.RelationStats) string {
		switch {
		case sup.BestTeammate != nil && r.Other == sup.BestTeammate.Other:
			return "best teammate"
		case sup.WorstTeammate != nil && r.Other == sup.WorstTeammate.Other:
			return "worst teammate"
		case sup.BestMatchup != nil && r.Other == sup.BestMatchup.Other:
			return "best matchup"
		case sup.WorstMatchup != nil && r.Other == sup.WorstMatchup.Other:
			return "worst matchup"
		}
		return ""
	}

	table := newTable(w)
	table.Header("PLAYER", "SAME_G", "SAME_W", "SAME_WR", "OPP_G", "OPP_W", "OPP_WR", "NOTE")
	for i := range rels {
		r := &rels[i]
		sameWR, oppWR := "—", "—"
		if r.SameCampGames > 0 {
			sameWR = fmt.Sprintf("%.0f%%", r.SameCampWinRate())
		}
		if r.OpposingGames > 0 {
			oppWR = fmt.Sprintf("%.0f%%", r.OpposingWinRate())
		}
		table.Append(r.Other,
			strconv.Itoa(r.SameCampGames), strconv.Itoa(r.SameCampWins), sameWR,
			strconv.Itoa(r.OpposingGames), strconv.Itoa(r.OpposingWins), oppWR,
			mark(r))
	}
	table.Render()
}
