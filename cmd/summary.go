package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/maeel/garoustats/internal/storage"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the corpus",
	Long: `Display aggregate statistics about the stored game corpus:
total game count, modded share, date range, player count, and the
camp distribution.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	ov, err := db.GetOverview()
	if err != nil {
		return fmt.Errorf("get overview: %w", err)
	}
	if ov.TotalGames == 0 {
		fmt.Fprintln(os.Stdout, "No games stored yet. Run 'garoustats load <corpus.json>' to add some.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "\n=== Corpus Summary ===\n\n")
	fmt.Fprintf(os.Stdout, "  Games stored  : %d\n", ov.TotalGames)
	fmt.Fprintf(os.Stdout, "  Modded games  : %d\n", ov.ModdedGames)
	fmt.Fprintf(os.Stdout, "  Players seen  : %d\n", ov.UniquePlayers)
	fmt.Fprintf(os.Stdout, "  Date range    : %s → %s\n", ov.FirstGame, ov.LastGame)

	camps, err := db.GetCampBreakdown()
	if err != nil {
		return fmt.Errorf("get camp breakdown: %w", err)
	}
	fmt.Fprintf(os.Stdout, "\n--- Camps ---\n\n")
	ct := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	ct.Header("CAMP", "GAMES", "WINS", "WIN%")
	for _, c := range camps {
		winPct := "—"
		if c.Games > 0 {
			winPct = fmt.Sprintf("%.0f%%", float64(c.Wins)/float64(c.Games)*100)
		}
		ct.Append(c.Camp, strconv.Itoa(c.Games), strconv.Itoa(c.Wins), winPct)
	}
	ct.Render()
	return nil
}
