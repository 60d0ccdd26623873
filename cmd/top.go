package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maeel/garoustats/internal/achievement"
	"github.com/maeel/garoustats/internal/corpus"
	"github.com/maeel/garoustats/internal/report"
	"github.com/maeel/garoustats/internal/storage"
)

var (
	topModded bool
	topFocus  string
)

var topCmd = &cobra.Command{
	Use:   "top <metric>",
	Short: "Show the full leaderboard for one metric",
	Long: `Print the eligibility-filtered ranking for a registered metric.
Run without arguments to list the available metric names.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTop,
}

func init() {
	topCmd.Flags().BoolVar(&topModded, "modded", false, "rank over the modded-only partition")
	topCmd.Flags().StringVar(&topFocus, "focus", "", "mark this player's row")
}

func runTop(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("Available metrics:")
		for _, name := range achievement.MetricNames() {
			fmt.Printf("  %s\n", name)
		}
		return nil
	}
	metric := args[0]

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	games, err := db.LoadCorpus()
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	suffix := achievement.VariantAll
	if topModded {
		games = corpus.ModdedOnly(games)
		suffix = achievement.VariantModded
	}
	part := achievement.NewPartition(games, suffix)
	r := part.Ranking(metric)
	if r == nil {
		return fmt.Errorf("unknown metric %q (known: %s)", metric, strings.Join(achievement.MetricNames(), ", "))
	}

	report.PrintLeaderboard(cmd.OutOrStdout(), metric, r, topFocus)
	return nil
}
