package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maeel/garoustats/internal/achievement"
	"github.com/maeel/garoustats/internal/report"
	"github.com/maeel/garoustats/internal/storage"
)

// playerCmd computes and prints one player's achievement dossier over both
// corpus partitions.
var playerCmd = &cobra.Command{
	Use:   "player <canonical-id>",
	Short: "Show a player's achievements",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayer,
}

func runPlayer(cmd *cobra.Command, args []string) error {
	player := args[0]

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	games, err := db.LoadCorpus()
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	dossier := achievement.Build(games, player)
	if len(dossier.AllGames) == 0 && len(dossier.ModdedOnly) == 0 {
		fmt.Fprintf(os.Stdout, "No achievements for %q — unknown player or empty corpus.\n", player)
		return nil
	}

	report.PrintAchievements(os.Stdout, player, "all games", dossier.AllGames)
	report.PrintAchievements(os.Stdout, player, "modded only", dossier.ModdedOnly)
	return nil
}
