package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maeel/garoustats/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored games",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	games, err := db.ListGames()
	if err != nil {
		return fmt.Errorf("list games: %w", err)
	}
	if len(games) == 0 {
		fmt.Fprintln(os.Stdout, "No games stored yet. Run 'garoustats load <corpus.json>' to add some.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-20s  %-12s  %7s  %7s\n",
		"ID", "STARTED", "MAP", "MODDED", "PLAYERS")
	fmt.Fprintf(os.Stdout, "%-20s  %-20s  %-12s  %7s  %7s\n",
		"────────────────────", "────────────────────", "────────────", "───────", "───────")
	for _, g := range games {
		modded := ""
		if g.Modded {
			modded = "yes"
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-20s  %-12s  %7s  %7d\n",
			g.ID, g.StartedAt, g.MapName, modded, g.Players)
	}
	return nil
}
