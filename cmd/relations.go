package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maeel/garoustats/internal/corpus"
	"github.com/maeel/garoustats/internal/relation"
	"github.com/maeel/garoustats/internal/report"
	"github.com/maeel/garoustats/internal/storage"
)

var (
	relationsModded    bool
	relationsMinShared int
)

var relationsCmd = &cobra.Command{
	Use:   "relations <canonical-id>",
	Short: "Show a player's head-to-head and teammate records",
	Args:  cobra.ExactArgs(1),
	RunE:  runRelations,
}

func init() {
	relationsCmd.Flags().BoolVar(&relationsModded, "modded", false, "restrict to the modded-only partition")
	relationsCmd.Flags().IntVar(&relationsMinShared, "min", 10, "minimum shared games in one subset")
}

func runRelations(cmd *cobra.Command, args []string) error {
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
	if relationsModded {
		games = corpus.ModdedOnly(games)
	}

	rels := relation.Compute(player, games, relationsMinShared)
	sup := relation.Extract(rels, relationsMinShared)
	report.PrintRelations(os.Stdout, player, rels, sup)
	return nil
}
