package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maeel/garoustats/internal/achievement"
	"github.com/maeel/garoustats/internal/storage"
)

var (
	exportOut     string
	exportWorkers int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Precompute every player's achievements as a JSON document",
	Long: `Run the full achievement pipeline ahead of time for every player in
the corpus and write the result as one JSON document: a mapping from
canonical player id to their all-games and modded-only achievement lists,
plus generation metadata. This is the document the dashboard serves as
static data.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (default: stdout)")
	exportCmd.Flags().IntVar(&exportWorkers, "workers", 0, "parallel workers (0 = one per CPU)")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	games, err := db.LoadCorpus()
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	doc, err := achievement.BuildAll(games, exportWorkers)
	if err != nil {
		return fmt.Errorf("build achievements: %w", err)
	}
	log.Info().
		Int("players", doc.TotalPlayers).
		Int("games", doc.TotalGames).
		Int("modded", doc.TotalModdedGames).
		Msg("achievements built")

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}
