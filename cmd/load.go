package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/maeel/garoustats/internal/corpus"
	"github.com/maeel/garoustats/internal/identity"
	"github.com/maeel/garoustats/internal/storage"
)

var loadAliases string

var loadCmd = &cobra.Command{
	Use:   "load <corpus.json>",
	Short: "Load a game corpus JSON file into the store",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadAliases, "aliases", "", "path to a player alias JSON file")
}

func runLoad(cmd *cobra.Command, args []string) error {
	resolver := identity.NewResolver(nil)
	if loadAliases != "" {
		var err error
		resolver, err = identity.Load(loadAliases)
		if err != nil {
			return fmt.Errorf("load aliases: %w", err)
		}
	}

	raws, err := corpus.Load(args[0])
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	games := corpus.Normalize(raws, resolver, log)
	if dropped := len(raws) - len(games); dropped > 0 {
		log.Warn().Int("dropped", dropped).Msg("some game records were incomplete")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if err := db.InsertGames(games); err != nil {
		return fmt.Errorf("store games: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Stored %d games (%d records read, %d dropped).\n",
		len(games), len(raws), len(raws)-len(games))
	return nil
}
