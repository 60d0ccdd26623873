package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	dbPath string
	log    zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "garoustats",
	Short: "Werewolf community stats tool",
	Long:  "Load game logs from a werewolf community and compute player rankings, streaks, and achievements.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	defaultDB := filepath.Join(mustUserHome(), ".garoustats", "corpus.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(relationsCmd)
	rootCmd.AddCommand(exportCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
