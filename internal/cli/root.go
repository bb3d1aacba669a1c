// Package cli implements the travelmap command-line surface. Commands
// are thin: open the store, apply a pure mutation through it, render
// freshly computed stats. No command keeps state between runs.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"travelmap/internal/app"
	"travelmap/internal/record"
	"travelmap/internal/stats"
	"travelmap/internal/store"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:           "travelmap",
	Short:         "Personal travel record and statistics",
	Long:          "Track visited and bucket-list countries and cities, passport stamps, and derived travel statistics. One SQLite-backed record, stats recomputed on demand.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $TRAVELMAP_DB or ~/.travelmap/travelmap.db)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openStore() (*store.SQLiteStore, error) {
	if dbPath != "" {
		return store.Open(dbPath)
	}
	cfg, err := app.LoadConfig()
	if err != nil {
		return nil, err
	}
	return store.Open(cfg.DatabasePath)
}

func newMutator() *record.Mutator {
	return record.NewMutator()
}

func newEngine() *stats.Engine {
	return stats.NewEngine(nil)
}
