// Package cmd implements the budgetwise CLI commands.
package cmd

import (
	"fmt"
	"os"

	"budgetwise/internal/config"
	"budgetwise/internal/store"
	"budgetwise/internal/tracker"

	"github.com/spf13/cobra"
)

var flagQuiet bool

var rootCmd = &cobra.Command{
	Use:   "budgetwise",
	Short: "Personal daily budget tracker",
	Long:  "Track daily expenses against a budget limit, see where the money goes, and get AI spending tips.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

// openState loads config and opens the state database. A database open
// failure degrades to in-memory operation with a warning rather than
// aborting the command.
func openState() (config.Config, *tracker.Tracker, func()) {
	cfg, err := config.Load()
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Config error (%v), using defaults\n", err)
		}
		cfg = config.DefaultConfig()
	}

	s, err := store.Open(config.StatePath(cfg))
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  State unavailable (%v), changes won't persist\n", err)
		}
		s = nil
	}

	tr := tracker.New(s)
	return cfg, tr, func() { _ = s.Close() }
}

func limitPtr(tr *tracker.Tracker) *float64 {
	if limit, ok := tr.Limit(); ok {
		return &limit
	}
	return nil
}
