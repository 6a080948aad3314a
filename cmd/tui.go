package cmd

import (
	"fmt"
	"os"

	"budgetwise/internal/advisor"
	"budgetwise/internal/config"
	"budgetwise/internal/tui"
	"budgetwise/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, tr, closeFn := openState()
	defer closeFn()

	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all styling produces ANSI codes.
	// Without this, lipgloss may default to Ascii profile (no colors).
	if cfg.Appearance.Theme != "terminal" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	// The advisor is optional: the tips tab reports the missing key.
	var client *advisor.Client
	if apiKey := config.GetAPIKey(cfg); apiKey != "" {
		c, err := advisor.NewClient(advisor.Config{
			APIKey:    apiKey,
			Model:     cfg.AI.Model,
			BaseURL:   cfg.AI.BaseURL,
			MaxTokens: cfg.AI.MaxTokens,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "  Advisor unavailable: %v\n", err)
		} else {
			client = c
		}
	}

	app := tui.NewApp(tr, client, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
