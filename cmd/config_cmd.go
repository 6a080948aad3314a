package cmd

import (
	"fmt"
	"os"

	"budgetwise/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage budgetwise configuration",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config and state file locations",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd, configPathCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("currency:     %s\n", cfg.General.Currency)
	fmt.Printf("default_days: %d\n", cfg.General.DefaultDays)
	fmt.Printf("theme:        %s\n", cfg.Appearance.Theme)

	key := config.GetAPIKey(cfg)
	if key != "" {
		fmt.Printf("api_key:      %s\n", maskKey(key))
	} else {
		fmt.Println("api_key:      (not set)")
	}
	if cfg.AI.Model != "" {
		fmt.Printf("model:        %s\n", cfg.AI.Model)
	}

	return nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	fmt.Println("config:", config.Path())
	fmt.Println("state: ", config.StatePath(cfg))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		fmt.Fprintf(os.Stderr, "Config already exists at %s\n", config.Path())
		return nil
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Println("Wrote", config.Path())
	return nil
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
