package cmd

import (
	"fmt"

	"budgetwise/internal/model"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List available expense categories",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	for _, c := range model.Categories() {
		fmt.Printf("  %s %-14s (%s)\n", c.Icon, c.Label, c.Value)
	}
	return nil
}
