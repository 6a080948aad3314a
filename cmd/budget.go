package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"budgetwise/internal/cli"
	"budgetwise/internal/ledger"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage the daily budget limit",
	RunE:  runBudgetShow,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Set the budget limit",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetSet,
}

var budgetShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current budget limit",
	RunE:  runBudgetShow,
}

var budgetClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the budget limit",
	RunE:  runBudgetClear,
}

func init() {
	budgetCmd.AddCommand(budgetSetCmd, budgetShowCmd, budgetClearCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetSet(_ *cobra.Command, args []string) error {
	limit, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}

	cfg, tr, closeFn := openState()
	defer closeFn()

	if err := tr.SetLimit(limit); err != nil {
		return err
	}

	fmt.Printf("Budget limit set to %s\n", cli.FormatMoney(cfg.General.Currency, limit))
	return nil
}

func runBudgetShow(_ *cobra.Command, _ []string) error {
	cfg, tr, closeFn := openState()
	defer closeFn()

	limit, ok := tr.Limit()
	if !ok {
		fmt.Println("No budget limit set.")
		return nil
	}

	symbol := cfg.General.Currency
	status := ledger.Status(tr.Expenses(), &limit)

	fmt.Printf("Budget limit: %s\n", cli.FormatMoney(symbol, limit))
	fmt.Printf("Spent:        %s (%s)\n",
		cli.FormatMoney(symbol, status.TotalSpent),
		cli.FormatPercent(status.PercentSpent))
	if status.OverBudget {
		fmt.Println(cli.Bad(fmt.Sprintf("Over budget by %s", cli.FormatMoney(symbol, -status.Remaining))))
	} else {
		fmt.Printf("Remaining:    %s\n", cli.Good(cli.FormatMoney(symbol, status.Remaining)))
	}

	return nil
}

func runBudgetClear(_ *cobra.Command, _ []string) error {
	_, tr, closeFn := openState()
	defer closeFn()

	if _, ok := tr.Limit(); !ok {
		return errors.New("no budget limit to clear")
	}

	tr.ClearLimit()
	fmt.Println("Budget limit cleared.")
	return nil
}
