package cmd

import (
	"fmt"
	"time"

	"budgetwise/internal/cli"
	"budgetwise/internal/ledger"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show budget status at a glance",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, tr, closeFn := openState()
	defer closeFn()

	symbol := cfg.General.Currency
	expenses := tr.Expenses()
	status := ledger.Status(expenses, limitPtr(tr))

	fmt.Println(cli.RenderTitle("budgetwise"))
	fmt.Println()

	if !status.HasLimit {
		fmt.Println("  Budget limit:", cli.Muted("not set"))
		fmt.Println("  Total spent: ", cli.FormatMoney(symbol, status.TotalSpent))
		fmt.Println()
		fmt.Println(cli.Muted("  Set a limit with: budgetwise budget set <amount>"))
		return nil
	}

	remaining := cli.FormatMoney(symbol, status.Remaining)
	if status.OverBudget {
		remaining = cli.Bad(remaining + "  (over budget)")
	} else {
		remaining = cli.Good(remaining)
	}

	fmt.Println("  Budget limit:", cli.FormatMoney(symbol, status.Limit))
	fmt.Println("  Total spent: ", cli.FormatMoney(symbol, status.TotalSpent))
	fmt.Println("  Remaining:   ", remaining)
	fmt.Println()
	fmt.Printf("  %s %s\n",
		cli.RenderBudgetBar(status.PercentSpent, 40),
		cli.FormatPercent(status.PercentSpent))

	today := ledger.FilterByDay(expenses, time.Now())
	if len(today) > 0 {
		fmt.Println()
		fmt.Printf("  Today: %s across %d expenses\n",
			cli.FormatMoney(symbol, ledger.TotalSpent(today)), len(today))
	}

	return nil
}
