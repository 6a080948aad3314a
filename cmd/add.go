package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"budgetwise/internal/cli"
	"budgetwise/internal/ledger"
	"budgetwise/internal/model"

	"github.com/spf13/cobra"
)

var flagCategory string

var addCmd = &cobra.Command{
	Use:   "add <amount> <description...>",
	Short: "Log an expense",
	Long:  "Log an expense against the daily budget. Category defaults to 'other'.",
	Example: `  budgetwise add 12.50 lunch at the deli
  budgetwise add 30 groceries -c food`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagCategory, "category", "c", "other", "Expense category")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}
	description := strings.Join(args[1:], " ")

	category := model.Category(strings.ToLower(flagCategory))
	if !category.Valid() {
		return fmt.Errorf("%w: %q (see 'budgetwise categories')", model.ErrUnknownCategory, flagCategory)
	}

	cfg, tr, closeFn := openState()
	defer closeFn()

	e, err := model.NewExpense(description, amount, category)
	if err != nil {
		return err
	}
	if err := tr.Add(e); err != nil {
		return err
	}

	symbol := cfg.General.Currency
	fmt.Printf("Added %s %s %s (%s)\n",
		category.Icon(),
		cli.FormatMoney(symbol, e.Amount),
		e.Description,
		category.Label())

	status := ledger.Status(tr.Expenses(), limitPtr(tr))
	if status.HasLimit {
		if status.OverBudget {
			fmt.Println(cli.Bad(fmt.Sprintf("Over budget by %s", cli.FormatMoney(symbol, -status.Remaining))))
		} else {
			fmt.Printf("%s remaining of %s\n",
				cli.FormatMoney(symbol, status.Remaining),
				cli.FormatMoney(symbol, status.Limit))
		}
	}

	return nil
}
