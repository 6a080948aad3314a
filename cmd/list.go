package cmd

import (
	"fmt"
	"strings"
	"time"

	"budgetwise/internal/cli"
	"budgetwise/internal/ledger"
	"budgetwise/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagDate         string
	flagListCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged expenses",
	Long:  "List expenses, most recent first. Use --date to show a single day, --category to narrow to one category.",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagDate, "date", "", "Only show expenses from this day (YYYY-MM-DD)")
	listCmd.Flags().StringVarP(&flagListCategory, "category", "c", "", "Only show expenses in this category")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, tr, closeFn := openState()
	defer closeFn()

	expenses := tr.Expenses()

	if flagListCategory != "" {
		category := model.Category(strings.ToLower(flagListCategory))
		if !category.Valid() {
			return fmt.Errorf("%w: %q (see 'budgetwise categories')", model.ErrUnknownCategory, flagListCategory)
		}
		expenses = ledger.FilterByCategory(expenses, category)
	}

	var day time.Time
	if flagDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", flagDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", flagDate)
		}
		day = parsed
	}

	expenses = ledger.FilterByDay(expenses, day)
	expenses = ledger.SortedByDateDesc(expenses)

	if len(expenses) == 0 {
		if flagDate != "" {
			fmt.Printf("No expenses on %s.\n", flagDate)
		} else {
			fmt.Println("No expenses logged yet.")
		}
		return nil
	}

	symbol := cfg.General.Currency
	table := cli.Table{
		Headers: []string{"Date", "Category", "Description", "Amount"},
	}
	for _, e := range expenses {
		table.Rows = append(table.Rows, []string{
			cli.FormatTime(e.Date),
			e.Category.Icon() + " " + e.Category.Label(),
			cli.Truncate(e.Description, 40),
			cli.FormatMoney(symbol, e.Amount),
		})
	}
	table.Rows = append(table.Rows, []string{"---"})
	table.Rows = append(table.Rows, []string{
		"", "", "Total", cli.FormatMoney(symbol, ledger.TotalSpent(expenses)),
	})

	fmt.Print(cli.RenderTable(table))
	return nil
}
