package cmd

import (
	"fmt"
	"time"

	"budgetwise/internal/cli"
	"budgetwise/internal/ledger"

	"github.com/spf13/cobra"
)

var flagDays int

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending breakdown by category and day",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().IntVarP(&flagDays, "days", "n", 0, "Daily breakdown window (default from config)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg, tr, closeFn := openState()
	defer closeFn()

	symbol := cfg.General.Currency
	expenses := tr.Expenses()

	if len(expenses) == 0 {
		fmt.Println("No expenses logged yet.")
		return nil
	}

	total := ledger.TotalSpent(expenses)

	catTable := cli.Table{
		Title:   "By Category",
		Headers: []string{"Category", "Amount", "Share"},
	}
	for _, ct := range ledger.ByCategory(expenses) {
		share := 0.0
		if total > 0 {
			share = ct.Amount / total * 100
		}
		catTable.Rows = append(catTable.Rows, []string{
			ct.Category.Icon() + " " + ct.Category.Label(),
			cli.FormatMoney(symbol, ct.Amount),
			cli.FormatPercent(share),
		})
	}
	catTable.Rows = append(catTable.Rows, []string{"---"})
	catTable.Rows = append(catTable.Rows, []string{"Total", cli.FormatMoney(symbol, total), ""})

	fmt.Print(cli.RenderTable(catTable))
	fmt.Println()

	days := flagDays
	if days <= 0 {
		days = cfg.General.DefaultDays
	}
	if days <= 0 {
		days = 7
	}

	now := time.Now()
	since := now.AddDate(0, 0, -(days - 1))

	dayTable := cli.Table{
		Title:   fmt.Sprintf("Last %d Days", days),
		Headers: []string{"Day", "Date", "Spent", "Expenses"},
	}
	for _, d := range ledger.DailyTotals(expenses, since, now) {
		dayTable.Rows = append(dayTable.Rows, []string{
			cli.FormatDayOfWeek(int(d.Date.Weekday())),
			cli.FormatDate(d.Date),
			cli.FormatMoney(symbol, d.Total),
			fmt.Sprintf("%d", d.Count),
		})
	}

	fmt.Print(cli.RenderTable(dayTable))
	return nil
}
