package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"budgetwise/internal/advisor"
	"budgetwise/internal/cli"
	"budgetwise/internal/config"

	"github.com/spf13/cobra"
)

var flagTimeout time.Duration

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Get AI spending analysis and saving tips",
	Long:  "Send the expense log to the AI advisor for a spending analysis and actionable tips. Requires a budget limit, at least one expense, and an API key.",
	RunE:  runTips,
}

func init() {
	tipsCmd.Flags().DurationVar(&flagTimeout, "timeout", 60*time.Second, "Request timeout")
	rootCmd.AddCommand(tipsCmd)
}

func runTips(_ *cobra.Command, _ []string) error {
	cfg, tr, closeFn := openState()
	defer closeFn()

	limit, ok := tr.Limit()
	if !ok {
		return errors.New("set a budget limit first: budgetwise budget set <amount>")
	}
	expenses := tr.Expenses()
	if len(expenses) == 0 {
		return errors.New("log at least one expense first: budgetwise add <amount> <description>")
	}

	apiKey := config.GetAPIKey(cfg)
	if apiKey == "" {
		return errors.New("no API key configured: set ANTHROPIC_API_KEY or ai.api_key in config")
	}

	client, err := advisor.NewClient(advisor.Config{
		APIKey:    apiKey,
		Model:     cfg.AI.Model,
		BaseURL:   cfg.AI.BaseURL,
		MaxTokens: cfg.AI.MaxTokens,
	})
	if err != nil {
		return err
	}

	req := advisor.Request{BudgetLimit: limit}
	for _, e := range expenses {
		req.Expenses = append(req.Expenses, advisor.ExpenseEntry{
			Category:    string(e.Category),
			Amount:      e.Amount,
			Description: e.Description,
		})
	}

	if !flagQuiet {
		fmt.Println(cli.Muted("Analyzing your spending..."))
	}

	ctx, cancel := context.WithTimeout(context.Background(), flagTimeout)
	defer cancel()

	result, err := client.Analyze(ctx, req)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("Spending Analysis"))
	fmt.Println()
	fmt.Println(result.SpendingAnalysis)
	fmt.Println()
	for i, tip := range result.Tips {
		fmt.Printf("  %d. %s\n", i+1, tip)
	}

	return nil
}
