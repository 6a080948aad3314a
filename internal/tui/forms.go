package tui

import (
	"errors"
	"strconv"
	"strings"

	"budgetwise/internal/model"

	"github.com/charmbracelet/huh"
)

var (
	errNoLimit    = errors.New("set a budget limit first")
	errNoExpenses = errors.New("log at least one expense first")
	errNoAPIKey   = errors.New("no API key configured (set ANTHROPIC_API_KEY or ai.api_key)")
)

type expenseValues struct {
	Description string
	Amount      string
	Category    string
}

func newExpenseForm(vals *expenseValues) *huh.Form {
	var options []huh.Option[string]
	for _, c := range model.Categories() {
		options = append(options, huh.NewOption(c.Icon+" "+c.Label, string(c.Value)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Placeholder("e.g. groceries").
				Value(&vals.Description).
				Validate(func(s string) error {
					trimmed := strings.TrimSpace(s)
					if trimmed == "" {
						return model.ErrEmptyDescription
					}
					if len([]rune(trimmed)) > model.MaxDescriptionLen {
						return model.ErrDescriptionTooLong
					}
					return nil
				}),
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Value(&vals.Amount).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return errors.New("enter a number")
					}
					if v < model.MinAmount {
						return model.ErrAmountTooSmall
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&vals.Category),
		).Title("Add Expense"),
	)
}

func newLimitForm(val *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Daily budget limit").
				Description("Leave empty to clear the limit").
				Placeholder("50.00").
				Value(val).
				Validate(func(s string) error {
					trimmed := strings.TrimSpace(s)
					if trimmed == "" {
						return nil
					}
					v, err := strconv.ParseFloat(trimmed, 64)
					if err != nil {
						return errors.New("enter a number")
					}
					if err := model.ValidateLimit(v); err != nil {
						return err
					}
					return nil
				}),
		).Title("Budget"),
	)
}
