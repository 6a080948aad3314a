package advisor

import (
	"errors"
	"fmt"
)

// ExpenseEntry is one expense in an analysis request.
type ExpenseEntry struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// Request is the spending snapshot sent for analysis.
type Request struct {
	Expenses    []ExpenseEntry `json:"expenses"`
	BudgetLimit float64        `json:"budgetLimit"`
}

// Result is the structured advice returned by the model.
type Result struct {
	SpendingAnalysis string   `json:"spendingAnalysis"`
	Tips             []string `json:"tips"`
}

// validate checks the outbound payload before dispatch. Callers are
// expected to enforce these preconditions themselves; this is the
// gateway's own structural check.
func (r Request) validate() error {
	if r.BudgetLimit <= 0 {
		return errors.New("budget limit must be set and positive")
	}
	if len(r.Expenses) == 0 {
		return errors.New("at least one expense is required")
	}
	for i, e := range r.Expenses {
		if e.Category == "" {
			return fmt.Errorf("expense %d: category is empty", i)
		}
		if e.Amount <= 0 {
			return fmt.Errorf("expense %d: amount must be positive", i)
		}
	}
	return nil
}

// validate checks the inbound response against the advice schema.
// A response that fails here is a hard failure; no partial result is
// ever returned.
func (r Result) validate() error {
	if r.SpendingAnalysis == "" {
		return errors.New("missing spendingAnalysis")
	}
	if len(r.Tips) == 0 {
		return errors.New("missing tips")
	}
	for i, tip := range r.Tips {
		if tip == "" {
			return fmt.Errorf("tip %d is empty", i)
		}
	}
	return nil
}

// Anthropic messages API wire types.

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
