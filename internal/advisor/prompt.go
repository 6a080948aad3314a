package advisor

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a personal finance advisor. You respond only with a JSON object " +
	`matching {"spendingAnalysis": string, "tips": [string]} and no other text.`

// buildPrompt renders the spending snapshot into the analysis prompt.
func buildPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("Analyze the user's spending patterns and provide personalized tips to reduce expenses.\n\n")
	fmt.Fprintf(&b, "Daily budget limit: %.2f\n\n", req.BudgetLimit)

	b.WriteString("Expenses:\n")
	for _, e := range req.Expenses {
		fmt.Fprintf(&b, "- Category: %s, Amount: %.2f, Description: %s\n",
			e.Category, e.Amount, e.Description)
	}

	b.WriteString("\nBe mindful of the budget limit and focus on the most impactful categories. " +
		"Respond with a short spending analysis and a list of specific, actionable tips, " +
		`as JSON: {"spendingAnalysis": "...", "tips": ["...", "..."]}`)

	return b.String()
}

// stripMarkdownFence removes a ```json ... ``` wrapper some models insist
// on adding around JSON output.
func stripMarkdownFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
