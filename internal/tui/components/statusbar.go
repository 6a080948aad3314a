package components

import (
	"fmt"

	"budgetwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width, expenseCount int, overBudget bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [a]dd  [b]udget  [?]help  [q]uit"

	right := fmt.Sprintf("%d expenses ", expenseCount)
	if overBudget {
		warn := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
		right = warn.Render("OVER BUDGET") + "  " + right
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
