package components

import (
	"fmt"

	"budgetwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns green/yellow/orange/red based on budget utilization.
// pct is on the 0-1 scale.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1.0:
		return string(t.Red)
	case pct >= 0.8:
		return string(t.Orange)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// BudgetBar renders a labeled budget consumption bar with the raw
// percentage alongside. The bar itself is clamped; the percentage text
// is not, so 110% still reads as 110%.
func BudgetBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	frac := pct / 100
	if frac < 0 {
		frac = 0
	}
	clamped := frac
	if clamped > 1 {
		clamped = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(frac)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(frac))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " +
		bar.ViewAs(clamped) +
		" " +
		pctStyle.Render(fmt.Sprintf("%.1f%%", pct))
}

// CategoryBar renders a compact per-category share bar for the
// breakdown tab. share is on the 0-1 scale.
func CategoryBar(share float64, width int) string {
	t := theme.Active

	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(t.Accent)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	return bar.ViewAs(share)
}
