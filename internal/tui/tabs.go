package tui

import (
	"fmt"
	"strings"
	"time"

	"budgetwise/internal/cli"
	"budgetwise/internal/ledger"
	"budgetwise/internal/tui/components"
	"budgetwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	symbol := a.cfg.General.Currency
	expenses := a.tracker.Expenses()
	status := ledger.Status(expenses, limitPtr(a.tracker))

	limitStr := "not set"
	if status.HasLimit {
		limitStr = cli.FormatMoney(symbol, status.Limit)
	}

	today := ledger.FilterByDay(expenses, time.Now())

	metrics := []components.Metric{
		{Label: "Budget limit", Value: limitStr, Extra: "[b] to change"},
		{Label: "Total spent", Value: cli.FormatMoney(symbol, status.TotalSpent)},
		{Label: "Today", Value: cli.FormatMoney(symbol, ledger.TotalSpent(today)),
			Extra: fmt.Sprintf("%d expenses", len(today))},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	if status.HasLimit {
		remainingColor := t.Green
		if status.OverBudget {
			remainingColor = t.Red
		}
		remaining := components.MetricCardColored(components.Metric{
			Label: "Remaining",
			Value: cli.FormatMoney(symbol, status.Remaining),
		}, cw/2, remainingColor)
		used := components.MetricCardColored(components.Metric{
			Label: "Used",
			Value: cli.FormatPercent(status.PercentSpent),
		}, cw-cw/2, remainingColor)
		b.WriteString(components.CardRow([]string{remaining, used}))
		b.WriteString("\n")

		barW := cw - 20
		if barW < 10 {
			barW = 10
		}
		b.WriteString(" ")
		b.WriteString(components.BudgetBar("Budget", status.PercentSpent, 8, barW))
		b.WriteString("\n")
	}

	recent := ledger.SortedByDateDesc(expenses)
	if len(recent) > 5 {
		recent = recent[:5]
	}
	inner := components.CardInnerWidth(cw)
	var rows []string
	for _, e := range recent {
		line := fmt.Sprintf("%s  %s %s  %s",
			cli.FormatDate(e.Date),
			e.Category.Icon(),
			padRight(truncStr(e.Description, inner-30), inner-30),
			cli.FormatMoney(symbol, e.Amount))
		rows = append(rows, line)
	}
	body := strings.Join(rows, "\n")
	if body == "" {
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		body = dim.Render("No expenses yet. Press [a] to add one.")
	}
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Recent", body, cw))

	return b.String()
}

func (a App) renderExpensesTab(cw, contentH int) string {
	t := theme.Active
	symbol := a.cfg.General.Currency
	expenses := ledger.SortedByDateDesc(a.tracker.Expenses())

	if len(expenses) == 0 {
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		return "\n " + dim.Render("No expenses yet. Press [a] to add one.")
	}

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Bold(true)
	normalStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	// Window the list around the cursor
	visible := contentH - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if a.cursor >= visible {
		start = a.cursor - visible + 1
	}
	end := start + visible
	if end > len(expenses) {
		end = len(expenses)
	}

	descW := cw - 40
	if descW < 10 {
		descW = 10
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		e := expenses[i]
		line := fmt.Sprintf(" %s  %s %-14s %s  %s",
			cli.FormatTime(e.Date),
			e.Category.Icon(),
			e.Category.Label(),
			padRight(truncStr(e.Description, descW), descW),
			cli.FormatMoney(symbol, e.Amount))
		if i == a.cursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(normalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (a App) renderBreakdownTab(cw int) string {
	t := theme.Active
	symbol := a.cfg.General.Currency
	expenses := a.tracker.Expenses()

	if len(expenses) == 0 {
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		return "\n " + dim.Render("Nothing to break down yet.")
	}

	total := ledger.TotalSpent(expenses)
	byCategory := ledger.ByCategory(expenses)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	barW := cw - 46
	if barW < 10 {
		barW = 10
	}

	var catRows []string
	for _, ct := range byCategory {
		share := 0.0
		if total > 0 {
			share = ct.Amount / total
		}
		row := fmt.Sprintf("%s %s %s %s %s",
			ct.Category.Icon(),
			labelStyle.Render(padRight(ct.Category.Label(), 14)),
			components.CategoryBar(share, barW),
			valueStyle.Render(fmt.Sprintf("%10s", cli.FormatMoney(symbol, ct.Amount))),
			labelStyle.Render(fmt.Sprintf("%5.1f%%", share*100)))
		catRows = append(catRows, row)
	}

	days := a.cfg.General.DefaultDays
	if days <= 0 {
		days = 7
	}
	now := time.Now()
	since := now.AddDate(0, 0, -(days - 1))
	daily := ledger.DailyTotals(expenses, since, now)

	var dayRows []string
	for _, d := range daily {
		dayRows = append(dayRows, fmt.Sprintf("%s %s  %s  %s",
			labelStyle.Render(cli.FormatDayOfWeek(int(d.Date.Weekday()))),
			labelStyle.Render(cli.FormatDate(d.Date)),
			valueStyle.Render(fmt.Sprintf("%10s", cli.FormatMoney(symbol, d.Total))),
			labelStyle.Render(fmt.Sprintf("%d expenses", d.Count))))
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("By Category", strings.Join(catRows, "\n"), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Last %d Days", days),
		strings.Join(dayRows, "\n"), cw))

	return b.String()
}

func (a App) renderTipsTab(cw int) string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	accent := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	if a.fetching {
		return "\n " + accent.Render("Analyzing your spending...")
	}

	var b strings.Builder

	if a.err != nil {
		warn := lipgloss.NewStyle().Foreground(t.Orange)
		b.WriteString("\n ")
		b.WriteString(warn.Render(a.err.Error()))
		b.WriteString("\n")
	}

	if a.advice == nil {
		b.WriteString("\n ")
		b.WriteString(dim.Render("Press [g] to get AI spending tips."))
		return b.String()
	}

	inner := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard("Analysis", wrapText(a.advice.SpendingAnalysis, inner), cw))
	b.WriteString("\n")

	var tips []string
	for i, tip := range a.advice.Tips {
		tips = append(tips, fmt.Sprintf("%d. %s", i+1, wrapText(tip, inner-3)))
	}
	b.WriteString(components.ContentCard("Tips", strings.Join(tips, "\n"), cw))
	b.WriteString("\n ")
	b.WriteString(dim.Render("Fetched " + cli.FormatTime(a.adviceAt) + "  ·  [g] to refresh"))

	return b.String()
}

// wrapText soft-wraps s to the given width on word boundaries.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		wl := lipgloss.Width(w)
		if lineLen > 0 && lineLen+1+wl > width {
			b.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(w)
		lineLen += wl
	}
	return b.String()
}
