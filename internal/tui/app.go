// Package tui provides the interactive Bubble Tea dashboard for budgetwise.
package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"budgetwise/internal/advisor"
	"budgetwise/internal/config"
	"budgetwise/internal/ledger"
	"budgetwise/internal/model"
	"budgetwise/internal/tracker"
	"budgetwise/internal/tui/components"
	"budgetwise/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// AdviceMsg is sent when a spending analysis request completes.
type AdviceMsg struct {
	Result advisor.Result
	Err    error
}

const (
	tabOverview = iota
	tabExpenses
	tabBreakdown
	tabTips
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
	minContentHeight = 5
)

type formKind int

const (
	formNone formKind = iota
	formExpense
	formLimit
)

// App is the root Bubble Tea model.
type App struct {
	tracker *tracker.Tracker
	client  *advisor.Client
	cfg     config.Config

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Expenses tab cursor
	cursor int

	// Active form (add expense or set limit)
	form     *huh.Form
	formMode formKind
	expVals  expenseValues
	limitVal string

	// Tips state
	fetching bool
	advice   *advisor.Result
	adviceAt time.Time
	err      error
}

// NewApp creates a new TUI app model.
func NewApp(tr *tracker.Tracker, client *advisor.Client, cfg config.Config) App {
	theme.SetActive(cfg.Appearance.Theme)
	return App{
		tracker: tr,
		client:  client,
		cfg:     cfg,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// An active form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit

		case "a":
			a.expVals = expenseValues{}
			a.form = newExpenseForm(&a.expVals)
			a.formMode = formExpense
			if a.width > 0 {
				a.form = a.form.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.form.Init()

		case "b":
			a.limitVal = ""
			if limit, ok := a.tracker.Limit(); ok {
				a.limitVal = strconv.FormatFloat(limit, 'f', 2, 64)
			}
			a.form = newLimitForm(&a.limitVal)
			a.formMode = formLimit
			if a.width > 0 {
				a.form = a.form.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.form.Init()

		case "g":
			if a.activeTab == tabTips && !a.fetching {
				return a.startAdvice()
			}
			return a, nil

		case "j", "down":
			if a.activeTab == tabExpenses && a.cursor < len(a.tracker.Expenses())-1 {
				a.cursor++
			}
			return a, nil

		case "k", "up":
			if a.activeTab == tabExpenses && a.cursor > 0 {
				a.cursor--
			}
			return a, nil

		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil

		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil

	case AdviceMsg:
		a.fetching = false
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		result := msg.Result
		a.advice = &result
		a.adviceAt = time.Now()
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		switch a.formMode {
		case formExpense:
			a.applyExpenseForm()
		case formLimit:
			a.applyLimitForm()
		}
		a.form = nil
		a.formMode = formNone
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formMode = formNone
		return a, nil
	}

	return a, cmd
}

func (a *App) applyExpenseForm() {
	amount, err := strconv.ParseFloat(strings.TrimSpace(a.expVals.Amount), 64)
	if err != nil {
		return
	}
	e, err := model.NewExpense(a.expVals.Description, amount, model.Category(a.expVals.Category))
	if err != nil {
		return
	}
	_ = a.tracker.Add(e)
	a.cursor = 0
}

func (a *App) applyLimitForm() {
	v := strings.TrimSpace(a.limitVal)
	if v == "" {
		a.tracker.ClearLimit()
		return
	}
	limit, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return
	}
	_ = a.tracker.SetLimit(limit)
}

func (a App) startAdvice() (tea.Model, tea.Cmd) {
	limit, ok := a.tracker.Limit()
	if !ok {
		a.err = errNoLimit
		return a, nil
	}
	expenses := a.tracker.Expenses()
	if len(expenses) == 0 {
		a.err = errNoExpenses
		return a, nil
	}
	if a.client == nil {
		a.err = errNoAPIKey
		return a, nil
	}

	req := advisor.Request{BudgetLimit: limit}
	for _, e := range expenses {
		req.Expenses = append(req.Expenses, advisor.ExpenseEntry{
			Category:    string(e.Category),
			Amount:      e.Amount,
			Description: e.Description,
		})
	}

	a.fetching = true
	a.err = nil
	client := a.client
	return a, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		result, err := client.Analyze(ctx, req)
		return AdviceMsg{Result: result, Err: err}
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.form != nil {
		return a.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := "\n  Terminal too narrow.\n\n  budgetwise needs at least " +
		strconv.Itoa(minTerminalWidth) + " columns.\n"
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	bindings := []struct{ key, desc string }{
		{"o e d t", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate expenses"},
		{"a", "Add expense"},
		{"b", "Set budget limit"},
		{"g", "Get spending tips"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(padRight(bind.key, 10)))
		b.WriteString("  ")
		b.WriteString(descStyle.Render(bind.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab) + "\n"

	status := ledger.Status(a.tracker.Expenses(), limitPtr(a.tracker))
	statusBar := components.RenderStatusBar(w, len(a.tracker.Expenses()), status.OverBudget)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabExpenses:
		content = a.renderExpensesTab(cw, contentH)
	case tabBreakdown:
		content = a.renderBreakdownTab(cw)
	case tabTips:
		content = a.renderTipsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func limitPtr(tr *tracker.Tracker) *float64 {
	if limit, ok := tr.Limit(); ok {
		return &limit
	}
	return nil
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
