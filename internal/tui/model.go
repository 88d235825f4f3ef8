// Package tui implements the interactive expense browser.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KavinduLakshith/payable-assessment/internal/filter"
	"github.com/KavinduLakshith/payable-assessment/internal/loader"
	"github.com/KavinduLakshith/payable-assessment/internal/model"
	"github.com/KavinduLakshith/payable-assessment/internal/tui/themes"
)

// Source loads the expense dataset. *loader.Client satisfies it.
type Source interface {
	Load(ctx context.Context) loader.Status
}

// Model holds the main TUI state. The dataset is loaded once at startup;
// every keystroke after that recomputes the visible rows from it.
type Model struct {
	theme       themes.Theme
	source      Source
	status      loader.Status
	config      Config
	keymap      KeyMap
	dataset     []model.Expense
	visible     []model.Expense
	categories  []string
	searchInput textinput.Model
	table       table.Model
	spinner     spinner.Model
	categoryIdx int
	width       int
	height      int
	searching   bool
	showHelp    bool
	ready       bool
	quitting    bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "title or category"
	searchInput.Prompt = "/ "
	searchInput.CharLimit = 50
	searchInput.Width = 40

	t := table.New(
		table.WithColumns(expenseColumns(cfg.Width)),
		table.WithFocused(true),
		table.WithHeight(tableHeight(cfg.Height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(cfg.Theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = cfg.Theme.Selected
	t.SetStyles(s)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cfg.Theme.Primary)

	return Model{
		config:      cfg,
		theme:       cfg.Theme,
		source:      cfg.Source,
		keymap:      DefaultKeyMap(),
		status:      loader.Status{State: loader.StateLoading},
		categories:  []string{filter.All},
		searchInput: searchInput,
		table:       t,
		spinner:     sp,
		width:       cfg.Width,
		height:      cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spinner.Tick,
		m.loadExpenses(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case loadResultMsg:
		m.status = msg.status
		m.dataset = msg.status.Expenses
		m.categories = filter.Categories(m.dataset)
		m.categoryIdx = 0
		m.ready = true
		m.applyFilters()
		return m, nil

	case spinner.TickMsg:
		if m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleKey routes key presses. Search mode captures everything except
// force quit.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ToggleHelp):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen

	case key.Matches(msg, m.keymap.Search):
		if !m.ready {
			return m, nil
		}
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.NextCategory):
		m.cycleCategory(1)
		return m, nil

	case key.Matches(msg, m.keymap.PrevCategory):
		m.cycleCategory(-1)
		return m, nil

	case key.Matches(msg, m.keymap.ClearSearch):
		switch {
		case m.showHelp:
			m.showHelp = false
		case m.searchInput.Value() != "":
			m.searchInput.SetValue("")
			m.applyFilters()
		}
		return m, nil
	}

	// Navigation keys fall through to the table.
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleSearchKey handles key presses while the search input is focused.
// The visible rows track the term on every keystroke.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.applyFilters()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilters()
	return m, cmd
}

// cycleCategory moves the category selection, wrapping at both ends.
func (m *Model) cycleCategory(step int) {
	if !m.ready || len(m.categories) == 0 {
		return
	}
	n := len(m.categories)
	m.categoryIdx = (m.categoryIdx + step + n) % n
	m.applyFilters()
}

// category returns the currently selected category option.
func (m Model) category() string {
	if m.categoryIdx >= len(m.categories) {
		return filter.All
	}
	return m.categories[m.categoryIdx]
}

// applyFilters recomputes the visible rows from the full dataset. The
// dataset itself is never modified.
func (m *Model) applyFilters() {
	m.visible = filter.Visible(m.dataset, m.category(), m.searchInput.Value())
	m.table.SetRows(buildExpenseRows(m.visible))
	m.table.GotoTop()
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	m.table.SetColumns(expenseColumns(m.width))
	m.table.SetHeight(tableHeight(m.height))
	m.searchInput.Width = min(50, max(20, m.width-10))
}
