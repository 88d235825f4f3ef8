package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/KavinduLakshith/payable-assessment/internal/filter"
	"github.com/KavinduLakshith/payable-assessment/internal/loader"
	"github.com/KavinduLakshith/payable-assessment/internal/model"
	"github.com/KavinduLakshith/payable-assessment/internal/tui/themes"
)

// chromeHeight is the number of lines the browse view spends on everything
// that is not the table itself.
const chromeHeight = 13

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return m.renderLoading()
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderBrowse()
}

// renderLoading renders the loading screen shown until the dataset arrives.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Payable"),
		"",
		m.spinner.View()+" "+m.theme.StatusPending.Render(m.status.Message()),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// renderBrowse renders the main browsing layout.
func (m Model) renderBrowse() string {
	sections := []string{m.renderHeader()}

	if m.status.State == loader.StateFailed {
		sections = append(sections, m.theme.StatusWarning.Render("⚠ "+m.status.Message()))
	}

	sections = append(sections, m.renderCategoryTabs(), m.renderSearch())

	if len(m.visible) == 0 {
		sections = append(sections, m.renderEmpty())
	} else {
		sections = append(sections, m.table.View())
	}

	sections = append(sections, m.renderFooter())

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderHeader renders the title and the full dataset summary.
func (m Model) renderHeader() string {
	title := m.theme.Title.Render("Expenses")
	subtitle := m.theme.Subtitle.Render(fmt.Sprintf("%d expenses | total %s",
		len(m.dataset), filter.Total(m.dataset)))

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

// renderCategoryTabs renders the selectable category options. The options
// come from the full dataset, so they stay put while the user filters.
func (m Model) renderCategoryTabs() string {
	tabs := make([]string, 0, len(m.categories))

	for i, category := range m.categories {
		label := fmt.Sprintf(" %s %s ", themes.GetCategoryIcon(category), category)
		if i == m.categoryIdx {
			tabs = append(tabs, m.theme.Selected.Render(label))
		} else {
			tabs = append(tabs, m.theme.Highlighted.Render(label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderSearch renders the search line: the live input while searching, the
// committed term otherwise.
func (m Model) renderSearch() string {
	if m.searching {
		return m.searchInput.View()
	}

	if term := m.searchInput.Value(); term != "" {
		return fmt.Sprintf("%s %s",
			m.theme.Normal.Render(fmt.Sprintf("Search: %q", term)),
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("(Esc clears)"),
		)
	}

	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press / to search")
}

// renderEmpty renders the placeholder shown when no expenses survive the
// current filters.
func (m Model) renderEmpty() string {
	return m.theme.Box.Render(
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No expenses match the current filters."),
	)
}

// renderFooter renders the visible-subset summary and key hints.
func (m Model) renderFooter() string {
	summary := fmt.Sprintf("%d of %d expenses | total %s",
		len(m.visible),
		len(m.dataset),
		m.theme.Bold.Render(filter.Total(m.visible).String()),
	)

	hints := make([]string, 0, 4)
	for _, b := range m.keymap.ShortHelp() {
		hints = append(hints, fmt.Sprintf("[%s] %s", b.Help().Key, b.Help().Desc))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.Render(summary),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  ")),
	)
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	title := m.theme.Title.Render("Payable - Help")

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{
			"Navigation",
			[]key.Binding{m.keymap.Up, m.keymap.Down, m.keymap.PageUp, m.keymap.PageDown, m.keymap.Home, m.keymap.End},
		},
		{
			"Filtering",
			[]key.Binding{m.keymap.NextCategory, m.keymap.PrevCategory, m.keymap.Search, m.keymap.ClearSearch},
		},
		{
			"Application",
			[]key.Binding{m.keymap.ToggleHelp, m.keymap.ClearScreen, m.keymap.Quit, m.keymap.ForceQuit},
		},
	}

	var lines []string
	for _, section := range sections {
		lines = append(lines, m.theme.Subtitle.Render(section.title))

		for _, b := range section.bindings {
			lines = append(lines, fmt.Sprintf("  %-14s %s",
				lipgloss.NewStyle().Foreground(m.theme.Primary).Render(b.Help().Key),
				m.theme.Normal.Render(b.Help().Desc),
			))
		}
		lines = append(lines, "")
	}

	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? to close help")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.
			Width(48).
			MaxHeight(m.height-2).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				title,
				lipgloss.JoinVertical(lipgloss.Left, lines...),
				footer,
			)),
	)
}

// expenseColumns sizes the table columns proportionally to the terminal.
func expenseColumns(width int) []table.Column {
	available := width - 8
	if available < 60 {
		available = 60
	}

	return []table.Column{
		{Title: "Date", Width: max(10, int(float64(available)*0.15))},
		{Title: "Title", Width: max(20, int(float64(available)*0.40))},
		{Title: "Category", Width: max(13, int(float64(available)*0.25))},
		{Title: "Amount", Width: max(10, int(float64(available)*0.20))},
	}
}

// buildExpenseRows builds rows for the table.
func buildExpenseRows(expenses []model.Expense) []table.Row {
	rows := make([]table.Row, 0, len(expenses))

	for _, e := range expenses {
		rows = append(rows, table.Row{
			e.Date.String(),
			truncate(e.Title, 40),
			e.Category,
			e.Amount.String(),
		})
	}

	return rows
}

func tableHeight(height int) int {
	return max(3, height-chromeHeight)
}

// Helper to truncate strings.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
