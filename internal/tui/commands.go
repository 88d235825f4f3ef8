package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// loadExpenses fetches the dataset from the configured source. This is the
// only asynchronous operation in the UI; everything after it is a pure
// recomputation over the loaded dataset.
func (m Model) loadExpenses() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.config.LoadTimeout)
		defer cancel()

		return loadResultMsg{status: m.source.Load(ctx)}
	}
}
