package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leakwarden/leakwarden/internal/types"
)

// Run opens the interactive review over one scan's results.
func Run(source string, rep types.Report, sum types.Summary) error {
	m := NewModel(source, rep, sum)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
