package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// copyMasked copies the selected match's masked rendering to the clipboard.
// Raw values are never available here; the engine drops them before reporting.
func (m Model) copyMasked() tea.Cmd {
	match, ok := m.selectedMatch()
	if !ok {
		return func() tea.Msg { return statusMsg("No match selected") }
	}
	if err := clipboard.WriteAll(match.Masked); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Clipboard error: %v", err)) }
	}
	return func() tea.Msg { return statusMsg("Copied masked value to clipboard") }
}

// copyDetails copies a full description of the selected match.
func (m Model) copyDetails() tea.Cmd {
	match, ok := m.selectedMatch()
	if !ok {
		return func() tea.Msg { return statusMsg("No match selected") }
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Source: %s\n", m.source)
	fmt.Fprintf(&sb, "Category: %s\n", match.Category)
	fmt.Fprintf(&sb, "Type: %s\n", match.Label)
	fmt.Fprintf(&sb, "Sensitivity: %s\n", match.Sensitivity)
	fmt.Fprintf(&sb, "Masked: %s\n", match.Masked)
	fmt.Fprintf(&sb, "Confidence: %.2f\n", match.Confidence)
	fmt.Fprintf(&sb, "Span: %d-%d\n", match.Start, match.End)
	fmt.Fprintf(&sb, "Recommendation: %s\n", m.report.Recommendation)
	if err := clipboard.WriteAll(sb.String()); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Clipboard error: %v", err)) }
	}
	return func() tea.Msg { return statusMsg("Copied match details to clipboard") }
}
