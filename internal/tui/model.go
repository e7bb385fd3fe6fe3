package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leakwarden/leakwarden/internal/types"
)

var (
	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	detailPaneBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	emptyTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Align(lipgloss.Center)

	tierCriticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	tierHighStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	tierMediumStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	tierLowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// tierText returns plain text for a tier (ANSI codes break table truncation).
func tierText(s types.Sensitivity) string {
	switch s {
	case types.SensCritical:
		return "CRIT"
	case types.SensHigh:
		return "HIGH"
	case types.SensMedium:
		return "MED"
	case types.SensLow:
		return "LOW"
	default:
		return string(s)
	}
}

func tierStyle(s types.Sensitivity) lipgloss.Style {
	switch s {
	case types.SensCritical:
		return tierCriticalStyle
	case types.SensHigh:
		return tierHighStyle
	case types.SensMedium:
		return tierMediumStyle
	default:
		return tierLowStyle
	}
}

type statusMsg string
type clearStatusMsg struct{}

// Model is the interactive match review state.
type Model struct {
	table table.Model

	report   types.Report
	summary  types.Summary
	source   string
	matches  []types.Match // matches after filters (nil filter = all)
	indices  []int         // maps filtered index to report match index
	quitting bool
	ready    bool
	height   int
	width    int

	statusMessage string
	showHelp      bool

	searchMode  bool
	searchInput textinput.Model
	searchQuery string
	tierFilter  types.Sensitivity // none = no filter
}

// NewModel builds the review model over one scan's tier and score views.
func NewModel(source string, rep types.Report, sum types.Summary) Model {
	ti := textinput.New()
	ti.Placeholder = "search category, type, masked value..."
	ti.CharLimit = 64

	m := Model{
		report:      rep,
		summary:     sum,
		source:      source,
		searchInput: ti,
	}
	m.table = table.New(
		table.WithColumns(matchColumns(80)),
		table.WithFocused(true),
	)
	m.applyFilters()
	return m
}

func matchColumns(width int) []table.Column {
	w := width - 10
	if w < 40 {
		w = 40
	}
	return []table.Column{
		{Title: "TIER", Width: 5},
		{Title: "CATEGORY", Width: w * 2 / 10},
		{Title: "TYPE", Width: w * 3 / 10},
		{Title: "MASKED", Width: w * 4 / 10},
		{Title: "CONF", Width: 5},
	}
}

// applyFilters recomputes the visible match list from the search query and
// tier filter, then rebuilds the table rows.
func (m *Model) applyFilters() {
	m.matches = m.matches[:0]
	m.indices = m.indices[:0]
	q := strings.ToLower(m.searchQuery)
	for i, match := range m.report.Matches {
		if m.tierFilter != types.SensNone && match.Sensitivity != m.tierFilter {
			continue
		}
		if q != "" && !matchContains(match, q) {
			continue
		}
		m.matches = append(m.matches, match)
		m.indices = append(m.indices, i)
	}

	rows := make([]table.Row, 0, len(m.matches))
	for _, match := range m.matches {
		rows = append(rows, table.Row{
			tierText(match.Sensitivity),
			match.Category,
			match.Label,
			match.Masked,
			fmt.Sprintf("%.2f", match.Confidence),
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

func matchContains(m types.Match, q string) bool {
	return strings.Contains(strings.ToLower(m.Category), q) ||
		strings.Contains(strings.ToLower(m.Label), q) ||
		strings.Contains(strings.ToLower(m.Masked), q)
}

func (m *Model) clearFilters() {
	m.searchQuery = ""
	m.tierFilter = types.SensNone
	m.searchInput.SetValue("")
	m.applyFilters()
}

// cycleTierFilter advances none -> critical -> high -> medium -> low -> none.
func (m *Model) cycleTierFilter() {
	order := []types.Sensitivity{
		types.SensNone, types.SensCritical, types.SensHigh,
		types.SensMedium, types.SensLow,
	}
	for i, tier := range order {
		if m.tierFilter == tier {
			m.tierFilter = order[(i+1)%len(order)]
			break
		}
	}
	m.applyFilters()
}

func (m Model) selectedMatch() (types.Match, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.matches) {
		return types.Match{}, false
	}
	return m.matches[i], true
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.table.SetColumns(matchColumns(msg.Width))
		m.table.SetHeight(msg.Height - 12)
		return m, nil

	case statusMsg:
		m.statusMessage = string(msg)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		if m.searchMode {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.showHelp {
				m.showHelp = false
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "/":
			m.searchMode = true
			m.searchInput.Focus()
			return m, textinput.Blink
		case "f":
			m.cycleTierFilter()
			return m, nil
		case "c":
			m.clearFilters()
			return m, nil
		case "y":
			return m, m.copyMasked()
		case "Y":
			return m, m.copyDetails()
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.searchQuery = m.searchInput.Value()
		m.searchInput.Blur()
		m.applyFilters()
		return m, nil
	case "esc":
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.SetValue(m.searchQuery)
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("leakwarden review · %s", m.source)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(" risk %d/100 (%s) · %d matches",
		m.summary.RiskScore, m.summary.RiskLevel, m.report.TotalMatches))
	if m.tierFilter != types.SensNone || m.searchQuery != "" {
		b.WriteString(fmt.Sprintf(" · showing %d", len(m.matches)))
	}
	b.WriteString("\n")

	if len(m.report.Matches) == 0 {
		b.WriteString("\n")
		b.WriteString(emptyTextStyle.Width(m.width).Render("No sensitive data found ✅"))
		b.WriteString("\n\n")
	} else {
		b.WriteString(tableBorderStyle.Render(m.table.View()))
		b.WriteString("\n")
		b.WriteString(detailPaneBorderStyle.Width(m.width - 2).Render(m.detailView()))
		b.WriteString("\n")
	}

	if m.searchMode {
		b.WriteString("/" + m.searchInput.View() + "\n")
	}
	if m.statusMessage != "" {
		b.WriteString(statusStyle.Render(" "+m.statusMessage+" ") + "\n")
	}
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) detailView() string {
	match, ok := m.selectedMatch()
	if !ok {
		return "no selection"
	}
	tier := tierStyle(match.Sensitivity).Render(strings.ToUpper(string(match.Sensitivity)))
	return fmt.Sprintf("%s  %s\n%s: %s\nconfidence %.2f · span %d-%d\n%s",
		tier, match.Label,
		match.Category, match.Masked,
		match.Confidence, match.Start, match.End,
		m.report.Recommendation)
}

func (m Model) footerView() string {
	filter := "all"
	if m.tierFilter != types.SensNone {
		filter = string(m.tierFilter)
	}
	return statusStyle.Width(m.width).Render(fmt.Sprintf(
		" %s search · %s filter(%s) · %s clear · %s copy masked · %s copy details · %s help · %s quit",
		keyStyle.Render("/"), keyStyle.Render("f"), filter, keyStyle.Render("c"),
		keyStyle.Render("y"), keyStyle.Render("Y"), keyStyle.Render("?"), keyStyle.Render("q")))
}

func (m Model) helpView() string {
	help := `leakwarden review

  up/down     move selection
  /           search category, type, or masked value
  f           cycle tier filter (critical, high, medium, low)
  c           clear search and filter
  y           copy masked value to clipboard
  Y           copy match details to clipboard
  ?           toggle this help
  q / esc     quit
`
	return titleStyle.Render("Help") + "\n" + help
}
