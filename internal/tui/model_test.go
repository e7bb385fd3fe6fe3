package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leakwarden/leakwarden/internal/types"
)

func reviewFixture() (types.Report, types.Summary) {
	rep := types.Report{
		HasSensitiveData:   true,
		OverallSensitivity: types.SensCritical,
		TotalMatches:       3,
		Categories:         []string{"credit_card", "email", "phone"},
		Matches: []types.Match{
			{Category: "credit_card", Label: "Visa card", Masked: "****-****-****-0366", Sensitivity: types.SensCritical, Confidence: 0.95},
			{Category: "email", Label: "Email address", Masked: "j***@example.com", Sensitivity: types.SensLow, Confidence: 0.95},
			{Category: "phone", Label: "Phone number (US)", Masked: "***-***-4567", Sensitivity: types.SensMedium, Confidence: 0.80},
		},
		Recommendation: "CRITICAL: highly sensitive data detected (credit_card). Strongly recommend not sending this over this channel.",
	}
	sum := types.Summary{RiskScore: 100, RiskLevel: types.RiskCritical, TotalDetections: 3}
	return rep, sum
}

func TestApplyFilters_SearchQuery(t *testing.T) {
	rep, sum := reviewFixture()
	m := NewModel("inbox.txt", rep, sum)

	m.searchQuery = "visa"
	m.applyFilters()
	if len(m.matches) != 1 {
		t.Errorf("expected 1 match for 'visa', got %d", len(m.matches))
	}
	if m.matches[0].Category != "credit_card" {
		t.Errorf("expected credit_card, got %s", m.matches[0].Category)
	}

	m.searchQuery = "example.com"
	m.applyFilters()
	if len(m.matches) != 1 {
		t.Errorf("expected 1 match for masked value search, got %d", len(m.matches))
	}

	m.searchQuery = "PHONE"
	m.applyFilters()
	if len(m.matches) != 1 {
		t.Errorf("search should be case insensitive, got %d", len(m.matches))
	}
}

func TestApplyFilters_TierFilter(t *testing.T) {
	rep, sum := reviewFixture()
	m := NewModel("inbox.txt", rep, sum)

	m.tierFilter = types.SensCritical
	m.applyFilters()
	if len(m.matches) != 1 {
		t.Errorf("expected 1 critical match, got %d", len(m.matches))
	}

	m.tierFilter = types.SensLow
	m.applyFilters()
	if len(m.matches) != 1 {
		t.Errorf("expected 1 low match, got %d", len(m.matches))
	}
}

func TestCycleTierFilter(t *testing.T) {
	rep, sum := reviewFixture()
	m := NewModel("inbox.txt", rep, sum)

	want := []types.Sensitivity{
		types.SensCritical, types.SensHigh, types.SensMedium,
		types.SensLow, types.SensNone,
	}
	for _, tier := range want {
		m.cycleTierFilter()
		if m.tierFilter != tier {
			t.Fatalf("cycle gave %s, want %s", m.tierFilter, tier)
		}
	}
}

func TestClearFilters(t *testing.T) {
	rep, sum := reviewFixture()
	m := NewModel("inbox.txt", rep, sum)
	m.searchQuery = "visa"
	m.tierFilter = types.SensCritical
	m.applyFilters()

	m.clearFilters()
	if m.searchQuery != "" || m.tierFilter != types.SensNone {
		t.Error("filters not cleared")
	}
	if len(m.matches) != 3 {
		t.Errorf("expected all 3 matches after clear, got %d", len(m.matches))
	}
}

func TestSelectedMatch(t *testing.T) {
	rep, sum := reviewFixture()
	m := NewModel("inbox.txt", rep, sum)
	if _, ok := m.selectedMatch(); !ok {
		t.Error("expected a selected match with non-empty rows")
	}

	empty := NewModel("inbox.txt", types.Report{}, types.Summary{RiskLevel: types.RiskSafe})
	if _, ok := empty.selectedMatch(); ok {
		t.Error("expected no selection for an empty report")
	}
}

func TestTierText(t *testing.T) {
	cases := map[types.Sensitivity]string{
		types.SensCritical: "CRIT",
		types.SensHigh:     "HIGH",
		types.SensMedium:   "MED",
		types.SensLow:      "LOW",
	}
	for tier, want := range cases {
		if got := tierText(tier); got != want {
			t.Errorf("tierText(%s) = %q, want %q", tier, got, want)
		}
	}
}

func TestUpdate_Quit(t *testing.T) {
	rep, sum := reviewFixture()
	m := NewModel("inbox.txt", rep, sum)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if !next.(Model).quitting {
		t.Error("model not marked quitting")
	}
}

func TestUpdate_SearchMode(t *testing.T) {
	rep, sum := reviewFixture()
	m := NewModel("inbox.txt", rep, sum)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = next.(Model)
	if !m.searchMode {
		t.Fatal("expected search mode after /")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.searchMode {
		t.Error("enter should leave search mode")
	}
	if m.searchQuery != "v" {
		t.Errorf("searchQuery = %q, want %q", m.searchQuery, "v")
	}
}
