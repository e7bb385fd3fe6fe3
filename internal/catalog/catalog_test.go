package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/leakwarden/leakwarden/internal/types"
)

func TestNewCompiles(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(c.Categories()) == 0 {
		t.Fatal("catalog has no categories")
	}
}

func TestRequiredCategoriesPresent(t *testing.T) {
	c := MustNew()
	required := []string{
		"credit_card", "bank_account", "cvv", "ssn", "national_id",
		"passport", "drivers_license", "password", "pin", "api_key",
		"phone", "email", "address", "dob", "medical",
		"confidential", "salary", "ip_address",
	}
	for _, name := range required {
		if _, ok := c.Lookup(name); !ok {
			t.Errorf("missing category %q", name)
		}
	}
	if got := len(c.Names()); got != len(required) {
		t.Errorf("got %d categories, want %d", got, len(required))
	}
}

func TestDescriptorMetadata(t *testing.T) {
	c := MustNew()
	for _, cat := range c.Categories() {
		if cat.Sensitivity.Rank() == 0 {
			t.Errorf("category %s has no default sensitivity", cat.Name)
		}
		if len(cat.Patterns) == 0 {
			t.Errorf("category %s has no patterns", cat.Name)
		}
		for _, d := range cat.Patterns {
			if d.Confidence <= 0 || d.Confidence > 1 {
				t.Errorf("category %s label %q: confidence %v out of range", cat.Name, d.Label, d.Confidence)
			}
			if d.Label == "" {
				t.Errorf("category %s has a descriptor without a label", cat.Name)
			}
			if d.Sensitivity.Rank() == 0 {
				t.Errorf("category %s label %q: missing sensitivity", cat.Name, d.Label)
			}
		}
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	c := MustNew()
	if _, ok := c.Lookup("EMAIL"); !ok {
		t.Error("Lookup should normalize case")
	}
	if _, ok := c.Lookup("no_such_category"); ok {
		t.Error("Lookup matched an unknown name")
	}
}

func TestDefaultSensitivity(t *testing.T) {
	c := MustNew()
	if got := c.DefaultSensitivity("email"); got != types.SensLow {
		t.Errorf("email sensitivity = %s, want low", got)
	}
	if got := c.DefaultSensitivity("unknown"); got != types.SensNone {
		t.Errorf("unknown sensitivity = %s, want none", got)
	}
}

// Pathological input must stay cheap: every grammar is RE2, so a long run
// of near-miss characters cannot trigger exponential backtracking.
func TestPathologicalInputCompletes(t *testing.T) {
	c := MustNew()
	input := strings.Repeat("4111 1111 1111 111", 5000) + "x"
	start := time.Now()
	for _, cat := range c.Categories() {
		for _, d := range cat.Patterns {
			d.Grammar.FindAllStringIndex(input, -1)
		}
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Fatalf("catalog scan took %v on pathological input", elapsed)
	}
}
