// Package catalog holds the immutable registry of sensitive-data grammars.
// A Catalog is pure data built once at startup: categories in a fixed order,
// each carrying one or more compiled pattern descriptors. Catalogs are
// read-only after construction and safe to share across goroutines.
package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leakwarden/leakwarden/internal/types"
)

// Descriptor is one compiled grammar with its reporting metadata.
// When the grammar declares a capture group, group 1 is the sensitive
// payload and only that sub-span is reported and masked; grammars without
// a group report the full match.
type Descriptor struct {
	Grammar     *regexp.Regexp
	Label       string
	Sensitivity types.Sensitivity
	Confidence  float64
}

// Category groups descriptors sharing a semantic domain, plus the default
// tier used for summary classification.
type Category struct {
	Name        string
	Sensitivity types.Sensitivity
	Patterns    []Descriptor
}

// Catalog is the full category registry in evaluation order.
type Catalog struct {
	cats   []Category
	byName map[string]int
}

// pattern is the uncompiled descriptor row in the static table below.
type pattern struct {
	grammar string
	label   string
	tier    types.Sensitivity
	conf    float64
	// exact disables case folding for grammars whose letter case is
	// load-bearing (e.g. SWIFT/BIC, AWS key prefixes), which would
	// otherwise match ordinary prose.
	exact bool
}

type categorySpec struct {
	name     string
	tier     types.Sensitivity
	patterns []pattern
}

var table = []categorySpec{
	{name: "credit_card", tier: types.SensCritical, patterns: []pattern{
		{grammar: `\b4[0-9]{3}[-\s]?[0-9]{4}[-\s]?[0-9]{4}[-\s]?[0-9]{4}\b`, label: "Visa card", tier: types.SensCritical, conf: 0.95},
		{grammar: `\b5[1-5][0-9]{2}[-\s]?[0-9]{4}[-\s]?[0-9]{4}[-\s]?[0-9]{4}\b`, label: "MasterCard", tier: types.SensCritical, conf: 0.95},
		{grammar: `\b3[47][0-9]{2}[-\s]?[0-9]{6}[-\s]?[0-9]{5}\b`, label: "American Express", tier: types.SensCritical, conf: 0.95},
		{grammar: `\b6(?:011|5[0-9]{2})[-\s]?[0-9]{4}[-\s]?[0-9]{4}[-\s]?[0-9]{4}\b`, label: "Discover card", tier: types.SensCritical, conf: 0.95},
		{grammar: `\b[0-9]{4}[-\s]?[0-9]{4}[-\s]?[0-9]{4}[-\s]?[0-9]{4}\b`, label: "Credit card number", tier: types.SensCritical, conf: 0.70},
	}},
	{name: "bank_account", tier: types.SensHigh, patterns: []pattern{
		{grammar: `\b[A-Z]{2}[0-9]{2}[A-Z0-9]{4}[0-9]{7}[A-Z0-9]{0,16}\b`, label: "IBAN", tier: types.SensHigh, conf: 0.95},
		{grammar: `\b(?:account|acct|a/c)[\s:#]*([0-9]{8,17})\b`, label: "Bank account number", tier: types.SensHigh, conf: 0.85},
		{grammar: `\b(?:routing|rtg|aba)[\s:#]*([0-9]{9})\b`, label: "Bank routing number", tier: types.SensHigh, conf: 0.90},
		{grammar: `\b[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}(?:[A-Z0-9]{3})?\b`, label: "SWIFT/BIC code", tier: types.SensHigh, conf: 0.80, exact: true},
	}},
	{name: "cvv", tier: types.SensCritical, patterns: []pattern{
		{grammar: `\b(?:cvv2?|cvc2?|security\s*code)[\s:]*([0-9]{3,4})\b`, label: "Card security code (CVV)", tier: types.SensCritical, conf: 0.95},
	}},
	{name: "ssn", tier: types.SensCritical, patterns: []pattern{
		{grammar: `\b[0-9]{3}[-\s][0-9]{2}[-\s][0-9]{4}\b`, label: "Social Security Number", tier: types.SensCritical, conf: 0.95},
		{grammar: `\b(?:ssn|social\s*security)[\s:#]*([0-9]{3}[-\s]?[0-9]{2}[-\s]?[0-9]{4})\b`, label: "SSN", tier: types.SensCritical, conf: 0.98},
	}},
	{name: "national_id", tier: types.SensCritical, patterns: []pattern{
		{grammar: `\b[STFGM][0-9]{7}[A-Z]\b`, label: "Singapore NRIC/FIN", tier: types.SensCritical, conf: 0.95},
		{grammar: `\b[0-9]{6}[-\s]?[0-9]{2}[-\s]?[0-9]{4}\b`, label: "Malaysia IC", tier: types.SensCritical, conf: 0.80},
		{grammar: `\b[0-9]{9}[VX]\b`, label: "Sri Lankan NIC (old)", tier: types.SensHigh, conf: 0.90},
		{grammar: `\b(?:19|20)[0-9]{10}\b`, label: "Sri Lankan NIC (new)", tier: types.SensHigh, conf: 0.85},
	}},
	{name: "passport", tier: types.SensHigh, patterns: []pattern{
		{grammar: `\bpassport[\s:#]*([A-Z]{1,2}[0-9]{6,9})\b`, label: "Passport number", tier: types.SensHigh, conf: 0.85},
	}},
	{name: "drivers_license", tier: types.SensHigh, patterns: []pattern{
		{grammar: `\b(?:driver'?s?\s*licen[cs]e|dl|licen[cs]e\s*#?)[\s:#]+([A-Z0-9]{5,15})\b`, label: "Driver's license", tier: types.SensHigh, conf: 0.80},
	}},
	{name: "password", tier: types.SensCritical, patterns: []pattern{
		{grammar: `\bpassword[\s:=]+(\S+)`, label: "Password", tier: types.SensCritical, conf: 0.95},
		{grammar: `\b(?:pwd|passwd)[\s:=]+(\S+)`, label: "Password", tier: types.SensCritical, conf: 0.90},
		{grammar: `\bpass[\s:=]+(\S{6,})`, label: "Password", tier: types.SensCritical, conf: 0.80},
	}},
	{name: "pin", tier: types.SensCritical, patterns: []pattern{
		{grammar: `\bpin(?:\s*code|\s*number)?[\s:=]+([0-9]{4,6})\b`, label: "PIN code", tier: types.SensCritical, conf: 0.95},
	}},
	{name: "api_key", tier: types.SensCritical, patterns: []pattern{
		{grammar: `\bapi[\s_-]?key[\s:=]+([A-Za-z0-9_\-]{20,})`, label: "API key", tier: types.SensCritical, conf: 0.95},
		{grammar: `\bsecret[_-]?key[\s:=]+([A-Za-z0-9_\-]{20,})`, label: "Secret key", tier: types.SensCritical, conf: 0.95},
		{grammar: `\baccess[_-]?token[\s:=]+([A-Za-z0-9_\-]{20,})`, label: "Access token", tier: types.SensCritical, conf: 0.95},
		{grammar: `\bbearer\s+([A-Za-z0-9_\-.]{20,})`, label: "Bearer token", tier: types.SensCritical, conf: 0.90},
		{grammar: `\bAKIA[0-9A-Z]{16}\b`, label: "AWS access key", tier: types.SensCritical, conf: 0.98, exact: true},
		{grammar: `\bsk-[A-Za-z0-9]{20,}\b`, label: "Secret key string", tier: types.SensCritical, conf: 0.90},
	}},
	{name: "phone", tier: types.SensMedium, patterns: []pattern{
		{grammar: `\+[1-9][0-9]{0,2}[-\s]?[0-9]{8,14}\b`, label: "Phone number (international)", tier: types.SensMedium, conf: 0.85},
		{grammar: `\b\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}\b`, label: "Phone number (US)", tier: types.SensMedium, conf: 0.80},
		{grammar: `\b(?:phone|mobile|cell|tel)\b[\s:#]*([0-9][0-9\-\s]{8,}[0-9])`, label: "Phone number", tier: types.SensMedium, conf: 0.85},
	}},
	{name: "email", tier: types.SensLow, patterns: []pattern{
		{grammar: `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`, label: "Email address", tier: types.SensLow, conf: 0.95},
	}},
	{name: "address", tier: types.SensMedium, patterns: []pattern{
		{grammar: `\b(?:address|street|avenue|road|blvd|lane)[\s:#]*([0-9]+\s+[A-Za-z][A-Za-z\s]{2,40})`, label: "Physical address", tier: types.SensMedium, conf: 0.70},
	}},
	{name: "dob", tier: types.SensMedium, patterns: []pattern{
		{grammar: `\b(?:dob|date\s*of\s*birth|born|birthday)[\s:]+([0-9]{1,2}[/\-][0-9]{1,2}[/\-][0-9]{2,4})\b`, label: "Date of birth", tier: types.SensMedium, conf: 0.90},
	}},
	{name: "medical", tier: types.SensHigh, patterns: []pattern{
		{grammar: `\b(?:mrn|medical\s*record|patient\s*id)[\s:#]*([A-Z0-9]{6,})\b`, label: "Medical record number", tier: types.SensHigh, conf: 0.90},
		{grammar: `\b(?:diagnosis|prescription|medication)[\s:]+([A-Za-z][A-Za-z\s]{2,40})`, label: "Health information", tier: types.SensHigh, conf: 0.70},
	}},
	{name: "confidential", tier: types.SensHigh, patterns: []pattern{
		{grammar: `\b(?:confidential|classified|internal\s+use\s+only|do\s+not\s+(?:share|forward)|nda)\b`, label: "Confidential content marker", tier: types.SensHigh, conf: 0.75},
	}},
	{name: "salary", tier: types.SensHigh, patterns: []pattern{
		{grammar: `\b(?:salary|compensation|ctc)\b[^0-9\n]{0,24}([0-9][0-9,]{2,}(?:\.[0-9]{2})?)`, label: "Salary figure", tier: types.SensHigh, conf: 0.70},
	}},
	{name: "ip_address", tier: types.SensMedium, patterns: []pattern{
		{grammar: `\b(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\b`, label: "IP address (IPv4)", tier: types.SensMedium, conf: 0.90},
		{grammar: `\b(?:[0-9a-f]{1,4}:){7}[0-9a-f]{1,4}\b`, label: "IP address (IPv6)", tier: types.SensMedium, conf: 0.90},
	}},
}

// New compiles the built-in pattern table into an immutable Catalog.
// Grammars compile case-insensitively unless the descriptor is marked exact.
func New() (*Catalog, error) {
	c := &Catalog{byName: make(map[string]int, len(table))}
	for _, spec := range table {
		cat := Category{Name: spec.name, Sensitivity: spec.tier}
		for _, p := range spec.patterns {
			src := p.grammar
			if !p.exact {
				src = "(?i)" + src
			}
			re, err := regexp.Compile(src)
			if err != nil {
				return nil, fmt.Errorf("catalog: category %s pattern %q: %w", spec.name, p.grammar, err)
			}
			cat.Patterns = append(cat.Patterns, Descriptor{
				Grammar:     re,
				Label:       p.label,
				Sensitivity: p.tier,
				Confidence:  p.conf,
			})
		}
		c.byName[cat.Name] = len(c.cats)
		c.cats = append(c.cats, cat)
	}
	return c, nil
}

// MustNew is New for callers that treat a broken built-in table as fatal
// (tests, CLI init paths that surface the error themselves).
func MustNew() *Catalog {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
}

// Categories returns the categories in evaluation order.
func (c *Catalog) Categories() []Category { return c.cats }

// Lookup returns the category with the given name.
func (c *Catalog) Lookup(name string) (Category, bool) {
	i, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return Category{}, false
	}
	return c.cats[i], true
}

// Names returns all category names in evaluation order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.cats))
	for _, cat := range c.cats {
		out = append(out, cat.Name)
	}
	return out
}

// DefaultSensitivity returns the category's summary tier, none for unknown
// categories. Kept for compatibility with consumers that classify by
// category rather than by the descriptor that fired.
func (c *Catalog) DefaultSensitivity(name string) types.Sensitivity {
	if cat, ok := c.Lookup(name); ok {
		return cat.Sensitivity
	}
	return types.SensNone
}
