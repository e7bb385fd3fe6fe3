package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/leakwarden/leakwarden/internal/types"
)

func sampleReport() types.Report {
	return types.Report{
		HasSensitiveData:   true,
		OverallSensitivity: types.SensCritical,
		TotalMatches:       1,
		Categories:         []string{"credit_card"},
		Matches: []types.Match{{
			Category:    "credit_card",
			Label:       "Visa card",
			Masked:      "****-****-****-0366",
			Sensitivity: types.SensCritical,
			Confidence:  0.95,
			Start:       18,
			End:         34,
		}},
		Recommendation: "CRITICAL: highly sensitive data detected (credit_card). Strongly recommend not sending this over this channel.",
	}
}

func TestPrintText_NoMatches_ShowsFooter(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, types.Report{}, PrintOptions{Duration: 1200 * time.Millisecond, Sources: 10})
	out := buf.String()
	if !strings.Contains(out, "No sensitive data found") {
		t.Fatalf("expected friendly no-matches message; got: %q", out)
	}
	if !strings.Contains(out, "Sources scanned: 10") {
		t.Fatalf("expected footer with sources scanned; got: %q", out)
	}
}

func TestPrintText_WithMatches(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, sampleReport(), PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "Matches: 1") {
		t.Fatalf("expected matches header; got: %q", out)
	}
	if !strings.Contains(out, "credit_card") {
		t.Fatalf("expected category column; got: %q", out)
	}
	if !strings.Contains(out, "****-****-****-0366") {
		t.Fatalf("expected masked value; got: %q", out)
	}
	if strings.Contains(out, "4532") {
		t.Fatalf("raw value leaked into output: %q", out)
	}
	if !strings.Contains(out, "CRITICAL") {
		t.Fatalf("expected recommendation; got: %q", out)
	}
}

func TestPrintTable_WithMatches(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sampleReport(), PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "SENSITIVITY") {
		t.Fatalf("expected table header with SENSITIVITY; got: %q", out)
	}
	if !strings.Contains(out, "Visa card") {
		t.Fatalf("expected label in table; got: %q", out)
	}
	if !strings.Contains(out, "│") {
		t.Fatalf("expected table borders; got: %q", out)
	}
}

func TestPrintTable_NoMatches_ShowsFooter(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, types.Report{}, PrintOptions{Duration: 1200 * time.Millisecond, Sources: 10})
	out := buf.String()
	if !strings.Contains(out, "No sensitive data found") {
		t.Fatalf("expected friendly no-matches message; got: %q", out)
	}
	if !strings.Contains(out, "Sources scanned: 10") {
		t.Fatalf("expected footer with sources scanned; got: %q", out)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	sum := types.Summary{
		RiskScore:       55,
		RiskLevel:       types.RiskHigh,
		TotalDetections: 1,
		Detections: []types.Detection{{
			Type:           "IBAN",
			MaskedValue:    "GB*****************32",
			Sensitivity:    types.SensHigh,
			Recommendation: "Share only over a trusted channel.",
		}},
	}
	PrintSummary(&buf, sum, PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "Risk score: 55/100 (HIGH)") {
		t.Fatalf("expected score line; got: %q", out)
	}
	if !strings.Contains(out, "IBAN") {
		t.Fatalf("expected detection line; got: %q", out)
	}
}

func TestShouldFail(t *testing.T) {
	low := []types.Match{{Sensitivity: types.SensLow}}
	high := []types.Match{{Sensitivity: types.SensHigh}}

	if ShouldFail(low, "") {
		t.Error("low match should not fail the default medium threshold")
	}
	if !ShouldFail(high, "") {
		t.Error("high match should fail the default medium threshold")
	}
	if !ShouldFail(low, "low") {
		t.Error("low threshold should catch low matches")
	}
	if ShouldFail(high, "critical") {
		t.Error("critical threshold should ignore high matches")
	}
	if ShouldFail(nil, "low") {
		t.Error("no matches never fails")
	}
}
