package leakwarden

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, int) {
	t.Helper()
	// run as subprocess to avoid os.Exit in-process
	cmd := exec.Command("go", append([]string{"run", "."}, args...)...)
	cmd.Dir = filepath.Clean(filepath.Join("..", ".."))
	cmd.Env = append(os.Environ(), "CI=1")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("execute: %v", err)
	}
	return out.String(), code
}

func TestCLI_JSON_Shape_ExitCodes(t *testing.T) {
	out, code := runCLI(t, "scan", "--json", "--no-audit", "--fail-on", "high",
		"API key: sk-abcdefghijklmnopqrstuvwxyz0123")
	if code != 1 {
		t.Fatalf("expected exit 1 for a critical match with --fail-on high, got %d", code)
	}
	var results []struct {
		Source string `json:"source"`
		Report struct {
			HasSensitiveData bool `json:"has_sensitive_data"`
			Matches          []struct {
				Category string `json:"category"`
				Masked   string `json:"masked_text"`
			} `json:"matches"`
		} `json:"report"`
	}
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if len(results) != 1 || !results[0].Report.HasSensitiveData {
		t.Fatalf("expected one sensitive result, got %+v", results)
	}
	for _, m := range results[0].Report.Matches {
		if bytes.Contains([]byte(m.Masked), []byte("abcdefghijklmnopqrstuvwxyz")) {
			t.Fatalf("raw value leaked into JSON: %q", m.Masked)
		}
	}
}

func TestCLI_CleanTextExitsZero(t *testing.T) {
	out, code := runCLI(t, "scan", "--json", "--no-audit", "Meeting at 3pm tomorrow")
	if code != 0 {
		t.Fatalf("expected exit 0 for clean text, got %d\n%s", code, out)
	}
}

func TestCLI_ScoreView(t *testing.T) {
	out, code := runCLI(t, "scan", "--json", "--no-audit", "--view", "score",
		"Transfer to account 1234567890123456")
	if code != 1 {
		t.Fatalf("expected exit 1 for a high match with default fail-on, got %d", code)
	}
	var results []struct {
		Summary struct {
			RiskScore int    `json:"risk_score"`
			RiskLevel string `json:"risk_level"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if len(results) != 1 || results[0].Summary.RiskScore != 55 || results[0].Summary.RiskLevel != "HIGH" {
		t.Fatalf("unexpected score view: %+v", results)
	}
}

func TestCLI_ConfigFileScanScope(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write(".leakwarden.yml", "exclude: \"**/*.txt\"\n")
	write("secret.txt", "My card is 4532-0151-1283-0366\n")
	write("notes.md", "Meeting at 3pm tomorrow\n")

	out, code := runCLI(t, "scan", "--json", "--no-audit", "--no-cache", "--path", dir)
	if code != 0 {
		t.Fatalf("expected exit 0 when the config excludes the sensitive file, got %d\n%s", code, out)
	}
	if strings.Contains(out, "secret.txt") {
		t.Fatalf("config-excluded file was scanned:\n%s", out)
	}
	if !strings.Contains(out, "notes.md") {
		t.Fatalf("non-excluded file missing from results:\n%s", out)
	}
}

func TestCLI_BaselineUpdateThenScan(t *testing.T) {
	base := filepath.Join(t.TempDir(), "base.json")
	msg := "My card is 4532-0151-1283-0366"

	out, code := runCLI(t, "baseline", "update", "--baseline", base, msg)
	if code != 0 {
		t.Fatalf("baseline update exited %d\n%s", code, out)
	}
	if _, err := os.Stat(base); err != nil {
		t.Fatalf("baseline file not written: %v", err)
	}

	out, code = runCLI(t, "scan", "--json", "--no-audit", "--baseline", base, msg)
	if code != 0 {
		t.Fatalf("expected exit 0 for fully baselined matches, got %d\n%s", code, out)
	}
}

func TestCLI_Patterns(t *testing.T) {
	out, code := runCLI(t, "patterns")
	if code != 0 {
		t.Fatalf("patterns exited %d", code)
	}
	if !bytes.Contains([]byte(out), []byte("credit_card")) {
		t.Fatalf("patterns output missing credit_card:\n%s", out)
	}
}
