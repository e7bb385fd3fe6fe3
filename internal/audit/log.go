package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/leakwarden/leakwarden/internal/types"
)

// ScanRecord is one line of the audit history. Matches carry only masked
// renderings; raw scanned text is never persisted.
type ScanRecord struct {
	Timestamp      time.Time       `json:"timestamp"`
	ScanID         string          `json:"scan_id"`
	Source         string          `json:"source"`
	TotalMatches   int             `json:"total_matches"`
	NewMatches     int             `json:"new_matches"`
	BaselinedCount int             `json:"baselined_count"`
	TierCounts     map[string]int  `json:"tier_counts"`
	RiskScore      int             `json:"risk_score"`
	RiskLevel      types.RiskLevel `json:"risk_level"`
	Recommendation string          `json:"recommendation"`
	Duration       string          `json:"duration"`
	Matches        []types.Match   `json:"matches,omitempty"`
}

type AuditLog struct {
	logPath string
}

// NewAuditLog stores history under dir, which defaults to ~/.leakwarden.
func NewAuditLog(dir string) *AuditLog {
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".leakwarden")
		} else {
			dir = "."
		}
	}
	return &AuditLog{logPath: filepath.Join(dir, "audit.jsonl")}
}

// Path returns the audit log location.
func (a *AuditLog) Path() string { return a.logPath }

// LoadHistory returns all records, newest first. Malformed lines are skipped.
func (a *AuditLog) LoadHistory() ([]ScanRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var record ScanRecord
		if err := decoder.Decode(&record); err != nil {
			continue
		}
		records = append(records, record)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (a *AuditLog) LogScan(record ScanRecord) error {
	if record.ScanID == "" {
		record.ScanID = fmt.Sprintf("scan_%d", time.Now().Unix())
	}
	if err := os.MkdirAll(filepath.Dir(a.logPath), 0o700); err != nil {
		return fmt.Errorf("failed to create audit dir: %w", err)
	}

	// Owner-only: the log carries masked values and match metadata.
	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// DeleteRecord removes the record at the given newest-first index.
func (a *AuditLog) DeleteRecord(index int) error {
	records, err := a.LoadHistory()
	if err != nil {
		return err
	}

	if index < 0 || index >= len(records) {
		return fmt.Errorf("invalid index: %d", index)
	}

	records = append(records[:index], records[index+1:]...)

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	f, err := os.Create(a.logPath)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to write audit record: %w", err)
		}
	}
	return nil
}

// Clear truncates the history.
func (a *AuditLog) Clear() error {
	err := os.Remove(a.logPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear audit log: %w", err)
	}
	return nil
}

// Stats aggregates the history for the --stats view.
type Stats struct {
	Scans          int
	TotalMatches   int
	TierCounts     map[string]int
	CategoryCounts map[string]int
	PeakRiskScore  int
	FirstScan      time.Time
	LastScan       time.Time
}

func (a *AuditLog) ComputeStats() (Stats, error) {
	records, err := a.LoadHistory()
	if err != nil {
		return Stats{}, err
	}
	s := Stats{
		TierCounts:     map[string]int{},
		CategoryCounts: map[string]int{},
	}
	for _, r := range records {
		s.Scans++
		s.TotalMatches += r.TotalMatches
		for tier, n := range r.TierCounts {
			s.TierCounts[tier] += n
		}
		for _, m := range r.Matches {
			s.CategoryCounts[m.Category]++
		}
		if r.RiskScore > s.PeakRiskScore {
			s.PeakRiskScore = r.RiskScore
		}
		if s.FirstScan.IsZero() || r.Timestamp.Before(s.FirstScan) {
			s.FirstScan = r.Timestamp
		}
		if r.Timestamp.After(s.LastScan) {
			s.LastScan = r.Timestamp
		}
	}
	return s, nil
}

// CreateScanRecord assembles a record from one scan's tier and score views.
func CreateScanRecord(
	source string,
	rep types.Report,
	sum types.Summary,
	newMatches []types.Match,
	duration time.Duration,
) ScanRecord {
	tierCounts := make(map[string]int)
	for _, m := range rep.Matches {
		tierCounts[string(m.Sensitivity)]++
	}

	return ScanRecord{
		Timestamp:      time.Now(),
		Source:         source,
		TotalMatches:   rep.TotalMatches,
		NewMatches:     len(newMatches),
		BaselinedCount: rep.TotalMatches - len(newMatches),
		TierCounts:     tierCounts,
		RiskScore:      sum.RiskScore,
		RiskLevel:      sum.RiskLevel,
		Recommendation: rep.Recommendation,
		Duration:       duration.String(),
		Matches:        rep.Matches,
	}
}
