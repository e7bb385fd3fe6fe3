package types

import "strings"

// Sensitivity is the ordinal classification of how damaging disclosure of a
// detected value would be. The total order is none < low < medium < high <
// critical.
type Sensitivity string

const (
	SensNone     Sensitivity = "none"
	SensLow      Sensitivity = "low"
	SensMedium   Sensitivity = "medium"
	SensHigh     Sensitivity = "high"
	SensCritical Sensitivity = "critical"
)

// Rank maps a sensitivity tier to its position in the total order.
// Unknown values rank as none.
func (s Sensitivity) Rank() int {
	switch s {
	case SensLow:
		return 1
	case SensMedium:
		return 2
	case SensHigh:
		return 3
	case SensCritical:
		return 4
	default:
		return 0
	}
}

// Max returns the higher of the two tiers under the total order.
func (s Sensitivity) Max(other Sensitivity) Sensitivity {
	if other.Rank() > s.Rank() {
		return other
	}
	return s
}

// ParseSensitivity normalizes a user-supplied tier name. Unrecognized input
// maps to none.
func ParseSensitivity(v string) Sensitivity {
	switch Sensitivity(strings.ToLower(strings.TrimSpace(v))) {
	case SensLow:
		return SensLow
	case SensMedium:
		return SensMedium
	case SensHigh:
		return SensHigh
	case SensCritical:
		return SensCritical
	default:
		return SensNone
	}
}

// Match is a validated, masked detection. The raw matched text is dropped
// before a Match is created; only the masked rendering is carried.
type Match struct {
	Category    string      `json:"category"`
	Label       string      `json:"label"`
	Masked      string      `json:"masked_text"`
	Sensitivity Sensitivity `json:"sensitivity"`
	Confidence  float64     `json:"confidence"`
	Start       int         `json:"start"`
	End         int         `json:"end"`
}

// Report is the tier-view result of analyzing one block of text.
// Matches are ordered by descending confidence, ties broken by ascending
// start offset. OverallSensitivity is the maximum tier across Matches and
// is none exactly when Matches is empty.
type Report struct {
	HasSensitiveData   bool        `json:"has_sensitive_data"`
	OverallSensitivity Sensitivity `json:"overall_sensitivity"`
	TotalMatches       int         `json:"total_matches"`
	Categories         []string    `json:"categories"`
	Matches            []Match     `json:"matches"`
	Recommendation     string      `json:"recommendation"`
}

// RiskLevel is the bucketed label of the 0-100 additive risk score.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "SAFE"
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// Detection is one entry of the score-view summary, a re-projection of a
// Match for callers that consume the numeric risk contract.
type Detection struct {
	Type           string      `json:"type"`
	MaskedValue    string      `json:"masked_value"`
	Sensitivity    Sensitivity `json:"sensitivity"`
	Recommendation string      `json:"recommendation"`
}

// Summary is the score-view result: an additive 0-100 risk score bucketed
// into coarse levels, derived from the same match sequence as the Report.
type Summary struct {
	RiskScore       int         `json:"risk_score"`
	RiskLevel       RiskLevel   `json:"risk_level"`
	TotalDetections int         `json:"total_detections"`
	Detections      []Detection `json:"detections"`
}
