package engine

import (
	"fmt"
	"strings"

	"github.com/leakwarden/leakwarden/internal/types"
)

// recommendation renders the per-tier advice string for the overall verdict.
// The critical message names up to three offending categories.
func recommendation(level types.Sensitivity, categories []string) string {
	switch level {
	case types.SensLow:
		return "Low sensitivity data detected. Consider whether the recipient needs this information."
	case types.SensMedium:
		return "Medium sensitivity data detected. Verify you trust the recipient before sending."
	case types.SensHigh:
		return "High sensitivity data detected. Only send if absolutely necessary and to trusted recipients."
	case types.SensCritical:
		named := categories
		if len(named) > 3 {
			named = named[:3]
		}
		return fmt.Sprintf("CRITICAL: highly sensitive data detected (%s). Strongly recommend not sending this over this channel.", strings.Join(named, ", "))
	default:
		return "No sensitive data detected. Safe to send."
	}
}

// tierScore is the additive weight of the single highest-severity tier.
var tierScore = map[types.Sensitivity]int{
	types.SensLow:      10,
	types.SensMedium:   25,
	types.SensHigh:     50,
	types.SensCritical: 100,
}

// Summarize re-projects a tier-view report into the score view:
// risk_score = min(100, peak_tier_score + min(5*matches, 20)), bucketed
// into SAFE/LOW/MEDIUM/HIGH/CRITICAL. It derives everything from the
// report's match sequence; the two views are never mixed inside either.
func Summarize(rep types.Report) types.Summary {
	sum := types.Summary{
		RiskLevel:       types.RiskSafe,
		TotalDetections: rep.TotalMatches,
		Detections:      make([]types.Detection, 0, len(rep.Matches)),
	}
	peak := 0
	for _, m := range rep.Matches {
		if s := tierScore[m.Sensitivity]; s > peak {
			peak = s
		}
		sum.Detections = append(sum.Detections, types.Detection{
			Type:           m.Label,
			MaskedValue:    m.Masked,
			Sensitivity:    m.Sensitivity,
			Recommendation: detectionAdvice(m.Sensitivity),
		})
	}
	if peak == 0 {
		return sum
	}
	bonus := 5 * len(rep.Matches)
	if bonus > 20 {
		bonus = 20
	}
	score := peak + bonus
	if score > 100 {
		score = 100
	}
	sum.RiskScore = score
	sum.RiskLevel = RiskLevelForScore(score)
	return sum
}

// RiskLevelForScore buckets a 0-100 risk score into its coarse label.
func RiskLevelForScore(score int) types.RiskLevel {
	switch {
	case score <= 0:
		return types.RiskSafe
	case score < 25:
		return types.RiskLow
	case score < 50:
		return types.RiskMedium
	case score < 75:
		return types.RiskHigh
	default:
		return types.RiskCritical
	}
}

func detectionAdvice(s types.Sensitivity) string {
	switch s {
	case types.SensCritical:
		return "Remove before sending."
	case types.SensHigh:
		return "Share only over a trusted channel."
	case types.SensMedium:
		return "Confirm the recipient before sending."
	default:
		return "Review before sending."
	}
}
