package domain

import (
	"strconv"
	"strings"
)

// NotAvailable is shown in place of a report field the service omitted.
const NotAvailable = "N/A"

// AnalysisRequest is the payload sent to the sentiment service.
type AnalysisRequest struct {
	Text  string
	Focus AnalysisFocus
	Apps  string
}

// AnalysisReport is the structured answer of the sentiment service. Every
// field is optional; a nil pointer means the service did not return it.
type AnalysisReport struct {
	OverallAssessment  *string
	SentimentCategory  *string
	SentimentScore     *float64
	PrimaryEmotion     *string
	EmotionalIntensity *float64
	RiskLevel          *string
	RecommendedAction  *string
}

// RiskTier normalizes the reported crisis risk level.
func (r AnalysisReport) RiskTier() RiskTier {
	if r.RiskLevel == nil {
		return RiskTierLow
	}
	return NormalizeRiskLevel(*r.RiskLevel)
}

// FormattedScore returns the sentiment score with two decimals, or N/A.
func (r AnalysisReport) FormattedScore() string {
	return FormatDecimal(r.SentimentScore)
}

// FormattedIntensity returns the emotional intensity with two decimals, or N/A.
func (r AnalysisReport) FormattedIntensity() string {
	return FormatDecimal(r.EmotionalIntensity)
}

// NormalizeRiskLevel maps a free-form risk level onto a RiskTier.
// "high" and "critical" are high, "medium" and "elevated" are medium and
// everything else, including an empty string, is low. Matching ignores case.
func NormalizeRiskLevel(level string) RiskTier {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "high", "critical":
		return RiskTierHigh
	case "medium", "elevated":
		return RiskTierMedium
	default:
		return RiskTierLow
	}
}

// FormatDecimal renders v with exactly two decimals. Nil gives NotAvailable.
func FormatDecimal(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
