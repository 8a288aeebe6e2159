package sentiment

import "github.com/heartmarshall/menowell-backend/internal/domain"

// apiResponse mirrors the service's JSON. Every section is optional.
type apiResponse struct {
	Insights *struct {
		OverallAssessment *string `json:"overall_assessment"`
	} `json:"insights"`
	Sentiment *struct {
		Category *string  `json:"category"`
		Score    *float64 `json:"score"`
	} `json:"sentiment"`
	Emotions *struct {
		Primary            *string  `json:"primary"`
		EmotionalIntensity *float64 `json:"emotional_intensity"`
	} `json:"emotions"`
	CrisisAssessment *struct {
		RiskLevel         *string `json:"risk_level"`
		RecommendedAction *string `json:"recommended_action"`
	} `json:"crisisAssessment"`
}

func (r apiResponse) toDomain() *domain.AnalysisReport {
	report := &domain.AnalysisReport{}
	if r.Insights != nil {
		report.OverallAssessment = r.Insights.OverallAssessment
	}
	if r.Sentiment != nil {
		report.SentimentCategory = r.Sentiment.Category
		report.SentimentScore = r.Sentiment.Score
	}
	if r.Emotions != nil {
		report.PrimaryEmotion = r.Emotions.Primary
		report.EmotionalIntensity = r.Emotions.EmotionalIntensity
	}
	if r.CrisisAssessment != nil {
		report.RiskLevel = r.CrisisAssessment.RiskLevel
		report.RecommendedAction = r.CrisisAssessment.RecommendedAction
	}
	return report
}
