package rest

import (
	"time"

	"github.com/heartmarshall/menowell-backend/internal/domain"
	"github.com/heartmarshall/menowell-backend/internal/service/sharing"
)

type userResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	DisplayName string  `json:"displayName"`
	PhotoURL    *string `json:"photoUrl,omitempty"`
	Role        string  `json:"role"`
	PartnerID   *string `json:"partnerId"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		Role:        u.Role.String(),
		PartnerID:   u.PartnerID,
	}
}

type entryResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	IsShared  bool      `json:"isShared"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toEntryResponse(e *domain.JournalEntry) entryResponse {
	return entryResponse{
		ID:        e.ID.String(),
		Content:   e.Content,
		IsShared:  e.IsShared,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toEntryResponses(entries []domain.JournalEntry) []entryResponse {
	out := make([]entryResponse, len(entries))
	for i := range entries {
		out[i] = toEntryResponse(&entries[i])
	}
	return out
}

type partnerResponse struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"displayName"`
	PhotoURL    *string `json:"photoUrl,omitempty"`
}

type sharedViewResponse struct {
	Partner   partnerResponse `json:"partner"`
	Entries   []entryResponse `json:"entries"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func toSharedViewResponse(s sharing.Snapshot) sharedViewResponse {
	return sharedViewResponse{
		Partner: partnerResponse{
			ID:          s.Partner.ID,
			DisplayName: s.Partner.DisplayName,
			PhotoURL:    s.Partner.PhotoURL,
		},
		Entries:   toEntryResponses(s.Entries),
		UpdatedAt: s.At,
	}
}

type analysisResponse struct {
	OverallAssessment  *string `json:"overallAssessment"`
	SentimentCategory  *string `json:"sentimentCategory"`
	SentimentScore     string  `json:"sentimentScore"`
	PrimaryEmotion     *string `json:"primaryEmotion"`
	EmotionalIntensity string  `json:"emotionalIntensity"`
	RiskLevel          *string `json:"riskLevel"`
	RiskTier           string  `json:"riskTier"`
	RecommendedAction  *string `json:"recommendedAction"`
}

func toAnalysisResponse(r *domain.AnalysisReport) analysisResponse {
	return analysisResponse{
		OverallAssessment:  r.OverallAssessment,
		SentimentCategory:  r.SentimentCategory,
		SentimentScore:     r.FormattedScore(),
		PrimaryEmotion:     r.PrimaryEmotion,
		EmotionalIntensity: r.FormattedIntensity(),
		RiskLevel:          r.RiskLevel,
		RiskTier:           r.RiskTier().String(),
		RecommendedAction:  r.RecommendedAction,
	}
}
