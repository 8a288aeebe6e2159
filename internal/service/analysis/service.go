// Package analysis forwards free text to the sentiment service.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/menowell-backend/internal/config"
	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// analyzer defines the sentiment client needed by the service.
type analyzer interface {
	Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisReport, error)
}

// Service implements text analysis.
type Service struct {
	log    *slog.Logger
	client analyzer
	apps   string
}

// NewService creates a new analysis service instance.
func NewService(logger *slog.Logger, client analyzer, cfg config.SentimentConfig) *Service {
	return &Service{
		log:    logger.With("service", "analysis"),
		client: client,
		apps:   cfg.Apps,
	}
}

// Analyze submits the text once. A failed call returns an
// *domain.AnalysisError whose message is meant for the user; nothing is
// retried.
func (s *Service) Analyze(ctx context.Context, userID string, input AnalyzeInput) (*domain.AnalysisReport, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	report, err := s.client.Analyze(ctx, domain.AnalysisRequest{
		Text:  strings.TrimSpace(input.Text),
		Focus: input.focus(),
		Apps:  s.apps,
	})
	if err != nil {
		return nil, fmt.Errorf("analysis.Analyze: %w", err)
	}

	s.log.InfoContext(ctx, "text analyzed",
		slog.String("user_id", userID),
		slog.String("focus", input.focus().String()),
		slog.String("risk_tier", report.RiskTier().String()))

	return report, nil
}
