package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/menowell-backend/internal/domain"
	"github.com/heartmarshall/menowell-backend/internal/service/analysis"
)

type analysisService interface {
	Analyze(ctx context.Context, userID string, input analysis.AnalyzeInput) (*domain.AnalysisReport, error)
}

// AnalysisHandler forwards text to the sentiment service.
type AnalysisHandler struct {
	svc analysisService
	log *slog.Logger
}

// NewAnalysisHandler creates an AnalysisHandler.
func NewAnalysisHandler(svc analysisService, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{svc: svc, log: logger.With("handler", "analysis")}
}

type analyzeRequest struct {
	Text  string `json:"text"`
	Focus string `json:"focus"`
}

// Analyze handles POST /analysis. Upstream failures are answered with 502
// and the upstream message as {"error": ...}.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	report, err := h.svc.Analyze(r.Context(), userIDFrom(r), analysis.AnalyzeInput{
		Text:  req.Text,
		Focus: req.Focus,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalysisResponse(report))
}
