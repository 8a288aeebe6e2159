// Package sentiment is the HTTP client of the remote sentiment-analysis
// service.
package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// requestFailed is the message of a non-2xx answer without an error body.
const requestFailed = "API request failed."

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 4 << 10

// Client posts text to the sentiment service. It never retries.
type Client struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the service at url.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "sentiment"),
	}
}

type apiRequest struct {
	Text  string `json:"text"`
	Focus string `json:"focus"`
	Apps  string `json:"apps"`
}

// Analyze sends the request and decodes the report. Every failure is an
// *domain.AnalysisError carrying a message fit for the end user.
func (c *Client) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisReport, error) {
	payload, err := json.Marshal(apiRequest{Text: req.Text, Focus: req.Focus.String(), Apps: req.Apps})
	if err != nil {
		return nil, fmt.Errorf("sentiment: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("sentiment: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.ErrorContext(ctx, "sentiment request failed", slog.String("error", err.Error()))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &domain.AnalysisError{Message: networkMessage(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.WarnContext(ctx, "sentiment request rejected",
			slog.Int("status", resp.StatusCode),
			slog.Duration("duration", time.Since(start)))
		return nil, &domain.AnalysisError{Message: upstreamMessage(body), StatusCode: resp.StatusCode}
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.ErrorContext(ctx, "sentiment response undecodable", slog.String("error", err.Error()))
		return nil, &domain.AnalysisError{Message: "Invalid response from analysis service.", StatusCode: resp.StatusCode}
	}

	report := body.toDomain()

	c.log.DebugContext(ctx, "sentiment response",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("risk_tier", report.RiskTier().String()))

	return report, nil
}

// upstreamMessage prefers an "error" or "message" field from a JSON body.
func upstreamMessage(body []byte) string {
	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &e) == nil {
		if msg := strings.TrimSpace(e.Error); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(e.Message); msg != "" {
			return msg
		}
	}
	return requestFailed
}

func networkMessage(err error) string {
	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return "Analysis service timed out."
	}
	return "Analysis service unreachable."
}

// Stub stands in for the client when no service URL is configured.
type Stub struct{}

// NewStub creates a client that reports analysis as unavailable.
func NewStub() *Stub { return &Stub{} }

// Analyze always fails with an AnalysisError.
func (s *Stub) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisReport, error) {
	return nil, &domain.AnalysisError{Message: "Sentiment analysis is not configured."}
}
