// Package google exchanges Google OAuth authorization codes for identities.
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/menowell-backend/internal/auth"
	"github.com/heartmarshall/menowell-backend/internal/domain"
)

const (
	defaultTokenURL    = "https://oauth2.googleapis.com/token"
	defaultUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	// SubjectPrefix namespaces Google account ids inside the user directory.
	SubjectPrefix = "google:"
)

var errUnavailable = errors.New("google unavailable")

// Verifier exchanges Google OAuth authorization codes for user identity.
type Verifier struct {
	clientID     string
	clientSecret string
	redirectURI  string
	tokenURL     string
	userinfoURL  string
	retryDelay   time.Duration
	httpClient   *http.Client
	log          *slog.Logger
}

// NewVerifier creates a Google OAuth verifier against the public endpoints.
func NewVerifier(clientID, clientSecret, redirectURI string, logger *slog.Logger) *Verifier {
	return NewVerifierWithURLs(clientID, clientSecret, redirectURI, defaultTokenURL, defaultUserinfoURL, logger)
}

// NewVerifierWithURLs creates a verifier with custom endpoints (for testing).
func NewVerifierWithURLs(clientID, clientSecret, redirectURI, tokenURL, userinfoURL string, logger *slog.Logger) *Verifier {
	return &Verifier{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		tokenURL:     tokenURL,
		userinfoURL:  userinfoURL,
		retryDelay:   500 * time.Millisecond,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		log:          logger.With("adapter", "google_oauth"),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type userinfoResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// Verify exchanges an authorization code for the signed-in identity.
// A rejected code or unverified email wraps domain.ErrUnauthorized; an
// unreachable Google wraps domain.ErrTransport.
func (v *Verifier) Verify(ctx context.Context, code string) (*auth.Identity, error) {
	accessToken, err := v.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	info, err := v.fetchUserinfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if !info.VerifiedEmail {
		return nil, fmt.Errorf("oauth: email not verified: %w", domain.ErrUnauthorized)
	}

	identity := &auth.Identity{
		Subject: SubjectPrefix + info.ID,
		Email:   info.Email,
		Name:    info.Name,
	}
	if identity.Name == "" {
		identity.Name = displayNameFromEmail(info.Email)
	}
	if info.Picture != "" {
		identity.AvatarURL = &info.Picture
	}

	v.log.DebugContext(ctx, "google oauth success", slog.String("subject", identity.Subject))

	return identity, nil
}

func (v *Verifier) exchangeCode(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("client_id", v.clientID)
	data.Set("client_secret", v.clientSecret)
	data.Set("redirect_uri", v.redirectURI)
	encoded := data.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.tokenURL, strings.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	// The retry replays the body.
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(encoded)), nil
	}

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "google oauth token exchange failed", slog.String("error", err.Error()))
		return "", domain.NewTransportError("exchange code", errUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewTransportError("read token response", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		_ = json.Unmarshal(body, &errResp)
		v.log.ErrorContext(ctx, "google oauth token exchange failed",
			slog.Int("status", resp.StatusCode),
			slog.String("error", errResp.Error))

		// 400 is an invalid or expired code; anything else is on Google's side.
		if resp.StatusCode == http.StatusBadRequest {
			return "", fmt.Errorf("oauth: invalid or expired code: %w", domain.ErrUnauthorized)
		}
		return "", domain.NewTransportError("exchange code", errUnavailable)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil || tokenResp.AccessToken == "" {
		v.log.ErrorContext(ctx, "google oauth token exchange failed", slog.String("error", "invalid token response"))
		return "", domain.NewTransportError("exchange code", errors.New("invalid token response"))
	}

	return tokenResp.AccessToken, nil
}

func (v *Verifier) fetchUserinfo(ctx context.Context, accessToken string) (*userinfoResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.userinfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "google oauth userinfo failed", slog.String("error", err.Error()))
		return nil, domain.NewTransportError("fetch user info", errUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "google oauth userinfo failed", slog.Int("status", resp.StatusCode))
		return nil, domain.NewTransportError("fetch user info", fmt.Errorf("status %d", resp.StatusCode))
	}

	var info userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, domain.NewTransportError("fetch user info", fmt.Errorf("invalid json: %w", err))
	}
	if info.ID == "" || info.Email == "" {
		return nil, domain.NewTransportError("fetch user info", errors.New("missing required fields"))
	}

	return &info, nil
}

// doWithRetry retries once on a network error or 5xx.
func (v *Verifier) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err == nil && resp.StatusCode < 500 {
		return resp, nil
	}
	if resp != nil {
		resp.Body.Close()
	}

	select {
	case <-time.After(v.retryDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		req.Body = body
	}
	return v.httpClient.Do(req)
}

func displayNameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
