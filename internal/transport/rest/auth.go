package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/menowell-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	SignIn(ctx context.Context, input auth.SignInInput) (*auth.SignInResult, error)
	Providers() []string
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type signInRequest struct {
	Provider string `json:"provider"`
	Code     string `json:"code"`
}

type signInResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        userResponse `json:"user"`
	Created     bool         `json:"created"`
}

// SignIn handles POST /auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.SignIn(r.Context(), auth.SignInInput{
		Provider: req.Provider,
		Code:     req.Code,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, signInResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		User:        toUserResponse(result.User),
		Created:     result.Created,
	})
}

// Providers handles GET /auth/providers.
func (h *AuthHandler) Providers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"providers": h.svc.Providers()})
}
