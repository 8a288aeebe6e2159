package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/menowell-backend/internal/service/user"
)

type userService interface {
	GetMe(ctx context.Context, userID string) (*user.Profile, error)
}

// MeHandler serves the signed-in user's profile.
type MeHandler struct {
	svc userService
	log *slog.Logger
}

// NewMeHandler creates a MeHandler.
func NewMeHandler(svc userService, logger *slog.Logger) *MeHandler {
	return &MeHandler{svc: svc, log: logger.With("handler", "me")}
}

type meResponse struct {
	User    userResponse     `json:"user"`
	Partner *partnerResponse `json:"partner"`
}

// Get handles GET /me.
func (h *MeHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetMe(r.Context(), userIDFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := meResponse{User: toUserResponse(profile.User)}
	if p := profile.Partner; p != nil {
		resp.Partner = &partnerResponse{ID: p.ID, DisplayName: p.DisplayName, PhotoURL: p.PhotoURL}
	}
	writeJSON(w, http.StatusOK, resp)
}
