package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/menowell-backend/internal/service/invite"
)

type inviteService interface {
	IssueOrReuseInvite(ctx context.Context, inviterID string) (string, error)
	RedeemInvite(ctx context.Context, code, acceptorID string) (*invite.RedeemResult, error)
}

// InviteHandler serves the invite-linking endpoints.
type InviteHandler struct {
	svc inviteService
	log *slog.Logger
}

// NewInviteHandler creates an InviteHandler.
func NewInviteHandler(svc inviteService, logger *slog.Logger) *InviteHandler {
	return &InviteHandler{svc: svc, log: logger.With("handler", "invite")}
}

type inviteResponse struct {
	Code string `json:"code"`
}

type redeemRequest struct {
	Code string `json:"code"`
}

type redeemResponse struct {
	PartnerID string `json:"partnerId"`
}

// Issue handles POST /invites. Repeated calls return the same pending code.
func (h *InviteHandler) Issue(w http.ResponseWriter, r *http.Request) {
	code, err := h.svc.IssueOrReuseInvite(r.Context(), userIDFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, inviteResponse{Code: code})
}

// Redeem handles POST /invites/redeem.
func (h *InviteHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req redeemRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.RedeemInvite(r.Context(), req.Code, userIDFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, redeemResponse{PartnerID: result.PartnerID})
}
