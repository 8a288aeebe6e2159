package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/menowell-backend/internal/domain"
	"github.com/heartmarshall/menowell-backend/pkg/ctxutil"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []fieldErrorPayload `json:"fields,omitempty"`
}

type fieldErrorPayload struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads a JSON body into v. Unknown fields are rejected.
func decodeJSON(r *http.Request, w http.ResponseWriter, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	if dec.Decode(&struct{}{}) != io.EOF {
		return domain.NewValidationError("body", "unexpected data after JSON object")
	}
	return nil
}

// userIDFrom returns the authenticated user. Routes behind RequireAuth
// always have one.
func userIDFrom(r *http.Request) string {
	id, _ := ctxutil.UserIDFromCtx(r.Context())
	return id
}

// handleError maps domain errors onto HTTP statuses. Only unexpected
// failures are logged at error level.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		validation *domain.ValidationError
		analysis   *domain.AnalysisError
	)
	switch {
	case errors.As(err, &validation):
		resp := errorResponse{Error: "validation error"}
		for _, fe := range validation.Errors {
			resp.Fields = append(resp.Fields, fieldErrorPayload{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation error")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidCode):
		writeError(w, http.StatusUnprocessableEntity, domain.ErrInvalidCode.Error())
	case errors.Is(err, domain.ErrSelfRedemption):
		writeError(w, http.StatusConflict, domain.ErrSelfRedemption.Error())
	case errors.Is(err, domain.ErrNotLinked):
		writeError(w, http.StatusConflict, "not linked")
	case errors.As(err, &analysis):
		log.WarnContext(r.Context(), "analysis failed",
			slog.String("error", analysis.Message),
			slog.Int("upstream_status", analysis.StatusCode),
		)
		writeError(w, http.StatusBadGateway, analysis.Message)
	case errors.Is(err, domain.ErrTransport):
		log.ErrorContext(r.Context(), "transport failure", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the response.
		log.DebugContext(r.Context(), "request canceled")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
