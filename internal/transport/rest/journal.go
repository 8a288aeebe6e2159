package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/menowell-backend/internal/domain"
	"github.com/heartmarshall/menowell-backend/internal/service/journal"
)

type journalService interface {
	CreateEntry(ctx context.Context, userID string, input journal.CreateEntryInput) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, userID string, input journal.ListEntriesInput) ([]domain.JournalEntry, error)
	GetEntry(ctx context.Context, userID string, id uuid.UUID) (*domain.JournalEntry, error)
	SetShared(ctx context.Context, userID string, id uuid.UUID, shared bool) (*domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, userID string, id uuid.UUID) error
}

// JournalHandler serves the signed-in user's own journal.
type JournalHandler struct {
	svc journalService
	log *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: logger.With("handler", "journal")}
}

type createEntryRequest struct {
	Content  string `json:"content"`
	IsShared bool   `json:"isShared"`
}

type updateEntryRequest struct {
	IsShared *bool `json:"isShared"`
}

type entriesResponse struct {
	Entries []entryResponse `json:"entries"`
}

// List handles GET /journal?limit=&offset=.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parsePaging(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), userIDFrom(r), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, entriesResponse{Entries: toEntryResponses(entries)})
}

// Create handles POST /journal.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), userIDFrom(r), journal.CreateEntryInput{
		Content:  req.Content,
		IsShared: req.IsShared,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Get handles GET /journal/{id}.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), userIDFrom(r), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Update handles PATCH /journal/{id}. Only the shared flag can change.
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}

	var req updateEntryRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if req.IsShared == nil {
		handleError(w, r, h.log, domain.NewValidationError("isShared", "required"))
		return
	}

	entry, err := h.svc.SetShared(r.Context(), userIDFrom(r), id, *req.IsShared)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Delete handles DELETE /journal/{id}.
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), userIDFrom(r), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// entryID parses the {id} path value. Malformed ids cannot name an entry,
// so they are reported as not found.
func (h *JournalHandler) entryID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

func parsePaging(r *http.Request) (journal.ListEntriesInput, error) {
	var (
		input journal.ListEntriesInput
		errs  []domain.FieldError
	)
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
		}
		input.Offset = n
	}
	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}
