package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// CreateEntry stores a new entry owned by userID.
func (s *Service) CreateEntry(ctx context.Context, userID string, input CreateEntryInput) (*domain.JournalEntry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	entry, err := s.entries.Create(ctx, domain.JournalEntry{
		ID:        s.newID(),
		UserID:    userID,
		Content:   strings.TrimSpace(input.Content),
		IsShared:  input.IsShared,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("journal.CreateEntry: %w", storeError("save entry", err))
	}

	s.log.InfoContext(ctx, "journal entry created",
		slog.String("user_id", userID),
		slog.String("entry_id", entry.ID.String()),
		slog.Bool("shared", entry.IsShared))

	s.changed(ctx, userID)
	return entry, nil
}

// ListEntries returns the owner's entries, newest first.
func (s *Service) ListEntries(ctx context.Context, userID string, input ListEntriesInput) ([]domain.JournalEntry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entries.List(ctx, domain.JournalFilter{
		UserID: userID,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("journal.ListEntries: %w", storeError("load entries", err))
	}
	return entries, nil
}

// GetEntry returns one of the owner's entries. Entries of other users are
// reported as not found.
func (s *Service) GetEntry(ctx context.Context, userID string, id uuid.UUID) (*domain.JournalEntry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.entries.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("journal.GetEntry: %w", storeError("load entry", err))
	}
	return entry, nil
}

// SetShared changes whether the owner's partner can see the entry.
func (s *Service) SetShared(ctx context.Context, userID string, id uuid.UUID, shared bool) (*domain.JournalEntry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.entries.SetShared(ctx, userID, id, shared, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("journal.SetShared: %w", storeError("update entry", err))
	}

	s.log.InfoContext(ctx, "journal entry visibility changed",
		slog.String("user_id", userID),
		slog.String("entry_id", id.String()),
		slog.Bool("shared", shared))

	s.changed(ctx, userID)
	return entry, nil
}

// DeleteEntry removes one of the owner's entries.
func (s *Service) DeleteEntry(ctx context.Context, userID string, id uuid.UUID) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}

	if err := s.entries.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("journal.DeleteEntry: %w", storeError("delete entry", err))
	}

	s.log.InfoContext(ctx, "journal entry deleted",
		slog.String("user_id", userID),
		slog.String("entry_id", id.String()))

	s.changed(ctx, userID)
	return nil
}
