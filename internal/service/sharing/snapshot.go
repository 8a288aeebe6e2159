package sharing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// Partner is the part of the partner's profile a viewer may see.
type Partner struct {
	ID          string
	DisplayName string
	PhotoURL    *string
}

// Snapshot is the shared view at one point in time.
type Snapshot struct {
	// Partner is nil when the viewer is not linked.
	Partner *Partner
	// Entries are the partner's shared entries, newest first.
	Entries []domain.JournalEntry
	// Err is domain.ErrNotLinked while the viewer has no partner, or a
	// transport error when the partner could not be re-resolved. Partner and
	// Entries are empty whenever Err is set.
	Err error
	At  time.Time
}

// Linked reports whether the snapshot shows a partner.
func (s Snapshot) Linked() bool {
	return s.Partner != nil
}

// SharedSnapshot resolves the view once. It returns ErrNotLinked when the
// viewer has no partner.
func (s *Service) SharedSnapshot(ctx context.Context, viewerID string) (*Snapshot, error) {
	if viewerID == "" {
		return nil, domain.ErrUnauthorized
	}

	snap, err := s.resolve(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("sharing.SharedSnapshot: %w", err)
	}
	return snap, nil
}

// resolve reads the viewer, the partner and the partner's shared entries in
// one read-only transaction.
func (s *Service) resolve(ctx context.Context, viewerID string) (*Snapshot, error) {
	var snap Snapshot
	err := s.tx.RunReadOnly(ctx, func(ctx context.Context) error {
		viewer, err := s.users.GetByID(ctx, viewerID)
		if err != nil {
			return storeError("load viewer", err)
		}
		if !viewer.IsLinked() {
			return domain.ErrNotLinked
		}

		partner, err := s.users.GetByID(ctx, *viewer.PartnerID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotLinked
		}
		if err != nil {
			return domain.NewTransportError("load partner", err)
		}

		entries, err := s.entries.List(ctx, domain.JournalFilter{
			UserID:     partner.ID,
			SharedOnly: true,
			All:        true,
		})
		if err != nil {
			return domain.NewTransportError("load shared entries", err)
		}

		snap = Snapshot{
			Partner: &Partner{ID: partner.ID, DisplayName: partner.DisplayName, PhotoURL: partner.PhotoURL},
			Entries: entries,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	snap.At = s.now().UTC()
	return &snap, nil
}

func storeError(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return domain.NewTransportError(op, err)
}
