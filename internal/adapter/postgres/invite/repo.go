// Package invite implements the invite ledger using PostgreSQL.
package invite

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/menowell-backend/internal/adapter/postgres"
	"github.com/heartmarshall/menowell-backend/internal/domain"
)

const (
	inviteColumns = `code, inviter_id, status, acceptor_id, created_at, completed_at`

	// pendingIndex enforces one pending invite per inviter.
	pendingIndex = "ux_invites_inviter_pending"
)

// Repo provides invite persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new invite repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetPendingByInviter returns the inviter's pending invite, or ErrNotFound.
func (r *Repo) GetPendingByInviter(ctx context.Context, inviterID string) (*domain.Invite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+inviteColumns+` FROM invites
		 WHERE inviter_id = $1 AND status = 'pending'
		 LIMIT 1`, inviterID)
	inv, err := scanInvite(row)
	if err != nil {
		return nil, postgres.MapError(err, "pending invite of", inviterID)
	}
	return inv, nil
}

// GetByCodeForUpdate loads the invite and locks its row until the enclosing
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetByCodeForUpdate(ctx context.Context, code string) (*domain.Invite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE code = $1 FOR UPDATE`, code)
	inv, err := scanInvite(row)
	if err != nil {
		return nil, postgres.MapError(err, "invite", code)
	}
	return inv, nil
}

// Create inserts a pending invite. It returns ErrAlreadyExists when the code
// is taken and ErrConflict when the inviter already has a pending invite.
func (r *Repo) Create(ctx context.Context, inv domain.Invite) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO invites (code, inviter_id, status, created_at) VALUES ($1, $2, $3, $4)`,
		inv.Code, inv.InviterID, string(inv.Status), inv.CreatedAt,
	)
	if postgres.IsUniqueViolation(err, pendingIndex) {
		return fmt.Errorf("invite of %s: %w", inv.InviterID, domain.ErrConflict)
	}
	if err != nil {
		return postgres.MapError(err, "invite", inv.Code)
	}
	return nil
}

// Complete moves a pending invite to completed. It reports false when the
// invite was not pending anymore, in which case nothing is written.
func (r *Repo) Complete(ctx context.Context, code, acceptorID string, at time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE invites SET status = 'completed', acceptor_id = $2, completed_at = $3
		 WHERE code = $1 AND status = 'pending'`, code, acceptorID, at)
	if err != nil {
		return false, postgres.MapError(err, "invite", code)
	}
	return tag.RowsAffected() == 1, nil
}

func scanInvite(row pgx.Row) (*domain.Invite, error) {
	var (
		inv    domain.Invite
		status string
	)
	err := row.Scan(&inv.Code, &inv.InviterID, &status, &inv.AcceptorID, &inv.CreatedAt, &inv.CompletedAt)
	if err != nil {
		return nil, err
	}
	inv.Status = domain.InviteStatus(status)
	return &inv, nil
}
