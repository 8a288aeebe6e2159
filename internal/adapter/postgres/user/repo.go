// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/menowell-backend/internal/adapter/postgres"
	"github.com/heartmarshall/menowell-backend/internal/domain"
)

const userColumns = `id, email, display_name, photo_url, role, partner_id, created_at, updated_at`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// LockForUpdate takes row locks on the given users in id order, so two
// transactions locking overlapping sets cannot deadlock. Missing ids are
// ignored.
func (r *Repo) LockForUpdate(ctx context.Context, ids ...string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	rows, err := q.Query(ctx,
		`SELECT id FROM users WHERE id = ANY($1) ORDER BY id FOR UPDATE`, sorted)
	if err != nil {
		return fmt.Errorf("lock users: %w", err)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("lock users: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Ensure inserts u if no user with u.ID exists, then returns the stored
// record. An existing record is returned unchanged. created reports whether
// the insert happened.
func (r *Repo) Ensure(ctx context.Context, u domain.User) (*domain.User, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`INSERT INTO users (id, email, display_name, photo_url, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO NOTHING`,
		u.ID, u.Email, u.DisplayName, u.PhotoURL, string(u.Role), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return nil, false, postgres.MapError(err, "user", u.ID)
	}

	stored, err := r.GetByID(ctx, u.ID)
	if err != nil {
		return nil, false, err
	}
	return stored, tag.RowsAffected() == 1, nil
}

// ClearStalePartners unlinks every user whose partner is one of a or b,
// except a and b themselves. It returns the ids of the users it unlinked.
func (r *Repo) ClearStalePartners(ctx context.Context, a, b string) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`UPDATE users SET partner_id = NULL, updated_at = now()
		 WHERE partner_id IN ($1, $2) AND id NOT IN ($1, $2)
		 RETURNING id`, a, b)
	if err != nil {
		return nil, fmt.Errorf("clear stale partners: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("clear stale partners: %w", err)
	}
	return ids, nil
}

// SetPartner points id at partnerID. When role is non-nil it is stored too.
func (r *Repo) SetPartner(ctx context.Context, id, partnerID string, role *domain.UserRole) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var roleArg *string
	if role != nil {
		s := string(*role)
		roleArg = &s
	}

	tag, err := q.Exec(ctx,
		`UPDATE users SET partner_id = $2, role = COALESCE($3, role), updated_at = now()
		 WHERE id = $1`, id, partnerID, roleArg)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PhotoURL, &role, &u.PartnerID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
