// Package journal implements the journal entry store using PostgreSQL.
package journal

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/menowell-backend/internal/adapter/postgres"
	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// uuid.UUID is an array type, which sq.Eq would expand into an IN list, so
// ids are matched with sq.Expr.
var (
	psql    = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	columns = []string{"id", "user_id", "content", "is_shared", "created_at", "updated_at"}
)

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new journal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the entries matching f ordered by created_at DESC. Ties are
// broken by id so paging is stable.
func (r *Repo) List(ctx context.Context, f domain.JournalFilter) ([]domain.JournalEntry, error) {
	f.Normalize()

	where := sq.And{sq.Eq{"user_id": f.UserID}}
	if f.SharedOnly {
		where = append(where, sq.Eq{"is_shared": true})
	}

	q := psql.Select(columns...).
		From("journal_entries").
		Where(where).
		OrderBy("created_at DESC", "id DESC")
	if !f.All {
		q = q.Limit(uint64(f.Limit)).Offset(uint64(f.Offset))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list journal_entries of %s: %w", f.UserID, err)
	}

	entries, err := pgx.CollectRows(rows, scanEntryRow)
	if err != nil {
		return nil, fmt.Errorf("list journal_entries of %s: %w", f.UserID, err)
	}
	return entries, nil
}

// GetByID returns the entry if userID owns it. Entries of other owners are
// reported as ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.JournalEntry, error) {
	query, args, err := psql.Select(columns...).
		From("journal_entries").
		Where(sq.Expr("id = ?", id)).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	e, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", id.String())
	}
	return e, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts e and returns the stored entry.
func (r *Repo) Create(ctx context.Context, e domain.JournalEntry) (*domain.JournalEntry, error) {
	query, args, err := psql.Insert("journal_entries").
		Columns(columns...).
		Values(e.ID, e.UserID, e.Content, e.IsShared, e.CreatedAt, e.UpdatedAt).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	stored, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", e.ID.String())
	}
	return stored, nil
}

// SetShared updates the visibility flag of an entry owned by userID.
func (r *Repo) SetShared(ctx context.Context, userID string, id uuid.UUID, shared bool, at time.Time) (*domain.JournalEntry, error) {
	query, args, err := psql.Update("journal_entries").
		Set("is_shared", shared).
		Set("updated_at", at).
		Where(sq.Expr("id = ?", id)).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	e, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", id.String())
	}
	return e, nil
}

// Delete removes an entry owned by userID.
func (r *Repo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	query, args, err := psql.Delete("journal_entries").
		Where(sq.Expr("id = ?", id)).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "journal_entry", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal_entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func joinColumns() string {
	return strings.Join(columns, ", ")
}

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	if err := row.Scan(&e.ID, &e.UserID, &e.Content, &e.IsShared, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEntryRow(row pgx.CollectableRow) (domain.JournalEntry, error) {
	e, err := scanEntry(row)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	return *e, nil
}
