package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an unlinked primary user. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.NewUser("idp-"+suffix, "testuser-"+suffix+"@example.com", "Test User "+suffix, nil, now)

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, display_name, photo_url, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.DisplayName, user.PhotoURL, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedLinkedPair creates two users linked to each other. The first is the
// primary, the second has the partner role.
func SeedLinkedPair(t *testing.T, pool *pgxpool.Pool) (domain.User, domain.User) {
	t.Helper()
	ctx := context.Background()

	primary := SeedUser(t, pool)
	partner := SeedUser(t, pool)

	_, err := pool.Exec(ctx, `UPDATE users SET partner_id = $2 WHERE id = $1`, primary.ID, partner.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedLinkedPair link primary: %v", err)
	}
	_, err = pool.Exec(ctx, `UPDATE users SET partner_id = $2, role = 'partner' WHERE id = $1`, partner.ID, primary.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedLinkedPair link partner: %v", err)
	}

	primary.PartnerID = &partner.ID
	partner.PartnerID = &primary.ID
	partner.Role = domain.UserRolePartner
	return primary, partner
}

// SeedInvite creates a pending invite for inviterID with the given code.
func SeedInvite(t *testing.T, pool *pgxpool.Pool, inviterID, code string) domain.Invite {
	t.Helper()

	inv := domain.Invite{
		Code:      code,
		InviterID: inviterID,
		Status:    domain.InviteStatusPending,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO invites (code, inviter_id, status, created_at) VALUES ($1, $2, $3, $4)`,
		inv.Code, inv.InviterID, string(inv.Status), inv.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInvite insert: %v", err)
	}
	return inv
}

// SeedEntry creates a journal entry for userID. createdAt lets tests control
// ordering.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID, content string, shared bool, createdAt time.Time) domain.JournalEntry {
	t.Helper()

	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	e := domain.JournalEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   content,
		IsShared:  shared,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO journal_entries (id, user_id, content, is_shared, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.UserID, e.Content, e.IsShared, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert: %v", err)
	}
	return e
}

// FreeInviteCode returns a well-formed code that is not yet in the invites
// table. Tests share one database, so fixed codes would collide.
func FreeInviteCode(t *testing.T, pool *pgxpool.Pool) string {
	t.Helper()

	for range 50 {
		code, err := domain.GenerateInviteCode(nil)
		if err != nil {
			t.Fatalf("testhelper: FreeInviteCode: %v", err)
		}
		var exists bool
		err = pool.QueryRow(context.Background(),
			`SELECT EXISTS(SELECT 1 FROM invites WHERE code = $1)`, code,
		).Scan(&exists)
		if err != nil {
			t.Fatalf("testhelper: FreeInviteCode query: %v", err)
		}
		if !exists {
			return code
		}
	}
	t.Fatal("testhelper: FreeInviteCode: no free code found")
	return ""
}
