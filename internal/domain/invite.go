package domain

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"
)

// Invite code space: six decimal digits, no leading zero.
const (
	InviteCodeMin    = 100000
	InviteCodeMax    = 999999
	InviteCodeLength = 6
)

var inviteCodeSpan = big.NewInt(InviteCodeMax - InviteCodeMin + 1)

// Invite is a one-time pairing code issued by InviterID. AcceptorID and
// CompletedAt are set together when the code is redeemed.
type Invite struct {
	Code        string
	InviterID   string
	Status      InviteStatus
	AcceptorID  *string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// IsPending reports whether the invite can still be redeemed.
func (i *Invite) IsPending() bool {
	return i.Status == InviteStatusPending
}

// GenerateInviteCode draws a code uniformly from [InviteCodeMin, InviteCodeMax]
// using r as the entropy source. Pass nil to use crypto/rand.
func GenerateInviteCode(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	n, err := rand.Int(r, inviteCodeSpan)
	if err != nil {
		return "", fmt.Errorf("generate invite code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+InviteCodeMin), nil
}

// IsWellFormedInviteCode reports whether code is six ASCII digits inside the
// code space.
func IsWellFormedInviteCode(code string) bool {
	if len(code) != InviteCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return code[0] != '0'
}
