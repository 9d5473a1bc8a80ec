package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// InviteValidity is how long an invitation link stays usable. Long enough for
// the recipient to act, short enough to bound the exposure of a leaked link.
const InviteValidity = 7 * 24 * time.Hour

// GenerateInviteToken returns a 256-bit random token, hex encoded. Collisions
// are guarded by the unique constraint on the token column, not here.
func GenerateInviteToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invite token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// InviteExpiry computes the expiry instant for an invitation created at now.
func InviteExpiry(now time.Time) time.Time {
	return now.Add(InviteValidity)
}
