// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PhoneChallenge is one outstanding SMS verification attempt. Only a hash of
// the code is stored; the plaintext leaves the process exactly once, through
// the SMS sender.
type PhoneChallenge struct {
	ID        uuid.UUID // Handle returned to the client.
	Phone     string    // The phone number being verified.
	CodeHash  string    // bcrypt hash of the verification code.
	Attempts  int       // Failed confirmation attempts so far.
	ExpiresAt time.Time // After this the code is rejected as expired.
	CreatedAt time.Time // Timestamp of code issuance.
}

// Expired reports whether the challenge is past its expiry at the given time.
func (c *PhoneChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
