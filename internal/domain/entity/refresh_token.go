// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UnknownUserAgent is stored when a login request carries no User-Agent header.
const UnknownUserAgent = "Unknown"

// RefreshToken represents a long-lived, persisted session credential. The
// opaque Token value is what the client presents; validity is decided by the
// stored record, never by the value itself.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	Token     string    // Opaque, high-entropy, hex-encoded value; unique across all records.
	UserAgent string    // User-Agent of the client that created the session.
	IP        string    // Remote IP of the client that created the session.
	ExpiresAt time.Time // Absolute expiry; past this instant the token is never valid.
	IsRevoked bool      // One-way flag: once true it can never become false.
	CreatedAt time.Time // Timestamp of when this session was created.
}

// Valid reports whether the token may still be exchanged at the given instant.
func (t *RefreshToken) Valid(now time.Time) bool {
	return t != nil && !t.IsRevoked && t.ExpiresAt.After(now)
}
