package entity

import "time"

// Session is a server-side login record named by the opaque identifier carried in the session cookie.
// A session belongs to exactly one user; deleting the user removes its sessions.
type Session struct {
	ID        string    // Opaque identifier, also the cookie value.
	UserID    string    // Owning user.
	ExpiresAt time.Time // Absolute expiry; at or before now the session is dead.
	Fresh     bool      // Set when the current validation just extended ExpiresAt. Not persisted.
}

// IsExpired reports whether the session is dead at the given instant.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// Remaining returns how much lifetime is left at the given instant.
func (s *Session) Remaining(now time.Time) time.Duration {
	return s.ExpiresAt.Sub(now)
}
