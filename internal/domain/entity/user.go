// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is an account that can sign in to the admin area.
type User struct {
	ID             string    // Opaque identifier, generated on registration.
	Email          string    // Unique, stored lowercased.
	HashedPassword string    // bcrypt hash; never leaves the credential store or the hasher.
	CreatedAt      time.Time // Timestamp of registration.
}
