package repository

import (
	"context"
	"time"

	"koostory/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when no session row has the given identifier.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores login sessions. One user may own many sessions (one per device).
type SessionRepository interface {
	// FindByIDWithUser retrieves a session joined with its owning user.
	FindByIDWithUser(ctx context.Context, id string) (*entity.Session, *entity.User, error)

	// Upsert inserts the session, or updates expires_at when the identifier already exists.
	Upsert(ctx context.Context, session *entity.Session) error

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteByUserID removes every session of a user ("log out everywhere").
	DeleteByUserID(ctx context.Context, userID string) error

	// DeleteExpired removes sessions whose expiry is at or before now and reports how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
