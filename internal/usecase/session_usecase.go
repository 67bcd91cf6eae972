// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"koostory/internal/domain/entity"
)

// CookieAction tells the delivery layer what to do with the session cookie after validation.
type CookieAction int

const (
	// CookieKeep leaves the cookie as the client sent it.
	CookieKeep CookieAction = iota
	// CookieClear replaces the cookie with a blank, already-expired one.
	CookieClear
	// CookieRefresh re-issues the cookie with the renewed expiry.
	CookieRefresh
)

// ValidateSessionOutput is the outcome of validating a session identifier.
// Session and User are both nil when there is no valid session.
type ValidateSessionOutput struct {
	Session *entity.Session
	User    *entity.User
	Cookie  CookieAction
}

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	// Validate resolves an identifier from a cookie. Expired sessions are deleted and
	// sessions past half their lifetime are extended.
	Validate(ctx context.Context, sessionID string) (*ValidateSessionOutput, error)

	// Create starts a new session for the user.
	Create(ctx context.Context, userID string) (*entity.Session, error)

	// Invalidate ends one session. Unknown identifiers are ignored.
	Invalidate(ctx context.Context, sessionID string) error

	// InvalidateAllForUser ends every session the user has.
	InvalidateAllForUser(ctx context.Context, userID string) error

	// CleanupExpired removes expired sessions and reports how many were removed.
	CleanupExpired(ctx context.Context) (int64, error)
}
