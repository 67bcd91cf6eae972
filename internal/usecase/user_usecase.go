// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"koostory/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is the signed-in user and the session that was started for them.
type AuthOutput struct {
	User    *entity.User
	Session *entity.Session
}

// AuthUsecase defines the interface for account operations.
// This is the contract that the delivery layer (e.g., page handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Logout(ctx context.Context, sessionID string) error
}
