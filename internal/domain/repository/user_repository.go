// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"koostory/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the email is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their identifier.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their (lowercased) email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts a new user record.
	Create(ctx context.Context, user *entity.User) error
}
