package repository

import (
	"context"

	"koostory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrPostNotFound is returned when no post matches the lookup.
	ErrPostNotFound = errors.New("post not found")
	// ErrPostSlugTaken is returned when another post already uses the slug.
	ErrPostSlugTaken = errors.New("post slug already taken")
)

// PostRepository defines blog post persistence.
type PostRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindBySlug retrieves a post regardless of its published flag.
	FindBySlug(ctx context.Context, slug string) (*entity.Post, error)

	// ListPublished returns published posts, newest first.
	ListPublished(ctx context.Context) ([]*entity.Post, error)

	// ListAll returns every post, newest first.
	ListAll(ctx context.Context) ([]*entity.Post, error)

	Create(ctx context.Context, post *entity.Post) error

	// Update overwrites the editable fields and updated_at. A missing row is ErrPostNotFound.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post. A missing row is ErrPostNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
