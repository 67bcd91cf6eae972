package usecase

import (
	"context"

	"koostory/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput represents the input for creating a blog post
type CreatePostInput struct {
	Title     string  `json:"title" validate:"required,max=300"`
	Slug      string  `json:"slug" validate:"required,max=200,slug"`
	Content   string  `json:"content" validate:"required"`
	Excerpt   *string `json:"excerpt,omitempty"`
	Published bool    `json:"published"`
}

// UpdatePostInput represents the input for updating a blog post. Every editable field is replaced.
type UpdatePostInput struct {
	Title     string  `json:"title" validate:"required,max=300"`
	Slug      string  `json:"slug" validate:"required,max=200,slug"`
	Content   string  `json:"content" validate:"required"`
	Excerpt   *string `json:"excerpt,omitempty"`
	Published bool    `json:"published"`
}

// BlogUsecase defines the interface for blog reading and administration
type BlogUsecase interface {
	// Public
	ListPublished(ctx context.Context) ([]*entity.Post, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*entity.Post, error)

	// Admin
	ListAll(ctx context.Context) ([]*entity.Post, error)
	Create(ctx context.Context, author *entity.User, input *CreatePostInput) (*entity.Post, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdatePostInput) (*entity.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
