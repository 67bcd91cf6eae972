package postgres

import (
	"context"
	"time"

	"koostory/internal/domain/entity"
	domainerrors "koostory/internal/domain/errors"
	"koostory/internal/domain/repository"
	"koostory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the repository.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	return repo.first(ctx, "id = ?", id)
}

func (repo *postRepository) FindBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	return repo.first(ctx, "slug = ?", slug)
}

func (repo *postRepository) first(ctx context.Context, query string, arg any) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return toPostDomain(&postM), nil
}

// ListPublished returns published posts, newest first.
func (repo *postRepository) ListPublished(ctx context.Context) ([]*entity.Post, error) {
	var postModels []*model.PostModel
	if err := repo.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list published posts")
	}

	return toPostDomains(postModels), nil
}

// ListAll returns every post, newest first.
func (repo *postRepository) ListAll(ctx context.Context) ([]*entity.Post, error) {
	var postModels []*model.PostModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return toPostDomains(postModels), nil
}

func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPostSlugTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("post violates a column constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Update writes the editable columns only; author and created_at never change.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	if post.UpdatedAt.IsZero() {
		post.UpdatedAt = time.Now()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":      post.Title,
			"slug":       post.Slug,
			"excerpt":    post.Excerpt,
			"content":    post.Content,
			"published":  post.Published,
			"updated_at": post.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrPostSlugTaken
		}

		return errors.Wrap(result.Error, "failed to update post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PostModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func toPostDomains(models []*model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(models))
	for _, m := range models {
		posts = append(posts, toPostDomain(m))
	}

	return posts
}

func toPostDomain(m *model.PostModel) *entity.Post {
	return &entity.Post{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Content:     m.Content,
		Excerpt:     m.Excerpt,
		AuthorID:    m.AuthorID,
		AuthorEmail: m.AuthorEmail,
		Published:   m.Published,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromPostDomain(p *entity.Post) *model.PostModel {
	return &model.PostModel{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Excerpt:     p.Excerpt,
		AuthorID:    p.AuthorID,
		AuthorEmail: p.AuthorEmail,
		Published:   p.Published,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
