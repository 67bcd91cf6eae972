package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/domain/entity"
	domainerrors "koostory/internal/domain/errors"
	"koostory/internal/domain/repository"
	"koostory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type blogService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	now       func() time.Time
	logger    *slog.Logger
}

// BlogServiceParams holds dependencies for BlogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PostRepo  repository.PostRepository
	Logger    *slog.Logger
}

// NewBlogService creates a new blog service
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *blogService) ListPublished(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.ListPublished(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published posts")
	}

	return posts, nil
}

// GetPublishedBySlug hides drafts behind the same 404 as missing posts.
func (srv *blogService) GetPublishedBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	post, err := srv.postRepo.FindBySlug(ctx, slug)
	if errors.Is(err, repository.ErrPostNotFound) {
		return nil, domainerrors.ErrPostNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find post")
	}
	if !post.Published {
		return nil, domainerrors.ErrPostNotFound
	}

	return post, nil
}

func (srv *blogService) ListAll(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}
	srv.log(ctx).Debug("Loaded posts for admin", slog.Int("count", len(posts)))

	return posts, nil
}

func (srv *blogService) Create(ctx context.Context, author *entity.User, input *usecase.CreatePostInput) (*entity.Post, error) {
	if author == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	now := srv.now()
	post := &entity.Post{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Slug:        strings.TrimSpace(input.Slug),
		Content:     input.Content,
		Excerpt:     trimOptional(input.Excerpt),
		AuthorID:    author.ID,
		AuthorEmail: author.Email,
		Published:   input.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if post.Title == "" || post.Slug == "" || post.Content == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title, slug and content are required")
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		return nil, mapPostError(err)
	}
	srv.log(ctx).Info("Post created", slog.String("post_id", post.ID.String()), slog.Bool("published", post.Published))

	return post, nil
}

func (srv *blogService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdatePostInput) (*entity.Post, error) {
	var updated *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewPostRepository()

		post, err := postRepo.FindByID(ctx, id)
		if err != nil {
			return mapPostError(err)
		}

		post.Title = strings.TrimSpace(input.Title)
		post.Slug = strings.TrimSpace(input.Slug)
		post.Content = input.Content
		post.Excerpt = trimOptional(input.Excerpt)
		post.Published = input.Published
		post.UpdatedAt = srv.now()

		if post.Title == "" || post.Slug == "" || post.Content == "" {
			return domainerrors.ErrValidationFailed.WrapMessage("title, slug and content are required")
		}

		if err := postRepo.Update(ctx, post); err != nil {
			return mapPostError(err)
		}
		updated = post

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Post updated", slog.String("post_id", id.String()))

	return updated, nil
}

func (srv *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.postRepo.Delete(ctx, id); err != nil {
		return mapPostError(err)
	}
	srv.log(ctx).Info("Post deleted", slog.String("post_id", id.String()))

	return nil
}

func mapPostError(err error) error {
	switch {
	case errors.Is(err, repository.ErrPostNotFound):
		return domainerrors.ErrPostNotFound
	case errors.Is(err, repository.ErrPostSlugTaken):
		return domainerrors.ErrPostSlugTaken
	default:
		return errors.Wrap(err, "post repository")
	}
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
