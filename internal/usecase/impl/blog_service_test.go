package impl

import (
	"context"
	"testing"
	"time"

	"koostory/internal/domain/entity"
	domainerrors "koostory/internal/domain/errors"
	"koostory/internal/domain/repository"
	mockRepo "koostory/internal/mocks/repository"
	"koostory/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestBlogService(t *testing.T) (*blogService, *mockRepo.MockTransactionManager, *mockRepo.MockPostRepository) {
	txManager := mockRepo.NewMockTransactionManager(t)
	postRepo := mockRepo.NewMockPostRepository(t)

	return &blogService{
		txManager: txManager,
		postRepo:  postRepo,
		now:       fixedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
		logger:    discardLogger(),
	}, txManager, postRepo
}

func TestBlogService_GetPublishedBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("draft is hidden", func(t *testing.T) {
		service, _, postRepo := newTestBlogService(t)
		postRepo.EXPECT().FindBySlug(ctx, "draft").Return(&entity.Post{Slug: "draft"}, nil)

		_, err := service.GetPublishedBySlug(ctx, "draft")
		assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		service, _, postRepo := newTestBlogService(t)
		postRepo.EXPECT().FindBySlug(ctx, "gone").Return(nil, repository.ErrPostNotFound)

		_, err := service.GetPublishedBySlug(ctx, "gone")
		assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	})

	t.Run("published", func(t *testing.T) {
		service, _, postRepo := newTestBlogService(t)
		post := &entity.Post{Slug: "hello", Published: true}
		postRepo.EXPECT().FindBySlug(ctx, "hello").Return(post, nil)

		got, err := service.GetPublishedBySlug(ctx, "hello")
		require.NoError(t, err)
		assert.Same(t, post, got)
	})
}

func TestBlogService_Create(t *testing.T) {
	ctx := context.Background()
	author := &entity.User{ID: "u1", Email: "author@example.com"}
	blank := "  "

	t.Run("sets author and timestamps", func(t *testing.T) {
		service, _, postRepo := newTestBlogService(t)
		postRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Post")).Return(nil)

		post, err := service.Create(ctx, author, &usecase.CreatePostInput{
			Title: " Hello ", Slug: "hello", Content: "body", Excerpt: &blank, Published: true,
		})
		require.NoError(t, err)

		assert.Equal(t, "Hello", post.Title)
		assert.Equal(t, "u1", post.AuthorID)
		assert.Equal(t, "author@example.com", post.AuthorEmail)
		assert.Nil(t, post.Excerpt)
		assert.NotEqual(t, uuid.Nil, post.ID)
		assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		service, _, postRepo := newTestBlogService(t)
		postRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrPostSlugTaken)

		_, err := service.Create(ctx, author, &usecase.CreatePostInput{Title: "t", Slug: "s", Content: "c"})
		assert.ErrorIs(t, err, domainerrors.ErrPostSlugTaken)
	})

	t.Run("no author", func(t *testing.T) {
		service, _, _ := newTestBlogService(t)

		_, err := service.Create(ctx, nil, &usecase.CreatePostInput{Title: "t", Slug: "s", Content: "c"})
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestBlogService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("missing post", func(t *testing.T) {
		service, txManager, _ := newTestBlogService(t)
		txManager.EXPECT().
			Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				mockFactory := mockRepo.NewMockRepositoryFactory(t)
				txPostRepo := mockRepo.NewMockPostRepository(t)
				mockFactory.EXPECT().NewPostRepository().Return(txPostRepo)
				txPostRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPostNotFound)

				return fn(mockFactory)
			})

		_, err := service.Update(ctx, id, &usecase.UpdatePostInput{Title: "t", Slug: "s", Content: "c"})
		assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	})

	t.Run("replaces fields", func(t *testing.T) {
		service, txManager, _ := newTestBlogService(t)
		created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		existing := &entity.Post{ID: id, Title: "old", Slug: "old", Content: "old", CreatedAt: created, UpdatedAt: created}

		txManager.EXPECT().
			Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				mockFactory := mockRepo.NewMockRepositoryFactory(t)
				txPostRepo := mockRepo.NewMockPostRepository(t)
				mockFactory.EXPECT().NewPostRepository().Return(txPostRepo)
				txPostRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
				txPostRepo.EXPECT().Update(ctx, existing).Return(nil)

				return fn(mockFactory)
			})

		post, err := service.Update(ctx, id, &usecase.UpdatePostInput{Title: "new", Slug: "new", Content: "new", Published: true})
		require.NoError(t, err)

		assert.Equal(t, "new", post.Title)
		assert.True(t, post.Published)
		assert.Equal(t, created, post.CreatedAt)
		assert.True(t, post.UpdatedAt.After(created))
	})
}

func TestBlogService_Delete(t *testing.T) {
	service, _, postRepo := newTestBlogService(t)
	ctx := context.Background()
	id := uuid.New()

	postRepo.EXPECT().Delete(ctx, id).Return(repository.ErrPostNotFound)

	assert.ErrorIs(t, service.Delete(ctx, id), domainerrors.ErrPostNotFound)
}
