package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"koostory/internal/domain/entity"
	"koostory/internal/domain/repository"
	mockRepo "koostory/internal/mocks/repository"
	"koostory/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testLifetime = 30 * 24 * time.Hour

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSessionService_Validate_EmptyIDSkipsStore(t *testing.T) {
	repo := mockRepo.NewMockSessionRepository(t)
	service := newSessionService(repo, testLifetime, time.Now, discardLogger())

	out, err := service.Validate(context.Background(), "")

	require.NoError(t, err)
	assert.Nil(t, out.Session)
	assert.Nil(t, out.User)
	assert.Equal(t, usecase.CookieKeep, out.Cookie)
	repo.AssertNotCalled(t, "FindByIDWithUser", mock.Anything, mock.Anything)
}

func TestSessionService_Validate_UnknownIDClearsCookie(t *testing.T) {
	repo := mockRepo.NewMockSessionRepository(t)
	service := newSessionService(repo, testLifetime, time.Now, discardLogger())
	ctx := context.Background()

	repo.EXPECT().FindByIDWithUser(ctx, "nope").Return(nil, nil, repository.ErrSessionNotFound)

	out, err := service.Validate(ctx, "nope")

	require.NoError(t, err)
	assert.Nil(t, out.Session)
	assert.Nil(t, out.User)
	assert.Equal(t, usecase.CookieClear, out.Cookie)
}

func TestSessionService_Validate_ExpiredIsDeletedAndStaysGone(t *testing.T) {
	repo := mockRepo.NewMockSessionRepository(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newSessionService(repo, testLifetime, fixedClock(now), discardLogger())
	ctx := context.Background()

	stored := &entity.Session{ID: "s1", UserID: "u1", ExpiresAt: now}
	user := &entity.User{ID: "u1", Email: "a@example.com"}
	deleted := false

	repo.EXPECT().FindByIDWithUser(ctx, "s1").RunAndReturn(
		func(context.Context, string) (*entity.Session, *entity.User, error) {
			if deleted {
				return nil, nil, repository.ErrSessionNotFound
			}
			copied := *stored

			return &copied, user, nil
		}).Times(2)
	repo.EXPECT().Delete(ctx, "s1").RunAndReturn(func(context.Context, string) error {
		deleted = true

		return nil
	}).Once()

	for range 2 {
		out, err := service.Validate(ctx, "s1")
		require.NoError(t, err)
		assert.Nil(t, out.Session)
		assert.Nil(t, out.User)
		assert.Equal(t, usecase.CookieClear, out.Cookie)
	}
}

func TestSessionService_Validate_AboveThresholdUnchanged(t *testing.T) {
	repo := mockRepo.NewMockSessionRepository(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newSessionService(repo, testLifetime, fixedClock(now), discardLogger())
	ctx := context.Background()

	expires := now.Add(testLifetime/2 + time.Second)
	repo.EXPECT().FindByIDWithUser(ctx, "s1").
		Return(&entity.Session{ID: "s1", UserID: "u1", ExpiresAt: expires}, &entity.User{ID: "u1"}, nil)

	out, err := service.Validate(ctx, "s1")

	require.NoError(t, err)
	require.NotNil(t, out.Session)
	assert.Equal(t, expires, out.Session.ExpiresAt)
	assert.False(t, out.Session.Fresh)
	assert.Equal(t, usecase.CookieKeep, out.Cookie)
	assert.Equal(t, "u1", out.User.ID)
}

func TestSessionService_Validate_AtThresholdExtendsOnce(t *testing.T) {
	repo := mockRepo.NewMockSessionRepository(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newSessionService(repo, testLifetime, fixedClock(now), discardLogger())
	ctx := context.Background()

	stored := entity.Session{ID: "s1", UserID: "u1", ExpiresAt: now.Add(testLifetime / 2)}
	user := &entity.User{ID: "u1"}

	repo.EXPECT().FindByIDWithUser(ctx, "s1").RunAndReturn(
		func(context.Context, string) (*entity.Session, *entity.User, error) {
			copied := stored

			return &copied, user, nil
		}).Times(2)
	repo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Session")).RunAndReturn(
		func(_ context.Context, s *entity.Session) error {
			stored.ExpiresAt = s.ExpiresAt

			return nil
		}).Once()

	first, err := service.Validate(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, first.Session.Fresh)
	assert.Equal(t, now.Add(testLifetime), first.Session.ExpiresAt)
	assert.Equal(t, usecase.CookieRefresh, first.Cookie)

	second, err := service.Validate(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, second.Session.Fresh)
	assert.Equal(t, now.Add(testLifetime), second.Session.ExpiresAt)
	assert.Equal(t, usecase.CookieKeep, second.Cookie)
}

func TestSessionService_Validate_StoreFailure(t *testing.T) {
	repo := mockRepo.NewMockSessionRepository(t)
	service := newSessionService(repo, testLifetime, time.Now, discardLogger())
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	repo.EXPECT().FindByIDWithUser(ctx, "s1").Return(nil, nil, dbErr)

	out, err := service.Validate(ctx, "s1")

	assert.Nil(t, out)
	assert.ErrorIs(t, err, dbErr)
}

func TestSessionService_Create(t *testing.T) {
	repo := mockRepo.NewMockSessionRepository(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newSessionService(repo, testLifetime, fixedClock(now), discardLogger())
	ctx := context.Background()

	repo.EXPECT().Upsert(ctx, mock.MatchedBy(func(s *entity.Session) bool {
		return s.UserID == "u1" && s.ID != "" && s.ExpiresAt.Equal(now.Add(testLifetime))
	})).Return(nil)

	session, err := service.Create(ctx, "u1")

	require.NoError(t, err)
	assert.Len(t, session.ID, 36)
	assert.True(t, session.Fresh)
}

func TestSessionService_InvalidateAndCleanup(t *testing.T) {
	repo := mockRepo.NewMockSessionRepository(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service := newSessionService(repo, testLifetime, fixedClock(now), discardLogger())
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "s1").Return(nil)
	repo.EXPECT().DeleteByUserID(ctx, "u1").Return(nil)
	repo.EXPECT().DeleteExpired(ctx, now).Return(int64(3), nil)

	require.NoError(t, service.Invalidate(ctx, "s1"))
	require.NoError(t, service.Invalidate(ctx, ""))
	require.NoError(t, service.InvalidateAllForUser(ctx, "u1"))

	n, err := service.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
