package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"koostory/internal/domain/entity"
	domainerrors "koostory/internal/domain/errors"
	"koostory/internal/domain/repository"
	mockRepo "koostory/internal/mocks/repository"
	mockSvc "koostory/internal/mocks/service"
	mockUsecase "koostory/internal/mocks/usecase"
	"koostory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	sessions  *mockUsecase.MockSessionUsecase
	hasher    *mockSvc.MockPasswordHasher
}

func newTestUserService(t *testing.T) (*userService, *userServiceMocks) {
	m := &userServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		sessions:  mockUsecase.NewMockSessionUsecase(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
	}

	return &userService{
		txManager: m.txManager,
		userRepo:  m.userRepo,
		sessions:  m.sessions,
		hasher:    m.hasher,
		lifetime:  testLifetime,
		now:       fixedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
		logger:    discardLogger(),
	}, m
}

func TestUserService_Register_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
		want  error
	}{
		{name: "missing field", input: usecase.RegisterInput{Email: "a@example.com", Password: "password1"}, want: domainerrors.ErrRegistrationFieldsRequired},
		{name: "blank email", input: usecase.RegisterInput{Email: "  \t ", Password: "password1", ConfirmPassword: "password1"}, want: domainerrors.ErrRegistrationFieldsRequired},
		{name: "mismatch", input: usecase.RegisterInput{Email: "a@example.com", Password: "password1", ConfirmPassword: "password2"}, want: domainerrors.ErrPasswordMismatch},
		{name: "too short", input: usecase.RegisterInput{Email: "a@example.com", Password: "short", ConfirmPassword: "short"}, want: domainerrors.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestUserService(t)

			_, err := service.Register(context.Background(), &tt.input)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	service, m := newTestUserService(t)
	ctx := context.Background()

	m.userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: "u1"}, nil)

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Email: " Taken@Example.com", Password: "password1", ConfirmPassword: "password1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_Success(t *testing.T) {
	service, m := newTestUserService(t)
	ctx := context.Background()

	m.userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	m.hasher.EXPECT().Hash("password1").Return("hashed", nil)

	var createdUser *entity.User
	var createdSession *entity.Session

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(txSessionRepo)

			txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(_ context.Context, u *entity.User) { createdUser = u }).Return(nil)
			txSessionRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Session")).
				Run(func(_ context.Context, s *entity.Session) { createdSession = s }).Return(nil)

			return fn(mockFactory)
		})

	out, err := service.Register(ctx, &usecase.RegisterInput{
		Email: "New@Example.com", Password: "password1", ConfirmPassword: "password1",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", out.User.Email)
	assert.Equal(t, "hashed", out.User.HashedPassword)
	assert.Same(t, createdUser, out.User)
	assert.Same(t, createdSession, out.Session)
	assert.Equal(t, out.User.ID, out.Session.UserID)
}

func TestUserService_Register_LostRace(t *testing.T) {
	service, m := newTestUserService(t)
	ctx := context.Background()

	m.userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	m.hasher.EXPECT().Hash("password1").Return("hashed", nil)
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
			txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUserAlreadyExists)

			return fn(mockFactory)
		})

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Email: "new@example.com", Password: "password1", ConfirmPassword: "password1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_FailureLogOmitsEmail(t *testing.T) {
	service, m := newTestUserService(t)
	logs := &bytes.Buffer{}
	service.logger = slog.New(slog.NewJSONHandler(logs, nil))
	ctx := context.Background()

	m.userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	m.hasher.EXPECT().Hash("password1").Return("hashed", nil)
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(assert.AnError)

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Email: "New@Example.com", Password: "password1", ConfirmPassword: "password1",
	})

	require.Error(t, err)
	assert.Contains(t, logs.String(), "Failed to execute registration transaction")
	assert.Contains(t, logs.String(), `"user_id"`)
	assert.NotContains(t, logs.String(), "example.com")
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: "u1", Email: "a@example.com", HashedPassword: "hashed"}

	t.Run("missing fields", func(t *testing.T) {
		service, _ := newTestUserService(t)

		_, err := service.Login(ctx, &usecase.LoginInput{Email: "a@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrCredentialsRequired)

		_, err = service.Login(ctx, &usecase.LoginInput{Email: "   ", Password: "password1"})
		assert.ErrorIs(t, err, domainerrors.ErrCredentialsRequired)
	})

	t.Run("unknown email", func(t *testing.T) {
		service, m := newTestUserService(t)
		m.userRepo.EXPECT().FindByEmail(ctx, "b@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := service.Login(ctx, &usecase.LoginInput{Email: "B@example.com", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		service, m := newTestUserService(t)
		m.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(user, nil)
		m.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := service.Login(ctx, &usecase.LoginInput{Email: "a@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("success", func(t *testing.T) {
		service, m := newTestUserService(t)
		session := &entity.Session{ID: "s1", UserID: "u1"}
		m.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(user, nil)
		m.hasher.EXPECT().Check("right", "hashed").Return(true)
		m.sessions.EXPECT().Create(ctx, "u1").Return(session, nil)

		out, err := service.Login(ctx, &usecase.LoginInput{Email: "a@example.com", Password: "right"})
		require.NoError(t, err)
		assert.Equal(t, user, out.User)
		assert.Equal(t, session, out.Session)
	})
}

func TestUserService_Logout(t *testing.T) {
	service, m := newTestUserService(t)
	ctx := context.Background()

	m.sessions.EXPECT().Invalidate(ctx, "s1").Return(nil)

	require.NoError(t, service.Logout(ctx, "s1"))
}
