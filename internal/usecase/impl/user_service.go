// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"koostory/config"
	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/domain/entity"
	domainerrors "koostory/internal/domain/errors"
	"koostory/internal/domain/repository"
	"koostory/internal/domain/service"
	"koostory/internal/usecase"
	"koostory/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 8

// userService implements the AuthUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	sessions  usecase.SessionUsecase
	hasher    service.PasswordHasher
	lifetime  time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Sessions  usecase.SessionUsecase
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.AuthUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		sessions:  params.Sessions,
		hasher:    params.Hasher,
		lifetime:  params.Config.Session.Lifetime,
		now:       time.Now,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and its first session in one transaction.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := util.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" || input.ConfirmPassword == "" {
		return nil, domainerrors.ErrRegistrationFieldsRequired
	}
	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrPasswordMismatch
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort
	}

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		ID:             uuid.NewString(),
		Email:          email,
		HashedPassword: hashed,
		CreatedAt:      srv.now(),
	}
	session := newSession(user.ID, srv.now(), srv.lifetime)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			// Lost a race with a concurrent registration of the same address
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}

		if err := repoFactory.NewSessionRepository().Upsert(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create session")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("user_id", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID))

	return &usecase.AuthOutput{User: user, Session: session}, nil
}

// Login checks the credentials and starts a session.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := util.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrCredentialsRequired
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Login attempt for unknown email")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.HashedPassword) {
		srv.log(ctx).Info("Login attempt with wrong password", slog.String("user_id", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	session, err := srv.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, domainerrors.ErrSessionCreationFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID))

	return &usecase.AuthOutput{User: user, Session: session}, nil
}

// Logout ends the current session.
func (srv *userService) Logout(ctx context.Context, sessionID string) error {
	return srv.sessions.Invalidate(ctx, sessionID)
}
