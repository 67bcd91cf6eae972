package impl

import (
	"context"
	"log/slog"
	"time"

	"koostory/config"
	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/domain/entity"
	"koostory/internal/domain/repository"
	"koostory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
	lifetime    time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo repository.SessionRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return newSessionService(params.SessionRepo, params.Config.Session.Lifetime, time.Now, params.Logger)
}

func newSessionService(repo repository.SessionRepository, lifetime time.Duration, now func() time.Time, logger *slog.Logger) *sessionService {
	return &sessionService{
		sessionRepo: repo,
		lifetime:    lifetime,
		now:         now,
		logger:      logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Validate resolves a cookie identifier into a live session.
// Identifiers are never logged.
func (srv *sessionService) Validate(ctx context.Context, sessionID string) (*usecase.ValidateSessionOutput, error) {
	if sessionID == "" {
		return &usecase.ValidateSessionOutput{Cookie: usecase.CookieKeep}, nil
	}

	session, user, err := srv.sessionRepo.FindByIDWithUser(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return &usecase.ValidateSessionOutput{Cookie: usecase.CookieClear}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find session")
	}

	now := srv.now()

	// 1. Expired: remove the row so later lookups miss
	if session.IsExpired(now) {
		if err := srv.sessionRepo.Delete(ctx, session.ID); err != nil {
			return nil, errors.Wrap(err, "failed to delete expired session")
		}
		srv.log(ctx).Debug("Expired session removed", slog.String("user_id", session.UserID))

		return &usecase.ValidateSessionOutput{Cookie: usecase.CookieClear}, nil
	}

	// 2. Past half its lifetime: slide the expiry forward
	if session.Remaining(now) <= srv.lifetime/2 {
		session.ExpiresAt = now.Add(srv.lifetime)
		if err := srv.sessionRepo.Upsert(ctx, session); err != nil {
			return nil, errors.Wrap(err, "failed to extend session")
		}
		session.Fresh = true
		srv.log(ctx).Debug("Session extended", slog.String("user_id", session.UserID), slog.Time("expires_at", session.ExpiresAt))

		return &usecase.ValidateSessionOutput{Session: session, User: user, Cookie: usecase.CookieRefresh}, nil
	}

	session.Fresh = false

	return &usecase.ValidateSessionOutput{Session: session, User: user, Cookie: usecase.CookieKeep}, nil
}

// Create starts a session for the user.
func (srv *sessionService) Create(ctx context.Context, userID string) (*entity.Session, error) {
	session := newSession(userID, srv.now(), srv.lifetime)

	if err := srv.sessionRepo.Upsert(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to create session", slog.String("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create session")
	}

	return session, nil
}

// Invalidate deletes one session.
func (srv *sessionService) Invalidate(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := srv.sessionRepo.Delete(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to invalidate session")
	}

	return nil
}

// InvalidateAllForUser deletes every session of the user.
func (srv *sessionService) InvalidateAllForUser(ctx context.Context, userID string) error {
	if err := srv.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to invalidate sessions", slog.String("user_id", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to invalidate user sessions")
	}
	srv.log(ctx).Info("Invalidated all sessions", slog.String("user_id", userID))

	return nil
}

// CleanupExpired removes all expired sessions from the database.
func (srv *sessionService) CleanupExpired(ctx context.Context) (int64, error) {
	deleted, err := srv.sessionRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		srv.log(ctx).Error("Failed to cleanup expired sessions", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to cleanup expired sessions")
	}
	srv.log(ctx).Info("Cleaned up expired sessions", slog.Int64("deleted_count", deleted))

	return deleted, nil
}

func newSession(userID string, now time.Time, lifetime time.Duration) *entity.Session {
	return &entity.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(lifetime),
		Fresh:     true,
	}
}
