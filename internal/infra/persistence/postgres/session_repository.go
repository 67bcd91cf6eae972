package postgres

import (
	"context"
	"time"

	"koostory/internal/domain/entity"
	"koostory/internal/domain/repository"
	"koostory/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// FindByIDWithUser loads the session and its owner in one joined query.
func (repo *sessionRepository) FindByIDWithUser(ctx context.Context, id string) (*entity.Session, *entity.User, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Joins("User").
		Where("sessions.id = ?", id).
		First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, repository.ErrSessionNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find session")
	}

	return toSessionDomain(&sessionM), toUserDomain(&sessionM.User), nil
}

// Upsert inserts the session or moves expires_at of the existing row.
func (repo *sessionRepository) Upsert(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"expires_at"}),
		}).
		Create(sessionM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to upsert session")
	}

	return nil
}

// Delete removes a session. Missing rows are ignored.
func (repo *sessionRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SessionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// DeleteByUserID removes all sessions of a user.
func (repo *sessionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.SessionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete user sessions")
	}

	return nil
}

// DeleteExpired removes every session whose expiry is at or before now.
func (repo *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}

func toSessionDomain(m *model.SessionModel) *entity.Session {
	return &entity.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		ExpiresAt: m.ExpiresAt,
	}
}

func fromSessionDomain(s *entity.Session) *model.SessionModel {
	return &model.SessionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
	}
}
