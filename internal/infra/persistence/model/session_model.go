package model

import (
	"time"
)

// SessionModel mirrors the 'sessions' table. user_id cascades on user deletion.
type SessionModel struct {
	ID        string    `gorm:"type:text;primaryKey"`
	UserID    string    `gorm:"type:text;not null;index"`
	ExpiresAt time.Time `gorm:"type:timestamptz;not null;index"`

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
