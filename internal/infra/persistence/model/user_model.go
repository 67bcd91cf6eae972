package model

import (
	"time"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID             string `gorm:"type:text;primaryKey"`
	Email          string `gorm:"type:text;uniqueIndex;not null"`
	HashedPassword string `gorm:"type:text;not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
