package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'blog_posts' table.
type PostModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:text;not null"`
	Slug        string    `gorm:"type:text;uniqueIndex;not null"`
	Content     string    `gorm:"type:text;not null"`
	Excerpt     *string   `gorm:"type:text"`
	AuthorID    string    `gorm:"type:text;not null"`
	AuthorEmail string    `gorm:"type:text;not null"`
	Published   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "blog_posts"
}
