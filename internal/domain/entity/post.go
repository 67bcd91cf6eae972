package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog article managed from the admin CMS.
// Only published posts are visible on the public blog and in the sitemap.
type Post struct {
	ID          uuid.UUID // Primary key.
	Title       string    // Headline.
	Slug        string    // Unique URL segment under /blog.
	Content     string    // Body, stored as authored.
	Excerpt     *string   // Optional teaser; nil when not provided.
	AuthorID    string    // User that created the post.
	AuthorEmail string    // Denormalized author email shown on the post.
	Published   bool      // Visible to the public when true.
	CreatedAt   time.Time // Creation time; lists are ordered by this, newest first.
	UpdatedAt   time.Time // Last edit time; used as sitemap lastmod.
}
