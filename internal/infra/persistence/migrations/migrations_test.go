package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsAreEmbeddedInOrder(t *testing.T) {
	names, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.Equal(t, []string{
		"00001_create_users_sessions.sql",
		"00002_create_blog_posts.sql",
	}, names)

	for _, name := range names {
		body, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), name)
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), name)
	}
}

func TestSessionsCascadeWithUsers(t *testing.T) {
	body, err := fs.ReadFile(FS, "00001_create_users_sessions.sql")
	require.NoError(t, err)

	assert.Contains(t, string(body), "REFERENCES users (id) ON DELETE CASCADE")
	assert.Contains(t, string(body), "expires_at TIMESTAMPTZ NOT NULL")
}
