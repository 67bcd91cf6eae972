package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"koostory/internal/domain/entity"
	mockRepo "koostory/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_Build(t *testing.T) {
	postRepo := mockRepo.NewMockPostRepository(t)
	service := &sitemapService{
		postRepo:  postRepo,
		baseURL:   "https://koostory.net",
		languages: []string{"en", "ko"},
	}
	ctx := context.Background()

	postRepo.EXPECT().ListPublished(ctx).Return([]*entity.Post{
		{Slug: "first-post", Published: true, UpdatedAt: time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)},
	}, nil)

	out, err := service.Build(ctx)
	require.NoError(t, err)
	doc := string(out)

	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	for _, loc := range []string{
		"https://koostory.net/",
		"https://koostory.net/pricing",
		"https://koostory.net/product",
		"https://koostory.net/en",
		"https://koostory.net/ko/pricing",
		"https://koostory.net/ko/product",
		"https://koostory.net/blog",
	} {
		assert.Contains(t, doc, "<loc>"+loc+"</loc>")
	}
	assert.Contains(t, doc, "<loc>https://koostory.net/blog/first-post</loc>")
	assert.Contains(t, doc, "<lastmod>2026-02-03</lastmod>")
	assert.NotContains(t, doc, "/admin")
	assert.NotContains(t, doc, "/login")
	assert.NotContains(t, doc, "/api")
}
