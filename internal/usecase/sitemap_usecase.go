package usecase

import (
	"context"
)

// SitemapUsecase builds the XML sitemap for search engines
type SitemapUsecase interface {
	// Build renders the sitemap document for the configured base URL.
	Build(ctx context.Context) ([]byte, error)
}
