package impl

import (
	"context"
	"encoding/xml"
	"strings"

	"koostory/config"
	"koostory/internal/domain/repository"
	"koostory/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Pages listed once per language prefix. Admin, API and auth pages are never listed.
var localizedPages = []string{"/", "/pricing", "/product"}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapService struct {
	postRepo  repository.PostRepository
	baseURL   string
	languages []string
}

// SitemapServiceParams holds dependencies for SitemapService, injected by Fx.
type SitemapServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	Config   *config.Config
}

// NewSitemapService creates a new sitemap service
func NewSitemapService(params SitemapServiceParams) usecase.SitemapUsecase {
	return &sitemapService{
		postRepo:  params.PostRepo,
		baseURL:   strings.TrimRight(params.Config.Site.BaseURL, "/"),
		languages: params.Config.I18n.Supported,
	}
}

func (srv *sitemapService) Build(ctx context.Context) ([]byte, error) {
	posts, err := srv.postRepo.ListPublished(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published posts")
	}

	set := urlSet{XMLNS: sitemapNamespace}

	prefixes := append([]string{""}, srv.languages...)
	for _, prefix := range prefixes {
		for _, page := range localizedPages {
			set.URLs = append(set.URLs, sitemapURL{Loc: srv.baseURL + localize(prefix, page)})
		}
	}

	set.URLs = append(set.URLs, sitemapURL{Loc: srv.baseURL + "/blog"})
	for _, post := range posts {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     srv.baseURL + "/blog/" + post.Slug,
			LastMod: post.UpdatedAt.UTC().Format("2006-01-02"),
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return append([]byte(xml.Header), out...), nil
}

func localize(lang, page string) string {
	if lang == "" {
		return page
	}
	if page == "/" {
		return "/" + lang
	}

	return "/" + lang + page
}
