package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"koostory/config"
	"koostory/internal/delivery/http/middleware"
	"koostory/internal/delivery/http/policy"
	"koostory/internal/delivery/http/router/handler"
	"koostory/internal/delivery/http/sessioncookie"
	"koostory/internal/delivery/http/validator"
	"koostory/internal/delivery/http/view"
	"koostory/internal/domain/entity"
	"koostory/internal/infra/i18n"
	mockusecase "koostory/internal/mocks/usecase"
	"koostory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

type site struct {
	echo     *echo.Echo
	sessions *mockusecase.MockSessionUsecase
	blog     *mockusecase.MockBlogUsecase
}

func newSite(t *testing.T) *site {
	t.Helper()

	cfg := &config.Config{
		Session: &config.SessionConfig{CookieName: "auth_session", Lifetime: 30 * 24 * time.Hour},
		Site:    &config.SiteConfig{Name: "Koostory", BaseURL: "https://koostory.example", ProtectedPrefix: "/admin", LoginPath: "/login"},
		I18n:    &config.I18nConfig{Default: "en", Supported: []string{"en", "ko"}},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	ctx := context.Background()
	require.NoError(t, bucket.WriteAll(ctx, "en.json", []byte(`{"hero":{"title":"Requirements"}}`), nil))
	require.NoError(t, bucket.WriteAll(ctx, "ko.json", []byte(`{"hero":{"title":"요구사항"}}`), nil))

	catalog := i18n.NewCatalog(i18n.CatalogParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    logger,
		Loader:    i18n.NewBlobLoader(bucket),
	})

	renderer, err := view.New(cfg)
	require.NoError(t, err)

	sessions := mockusecase.NewMockSessionUsecase(t)
	blog := mockusecase.NewMockBlogUsecase(t)
	codec := sessioncookie.NewFromConfig(cfg)

	e := echo.New()
	e.Renderer = renderer
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorHandler(middleware.ErrorHandlerParams{
		Config: cfg, Logger: logger, Codec: codec, Catalog: catalog,
	}).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(mockusecase.NewMockAuthUsecase(t), codec, logger),
		PageHandler:    handler.NewPageHandler(),
		BlogHandler:    handler.NewBlogHandler(blog, logger),
		AdminHandler:   handler.NewAdminHandler(blog, logger),
		ProxyHandler:   handler.NewProxyHandler(mockusecase.NewMockTranslationUsecase(t), mockusecase.NewMockEmailUsecase(t), logger),
		SitemapHandler: handler.NewSitemapHandler(mockusecase.NewMockSitemapUsecase(t)),
		SessionMiddleware: middleware.NewSessionMiddleware(middleware.SessionMiddlewareParams{
			Codec:    codec,
			Sessions: sessions,
			Guard:    policy.NewGuard(cfg),
			Logger:   logger,
		}),
		LocaleMiddleware: middleware.NewLocaleMiddleware(middleware.LocaleMiddlewareParams{
			Resolver: policy.NewLocaleResolver(cfg),
			Catalog:  catalog,
			Logger:   logger,
		}),
	}).RegisterRoutes(e)

	return &site{echo: e, sessions: sessions, blog: blog}
}

func (s *site) anonymous() {
	s.sessions.EXPECT().Validate(mock.Anything, "").
		Return(&usecase.ValidateSessionOutput{Cookie: usecase.CookieKeep}, nil)
}

func (s *site) do(method, target string, body io.Reader, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func TestRegisterRoutes_Pages(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		acceptLang   string
		wantStatus   int
		wantLanguage string
		wantLocation string
	}{
		{name: "root english", target: "/", acceptLang: "en-US", wantStatus: http.StatusOK, wantLanguage: "en"},
		{name: "root korean browser", target: "/", acceptLang: "ko-KR", wantStatus: http.StatusFound, wantLocation: "/ko"},
		{name: "korean root", target: "/ko", wantStatus: http.StatusOK, wantLanguage: "ko"},
		{name: "pricing", target: "/pricing", wantStatus: http.StatusOK, wantLanguage: "en"},
		{name: "prefixed pricing", target: "/ko/pricing", wantStatus: http.StatusOK, wantLanguage: "ko"},
		{name: "explicit language with other prefix", target: "/en/pricing?lang=ko", wantStatus: http.StatusOK, wantLanguage: "ko"},
		{name: "explicit language on plain page", target: "/pricing?lang=ko", wantStatus: http.StatusOK, wantLanguage: "ko"},
		{name: "word in language slot", target: "/foo", wantStatus: http.StatusNotFound},
		{name: "word before product", target: "/about/product", wantStatus: http.StatusNotFound},
		{name: "unsupported language", target: "/xx/pricing", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSite(t)
			s.anonymous()

			header := http.Header{}
			if tt.acceptLang != "" {
				header.Set("Accept-Language", tt.acceptLang)
			}
			rec := s.do(http.MethodGet, tt.target, nil, header)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLanguage != "" {
				assert.Equal(t, tt.wantLanguage, rec.Header().Get("Content-Language"))
			}
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
			}
		})
	}
}

func TestRegisterRoutes_BlogHonoursExplicitLanguage(t *testing.T) {
	s := newSite(t)
	s.anonymous()
	s.blog.EXPECT().ListPublished(mock.Anything).Return([]*entity.Post{}, nil)

	rec := s.do(http.MethodGet, "/ko/blog?lang=en", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "en", rec.Header().Get("Content-Language"))
}

func TestRegisterRoutes_UnsupportedLanguageNeverReachesBlog(t *testing.T) {
	s := newSite(t)
	s.anonymous()

	rec := s.do(http.MethodGet, "/xx/blog", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	s.blog.AssertNotCalled(t, "ListPublished", mock.Anything)
}

func TestRegisterRoutes_AdminRedirectsBeforeLocale(t *testing.T) {
	s := newSite(t)
	s.anonymous()

	rec := s.do(http.MethodGet, "/admin/cms", nil, nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?redirect=%2Fadmin%2Fcms", rec.Header().Get(echo.HeaderLocation))
	assert.Empty(t, rec.Header().Get("Content-Language"))
}

func TestRegisterRoutes_AdminAPIRequiresUser(t *testing.T) {
	s := newSite(t)
	s.anonymous()

	header := http.Header{}
	header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := s.do(http.MethodPost, "/api/admin/blog", strings.NewReader(`{"title":"t","slug":"t","content":"c"}`), header)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Unauthorized", body["error"])
	s.blog.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterRoutes_DevToolsWellKnownPath(t *testing.T) {
	s := newSite(t)

	rec := s.do(http.MethodGet, "/.well-known/appspecific/com.chrome.devtools.json", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	s.sessions.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
}

func TestRegisterRoutes_HealthSkipsLocale(t *testing.T) {
	s := newSite(t)
	s.anonymous()

	rec := s.do(http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Content-Language"))
}
