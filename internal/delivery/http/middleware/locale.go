package middleware

import (
	"context"
	"log/slog"

	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/delivery/http/policy"
	"koostory/internal/domain/entity"
	"koostory/internal/errors"
	"koostory/internal/infra/i18n"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TranslatorSource hands out a fully loaded translator for a language.
type TranslatorSource interface {
	Translator(ctx context.Context, lang entity.Language) (*i18n.Translator, error)
}

// LocaleMiddleware resolves the display language of page routes.
type LocaleMiddleware struct {
	resolver policy.LocaleResolver
	source   TranslatorSource
	logger   *slog.Logger
}

// LocaleMiddlewareParams holds dependencies for LocaleMiddleware, injected by Fx.
type LocaleMiddlewareParams struct {
	fx.In

	Resolver policy.LocaleResolver
	Catalog  *i18n.Catalog
	Logger   *slog.Logger
}

// NewLocaleMiddleware creates the locale middleware.
func NewLocaleMiddleware(params LocaleMiddlewareParams) *LocaleMiddleware {
	return newLocaleMiddleware(params.Resolver, params.Catalog, params.Logger)
}

func newLocaleMiddleware(resolver policy.LocaleResolver, source TranslatorSource, logger *slog.Logger) *LocaleMiddleware {
	return &LocaleMiddleware{resolver: resolver, source: source, logger: logger}
}

// Handle resolves the language, waits for its bundle and stores both in the
// request. The handler never runs with a partially loaded language.
func (m *LocaleMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		res, decision := m.resolver.Resolve(req.URL.Path, req.Header.Get("Accept-Language"), c.QueryParam("lang"))
		if !decision.Allowed() {
			return respond(c, decision, next)
		}

		translator, err := m.source.Translator(req.Context(), res.Language)
		if err != nil {
			return errors.Wrapf(err, "load %s translations", res.Language)
		}

		deliverycontext.SetLocale(c, &deliverycontext.Locale{
			Language:  res.Language,
			FromPath:  res.FromPath,
			Localizer: translator,
		})
		c.Response().Header().Set("Content-Language", res.Language.String())

		return next(c)
	}
}
