package i18n

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"koostory/config"
	"koostory/internal/domain/entity"
	"koostory/internal/domain/lifecycle"
	"koostory/internal/domain/service"
	"koostory/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const bundleLoadTimeout = 5 * time.Second

// Translator resolves UI strings for one request. Missing keys fall back to the
// default language, then to the key itself.
type Translator struct {
	lang     entity.Language
	messages map[string]string
	fallback map[string]string
}

// Language returns the language this translator renders.
func (t *Translator) Language() entity.Language {
	return t.lang
}

// T returns the text for key, replacing "{name}" placeholders from name/value pairs.
func (t *Translator) T(key string, pairs ...string) string {
	msg, ok := t.messages[key]
	if !ok {
		msg, ok = t.fallback[key]
	}
	if !ok {
		return key
	}

	for i := 0; i+1 < len(pairs); i += 2 {
		msg = strings.ReplaceAll(msg, "{"+pairs[i]+"}", pairs[i+1])
	}

	return msg
}

// Catalog caches loaded bundles. Translator blocks until the requested bundle is
// fully loaded, so a page never renders with half a language.
type Catalog struct {
	loader      service.TranslationLoader
	logger      *slog.Logger
	defaultLang entity.Language
	supported   entity.Languages

	mu      sync.RWMutex
	bundles map[entity.Language]map[string]string
	group   singleflight.Group
}

// CatalogParams defines the parameters required for the catalog
type CatalogParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Loader service.TranslationLoader
}

// NewCatalog builds the catalog and preloads every supported language on start.
func NewCatalog(params CatalogParams) *Catalog {
	c := newCatalog(params.Loader, params.Logger,
		entity.Language(params.Config.I18n.Default),
		entity.LanguagesFromStrings(params.Config.I18n.Supported))

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return c.Preload(ctx)
		},
	})

	return c
}

func newCatalog(loader service.TranslationLoader, logger *slog.Logger, defaultLang entity.Language, supported entity.Languages) *Catalog {
	return &Catalog{
		loader:      loader,
		logger:      logger,
		defaultLang: defaultLang,
		supported:   supported,
		bundles:     make(map[entity.Language]map[string]string),
	}
}

// Preload loads every supported bundle; the default bundle must exist.
func (c *Catalog) Preload(ctx context.Context) error {
	for _, lang := range c.supported {
		if _, err := c.bundle(ctx, lang); err != nil {
			return errors.Wrapf(err, "preload %s", lang)
		}
	}

	return nil
}

// Translator returns a translator for lang after its bundle is loaded.
func (c *Catalog) Translator(ctx context.Context, lang entity.Language) (*Translator, error) {
	messages, err := c.bundle(ctx, lang)
	if err != nil {
		return nil, err
	}

	var fallback map[string]string
	if lang != c.defaultLang {
		if fallback, err = c.bundle(ctx, c.defaultLang); err != nil {
			return nil, err
		}
	}

	return &Translator{lang: lang, messages: messages, fallback: fallback}, nil
}

// Invalidate drops a cached bundle so the next request reloads it.
func (c *Catalog) Invalidate(lang entity.Language) {
	c.mu.Lock()
	delete(c.bundles, lang)
	c.mu.Unlock()
}

func (c *Catalog) bundle(ctx context.Context, lang entity.Language) (map[string]string, error) {
	c.mu.RLock()
	messages, ok := c.bundles[lang]
	c.mu.RUnlock()
	if ok {
		return messages, nil
	}

	// Concurrent first requests for one language share a single load. The load
	// itself is detached from any one caller so a disconnect does not fail the others.
	ch := c.group.DoChan(lang.String(), func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), bundleLoadTimeout)
		defer cancel()

		loaded, err := c.loader.Load(loadCtx, lang)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.bundles[lang] = loaded
		c.mu.Unlock()

		if c.logger != nil {
			c.logger.Debug("Translation bundle loaded",
				slog.String("lang", lang.String()),
				slog.Int("keys", len(loaded)),
			)
		}

		return loaded, nil
	})

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}

		return res.Val.(map[string]string), nil
	}
}
