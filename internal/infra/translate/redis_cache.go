package translate

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"koostory/config"
	"koostory/internal/domain/entity"
	"koostory/internal/domain/lifecycle"
	"koostory/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type redisCache struct {
	client *redis.Client
}

type cachedResult struct {
	Text   string `json:"t"`
	Source string `json:"s,omitempty"`
}

// CacheParams holds dependencies for the translation cache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewTranslationCache connects to redis when an address is configured. Without
// one it returns nil and translations are not cached.
func NewTranslationCache(params CacheParams) (service.TranslationCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, translation cache disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "ping redis")
			}
			params.Logger.Info("Translation cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisCache(client), nil
}

// NewRedisCache wraps an existing client
func NewRedisCache(client *redis.Client) service.TranslationCache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string) (*entity.TranslationResult, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get")
	}

	var cached cachedResult
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, errors.Wrap(err, "decode cached translation")
	}

	return &entity.TranslationResult{TranslatedText: cached.Text, DetectedSourceLang: cached.Source}, nil
}

func (c *redisCache) Set(ctx context.Context, key string, result *entity.TranslationResult, ttl time.Duration) error {
	raw, err := json.Marshal(cachedResult{Text: result.TranslatedText, Source: result.DetectedSourceLang})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(c.client.Set(ctx, key, raw, ttl).Err(), "redis set")
}
