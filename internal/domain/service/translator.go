package service

import (
	"context"
	"time"

	"koostory/internal/domain/entity"
)

// Translator is a machine-translation provider behind the translate proxy
type Translator interface {
	// Translate returns the translated text. Non-success upstream answers are
	// reported as *domainerrors.UpstreamError.
	Translate(ctx context.Context, req *entity.TranslationRequest) (*entity.TranslationResult, error)

	// Name identifies the provider, e.g. "deepl"
	Name() string
}

// TranslationCache stores finished translations. A miss is (nil, nil).
type TranslationCache interface {
	Get(ctx context.Context, key string) (*entity.TranslationResult, error)
	Set(ctx context.Context, key string, result *entity.TranslationResult, ttl time.Duration) error
}
