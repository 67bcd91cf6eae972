package service

import (
	"context"

	"koostory/internal/domain/entity"
)

// TranslationLoader supplies the UI string bundle of one language as a flat key to text map
type TranslationLoader interface {
	Load(ctx context.Context, lang entity.Language) (map[string]string, error)
}
