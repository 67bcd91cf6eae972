package usecase

import (
	"context"

	"koostory/internal/domain/entity"
)

// TranslateInput is the translate proxy request body
type TranslateInput struct {
	Text       string `json:"text"`
	TargetLang string `json:"targetLang"`
	SourceLang string `json:"sourceLang,omitempty"`
	IsHTML     bool   `json:"isHtml,omitempty"`
}

// TranslationUsecase validates requests and forwards them to the configured provider
type TranslationUsecase interface {
	// Enabled reports whether a provider is configured.
	Enabled() bool
	Translate(ctx context.Context, input *TranslateInput) (*entity.TranslationResult, error)
}
