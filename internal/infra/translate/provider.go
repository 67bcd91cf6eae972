// Package translate implements the machine-translation providers behind the translate proxy.
package translate

import (
	"log/slog"

	"koostory/config"
	"koostory/internal/domain/constants"
	"koostory/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TranslatorParams holds dependencies for Translator, injected by Fx
type TranslatorParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewTranslator returns the configured provider, or nil when the proxy is disabled.
// A provider without its API key counts as disabled.
func NewTranslator(params TranslatorParams) (service.Translator, error) {
	cfg := params.Config.Translate

	switch cfg.Provider {
	case constants.TranslateProviderDeepL:
		if cfg.DeepLAPIKey == "" {
			params.Logger.Warn("DeepL selected without an API key, translation disabled")

			return nil, nil
		}

		return NewDeepLTranslator(cfg.DeepLEndpoint, cfg.DeepLAPIKey, cfg.Timeout, params.Logger), nil

	case constants.TranslateProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			params.Logger.Warn("OpenAI selected without an API key, translation disabled")

			return nil, nil
		}

		return NewOpenAITranslator(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.Timeout, params.Logger), nil

	case "":
		params.Logger.Info("Translation provider not configured")

		return nil, nil

	default:
		return nil, errors.Errorf("unknown translate provider: %s", cfg.Provider)
	}
}
