package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"koostory/config"
	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/domain/entity"
	domainerrors "koostory/internal/domain/errors"
	"koostory/internal/domain/service"
	"koostory/internal/usecase"

	"go.uber.org/fx"
)

type translationService struct {
	translator service.Translator
	cache      service.TranslationCache
	cacheTTL   time.Duration
	logger     *slog.Logger
}

// TranslationServiceParams holds dependencies for TranslationService, injected by Fx.
// Translator and Cache are nil when not configured.
type TranslationServiceParams struct {
	fx.In

	Translator service.Translator       `optional:"true"`
	Cache      service.TranslationCache `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewTranslationService creates a new translation service
func NewTranslationService(params TranslationServiceParams) usecase.TranslationUsecase {
	return &translationService{
		translator: params.Translator,
		cache:      params.Cache,
		cacheTTL:   params.Config.Translate.CacheTTL,
		logger:     params.Logger,
	}
}

func (srv *translationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *translationService) Enabled() bool {
	return srv.translator != nil
}

func (srv *translationService) Translate(ctx context.Context, input *usecase.TranslateInput) (*entity.TranslationResult, error) {
	if !srv.Enabled() {
		return nil, domainerrors.ErrTranslationNotConfigured
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, domainerrors.ErrTranslationTextRequired
	}

	target := entity.TranslationTarget(input.TargetLang)
	if !target.IsValid() {
		return nil, domainerrors.ErrTranslationTargetInvalid
	}

	req := &entity.TranslationRequest{
		Text:       input.Text,
		Target:     target,
		SourceLang: input.SourceLang,
		IsHTML:     input.IsHTML,
	}

	key := translationCacheKey(srv.translator.Name(), req)
	if srv.cache != nil {
		cached, err := srv.cache.Get(ctx, key)
		if err != nil {
			srv.log(ctx).Warn("Translation cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	result, err := srv.translator.Translate(ctx, req)
	if err != nil {
		return nil, err
	}
	if result == nil || result.TranslatedText == "" {
		return nil, domainerrors.ErrTranslationEmpty
	}

	if srv.cache != nil && srv.cacheTTL > 0 {
		if err := srv.cache.Set(ctx, key, result, srv.cacheTTL); err != nil {
			srv.log(ctx).Warn("Translation cache write failed", slog.Any("error", err))
		}
	}

	return result, nil
}

// translationCacheKey hashes the request so keys stay short for long texts.
func translationCacheKey(provider string, req *entity.TranslationRequest) string {
	h := sha256.New()
	for _, part := range []string{provider, string(req.Target), req.SourceLang, strconv.FormatBool(req.IsHTML), req.Text} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}

	return "translate:" + hex.EncodeToString(h.Sum(nil))
}
