package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"koostory/internal/domain/entity"
	domainerrors "koostory/internal/domain/errors"
	mockSvc "koostory/internal/mocks/service"
	"koostory/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTranslationService_NotConfigured(t *testing.T) {
	service := &translationService{logger: discardLogger()}

	assert.False(t, service.Enabled())
	_, err := service.Translate(context.Background(), &usecase.TranslateInput{Text: "hi", TargetLang: "KO"})
	assert.ErrorIs(t, err, domainerrors.ErrTranslationNotConfigured)
}

func TestTranslationService_Validation(t *testing.T) {
	translator := mockSvc.NewMockTranslator(t)
	service := &translationService{translator: translator, logger: discardLogger()}
	ctx := context.Background()

	_, err := service.Translate(ctx, &usecase.TranslateInput{Text: "  ", TargetLang: "KO"})
	assert.ErrorIs(t, err, domainerrors.ErrTranslationTextRequired)

	_, err = service.Translate(ctx, &usecase.TranslateInput{Text: "hi", TargetLang: "FR"})
	assert.ErrorIs(t, err, domainerrors.ErrTranslationTargetInvalid)

	_, err = service.Translate(ctx, &usecase.TranslateInput{Text: "hi", TargetLang: "ko"})
	assert.ErrorIs(t, err, domainerrors.ErrTranslationTargetInvalid)
}

func TestTranslationService_CacheMissThenStore(t *testing.T) {
	translator := mockSvc.NewMockTranslator(t)
	cache := mockSvc.NewMockTranslationCache(t)
	service := &translationService{translator: translator, cache: cache, cacheTTL: time.Hour, logger: discardLogger()}
	ctx := context.Background()
	result := &entity.TranslationResult{TranslatedText: "안녕", DetectedSourceLang: "EN"}

	translator.EXPECT().Name().Return("DeepL")
	cache.EXPECT().Get(ctx, mock.AnythingOfType("string")).Return(nil, nil)
	translator.EXPECT().Translate(ctx, &entity.TranslationRequest{Text: "hi", Target: entity.TranslationTargetKO}).Return(result, nil)
	cache.EXPECT().Set(ctx, mock.AnythingOfType("string"), result, time.Hour).Return(nil)

	got, err := service.Translate(ctx, &usecase.TranslateInput{Text: "hi", TargetLang: "KO"})
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestTranslationService_CacheHitSkipsProvider(t *testing.T) {
	translator := mockSvc.NewMockTranslator(t)
	cache := mockSvc.NewMockTranslationCache(t)
	service := &translationService{translator: translator, cache: cache, cacheTTL: time.Hour, logger: discardLogger()}
	ctx := context.Background()
	cached := &entity.TranslationResult{TranslatedText: "Hallo"}

	translator.EXPECT().Name().Return("DeepL")
	cache.EXPECT().Get(ctx, mock.AnythingOfType("string")).Return(cached, nil)

	got, err := service.Translate(ctx, &usecase.TranslateInput{Text: "hi", TargetLang: "DE"})
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestTranslationService_UpstreamErrorPassesThrough(t *testing.T) {
	translator := mockSvc.NewMockTranslator(t)
	service := &translationService{translator: translator, logger: discardLogger()}
	ctx := context.Background()
	upstream := domainerrors.NewUpstreamError("DeepL", 456, "quota")

	translator.EXPECT().Name().Return("DeepL")
	translator.EXPECT().Translate(ctx, mock.Anything).Return(nil, upstream)

	_, err := service.Translate(ctx, &usecase.TranslateInput{Text: "hi", TargetLang: "EN"})

	var got *domainerrors.UpstreamError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 456, got.HTTPCode())
	assert.NotEqual(t, http.StatusBadGateway, got.HTTPCode())
}

func TestTranslationService_EmptyResult(t *testing.T) {
	translator := mockSvc.NewMockTranslator(t)
	service := &translationService{translator: translator, logger: discardLogger()}
	ctx := context.Background()

	translator.EXPECT().Name().Return("OpenAI")
	translator.EXPECT().Translate(ctx, mock.Anything).Return(&entity.TranslationResult{}, nil)

	_, err := service.Translate(ctx, &usecase.TranslateInput{Text: "hi", TargetLang: "EN"})
	assert.ErrorIs(t, err, domainerrors.ErrTranslationEmpty)
}

func TestTranslationCacheKey(t *testing.T) {
	base := entity.TranslationRequest{Text: "hi", Target: entity.TranslationTargetKO}
	key := translationCacheKey("DeepL", &base)

	variants := []entity.TranslationRequest{
		{Text: "hi!", Target: entity.TranslationTargetKO},
		{Text: "hi", Target: entity.TranslationTargetDE},
		{Text: "hi", Target: entity.TranslationTargetKO, SourceLang: "EN"},
		{Text: "hi", Target: entity.TranslationTargetKO, IsHTML: true},
	}
	for _, v := range variants {
		assert.NotEqual(t, key, translationCacheKey("DeepL", &v))
	}
	assert.NotEqual(t, key, translationCacheKey("OpenAI", &base))
	assert.Equal(t, key, translationCacheKey("DeepL", &entity.TranslationRequest{Text: "hi", Target: entity.TranslationTargetKO}))
}
