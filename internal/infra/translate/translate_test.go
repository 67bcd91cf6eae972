package translate

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"koostory/config"
	"koostory/internal/domain/entity"
	domainerrors "koostory/internal/domain/errors"

	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDeepL_SendsFormAndParsesResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DeepL-Auth-Key secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "안녕하세요", r.PostForm.Get("text"))
		assert.Equal(t, "EN", r.PostForm.Get("target_lang"))
		assert.Equal(t, "html", r.PostForm.Get("tag_handling"))
		assert.Empty(t, r.PostForm.Get("source_lang"))

		_, _ = w.Write([]byte(`{"translations":[{"detected_source_language":"KO","text":"Hello"}]}`))
	}))
	defer srv.Close()

	tr := NewDeepLTranslator(srv.URL, "secret", time.Second, discardLogger())
	got, err := tr.Translate(context.Background(), &entity.TranslationRequest{
		Text:   "안녕하세요",
		Target: entity.TranslationTargetEN,
		IsHTML: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Hello", got.TranslatedText)
	assert.Equal(t, "KO", got.DetectedSourceLang)
}

func TestDeepL_UpstreamStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		upstream int
		want     int
	}{
		{name: "quota exceeded keeps status", upstream: 456, want: 456},
		{name: "forbidden keeps status", upstream: http.StatusForbidden, want: http.StatusForbidden},
		{name: "server error becomes bad gateway", upstream: http.StatusServiceUnavailable, want: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.upstream)
				_, _ = w.Write([]byte(`{"message":"nope"}`))
			}))
			defer srv.Close()

			_, err := NewDeepLTranslator(srv.URL, "k", time.Second, discardLogger()).
				Translate(context.Background(), &entity.TranslationRequest{Text: "x", Target: entity.TranslationTargetDE})

			var upstream *domainerrors.UpstreamError
			require.ErrorAs(t, err, &upstream)
			assert.Equal(t, tt.want, upstream.HTTPCode())
			assert.Equal(t, tt.upstream, upstream.StatusCode())
		})
	}
}

func TestDeepL_EmptyTranslations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"translations":[]}`))
	}))
	defer srv.Close()

	_, err := NewDeepLTranslator(srv.URL, "k", time.Second, discardLogger()).
		Translate(context.Background(), &entity.TranslationRequest{Text: "x", Target: entity.TranslationTargetKO})

	assert.ErrorIs(t, err, domainerrors.ErrTranslationEmpty)
}

func TestOpenAI_ChatCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o-mini", body.Model)
		require.Len(t, body.Messages, 2)
		assert.Contains(t, body.Messages[0].Content, "Korean")
		assert.Equal(t, "Hello", body.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":" 안녕하세요 "}}]}`))
	}))
	defer srv.Close()

	tr := NewOpenAITranslator("key", "gpt-4o-mini", time.Second, discardLogger(),
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))

	got, err := tr.Translate(context.Background(), &entity.TranslationRequest{
		Text:       "Hello",
		Target:     entity.TranslationTargetKO,
		SourceLang: "en",
	})
	require.NoError(t, err)

	assert.Equal(t, "안녕하세요", got.TranslatedText)
	assert.Equal(t, "EN", got.DetectedSourceLang)
}

func TestOpenAI_APIErrorBecomesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	tr := NewOpenAITranslator("key", "gpt-4o-mini", time.Second, discardLogger(),
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))

	_, err := tr.Translate(context.Background(), &entity.TranslationRequest{Text: "x", Target: entity.TranslationTargetEN})

	var upstream *domainerrors.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.HTTPCode())
}

func TestNewTranslator_DisabledWithoutKey(t *testing.T) {
	cfg := &config.Config{Translate: &config.TranslateConfig{Provider: "deepl"}}

	tr, err := NewTranslator(TranslatorParams{Config: cfg, Logger: discardLogger()})
	require.NoError(t, err)
	assert.Nil(t, tr)

	cfg.Translate.Provider = "babelfish"
	_, err = NewTranslator(TranslatorParams{Config: cfg, Logger: discardLogger()})
	assert.Error(t, err)
}
