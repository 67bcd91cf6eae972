package translate

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"koostory/internal/domain/entity"
	domainerrors "koostory/internal/domain/errors"
	"koostory/internal/domain/service"

	"github.com/pkg/errors"
)

const maxErrorBody = 4 << 10

type deeplTranslator struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

type deeplResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

// NewDeepLTranslator calls the DeepL v2 translate endpoint with a form-encoded POST
func NewDeepLTranslator(endpoint, apiKey string, timeout time.Duration, logger *slog.Logger) service.Translator {
	return &deeplTranslator{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (t *deeplTranslator) Name() string {
	return "DeepL"
}

func (t *deeplTranslator) Translate(ctx context.Context, req *entity.TranslationRequest) (*entity.TranslationResult, error) {
	form := url.Values{}
	form.Set("text", req.Text)
	form.Set("target_lang", string(req.Target))
	if req.SourceLang != "" {
		form.Set("source_lang", req.SourceLang)
	}
	if req.IsHTML {
		form.Set("tag_handling", "html")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Authorization", "DeepL-Auth-Key "+t.apiKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "deepl request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		t.logger.WarnContext(ctx, "DeepL API error",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)

		return nil, domainerrors.NewUpstreamError(t.Name(), resp.StatusCode, string(body))
	}

	var decoded deeplResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "decode deepl response")
	}

	if len(decoded.Translations) == 0 {
		return nil, domainerrors.ErrTranslationEmpty
	}

	return &entity.TranslationResult{
		TranslatedText:     decoded.Translations[0].Text,
		DetectedSourceLang: decoded.Translations[0].DetectedSourceLanguage,
	}, nil
}
