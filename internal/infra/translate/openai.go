package translate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"koostory/internal/domain/entity"
	domainerrors "koostory/internal/domain/errors"
	"koostory/internal/domain/service"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/pkg/errors"
)

var targetNames = map[entity.TranslationTarget]string{
	entity.TranslationTargetEN: "English",
	entity.TranslationTargetKO: "Korean",
	entity.TranslationTargetDE: "German",
}

type openAITranslator struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAITranslator translates with a chat completion model
func NewOpenAITranslator(apiKey, model string, timeout time.Duration, logger *slog.Logger, opts ...option.RequestOption) service.Translator {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(timeout),
	}, opts...)

	return &openAITranslator{
		client: openai.NewClient(opts...),
		model:  model,
		logger: logger,
	}
}

func (t *openAITranslator) Name() string {
	return "OpenAI"
}

func (t *openAITranslator) Translate(ctx context.Context, req *entity.TranslationRequest) (*entity.TranslationResult, error) {
	resp, err := t.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(t.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt(req)),
			openai.UserMessage(req.Text),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			t.logger.WarnContext(ctx, "OpenAI API error", slog.Int("status", apiErr.StatusCode), slog.String("message", apiErr.Message))

			return nil, domainerrors.NewUpstreamError(t.Name(), apiErr.StatusCode, apiErr.Message)
		}

		return nil, errors.Wrap(err, "openai request")
	}

	if len(resp.Choices) == 0 {
		return nil, domainerrors.ErrTranslationEmpty
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, domainerrors.ErrTranslationEmpty
	}

	// Chat models do not report a detected language; echo the caller's hint.
	return &entity.TranslationResult{
		TranslatedText:     text,
		DetectedSourceLang: strings.ToUpper(req.SourceLang),
	}, nil
}

func systemPrompt(req *entity.TranslationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Translate the user's message into %s.", targetNames[req.Target])
	if req.SourceLang != "" {
		fmt.Fprintf(&b, " The source language is %s.", strings.ToUpper(req.SourceLang))
	}
	if req.IsHTML {
		b.WriteString(" The text is HTML: keep every tag and attribute unchanged and translate only the visible text.")
	}
	b.WriteString(" Reply with the translation only.")

	return b.String()
}
