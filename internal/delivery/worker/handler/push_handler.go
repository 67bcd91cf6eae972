package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"koostory/config"
	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/domain/entity"
	"koostory/internal/domain/service"
	"koostory/internal/errors"
	"koostory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// tokenValidator checks a Google-signed OIDC token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler delivers queued emails pushed by Pub/Sub.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	logger         *slog.Logger
	emails         usecase.EmailUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Emails usecase.EmailUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		verifyPushAuth: !params.Config.Worker.SkipVerify,
		audience:       params.Config.Worker.Audience,
		validate:       idtoken.Validate,
		logger:         params.Logger,
		emails:         params.Emails,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
//
// 503 asks Pub/Sub to redeliver; 200 acknowledges, including messages that can
// never succeed so they are not retried forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.EmailEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse email event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing email event",
		slog.String("message_id", event.MessageID),
		slog.String("pubsub_message_id", pushMsg.Message.MessageID),
		slog.String("tag", event.Tag),
	)

	if err := h.deliver(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to deliver email",
			slog.String("message_id", event.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Email delivered", slog.String("message_id", event.MessageID))

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) deliver(ctx context.Context, event *service.EmailEvent) error {
	if strings.TrimSpace(event.To) == "" || strings.TrimSpace(event.Subject) == "" {
		return errors.New("event has no recipient or subject")
	}

	_, err := h.emails.Deliver(ctx, &entity.EmailMessage{
		To:       event.To,
		Subject:  event.Subject,
		TextBody: event.TextBody,
		HTMLBody: event.HTMLBody,
		Tag:      event.Tag,
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, service.ErrEmailRejected) {
		return errors.WithStack(err)
	}

	return newRetryableError(errors.WithStack(err))
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.EmailEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// From RequestIDMiddleware via the X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Without a configured audience the push endpoint URL is expected
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
