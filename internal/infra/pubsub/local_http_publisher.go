package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"koostory/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPPublisher posts events straight to the mail worker, in the same
// envelope Google Pub/Sub uses for push subscriptions
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the Pub/Sub push envelope
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// NewPushMessage wraps an email event in a push envelope
func NewPushMessage(event *service.EmailEvent, subscription string) (*PushMessage, error) {
	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	msg.Message.MessageID = event.MessageID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	msg.Message.Attributes = eventAttributes(event)

	return msg, nil
}

// PublishEmailEvent sends the event to the local worker endpoint
func (p *localHTTPPublisher) PublishEmailEvent(ctx context.Context, event *service.EmailEvent) error {
	pushMsg, err := NewPushMessage(event, "projects/local/subscriptions/email-sub")
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[LocalPubSub] Publishing event",
		slog.String("endpoint", p.endpoint),
		slog.String("message_id", event.MessageID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Event published successfully",
		slog.String("message_id", event.MessageID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}

func eventAttributes(event *service.EmailEvent) map[string]string {
	attributes := map[string]string{
		"message_id": event.MessageID,
	}
	if event.Tag != "" {
		attributes["tag"] = event.Tag
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
