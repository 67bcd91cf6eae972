package service

import (
	"context"
)

// EmailEvent is a queued email request consumed by the mail worker
type EmailEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	MessageID string `json:"message_id"`           // Local id returned to the caller before delivery
	To        string `json:"to"`
	Subject   string `json:"subject"`
	TextBody  string `json:"text,omitempty"`
	HTMLBody  string `json:"html,omitempty"`
	Tag       string `json:"tag,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEmailEvent publishes an email request for async delivery
	PublishEmailEvent(ctx context.Context, event *EmailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
