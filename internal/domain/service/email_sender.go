package service

import (
	"context"

	"koostory/internal/domain/entity"
	"koostory/internal/errors"
)

// ErrEmailRejected marks a message the provider refused outright. Resending it will not help.
var ErrEmailRejected = errors.New("email rejected by provider")

// EmailSender delivers a single email through a provider
type EmailSender interface {
	// Send delivers the message and returns the provider receipt
	Send(ctx context.Context, msg *entity.EmailMessage) (*entity.EmailReceipt, error)
}
