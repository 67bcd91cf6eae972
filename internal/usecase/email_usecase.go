package usecase

import (
	"context"

	"koostory/internal/domain/entity"
)

// EmailUsecase sends transactional email, inline or through the queue
type EmailUsecase interface {
	Send(ctx context.Context, msg *entity.EmailMessage) (*entity.EmailReceipt, error)

	// SendTest sends a fixed message to the configured test recipient.
	SendTest(ctx context.Context) (*entity.EmailReceipt, error)

	// Deliver sends a message pulled from the queue. Used by the mail worker.
	Deliver(ctx context.Context, event *entity.EmailMessage) (*entity.EmailReceipt, error)
}
