package email

import (
	"context"
	"log/slog"

	"koostory/internal/domain/entity"
	"koostory/internal/domain/service"

	"github.com/google/uuid"
)

// logSender writes messages to the log instead of delivering them. Used in local runs.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender that only logs
func NewLogSender(logger *slog.Logger) service.EmailSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, msg *entity.EmailMessage) (*entity.EmailReceipt, error) {
	id := uuid.NewString()

	s.logger.InfoContext(ctx, "Email not delivered (log provider)",
		slog.String("message_id", id),
		slog.String("subject", msg.Subject),
		slog.Int("text_bytes", len(msg.TextBody)),
		slog.Int("html_bytes", len(msg.HTMLBody)),
	)

	return &entity.EmailReceipt{ID: id}, nil
}
