package email

import (
	"context"
	"log/slog"

	"koostory/config"
	"koostory/internal/domain/entity"
	"koostory/internal/domain/service"
	"koostory/internal/errors"

	"github.com/mrz1836/postmark"
)

type postmarkSender struct {
	client  *postmark.Client
	from    string
	replyTo string
	logger  *slog.Logger
}

// NewPostmarkSender sends through Postmark's transactional API
func NewPostmarkSender(cfg *config.EmailConfig, logger *slog.Logger) service.EmailSender {
	return newPostmarkSender(postmark.NewClient(cfg.ServerToken, cfg.AccountToken), cfg, logger)
}

func newPostmarkSender(client *postmark.Client, cfg *config.EmailConfig, logger *slog.Logger) *postmarkSender {
	return &postmarkSender{
		client:  client,
		from:    cfg.From,
		replyTo: cfg.ReplyTo,
		logger:  logger,
	}
}

func (s *postmarkSender) Send(ctx context.Context, msg *entity.EmailMessage) (*entity.EmailReceipt, error) {
	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       s.from,
		ReplyTo:    s.replyTo,
		To:         msg.To,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		TextBody:   msg.TextBody,
		HTMLBody:   msg.HTMLBody,
		TrackOpens: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "postmark send")
	}
	if resp.ErrorCode > 0 {
		return nil, errors.Wrapf(service.ErrEmailRejected, "postmark error %d: %s", resp.ErrorCode, resp.Message)
	}

	s.logger.Debug("Email accepted by Postmark",
		slog.String("message_id", resp.MessageID),
		slog.String("tag", msg.Tag),
	)

	return &entity.EmailReceipt{ID: resp.MessageID}, nil
}
