package impl

import (
	"context"
	"log/slog"
	"strings"

	"koostory/config"
	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/domain/constants"
	"koostory/internal/domain/entity"
	domainerrors "koostory/internal/domain/errors"
	"koostory/internal/domain/service"
	"koostory/internal/errors"
	"koostory/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	testEmailSubject = "Test Email from KooStory"
	testEmailText    = "This is a test email to verify email delivery is working correctly."
	testEmailHTML    = "<h1>Test Email</h1><p>This is a test email to verify email delivery is working correctly.</p>"
)

type emailService struct {
	sender        service.EmailSender
	publisher     service.EventPublisher
	queued        bool
	testRecipient string
	logger        *slog.Logger
}

// EmailServiceParams holds dependencies for EmailService, injected by Fx.
// Publisher is only required when email.delivery is "queue".
type EmailServiceParams struct {
	fx.In

	Sender    service.EmailSender
	Publisher service.EventPublisher `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewEmailService creates a new email service
func NewEmailService(params EmailServiceParams) usecase.EmailUsecase {
	cfg := params.Config.Email

	return &emailService{
		sender:        params.Sender,
		publisher:     params.Publisher,
		queued:        cfg.Delivery == constants.EmailDeliveryQueue && params.Publisher != nil,
		testRecipient: cfg.TestRecipient,
		logger:        params.Logger,
	}
}

func (srv *emailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send delivers inline, or publishes for the mail worker when queueing is on.
func (srv *emailService) Send(ctx context.Context, msg *entity.EmailMessage) (*entity.EmailReceipt, error) {
	if strings.TrimSpace(msg.To) == "" || strings.TrimSpace(msg.Subject) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("to and subject are required")
	}
	if msg.TextBody == "" && msg.HTMLBody == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("text or html body is required")
	}

	if !srv.queued {
		return srv.Deliver(ctx, msg)
	}

	event := &service.EmailEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		MessageID: uuid.NewString(),
		To:        msg.To,
		Subject:   msg.Subject,
		TextBody:  msg.TextBody,
		HTMLBody:  msg.HTMLBody,
		Tag:       msg.Tag,
	}
	if err := srv.publisher.PublishEmailEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to queue email", slog.String("message_id", event.MessageID), slog.Any("error", err))

		return nil, domainerrors.ErrEmailSendFailed.WrapMessage(err.Error())
	}

	return &entity.EmailReceipt{ID: event.MessageID, Queued: true}, nil
}

func (srv *emailService) SendTest(ctx context.Context) (*entity.EmailReceipt, error) {
	if srv.testRecipient == "" {
		return nil, domainerrors.ErrEmailRecipientMissing
	}

	return srv.Send(ctx, &entity.EmailMessage{
		To:       srv.testRecipient,
		Subject:  testEmailSubject,
		TextBody: testEmailText,
		HTMLBody: testEmailHTML,
		Tag:      "test",
	})
}

// Deliver always sends through the provider.
func (srv *emailService) Deliver(ctx context.Context, msg *entity.EmailMessage) (*entity.EmailReceipt, error) {
	receipt, err := srv.sender.Send(ctx, msg)
	if err != nil {
		srv.log(ctx).Error("Failed to send email", slog.String("tag", msg.Tag), slog.Any("error", err))

		// The provider error stays in the chain so the mail worker can tell rejections from outages
		return nil, errors.Join(domainerrors.ErrEmailSendFailed, err)
	}
	srv.log(ctx).Info("Email sent", slog.String("message_id", receipt.ID), slog.String("tag", msg.Tag))

	return receipt, nil
}
