package impl

import (
	"context"
	"testing"

	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/domain/entity"
	domainerrors "koostory/internal/domain/errors"
	"koostory/internal/domain/service"
	mockSvc "koostory/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEmailService_DirectSend(t *testing.T) {
	sender := mockSvc.NewMockEmailSender(t)
	svc := &emailService{sender: sender, logger: discardLogger()}
	ctx := context.Background()
	msg := &entity.EmailMessage{To: "a@example.com", Subject: "Hi", TextBody: "body"}

	sender.EXPECT().Send(ctx, msg).Return(&entity.EmailReceipt{ID: "pm-1"}, nil)

	receipt, err := svc.Send(ctx, msg)
	require.NoError(t, err)
	assert.Equal(t, "pm-1", receipt.ID)
	assert.False(t, receipt.Queued)
}

func TestEmailService_ValidatesMessage(t *testing.T) {
	svc := &emailService{logger: discardLogger()}

	_, err := svc.Send(context.Background(), &entity.EmailMessage{Subject: "Hi", TextBody: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.Send(context.Background(), &entity.EmailMessage{To: "a@example.com", Subject: "Hi"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestEmailService_ProviderFailure(t *testing.T) {
	sender := mockSvc.NewMockEmailSender(t)
	svc := &emailService{sender: sender, logger: discardLogger()}
	ctx := context.Background()

	sender.EXPECT().Send(ctx, mock.Anything).Return(nil, errors.New("boom"))

	_, err := svc.Send(ctx, &entity.EmailMessage{To: "a@example.com", Subject: "Hi", HTMLBody: "<p>x</p>"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailSendFailed)
}

func TestEmailService_QueuedSend(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := &emailService{publisher: publisher, queued: true, logger: discardLogger()}
	ctx := deliverycontext.WithRequestID(context.Background(), "req-9")

	var published *service.EmailEvent
	publisher.EXPECT().PublishEmailEvent(ctx, mock.AnythingOfType("*service.EmailEvent")).
		Run(func(_ context.Context, e *service.EmailEvent) { published = e }).
		Return(nil)

	receipt, err := svc.Send(ctx, &entity.EmailMessage{To: "a@example.com", Subject: "Hi", TextBody: "x", Tag: "contact"})
	require.NoError(t, err)

	assert.True(t, receipt.Queued)
	assert.Equal(t, published.MessageID, receipt.ID)
	assert.Equal(t, "req-9", published.RequestID)
	assert.Equal(t, "contact", published.Tag)
}

func TestEmailService_SendTest(t *testing.T) {
	t.Run("no recipient", func(t *testing.T) {
		svc := &emailService{logger: discardLogger()}

		_, err := svc.SendTest(context.Background())
		assert.ErrorIs(t, err, domainerrors.ErrEmailRecipientMissing)
	})

	t.Run("sends fixed message", func(t *testing.T) {
		sender := mockSvc.NewMockEmailSender(t)
		svc := &emailService{sender: sender, testRecipient: "ops@example.com", logger: discardLogger()}
		ctx := context.Background()

		sender.EXPECT().Send(ctx, mock.MatchedBy(func(m *entity.EmailMessage) bool {
			return m.To == "ops@example.com" && m.Subject == testEmailSubject && m.HTMLBody != ""
		})).Return(&entity.EmailReceipt{ID: "pm-2"}, nil)

		receipt, err := svc.SendTest(ctx)
		require.NoError(t, err)
		assert.Equal(t, "pm-2", receipt.ID)
	})
}
