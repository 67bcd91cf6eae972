// Package email implements outbound email senders.
package email

import (
	"log/slog"

	"koostory/config"
	"koostory/internal/domain/constants"
	"koostory/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SenderParams holds dependencies for EmailSender, injected by Fx
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEmailSender picks the provider configured under email.provider
func NewEmailSender(params SenderParams) (service.EmailSender, error) {
	cfg := params.Config.Email

	switch cfg.Provider {
	case constants.EmailProviderPostmark:
		if cfg.ServerToken == "" {
			return nil, errors.New("postmark server token is required")
		}
		if cfg.From == "" {
			return nil, errors.New("sender address is required")
		}
		params.Logger.Info("Using Postmark email sender")

		return NewPostmarkSender(cfg, params.Logger), nil

	case "", constants.EmailProviderLog:
		params.Logger.Info("Using log email sender, messages are not delivered")

		return NewLogSender(params.Logger), nil

	default:
		return nil, errors.Errorf("unknown email provider: %s", cfg.Provider)
	}
}
