package handler

import (
	"log/slog"
	"net/http"

	"koostory/internal/delivery/http/response"
	domainerrors "koostory/internal/domain/errors"
	"koostory/internal/errors"
	"koostory/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProxyHandler exposes the third-party translation and email APIs to the browser
// without handing out their keys.
type ProxyHandler struct {
	translation usecase.TranslationUsecase
	email       usecase.EmailUsecase
	logger      *slog.Logger
}

// NewProxyHandler is the constructor for ProxyHandler, injected by Fx.
func NewProxyHandler(translation usecase.TranslationUsecase, email usecase.EmailUsecase, logger *slog.Logger) *ProxyHandler {
	return &ProxyHandler{
		translation: translation,
		email:       email,
		logger:      logger,
	}
}

// Translate handles POST /api/translate.
func (h *ProxyHandler) Translate(c echo.Context) error {
	// A missing provider is reported before the body is looked at
	if !h.translation.Enabled() {
		return response.AppError(c, domainerrors.ErrTranslationNotConfigured)
	}

	var input usecase.TranslateInput
	if err := c.Bind(&input); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidJSON)
	}

	result, err := h.translation.Translate(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, &translateResponse{
		TranslatedText:     result.TranslatedText,
		DetectedSourceLang: result.DetectedSourceLang,
	})
}

// SendEmail handles POST /api/send-email.
func (h *ProxyHandler) SendEmail(c echo.Context) error {
	var req sendEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidJSON)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	receipt, err := h.email.Send(c.Request().Context(), req.toMessage())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Email(c, "Email sent successfully", receipt.ID, receipt.Queued)
}

// TestEmail handles GET /api/test-email.
func (h *ProxyHandler) TestEmail(c echo.Context) error {
	receipt, err := h.email.SendTest(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Email(c, "Test email sent successfully", receipt.ID, receipt.Queued)
}
