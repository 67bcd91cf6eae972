package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"koostory/config"
	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/delivery/http/sessioncookie"
	"koostory/internal/delivery/http/view"
	"koostory/internal/domain/entity"
	domainerrors "koostory/internal/domain/errors"
	"koostory/internal/errors"
	"koostory/internal/infra/i18n"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ErrorHandler is the site's echo HTTPErrorHandler.
//
// Echo HTTP errors (404, 405, 413, ...) keep their status. Application errors render
// their own status and message. Anything else is logged and answered with an opaque
// 500. Paths under /api get JSON; every other path gets the error page.
type ErrorHandler struct {
	logger      *slog.Logger
	codec       *sessioncookie.Codec
	source      TranslatorSource
	defaultLang entity.Language
}

// ErrorHandlerParams holds dependencies for ErrorHandler, injected by Fx.
type ErrorHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Codec   *sessioncookie.Codec
	Catalog *i18n.Catalog
}

// NewErrorHandler creates the error boundary.
func NewErrorHandler(params ErrorHandlerParams) *ErrorHandler {
	return newErrorHandler(params.Logger, params.Codec, params.Catalog, entity.Language(params.Config.I18n.Default))
}

func newErrorHandler(logger *slog.Logger, codec *sessioncookie.Codec, source TranslatorSource, defaultLang entity.Language) *ErrorHandler {
	return &ErrorHandler{
		logger:      logger,
		codec:       codec,
		source:      source,
		defaultLang: defaultLang,
	}
}

// failure is what the client is told.
type failure struct {
	status  int
	code    string
	message string
	details string
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (h *ErrorHandler) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	f := h.classify(err, c)

	if c.Request().Method == http.MethodHead {
		h.write(c, c.NoContent(f.status))

		return
	}

	if isAPIPath(c.Request().URL.Path) {
		h.write(c, c.JSON(f.status, &domainerrors.ErrorResponse{
			Error:     f.message,
			Code:      f.code,
			Details:   f.details,
			RequestID: deliverycontext.GetRequestIDFromContext(c.Request().Context()),
		}))

		return
	}

	h.write(c, h.renderPage(c, f))
}

func (h *ErrorHandler) classify(err error, c echo.Context) failure {
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		f := failure{status: httpErr.Code, code: "HTTP_ERROR", message: http.StatusText(httpErr.Code)}
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			f.message = msg
		}
		if httpErr.Code == http.StatusNotFound {
			f.code = domainerrors.ErrNotFound.ErrorCode()
		}
		if httpErr.Code >= http.StatusInternalServerError {
			h.logUnexpected(err, c)
		}

		return f
	}

	// Database failures carry driver detail and are never shown
	if _, ok := errors.AsType[*domainerrors.DatabaseExecuteError](err); !ok {
		if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
			f := failure{status: appErr.HTTPCode(), code: appErr.ErrorCode(), message: appErr.Message()}
			if f.status < http.StatusInternalServerError {
				f.details = appErr.Details()
			} else {
				h.logUnexpected(err, c)
			}

			return f
		}
	}

	h.logUnexpected(err, c)

	return failure{
		status:  http.StatusInternalServerError,
		code:    domainerrors.ErrInternalError.ErrorCode(),
		message: domainerrors.ErrInternalError.Message(),
	}
}

// logUnexpected records server-side failures. The session identifier is never
// logged, only whether the request carried one.
func (h *ErrorHandler) logUnexpected(err error, c echo.Context) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), h.logger).Error("Unhandled error",
		slog.String("error", fmt.Sprintf("%+v", err)),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
		slog.String("request_id", deliverycontext.GetRequestIDFromContext(req.Context())),
		slog.Bool("session_present", h.codec.Present(req)),
	)
}

func (h *ErrorHandler) renderPage(c echo.Context, f failure) error {
	page := view.NewPage(c, "", nil)
	if page.Locale == nil {
		// Unmatched routes never reached the locale middleware
		if translator, err := h.source.Translator(c.Request().Context(), h.defaultLang); err == nil {
			page.Locale = &deliverycontext.Locale{Language: h.defaultLang, Localizer: translator}
		}
	}

	switch {
	case f.status == http.StatusNotFound:
		page.Content = page.T("errors.notFound")
		page.Error = f.message
	case f.status >= http.StatusInternalServerError:
		page.Content = page.T("errors.internal")
	default:
		page.Content = http.StatusText(f.status)
		page.Error = f.message
	}
	page.Title = http.StatusText(f.status)

	return c.Render(f.status, view.PageError, page)
}

func (h *ErrorHandler) write(c echo.Context, err error) {
	if err != nil {
		h.logger.Error("Failed to write error response",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
		)
	}
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}
