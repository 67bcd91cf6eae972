// Package response writes the JSON bodies of the /api routes.
package response

import (
	"net/http"

	deliverycontext "koostory/internal/delivery/context"
	domainerrors "koostory/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success is the envelope of admin and email API successes. Extra fields are
// merged in by the handlers through the typed bodies below.
type Success struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// PostBody answers admin blog writes.
type PostBody struct {
	Success
	Post any `json:"post"`
}

// EmailBody answers email proxy sends.
type EmailBody struct {
	Success
	ID     string `json:"id"`
	Queued bool   `json:"queued,omitempty"`
}

// OK writes {"success":true}.
func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, Success{Success: true})
}

// Post writes {"success":true,"post":...}.
func Post(c echo.Context, status int, post any) error {
	return c.JSON(status, PostBody{Success: Success{Success: true}, Post: post})
}

// Email writes the email proxy success body.
func Email(c echo.Context, message, id string, queued bool) error {
	return c.JSON(http.StatusOK, EmailBody{
		Success: Success{Success: true, Message: message},
		ID:      id,
		Queued:  queued,
	})
}

// Error writes a failure body with the request id attached.
func Error(c echo.Context, status int, errorCode, message string) error {
	return c.JSON(status, &domainerrors.ErrorResponse{
		Error:     message,
		Code:      errorCode,
		RequestID: deliverycontext.GetRequestIDFromContext(c.Request().Context()),
	})
}

// AppError writes the failure body of an application error.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return c.JSON(appErr.HTTPCode(),
		domainerrors.NewErrorResponse(appErr, deliverycontext.GetRequestIDFromContext(c.Request().Context())))
}

// Unauthorized 401 error
func Unauthorized(c echo.Context) error {
	return Error(c, http.StatusUnauthorized, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message)
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}

// InternalServerError 500 error with the generic message only
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}
