// Package handler contains the HTTP handlers for the site.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/delivery/http/sessioncookie"
	"koostory/internal/delivery/http/view"
	domainerrors "koostory/internal/domain/errors"
	"koostory/internal/errors"
	"koostory/internal/usecase"
	"koostory/internal/util"

	"github.com/labstack/echo/v4"
)

const defaultAfterLogin = "/admin"

// AuthHandler serves the login, registration and logout pages.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	codec  *sessioncookie.Codec
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, codec *sessioncookie.Codec, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		codec:  codec,
		logger: logger,
	}
}

// LoginPage shows the login form. Signed-in visitors are sent on.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	target := util.SafeRedirect(c.QueryParam("redirect"), defaultAfterLogin)
	if deliverycontext.GetUser(c) != nil {
		return c.Redirect(http.StatusFound, target)
	}

	page := view.NewPage(c, "", nil)
	page.Title = page.T("auth.loginTitle")
	page.Form["redirect"] = util.SafeRedirect(c.QueryParam("redirect"), "")

	return c.Render(http.StatusOK, view.PageLogin, page)
}

// Login checks the submitted credentials and starts a session.
func (h *AuthHandler) Login(c echo.Context) error {
	input := &usecase.LoginInput{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}
	redirect := c.QueryParam("redirect")

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return h.formError(c, view.PageLogin, "auth.loginTitle", err, map[string]string{
			"email":    input.Email,
			"redirect": util.SafeRedirect(redirect, ""),
		})
	}

	c.SetCookie(h.codec.Encode(output.Session.ID, output.Session.ExpiresAt))

	return c.Redirect(http.StatusFound, util.SafeRedirect(redirect, defaultAfterLogin))
}

// RegisterPage shows the registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	if deliverycontext.GetUser(c) != nil {
		return c.Redirect(http.StatusFound, defaultAfterLogin)
	}

	page := view.NewPage(c, "", nil)
	page.Title = page.T("auth.registerTitle")

	return c.Render(http.StatusOK, view.PageRegister, page)
}

// Register creates the account, signs it in and opens the admin area.
func (h *AuthHandler) Register(c echo.Context) error {
	input := &usecase.RegisterInput{
		Email:           c.FormValue("email"),
		Password:        c.FormValue("password"),
		ConfirmPassword: c.FormValue("confirmPassword"),
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return h.formError(c, view.PageRegister, "auth.registerTitle", err, map[string]string{
			"email": input.Email,
		})
	}

	c.SetCookie(h.codec.Encode(output.Session.ID, output.Session.ExpiresAt))

	return c.Redirect(http.StatusFound, defaultAfterLogin)
}

// Logout ends the current session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if session := deliverycontext.GetSession(c); session != nil {
		if err := h.uc.Logout(c.Request().Context(), session.ID); err != nil {
			return errors.Wrap(err, "logout")
		}
	}

	c.SetCookie(h.codec.Blank())

	return c.Redirect(http.StatusFound, "/")
}

// formError re-renders a form with the message of a client error. Server errors go
// to the error boundary.
func (h *AuthHandler) formError(c echo.Context, name, titleKey string, err error, form map[string]string) error {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok || appErr.HTTPCode() >= http.StatusInternalServerError {
		return errors.WithStack(err)
	}

	page := view.NewPage(c, "", nil)
	page.Title = page.T(titleKey)
	page.Error = appErr.Message()
	for k, v := range form {
		page.Form[k] = v
	}

	return c.Render(appErr.HTTPCode(), name, page)
}
