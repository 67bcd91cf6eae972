// Package middleware holds the site's request pipeline: session validation and the
// route guard, locale resolution, the API auth check and the error boundary.
package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/delivery/http/policy"
	"koostory/internal/delivery/http/sessioncookie"
	"koostory/internal/errors"
	"koostory/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionMiddleware validates the session cookie, keeps the client cookie in step
// with the stored session and applies the route guard.
type SessionMiddleware struct {
	codec    *sessioncookie.Codec
	sessions usecase.SessionUsecase
	guard    policy.Guard
	logger   *slog.Logger
}

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	Codec    *sessioncookie.Codec
	Sessions usecase.SessionUsecase
	Guard    policy.Guard
	Logger   *slog.Logger
}

// NewSessionMiddleware creates the session middleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		codec:    params.Codec,
		sessions: params.Sessions,
		guard:    params.Guard,
		logger:   params.Logger,
	}
}

// Handle runs for every request. Store failures are returned to the error boundary
// untouched; redirects and not-found decisions are answered here.
func (m *SessionMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if policy.IsDevToolsProbe(req.URL.Path) {
			return c.NoContent(http.StatusOK)
		}

		sessionID, ok := m.codec.Read(req)
		out, err := m.sessions.Validate(req.Context(), sessionID)
		if err != nil {
			return errors.Wrap(err, "validate session")
		}

		switch {
		case out.Cookie == usecase.CookieRefresh && out.Session != nil:
			c.SetCookie(m.codec.Encode(out.Session.ID, out.Session.ExpiresAt))
		case out.Cookie == usecase.CookieClear, !ok && m.codec.Present(req):
			// Unknown, expired or undecodable cookies are replaced by a blank one
			c.SetCookie(m.codec.Blank())
		}

		deliverycontext.SetAuth(c, out.Session, out.User)
		if out.User != nil {
			reqLogger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				With(slog.String("user_id", out.User.ID))
			c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(c.Request().Context(), reqLogger)))
		}

		return respond(c, m.guard.Authorize(req.URL.Path, out.User), next)
	}
}

// respond turns a policy decision into the transport response.
func respond(c echo.Context, decision policy.Decision, next echo.HandlerFunc) error {
	switch decision.Kind {
	case policy.KindRedirect:
		return c.Redirect(http.StatusFound, decision.Location)
	case policy.KindNotFound:
		return echo.ErrNotFound
	default:
		return next(c)
	}
}
