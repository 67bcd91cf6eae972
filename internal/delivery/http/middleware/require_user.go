package middleware

import (
	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// RequireUser answers 401 JSON when no user is signed in. It relies on
// SessionMiddleware having run first.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetUser(c) == nil {
			return response.Unauthorized(c)
		}

		return next(c)
	}
}
