// Package context carries per-request values (request id, logger, signed-in user,
// display language) between the middleware chain, handlers and services.
package context

import (
	"context"
	"log/slog"

	"koostory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyUser is the key for the signed-in user, nil when anonymous.
	KeyUser ContextKey = "user"

	// KeySession is the key for the validated session, nil when anonymous.
	KeySession ContextKey = "session"

	// KeyLocale is the key for the resolved display language.
	KeyLocale ContextKey = "locale"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// Localizer renders UI strings in one language.
type Localizer interface {
	Language() entity.Language
	T(key string, pairs ...string) string
}

// Locale is the language picked for the current request.
type Locale struct {
	Language entity.Language
	// FromPath is true when the first path segment is a supported language.
	FromPath  bool
	Localizer Localizer
}

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID, or "" when there is none.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when none was attached.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetAuth stores the validation result on both the echo context and the request context.
// Passing nils records an anonymous request.
func SetAuth(c echo.Context, session *entity.Session, user *entity.User) {
	c.Set(string(KeySession), session)
	c.Set(string(KeyUser), user)

	ctx := context.WithValue(c.Request().Context(), KeySession, session)
	ctx = context.WithValue(ctx, KeyUser, user)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetUser returns the signed-in user, or nil.
func GetUser(c echo.Context) *entity.User {
	user, _ := c.Get(string(KeyUser)).(*entity.User)

	return user
}

// GetSession returns the validated session, or nil.
func GetSession(c echo.Context) *entity.Session {
	session, _ := c.Get(string(KeySession)).(*entity.Session)

	return session
}

// UserFromContext returns the signed-in user stored by SetAuth, or nil.
func UserFromContext(ctx context.Context) *entity.User {
	user, _ := ctx.Value(KeyUser).(*entity.User)

	return user
}

// SetLocale stores the resolved language for handlers and templates.
func SetLocale(c echo.Context, locale *Locale) {
	c.Set(string(KeyLocale), locale)
	c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), KeyLocale, locale)))
}

// GetLocale returns the resolved language, or nil on routes without locale resolution.
func GetLocale(c echo.Context) *Locale {
	locale, _ := c.Get(string(KeyLocale)).(*Locale)

	return locale
}

// LocaleFromContext returns the resolved language stored by SetLocale, or nil.
func LocaleFromContext(ctx context.Context) *Locale {
	locale, _ := ctx.Value(KeyLocale).(*Locale)

	return locale
}
