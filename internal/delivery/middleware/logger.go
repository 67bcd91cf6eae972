package middleware

import (
	"log/slog"
	"strings"
	"time"

	"koostory/config"
	deliverycontext "koostory/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access line per request when debug logging is on
type LoggerMiddleware struct {
	logger    *slog.Logger
	debug     bool
	skipPaths []string
}

// NewLoggerMiddleware creates a new logger middleware. Health probes are never logged.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:    logger,
		debug:     config.Env.Debug,
		skipPaths: []string{"/health"},
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug || m.skipped(c.Request().URL.Path) {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) skipped(path string) bool {
	for _, p := range m.skipPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}

// logRequest logs through the request-scoped logger so request_id is already attached.
// Query strings are left out because they can carry redirect targets and emails.
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if user := deliverycontext.GetUser(c); user != nil {
		fields = append(fields, slog.String("user_id", user.ID))
	}
	if locale := deliverycontext.GetLocale(c); locale != nil {
		fields = append(fields, slog.String("lang", locale.Language.String()))
	}

	// The error handler runs after this middleware returns, so the status is still 200 here
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 || err != nil {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, logLevel, "HTTP Request", fields...)
}
