package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"koostory/config"
	deliverycontext "koostory/internal/delivery/context"
	"koostory/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_ReusesHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesMalformedHeader(t *testing.T) {
	tests := map[string]string{
		"empty":    "",
		"spaces":   "has spaces",
		"too long": strings.Repeat("a", maxRequestIDLength+1),
	}

	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, header)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewRequestIDMiddleware(slog.Default()).Process(func(echo.Context) error { return nil })
			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEqual(t, header, got)
			assert.Len(t, got, 36)
		})
	}
}

func TestLoggerMiddleware_LogsWithRequestScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/cms?redirect=secret", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	chain := NewRequestIDMiddleware(logger).Process(
		NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
			deliverycontext.SetAuth(c, nil, &entity.User{ID: "user-1"})

			return c.NoContent(http.StatusNoContent)
		}),
	)
	require.NoError(t, chain(c))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "HTTP Request", line["msg"])
	assert.Equal(t, "/admin/cms", line["uri"])
	assert.Equal(t, "user-1", line["user_id"])
	assert.NotEmpty(t, line["request_id"])
	assert.NotContains(t, buf.String(), "secret")
}

func TestLoggerMiddleware_QuietWhenDebugOff(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := NewLoggerMiddleware(logger, &config.Config{}).Handle(func(echo.Context) error { return nil })
	require.NoError(t, handler(c))
	assert.Zero(t, buf.Len())
}
