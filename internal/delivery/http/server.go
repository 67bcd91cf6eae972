// Package http runs the public site: pages, the admin CMS and the /api proxies.
package http

import (
	"context"
	"log/slog"
	"net"
	nethttp "net/http"
	"strconv"

	"koostory/config"
	"koostory/internal/delivery"
	httpmiddleware "koostory/internal/delivery/http/middleware"
	"koostory/internal/delivery/http/router"
	"koostory/internal/delivery/http/validator"
	"koostory/internal/delivery/http/view"
	"koostory/internal/delivery/middleware"
	"koostory/internal/domain/lifecycle"
	"koostory/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	Renderer     *view.Renderer
	ErrorHandler *httpmiddleware.ErrorHandler
	RouterParams router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = params.Config.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Config.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Config.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Config.HTTP.Timeouts.IdleTimeout

	// 1. Recover first so panics reach the error handler
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID before the logger so every line carries it
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Access log
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Config)
	echoServer.Use(loggerMiddleware.Handle)

	// 4. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(params.Config.HTTP.MaxRequestBodySize))

	echoServer.HTTPErrorHandler = params.ErrorHandler.HandleHTTPError
	echoServer.Validator = validator.New()
	echoServer.Renderer = params.Renderer

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting site HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down site HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
