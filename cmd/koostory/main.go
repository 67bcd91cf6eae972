package main

import (
	"context"
	"log/slog"
	"os"

	"koostory/config"
	"koostory/internal/delivery"
	"koostory/internal/delivery/http"
	"koostory/internal/delivery/http/middleware"
	"koostory/internal/delivery/http/policy"
	"koostory/internal/delivery/http/router/handler"
	"koostory/internal/delivery/http/sessioncookie"
	"koostory/internal/delivery/http/view"
	"koostory/internal/delivery/janitor"
	"koostory/internal/infra/auth"
	"koostory/internal/infra/email"
	"koostory/internal/infra/i18n"
	logs "koostory/internal/infra/log"
	"koostory/internal/infra/persistence/postgres"
	"koostory/internal/infra/pubsub"
	"koostory/internal/infra/translate"
	"koostory/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		i18n.NewBucket,
		i18n.NewBlobLoader,
		i18n.NewCatalog,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSessionRepository,
			postgres.NewPostRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			email.NewEmailSender,
			pubsub.NewEventPublisher,
			translate.NewTranslator,
			translate.NewTranslationCache,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewUserService,
			impl.NewBlogService,
			impl.NewSitemapService,
			impl.NewTranslationService,
			impl.NewEmailService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			sessioncookie.NewFromConfig,
			policy.NewGuard,
			policy.NewLocaleResolver,
			middleware.NewSessionMiddleware,
			middleware.NewLocaleMiddleware,
			middleware.NewErrorHandler,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			view.New,
			handler.NewAuthHandler,
			handler.NewPageHandler,
			handler.NewBlogHandler,
			handler.NewAdminHandler,
			handler.NewProxyHandler,
			handler.NewSitemapHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				janitor.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
