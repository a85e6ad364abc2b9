package main

import (
	"context"
	"log/slog"
	"os"

	"yap/config"
	"yap/internal/delivery"
	"yap/internal/delivery/http"
	"yap/internal/delivery/http/middleware"
	"yap/internal/delivery/http/router/handler"
	"yap/internal/infra/auth"
	"yap/internal/infra/auth/github"
	"yap/internal/infra/auth/google"
	logs "yap/internal/infra/log"
	"yap/internal/infra/persistence/postgres"
	"yap/internal/infra/pubsub"
	"yap/internal/infra/storage"
	"yap/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAccountRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewPostRepository,
			postgres.NewCommentRepository,
			postgres.NewFollowRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.New,
			pubsub.NewEventPublisher,
			fx.Annotate(
				google.NewProvider,
				fx.ResultTags(`group:"oauth_providers"`),
			),
			fx.Annotate(
				github.NewProvider,
				fx.ResultTags(`group:"oauth_providers"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewOAuthService,
			impl.NewPostService,
			impl.NewCommentService,
			impl.NewFollowService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewOAuthHandler,
			handler.NewPostHandler,
			handler.NewCommentHandler,
			handler.NewUserHandler,
			handler.NewDeviceHandler,
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
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
