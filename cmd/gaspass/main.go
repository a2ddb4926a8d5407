package main

import (
	"context"
	"log/slog"
	"os"

	"gaspass/config"
	"gaspass/internal/delivery"
	"gaspass/internal/delivery/http"
	"gaspass/internal/delivery/http/middleware"
	"gaspass/internal/delivery/http/router/handler"
	"gaspass/internal/infra/auth"
	"gaspass/internal/infra/auth/google"
	logs "gaspass/internal/infra/log"
	"gaspass/internal/infra/notify"
	"gaspass/internal/infra/persistence/postgres"
	"gaspass/internal/infra/storage"
	"gaspass/internal/usecase/impl"

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
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
		auth.NewBcryptHasher,
		auth.NewJWTService,
		google.NewVerifier,
		storage.New,
		notify.NewTelegramNotifier,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewBlogRepository,
			postgres.NewTaxonomyRepository,
			postgres.NewReviewRepository,
			postgres.NewStatsRepository,
			postgres.NewAuditRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewRecoveryService,
			impl.NewProductService,
			impl.NewBlogService,
			impl.NewReviewService,
			impl.NewTaxonomyService,
			impl.NewUserAdminService,
			impl.NewStatsService,
			impl.NewAuditService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewAuditMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPasswordHandler,
			handler.NewProductHandler,
			handler.NewBlogHandler,
			handler.NewReviewHandler,
			handler.NewTaxonomyHandler,
			handler.NewUserHandler,
			handler.NewStatsHandler,
			handler.NewAuditHandler,
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
