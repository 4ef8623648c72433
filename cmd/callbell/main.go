package main

import (
	"context"
	"log/slog"
	"os"

	"callbell/config"
	"callbell/internal/delivery"
	"callbell/internal/delivery/api"
	"callbell/internal/delivery/api/middleware"
	"callbell/internal/delivery/api/router/handler"
	"callbell/internal/domain/service"
	"callbell/internal/infra/auth"
	logs "callbell/internal/infra/log"
	"callbell/internal/infra/metrics"
	"callbell/internal/infra/persistence/postgres"
	"callbell/internal/infra/pubsub"
	"callbell/internal/infra/push"
	"callbell/internal/infra/qrcode"
	"callbell/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCallRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newTokenService,
			qrcode.ProvideQRCodeService,
		),
		push.Module,
		pubsub.Module,
	)
}

// newTokenService builds the station key verifier. Without auth there is nothing
// to verify and no secret is required.
func newTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || !cfg.Auth.Enabled {
		return nil, nil
	}

	return auth.NewJWTService(cfg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeviceService,
			impl.NewDispatchService,
			impl.NewCallService,
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
			handler.NewDeviceHandler,
			handler.NewCallHandler,
			handler.NewTableQRHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
