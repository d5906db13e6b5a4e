package main

import (
	"context"
	"log/slog"
	"os"

	"koerplan/config"
	"koerplan/internal/delivery"
	"koerplan/internal/delivery/http"
	"koerplan/internal/delivery/http/router/handler"
	"koerplan/internal/domain/service"
	"koerplan/internal/infra/alias"
	"koerplan/internal/infra/geocoding/nominatim"
	logs "koerplan/internal/infra/log"
	"koerplan/internal/infra/persistence/excel"
	"koerplan/internal/infra/routing/haversine"
	"koerplan/internal/infra/routing/osrm"
	"koerplan/internal/infra/snapshot"
	"koerplan/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			excel.NewLedgerRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newAliasResolver,
			nominatim.NewClient,
			newRouter,
			snapshot.NewCapturer,
		),
	)
}

// newAliasResolver loads the alias table from the configured file or URL
func newAliasResolver(cfg *config.Config, logger *slog.Logger) service.AliasResolver {
	return alias.NewResolver(alias.NewSourceLoader(cfg.Aliases.Source, nil), alias.DefaultAliases(), logger)
}

// newRouter picks the routing provider; haversine works offline
func newRouter(cfg *config.Config, logger *slog.Logger) service.Router {
	if cfg.Router.Provider == config.RouterProviderHaversine {
		logger.Info("Using straight-line routing", slog.Float64("speed_kmh", cfg.Router.DefaultSpeedKmh))

		return haversine.NewRouter(cfg)
	}

	return osrm.NewClient(cfg, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTripComposer,
			impl.NewLedgerService,
			impl.NewSessionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTripHandler,
			handler.NewLedgerHandler,
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
