package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hilexa-hlxa/SafeRoute/internal/alert"
	"github.com/hilexa-hlxa/SafeRoute/internal/api"
	"github.com/hilexa-hlxa/SafeRoute/internal/config"
	"github.com/hilexa-hlxa/SafeRoute/internal/geo"
	"github.com/hilexa-hlxa/SafeRoute/internal/hazard"
	"github.com/hilexa-hlxa/SafeRoute/internal/redis"
	"github.com/hilexa-hlxa/SafeRoute/internal/routing"
	"github.com/hilexa-hlxa/SafeRoute/internal/service"
	"github.com/hilexa-hlxa/SafeRoute/internal/storage/postgres"
	"github.com/hilexa-hlxa/SafeRoute/internal/workers"
	"github.com/hilexa-hlxa/SafeRoute/pkg/logger"
)

const archiverPoolSize = 4

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Store      *hazard.Store
	Dispatcher *alert.Dispatcher

	Archiver  *workers.Archiver
	Refresher *workers.GraphRefresher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	notifyQueue := redis.NewNotifyQueue(redisClient)
	hazardCache := redis.NewHazardCache(redisClient)

	logger.Info("Loading road graph", slog.String("path", cfg.Route.GraphPath))
	graph, err := routing.LoadFile(cfg.Route.GraphPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load road graph: %w", err)
	}
	graphs := routing.NewHolder(graph)

	archiver := workers.NewArchiver(logger, storage.Hazards, notifyQueue, hazardCache, archiverPoolSize)

	store := hazard.NewStore(logger, geo.NewSpatialIndex(), archiver, cfg.Hazard.ConfirmThreshold)
	if err := restoreStore(ctx, store, storage.Hazards, logger); err != nil {
		return nil, err
	}

	dispatcher := alert.NewDispatcher(logger, cfg.Alert.GeofenceM)

	planner := routing.NewPlanner(logger, graphs, store, routing.Config{
		MaxSnapM:             cfg.Route.MaxSnapM,
		DefaultAvoidRadiusM:  cfg.Route.DefaultAvoidRadiusM,
		PenaltyFactor:        cfg.Route.PenaltyFactor,
		AvgSpeedMS:           cfg.Route.AvgSpeedMS,
		MaxExpansions:        cfg.Route.MaxExpansions,
		FallbackOnDisconnect: cfg.Route.FallbackOnDisconnect,
	})

	publicSvc := service.NewPublicHazardService(store, hazardCache, logger, cfg.Hazard.DefaultNearbyRadius)
	adminSvc := service.NewAdminHazardService(store, storage.SOS, logger)
	routeSvc := service.NewRouteService(planner, logger)
	alertSvc := service.NewAlertService(dispatcher, storage.SOS, notifyQueue, logger)

	srv := service.NewService(publicSvc, adminSvc, routeSvc, alertSvc)

	httpServer := api.NewServer(cfg, logger, srv, dispatcher, graphs)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Store:      store,
		Dispatcher: dispatcher,
		Archiver:   archiver,
		Refresher:  workers.NewGraphRefresher(logger, graphs, cfg.Route.GraphPath, cfg.Route.GraphRefreshInterval),
	}, nil
}

// StartWorkers launches the background loops. They stop when ctx is done.
func (c *Components) StartWorkers(ctx context.Context) {
	go c.Archiver.Run(ctx)
	go c.Refresher.Run(ctx)
}

func restoreStore(ctx context.Context, store *hazard.Store, archive postgres.HazardArchiveRepository, logger *slog.Logger) error {
	hazards, err := archive.LoadHazards(ctx)
	if err != nil {
		return fmt.Errorf("failed to load hazards: %w", err)
	}
	votes, err := archive.LoadVotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load votes: %w", err)
	}

	store.Restore(hazards, votes)
	logger.Info("Hazard store restored",
		slog.Int("hazards", len(hazards)),
		slog.Int("votes", len(votes)),
	)
	return nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
