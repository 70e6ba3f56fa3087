package main

import (
	"context"
	"errors"

	"go.uber.org/zap"

	dashboardHttp "chain-usage-dashboard/internal/dashboard/adapters/http/fiber"
	dashboardRepoPg "chain-usage-dashboard/internal/dashboard/adapters/postgres"
	dashboardCache "chain-usage-dashboard/internal/dashboard/adapters/redis"
	"chain-usage-dashboard/internal/dashboard/core/ports"
	"chain-usage-dashboard/internal/dashboard/core/slider"
	dashboardUsecase "chain-usage-dashboard/internal/dashboard/core/usecase"

	factsHttp "chain-usage-dashboard/internal/facts/adapters/http/fiber"
	factsRepoPg "chain-usage-dashboard/internal/facts/adapters/postgres"
	factsUsecase "chain-usage-dashboard/internal/facts/core/usecase"

	"chain-usage-dashboard/internal/observability"
	"chain-usage-dashboard/internal/server"
)

func serve(ctx context.Context, configPath string) error {
	cfg, log, db, err := bootstrap(ctx, configPath)
	if err != nil {
		return err
	}
	defer db.Close()
	defer func() { _ = log.Sync() }()

	metrics := observability.New()

	// Repositories
	var reader ports.FactReaderPort = dashboardRepoPg.NewFactReader(dashboardRepoPg.NewSQLDB(db))
	factRepository := factsRepoPg.NewFactRepository(factsRepoPg.NewSQLDB(db))

	if cfg.Redis.Enabled() {
		client, err := dashboardCache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer client.Close()

		reader = dashboardCache.NewCachedFactReader(reader, dashboardCache.NewRedisCache(client), cfg.Redis.TTL, log, metrics)
		log.Info("row cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Redis.TTL))
	}

	// Usecases
	mapper := slider.NewMapper(cfg.Slider.EpochTime(), cfg.Slider.MaxDays)

	getDashboardUC := dashboardUsecase.NewGetDashboardUseCase(reader, dashboardUsecase.Options{
		HaltOnSourceError: cfg.Engine.HaltOnSourceError,
		DefaultMetric:     cfg.Engine.DefaultMetric,
		Mapper:            &mapper,
		SliderMinGap:      cfg.Slider.MinGap,
		Logger:            log,
		Metrics:           metrics,
	})
	latestWins := dashboardUsecase.NewLatestWins(getDashboardUC, cfg.Engine.MaxSessions, metrics)
	controlsUC := dashboardUsecase.NewControlsUseCase(mapper, cfg.Slider.MinGap, cfg.Slider.Step)
	storeFactUC := factsUsecase.NewStoreFactUseCase(factRepository, metrics)

	// HTTP (Fiber) app + handlers
	app := server.NewApp(log, metrics,
		factsHttp.NewFactHandler(storeFactUC, log),
		dashboardHttp.NewDashboardHandler(latestWins, controlsUC, log),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.HTTP.Addr)
	}()

	log.Info("server started", zap.String("addr", cfg.HTTP.Addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Error("fiber shutdown error", zap.Error(err))
	}

	log.Info("server exiting")
	return nil
}
