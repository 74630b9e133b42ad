package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"site-uptime-backend/config"
	"site-uptime-backend/internal/aggregator"
	"site-uptime-backend/internal/api"
	"site-uptime-backend/internal/artifact"
	"site-uptime-backend/internal/db"
	"site-uptime-backend/internal/logger"
	"site-uptime-backend/internal/report"
	"site-uptime-backend/internal/store"
	"site-uptime-backend/internal/tzcache"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration from %s: %v\n", configPath, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", cfg.Log.Level, err)
		os.Exit(1)
	}
	log.Info().Str("path", configPath).Msg("configuration loaded")

	gormDB, err := db.Init(&cfg.Database, logger.Component(log, "db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore := store.NewGormStore(gormDB)

	artifacts, err := artifact.New(ctx, cfg.Artifact)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize artifact storage")
	}

	zones := tzcache.New(appStore, time.Duration(cfg.Cache.TimezoneTTLSeconds)*time.Second, logger.Component(log, "tzcache"))
	agg := aggregator.New(appStore, appStore,
		aggregator.WithChunkSize(cfg.Report.ChunkSize),
		aggregator.WithDefaultTimezone(cfg.Report.DefaultTimezone),
		aggregator.WithLogger(logger.Component(log, "aggregator")),
	)

	asOf := report.WallClockAsOf
	if t, ok, _ := cfg.Report.AsOfTime(); ok {
		asOf = report.FixedAsOf(t)
		log.Info().Time("as_of", t).Msg("reports use a fixed reference instant")
	}
	generator := report.NewGenerator(agg, zones, artifacts, asOf)

	reports := report.NewService(appStore, generator, artifacts, report.Options{
		Workers:   cfg.Report.Workers,
		QueueSize: cfg.Report.QueueSize,
	}, logger.Component(log, "report"))
	reports.Start(ctx)

	health := func(ctx context.Context) error {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
	router := api.NewRouter(cfg.Server, api.NewHandler(reports, health), logger.Component(log, "http"))
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server ListenAndServe")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutdown signal received, stopping services")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server Shutdown")
	}

	// Let running jobs reach a terminal status before the pool goes away.
	cancel()
	reports.Stop()

	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info().Msg("server gracefully stopped")
}
