package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"site-uptime-backend/config"
	"site-uptime-backend/internal/db"
	"site-uptime-backend/internal/logger"
	"site-uptime-backend/internal/seed"
	"site-uptime-backend/internal/store"
)

func main() {
	var (
		configPath = flag.String("config", envOr("CONFIG_PATH", "./config/config.yaml"), "path to the yaml configuration")
		dir        = flag.String("dir", "./data", "directory holding the seed CSV files")
		samples    = flag.String("samples", "", "sample CSV, overrides -dir")
		hours      = flag.String("hours", "", "business hours CSV, overrides -dir")
		timezones  = flag.String("timezones", "", "timezone CSV, overrides -dir")
		batch      = flag.Int("batch", seed.DefaultBatchSize, "rows per insert")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration from %s: %v\n", *configPath, err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", cfg.Log.Level, err)
		os.Exit(1)
	}

	cfg.Database.AutoMigrate = true
	gormDB, err := db.Init(&cfg.Database, logger.Component(log, "db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	loader := seed.NewLoader(store.NewGormStore(gormDB), *batch, log)

	if *samples == "" && *hours == "" && *timezones == "" {
		if err := loader.LoadDir(ctx, *dir); err != nil {
			log.Fatal().Err(err).Msg("seed failed")
		}
		log.Info().Str("dir", *dir).Msg("seed complete")
		return
	}

	files := []struct {
		path string
		load func(context.Context, io.Reader) (seed.Stats, error)
	}{
		{*timezones, loader.LoadTimezones},
		{*hours, loader.LoadBusinessHours},
		{*samples, loader.LoadSamples},
	}
	for _, file := range files {
		if file.path == "" {
			continue
		}
		f, err := os.Open(file.path)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open seed file")
		}
		stats, err := file.load(ctx, f)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Str("file", file.path).Msg("seed failed")
		}
		log.Info().Str("file", file.path).Int("loaded", stats.Loaded).Int("skipped", stats.Skipped).Msg("seed file loaded")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
