package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"site-uptime-backend/config"
	"site-uptime-backend/internal/logger"
	"site-uptime-backend/internal/model"
)

// Init opens the configured database, applies pool settings and, when enabled, migrates the schema.
func Init(cfg *config.DatabaseConfig, log logger.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetimeMinutes > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
	}

	if cfg.AutoMigrate {
		log.Info().Str("driver", cfg.Driver).Msg("running database migrations")
		if err := Migrate(db); err != nil {
			return nil, err
		}
		if cfg.Driver == "postgres" {
			if err := applyPostgresDDL(db); err != nil {
				log.Warn().Err(err).Msg("failed to apply postgres DDL, continuing without it")
			}
		}
	}

	log.Info().Str("driver", cfg.Driver).Msg("database initialization complete")
	return db, nil
}

// Migrate creates or updates every table used by the service.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.SiteSample{},
		&model.BusinessHours{},
		&model.SiteTimezone{},
		&model.ReportJob{},
	); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	return nil
}

func dialectorFor(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres", "":
		return postgres.New(postgres.Config{
			DSN:                  cfg.DSN,
			PreferSimpleProtocol: true,
		}), nil
	case "sqlite":
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// applyPostgresDDL adds the descending index the chunked sample query relies on.
func applyPostgresDDL(db *gorm.DB) error {
	ddls := []string{
		"CREATE INDEX IF NOT EXISTS idx_site_samples_site_observed_desc ON site_samples (site_id, observed_at DESC);",
		"CREATE INDEX IF NOT EXISTS idx_business_hours_site_weekday ON business_hours (site_id, weekday);",
	}

	for _, ddl := range ddls {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("DDL failed on %q: %w", ddl, err)
		}
	}
	return nil
}
