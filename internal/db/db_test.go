package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"site-uptime-backend/config"
	"site-uptime-backend/internal/logger"
)

func TestInit_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          filepath.Join(t.TempDir(), "monitor.db"),
		MaxOpenConns: 1,
		AutoMigrate:  true,
	}

	gormDB, err := Init(cfg, logger.Nop())
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	for _, table := range []string{"site_samples", "business_hours", "site_timezones", "report_jobs"} {
		assert.True(t, gormDB.Migrator().HasTable(table), table)
	}
}

func TestInit_UnknownDriver(t *testing.T) {
	_, err := Init(&config.DatabaseConfig{Driver: "oracle", DSN: "x"}, logger.Nop())
	assert.ErrorContains(t, err, "unsupported database driver")
}
