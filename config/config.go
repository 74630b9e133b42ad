package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Cache    CacheConfig    `yaml:"cache"`
	Report   ReportConfig   `yaml:"report"`
	Artifact ArtifactConfig `yaml:"artifact"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port" validate:"min=1,max=65535"`
	RequestIPHeader string  `yaml:"request_ip_header"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec" validate:"gt=0"`
	RateLimitBurst  int     `yaml:"rate_limit_burst" validate:"min=1"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds" validate:"min=0"`
}

// LogConfig holds the logger configuration.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver" validate:"oneof=postgres sqlite"`
	DSN                    string `yaml:"dsn" validate:"required"`
	MaxOpenConns           int    `yaml:"max_open_conns" validate:"min=0"`
	MaxIdleConns           int    `yaml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes" validate:"min=0"`
	AutoMigrate            bool   `yaml:"auto_migrate"`
}

// CacheConfig holds the timezone cache configuration. A zero TTL keeps entries until replaced.
type CacheConfig struct {
	TimezoneTTLSeconds int `yaml:"timezone_ttl_seconds" validate:"min=0"`
}

// ReportConfig controls report generation.
type ReportConfig struct {
	ChunkSize       int    `yaml:"chunk_size" validate:"min=1"`
	DefaultTimezone string `yaml:"default_timezone" validate:"required"`
	// AsOf pins the reference instant for every report (RFC3339). Empty means the
	// wall-clock time at which a job starts running.
	AsOf      string `yaml:"as_of" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Workers   int    `yaml:"workers" validate:"min=1"`
	QueueSize int    `yaml:"queue_size" validate:"min=1"`
}

// ArtifactConfig selects where generated CSV files are written.
type ArtifactConfig struct {
	Driver string   `yaml:"driver" validate:"oneof=local s3"`
	Dir    string   `yaml:"dir" validate:"required_if=Driver local"`
	S3     S3Config `yaml:"s3"`
}

// S3Config holds the S3-compatible object storage settings.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	UseSSL    bool   `yaml:"use_ssl"`
	Prefix    string `yaml:"prefix"`
}

// AsOfTime parses Report.AsOf. ok is false when no fixed instant is configured.
func (c ReportConfig) AsOfTime() (t time.Time, ok bool, err error) {
	if c.AsOf == "" {
		return time.Time{}, false, nil
	}
	t, err = time.Parse(time.RFC3339, c.AsOf)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid report.as_of %q: %w", c.AsOf, err)
	}
	return t.UTC(), true, nil
}

// Load reads the configuration from the given path, applies defaults and
// environment overrides, then validates the result. A .env file in the
// working directory, if any, is loaded into the environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, formatValidationError(err)
	}
	if _, _, err := cfg.Report.AsOfTime(); err != nil {
		return nil, err
	}
	if cfg.Artifact.Driver == "s3" && cfg.Artifact.S3.Bucket == "" {
		return nil, errors.New("config validation failed: artifact.s3.bucket is required for the s3 driver")
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds == 0 {
		cfg.Server.CacheTTLSeconds = 300
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.Report.ChunkSize <= 0 {
		cfg.Report.ChunkSize = 100
	}
	if cfg.Report.DefaultTimezone == "" {
		cfg.Report.DefaultTimezone = "America/Chicago"
	}
	if cfg.Report.Workers <= 0 {
		cfg.Report.Workers = 2
	}
	if cfg.Report.QueueSize <= 0 {
		cfg.Report.QueueSize = 64
	}
	if cfg.Artifact.Driver == "" {
		cfg.Artifact.Driver = "local"
	}
	if cfg.Artifact.Driver == "local" && cfg.Artifact.Dir == "" {
		cfg.Artifact.Dir = "./reports"
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("REPORT_AS_OF"); v != "" {
		cfg.Report.AsOf = v
	}
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config validation failed: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(msgs, "; "))
}
