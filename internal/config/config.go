// Package config loads server settings from the environment and an optional
// .env file
package config

import (
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
)

// Store backends
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds every server setting
type Config struct {
	HTTPAddr        string        `env:"PWC_HTTP_ADDR" envDefault:":8080"`
	GRPCAddr        string        `env:"PWC_GRPC_ADDR" envDefault:":50051"`
	Store           string        `env:"PWC_STORE" envDefault:"sqlite"`
	SQLitePath      string        `env:"PWC_SQLITE_PATH" envDefault:"pwc.db"`
	RedisAddr       string        `env:"PWC_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPoolSize   int           `env:"PWC_REDIS_POOL_SIZE" envDefault:"10"`
	LogLevel        string        `env:"PWC_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"PWC_LOG_FORMAT" envDefault:"text"`
	OTelEndpoint    string        `env:"PWC_OTEL_ENDPOINT"`
	ShutdownTimeout time.Duration `env:"PWC_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load reads the given .env files (or ./.env when none are named), then
// parses the environment. Missing .env files are ignored; variables already
// set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to read env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("http_addr", c.HTTPAddr, vb)
	errors.ValidateRequired("grpc_addr", c.GRPCAddr, vb)
	errors.ValidateEnum("store", c.Store, []string{StoreSQLite, StoreRedis}, vb)
	switch c.Store {
	case StoreSQLite:
		errors.ValidateRequired("sqlite_path", c.SQLitePath, vb)
	case StoreRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
		if c.RedisPoolSize <= 0 {
			vb.InvalidField("redis_pool_size", "must be positive")
		}
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.InvalidField("log_level", "must be one of debug, info, warn, error")
	}
	errors.ValidateEnum("log_format", c.LogFormat, []string{LogFormatText, LogFormatJSON}, vb)
	if c.ShutdownTimeout <= 0 {
		vb.InvalidField("shutdown_timeout", "must be positive")
	}
	return vb.Build()
}

// Logger builds the slog logger described by the log settings
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if c.LogFormat == LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
