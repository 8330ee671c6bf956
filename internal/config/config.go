package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	UIPlain = "plain"
	UITUI   = "tui"
)

type Config struct {
	Environment   string
	LogLevel      slog.Level
	UI            string
	RedisURL      string // Empty disables the casebook
	CasebookLimit int
}

// Load reads configuration from the environment, after merging in a .env
// file from the working directory when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	limit, err := getEnvInt("CASEBOOK_LIMIT", 50)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      ParseLogLevel(getEnv("LOG_LEVEL", "warn")),
		UI:            strings.ToLower(getEnv("DETECTIVE_UI", UIPlain)),
		RedisURL:      getEnv("REDIS_URL", ""),
		CasebookLimit: limit,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.UI {
	case UIPlain, UITUI:
	default:
		return fmt.Errorf("unknown ui %q (want %q or %q)", c.UI, UIPlain, UITUI)
	}
	if c.CasebookLimit < 1 {
		return fmt.Errorf("casebook limit must be positive, got %d", c.CasebookLimit)
	}
	return nil
}

// CasebookEnabled reports whether closed cases should be archived.
func (c *Config) CasebookEnabled() bool {
	return c.RedisURL != ""
}

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a whole number", key, value)
	}
	return n, nil
}
