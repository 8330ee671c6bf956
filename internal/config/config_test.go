package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DETECTIVE_UI", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("CASEBOOK_LIMIT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, UIPlain, cfg.UI)
	assert.False(t, cfg.CasebookEnabled())
	assert.Equal(t, 50, cfg.CasebookLimit)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DETECTIVE_UI", "TUI")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CASEBOOK_LIMIT", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, UITUI, cfg.UI)
	assert.True(t, cfg.CasebookEnabled())
	assert.Equal(t, 10, cfg.CasebookLimit)
}

func TestLoad_InvalidUI(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DETECTIVE_UI", "gui")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidCasebookLimit(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DETECTIVE_UI", "")
	t.Setenv("CASEBOOK_LIMIT", "lots")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "CASEBOOK_LIMIT")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "plain", cfg: Config{UI: UIPlain, CasebookLimit: 1}},
		{name: "tui", cfg: Config{UI: UITUI, CasebookLimit: 5}},
		{name: "bad ui", cfg: Config{UI: "web", CasebookLimit: 5}, wantErr: true},
		{name: "zero limit", cfg: Config{UI: UIPlain}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}
