package logger

import (
	"io"
	"log/slog"

	"github.com/jwebster45206/detective-quest/internal/config"
)

// Setup configures the global slog logger based on environment. Logs go to w
// so they stay out of the game transcript.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// WithCaseID adds the case ID to logger context
func WithCaseID(logger *slog.Logger, caseID string) *slog.Logger {
	return logger.With("case_id", caseID)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
