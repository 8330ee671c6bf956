package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/detective-quest/internal/logger"
	"github.com/jwebster45206/detective-quest/pkg/verdict"
)

const casebookKey = "casebook:reports"

var ErrCasebookDisabled = errors.New("casebook is not configured")

// Casebook archives closed cases.
type Casebook interface {
	Archive(ctx context.Context, report verdict.Report) error
	Recent(ctx context.Context, limit int) ([]verdict.Report, error)
	Close() error
}

// RedisCasebook keeps the newest reports in a capped Redis list.
type RedisCasebook struct {
	client *redis.Client
	logger *slog.Logger
	limit  int
}

// Ensure RedisCasebook implements Casebook interface
var _ Casebook = (*RedisCasebook)(nil)

// NewRedisCasebook connects to redisURL, which may be a redis:// URL or a
// bare host:port, and checks the connection.
func NewRedisCasebook(ctx context.Context, redisURL string, limit int, logger *slog.Logger) (*RedisCasebook, error) {
	if redisURL == "" {
		return nil, ErrCasebookDisabled
	}

	var opts *redis.Options
	if strings.Contains(redisURL, "://") {
		var err error
		opts, err = redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis URL: %w", err)
		}
	} else {
		opts = &redis.Options{Addr: redisURL}
	}

	cb := &RedisCasebook{
		client: redis.NewClient(opts),
		logger: logger,
		limit:  limit,
	}
	if err := cb.Ping(ctx); err != nil {
		_ = cb.client.Close()
		return nil, err
	}

	logger.Info("Connected to Redis for casebook", "addr", opts.Addr)
	return cb, nil
}

func (r *RedisCasebook) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Archive pushes report onto the head of the list and trims the tail.
func (r *RedisCasebook) Archive(ctx context.Context, report verdict.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, casebookKey, data)
		pipe.LTrim(ctx, casebookKey, 0, int64(r.limit-1))
		return nil
	})
	if err != nil {
		logger.WithError(r.logger, err).Error("Failed to archive case", "case_id", report.CaseID)
		return fmt.Errorf("failed to archive case: %w", err)
	}

	r.logger.Debug("Case archived", "case_id", report.CaseID, "outcome", report.Outcome)
	return nil
}

// Recent returns up to limit reports, newest first. A non-positive limit
// returns everything kept.
func (r *RedisCasebook) Recent(ctx context.Context, limit int) ([]verdict.Report, error) {
	end := int64(limit - 1)
	if limit <= 0 {
		end = -1
	}

	raw, err := r.client.LRange(ctx, casebookKey, 0, end).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to read casebook: %w", err)
	}

	reports := make([]verdict.Report, 0, len(raw))
	for _, item := range raw {
		var report verdict.Report
		if err := json.Unmarshal([]byte(item), &report); err != nil {
			logger.WithError(r.logger, err).Warn("Skipping unreadable casebook entry")
			continue
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (r *RedisCasebook) Close() error {
	if err := r.client.Close(); err != nil {
		logger.WithError(r.logger, err).Error("Failed to close Redis connection")
		return err
	}
	r.logger.Debug("Redis connection closed")
	return nil
}
