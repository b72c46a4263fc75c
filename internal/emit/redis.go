package emit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tonyroud/replicheck/internal/core/domain"
)

// RedisConfig holds Redis connection settings for the stream sink. An empty
// URL disables the sink.
type RedisConfig struct {
	URL      string `yaml:"url"`
	Password string `yaml:"password"`
	Stream   string `yaml:"stream"`
}

// RedisStream publishes each check result to a Redis stream for downstream
// alerting pipelines.
type RedisStream struct {
	rdb    *redis.Client
	stream string
}

// NewRedisStream connects to Redis and verifies the connection.
func NewRedisStream(cfg RedisConfig) (*RedisStream, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStream{rdb: rdb, stream: cfg.Stream}, nil
}

func (r *RedisStream) Emit(ctx context.Context, report domain.Report) error {
	for _, res := range report.Results {
		err := r.rdb.XAdd(ctx, &redis.XAddArgs{
			Stream: r.stream,
			Values: map[string]any{
				"run_id":     report.RunID.String(),
				"node":       report.Node,
				"status":     int(res.Status),
				"message":    res.Message,
				"check_name": res.CheckName,
			},
		}).Err()
		if err != nil {
			return fmt.Errorf("xadd failed: %w", err)
		}
	}
	return nil
}

// Close closes the Redis connection.
func (r *RedisStream) Close() error {
	return r.rdb.Close()
}
