package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jewelry-inventory-api/internal/model"

	"github.com/redis/go-redis/v9"
)

// Redis sink defaults
const (
	DefaultRedisKey        = "jewelry:activity"
	DefaultRedisMaxEntries = 1000
)

// RedisSinkConfig holds configuration for the Redis sink.
type RedisSinkConfig struct {
	Addr       string
	Password   string
	DB         int
	Key        string
	MaxEntries int64
}

// RedisSink pushes each report as JSON onto a capped Redis list, newest
// at the head.
type RedisSink struct {
	client     *redis.Client
	key        string
	maxEntries int64
}

// NewRedisSink connects to Redis and verifies the connection.
func NewRedisSink(cfg RedisSinkConfig) (*RedisSink, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return NewRedisSinkWithClient(client, cfg.Key, cfg.MaxEntries), nil
}

// NewRedisSinkWithClient wraps an existing client.
func NewRedisSinkWithClient(client *redis.Client, key string, maxEntries int64) *RedisSink {
	if key == "" {
		key = DefaultRedisKey
	}
	if maxEntries <= 0 {
		maxEntries = DefaultRedisMaxEntries
	}
	return &RedisSink{
		client:     client,
		key:        key,
		maxEntries: maxEntries,
	}
}

// Name implements Sink.
func (s *RedisSink) Name() string { return "redis" }

// Record implements Sink.
func (s *RedisSink) Record(ctx context.Context, report model.ActivityReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.LPush(ctx, s.key, data)
	pipe.LTrim(ctx, s.key, 0, s.maxEntries-1)
	_, err = pipe.Exec(ctx)
	return err
}

// Recent returns up to n reports from the list, newest first.
func (s *RedisSink) Recent(ctx context.Context, n int64) ([]model.ActivityReport, error) {
	if n <= 0 {
		n = s.maxEntries
	}

	raw, err := s.client.LRange(ctx, s.key, 0, n-1).Result()
	if err == redis.Nil {
		return []model.ActivityReport{}, nil
	}
	if err != nil {
		return nil, err
	}

	reports := make([]model.ActivityReport, 0, len(raw))
	for _, r := range raw {
		var report model.ActivityReport
		if err := json.Unmarshal([]byte(r), &report); err != nil {
			return nil, fmt.Errorf("failed to decode activity report: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// Count returns the number of reports in the list.
func (s *RedisSink) Count(ctx context.Context) (int64, error) {
	return s.client.LLen(ctx, s.key).Result()
}

// Close closes the Redis client.
func (s *RedisSink) Close() error {
	return s.client.Close()
}
