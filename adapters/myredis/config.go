package myredis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
)

type RedisConfig struct {
	Addr          string
	RetryAttempts int
	RetryDelay    time.Duration
}

// NewRedisUniversalClient creates and configures instance of redis universal client.
func NewRedisUniversalClient(redisAddr string, options ...ConfigOption) (redis.UniversalClient, error) {
	redisOptions, err := redis.ParseURL(redisAddr)
	if err != nil {
		return nil, fmt.Errorf("cant parse redis url: %w", err)
	}
	for _, opt := range options {
		opt(redisOptions)
	}
	c := redis.NewUniversalClient(universalOptions(redisOptions))
	return c, nil
}

// ConfigOption configures the client.
type ConfigOption func(*redis.Options)

func universalOptions(options *redis.Options) *redis.UniversalOptions {
	return &redis.UniversalOptions{
		Addrs:              []string{options.Addr},
		DB:                 options.DB,
		Username:           options.Username,
		Password:           options.Password,
		ReadOnly:           false,
		MasterName:         "",
		WriteTimeout:       options.WriteTimeout,
		ReadTimeout:        options.ReadTimeout,
		DialTimeout:        options.DialTimeout,
		MaxRetries:         options.MaxRetries,
		PoolSize:           options.PoolSize,
		PoolTimeout:        options.PoolTimeout,
		MinIdleConns:       options.MinIdleConns,
		IdleTimeout:        options.IdleTimeout,
		IdleCheckFrequency: options.IdleCheckFrequency,
	}
}

// Connect pings redis until it answers. The first ping is followed by up to retryAttempts
// more, each after retryDelay. Returns the last ping error when every attempt failed or
// ctx is done while waiting.
func Connect(ctx context.Context, client redis.UniversalClient, retryAttempts int, retryDelay time.Duration, logger log.Logger) error {
	var err error
	for attempt := 0; ; attempt++ {
		if err = client.Ping(ctx).Err(); err == nil {
			return nil
		}
		left := retryAttempts - attempt
		if left <= 0 {
			return fmt.Errorf("redis is not reachable after %d attempts: %w", attempt+1, err)
		}
		level.Warn(logger).Log(
			"msg", "Redis connection failed, retrying",
			"err", err,
			"retry_in", retryDelay,
			"attempts_left", left,
		)
		select {
		case <-ctx.Done():
			return fmt.Errorf("redis connect interrupted: %w", err)
		case <-time.After(retryDelay):
		}
	}
}
