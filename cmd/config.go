package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"mypresence/adapters/myredis"
	"mypresence/service"
)

type MyPresenceConfig struct {
	Redis      myredis.RedisConfig
	HTTPPort   int
	CORSOrigin string
	Store      service.PresenceStoreConfig
	ExpiryAge  time.Duration
	Interval   time.Duration
}

// LoadConfig loads configuration from environment variables on top of the defaults.
func LoadConfig() (*MyPresenceConfig, error) {
	config := &MyPresenceConfig{
		Redis: myredis.RedisConfig{
			Addr:          "redis://localhost:6379",
			RetryAttempts: 3,
			RetryDelay:    1500 * time.Millisecond,
		},
		HTTPPort: 3000,
		Store: service.PresenceStoreConfig{
			EntryPrefix: service.DefaultEntryPrefix,
			GroupsKey:   service.DefaultGroupsKey,
			FanOutLimit: service.DefaultFanOutLimit,
		},
		ExpiryAge: service.DefaultExpiryAge,
		Interval:  service.DefaultCleanupInterval,
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		config.Redis.Addr = v
	}

	if v := os.Getenv("REDIS_RETRY_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_RETRY_ATTEMPTS: %w", err)
		}
		if n < 0 {
			return nil, fmt.Errorf("REDIS_RETRY_ATTEMPTS must not be negative, got %d", n)
		}
		config.Redis.RetryAttempts = n
	}

	var err error
	if config.Redis.RetryDelay, err = millisFromEnv("REDIS_RETRY_DELAY_MS", config.Redis.RetryDelay); err != nil {
		return nil, err
	}

	if v := os.Getenv("SERVICE_PORT_HTTP"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVICE_PORT_HTTP: %w", err)
		}
		if port <= 0 || port > 65535 {
			return nil, fmt.Errorf("SERVICE_PORT_HTTP is out of range, got %d", port)
		}
		config.HTTPPort = port
	}

	config.CORSOrigin = os.Getenv("CORS_ORIGIN")

	if config.ExpiryAge, err = millisFromEnv("EXPIRY_AGE", config.ExpiryAge); err != nil {
		return nil, err
	}
	if config.Interval, err = millisFromEnv("CLEANUP_INTERVAL", config.Interval); err != nil {
		return nil, err
	}

	if v, ok := os.LookupEnv("ENTRY_PREFIX"); ok {
		if v == "" {
			return nil, fmt.Errorf("ENTRY_PREFIX must not be empty")
		}
		config.Store.EntryPrefix = v
	}

	if v, ok := os.LookupEnv("GROUPS_KEY"); ok {
		if v == "" {
			return nil, fmt.Errorf("GROUPS_KEY must not be empty")
		}
		config.Store.GroupsKey = v
	}

	if v := os.Getenv("FAN_OUT_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FAN_OUT_LIMIT: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("FAN_OUT_LIMIT must be positive, got %d", n)
		}
		config.Store.FanOutLimit = n
	}

	return config, nil
}

// millisFromEnv reads a positive number of milliseconds from name, or returns def when unset.
func millisFromEnv(name string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if ms <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, ms)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
