package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mypresence/adapters/myprometheus"
	"mypresence/adapters/myredis"
	"mypresence/api"
	"mypresence/handlers"
	"mypresence/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting MyPresence service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"redis_addr", config.Redis.Addr,
		"expiry_age", config.ExpiryAge,
		"cleanup_interval", config.Interval,
		"entry_prefix", config.Store.EntryPrefix,
		"groups_key", config.Store.GroupsKey,
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var redisClient redis.UniversalClient
	{
		redisClient, err = myredis.NewRedisUniversalClient(config.Redis.Addr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}

		err = myredis.Connect(context.Background(), redisClient, config.Redis.RetryAttempts, config.Redis.RetryDelay, logger)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")
	}

	// Create presence store and expiry sweeper
	var httpServer handlers.ServerInterface
	var sweeper *service.ExpirySweeper
	{
		store := service.NewPresenceStore(
			myredis.NewKVStore(redisClient),
			service.NewTimeProvider(func() time.Time { return time.Now().UTC() }),
			config.Store,
			logger,
		)
		sweeper = service.NewExpirySweeper(store, config.ExpiryAge, config.Interval, myprometheus.NewSweepMetrics(reg, ""), logger)
		httpServer = handlers.NewHTTPServer(store, logger)
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)

		e.Use(myprometheus.NewHTTPMetricsMiddleware(reg, ""))
		e.Use(middleware.Recover())
		if config.CORSOrigin != "" {
			e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
				AllowOrigins:     []string{config.CORSOrigin},
				AllowCredentials: true,
			}))
		}
		validator, err := handlers.NewRequestValidator(api.Spec)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create request validator", "err", err)
			os.Exit(1)
		}
		e.Use(validator)

		handlers.RegisterHandlers(e, httpServer)
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	sweeper.Stop()

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}
	if err := redisClient.Close(); err != nil {
		level.Error(logger).Log("msg", "Error closing Redis client", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
