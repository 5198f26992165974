package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/redis/go-redis/v9"

	httpadapter "github.com/couchcryptid/facility-resolver/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/facility-resolver/internal/adapter/kafka"
	"github.com/couchcryptid/facility-resolver/internal/adapter/socrata"
	"github.com/couchcryptid/facility-resolver/internal/config"
	"github.com/couchcryptid/facility-resolver/internal/domain"
	"github.com/couchcryptid/facility-resolver/internal/observability"
	"github.com/couchcryptid/facility-resolver/internal/pipeline"
	"github.com/couchcryptid/facility-resolver/internal/resolver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	var finder domain.Finder = socrata.NewClient(cfg.DataURL, cfg.DataTimeout, metrics, logger)
	checks := readinessChecks{}

	// Shared Redis cache (FACILITY_REDIS_ADDR), then per-process LRU (FACILITY_CACHE_SIZE > 0).
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		shared := socrata.NewRedisFinder(finder, redisClient, cfg.RedisTTL, metrics, logger)
		finder = shared
		checks = append(checks, shared)
		metrics.CacheEnabled.Set(1)
		logger.Info("redis cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.RedisTTL)
	}
	if cfg.CacheSize > 0 {
		cached, err := socrata.NewCachedFinder(finder, cfg.CacheSize, metrics)
		if err != nil {
			logger.Error("failed to create cache", "error", err)
			os.Exit(1)
		}
		finder = cached
		metrics.CacheEnabled.Set(1)
		logger.Info("lru cache enabled", "cache_size", cfg.CacheSize)
	} else {
		logger.Info("lru cache disabled")
	}

	svc := resolver.New(finder, logger, metrics)
	checks = append(checks, svc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Kafka lookup worker (feature-flagged via KAFKA_ENABLED).
	var reader *kafkaadapter.Reader
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		reader = kafkaadapter.NewReader(cfg, logger)
		writer = kafkaadapter.NewWriter(cfg, logger)
		p := pipeline.New(reader, pipeline.NewTransformer(svc, logger), writer, logger, metrics, cfg.BatchSize)
		checks = append(checks, p)

		go func() {
			if err := p.Run(ctx); err != nil {
				logger.Error("pipeline error", "error", err)
			}
		}()
		logger.Info("kafka lookup worker enabled",
			"request_topic", cfg.KafkaRequestTopic,
			"response_topic", cfg.KafkaResponseTopic,
		)
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, checks, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if reader != nil {
		if err := reader.Close(); err != nil {
			logger.Error("kafka reader close error", "error", err)
		}
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

// readinessChecks is ready when every check passes.
type readinessChecks []sharedobs.ReadinessChecker

func (c readinessChecks) CheckReadiness(ctx context.Context) error {
	for _, check := range c {
		if err := check.CheckReadiness(ctx); err != nil {
			return err
		}
	}
	return nil
}
