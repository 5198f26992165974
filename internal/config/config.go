package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

const defaultDataURL = "https://data.medicare.gov/resource/{}.json"

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Open-data API configuration.
	DataURL     string
	DataTimeout time.Duration
	CacheSize   int

	// Optional shared cache; empty RedisAddr disables it.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisTTL      time.Duration

	// Kafka lookup worker configuration.
	KafkaEnabled       bool
	KafkaBrokers       []string
	KafkaRequestTopic  string
	KafkaResponseTopic string
	KafkaGroupID       string
	BatchSize          int
	BatchFlushInterval time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	dataTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("FACILITY_DATA_TIMEOUT", "10s"))
	if err != nil || dataTimeout <= 0 {
		return nil, errors.New("invalid FACILITY_DATA_TIMEOUT")
	}

	cacheSize, err := parseCacheSize()
	if err != nil {
		return nil, err
	}

	redisDB, err := strconv.Atoi(sharedcfg.EnvOrDefault("FACILITY_REDIS_DB", "0"))
	if err != nil || redisDB < 0 {
		return nil, errors.New("invalid FACILITY_REDIS_DB")
	}

	redisTTL, err := time.ParseDuration(sharedcfg.EnvOrDefault("FACILITY_REDIS_TTL", "10m"))
	if err != nil || redisTTL <= 0 {
		return nil, errors.New("invalid FACILITY_REDIS_TTL")
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		DataURL:     sharedcfg.EnvOrDefault("FACILITY_DATA_URL", defaultDataURL),
		DataTimeout: dataTimeout,
		CacheSize:   cacheSize,

		RedisAddr:     os.Getenv("FACILITY_REDIS_ADDR"),
		RedisPassword: os.Getenv("FACILITY_REDIS_PASSWORD"),
		RedisDB:       redisDB,
		RedisTTL:      redisTTL,

		KafkaEnabled:       os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaRequestTopic:  sharedcfg.EnvOrDefault("KAFKA_REQUEST_TOPIC", "facility-lookup-requests"),
		KafkaResponseTopic: sharedcfg.EnvOrDefault("KAFKA_RESPONSE_TOPIC", "facility-lookup-responses"),
		KafkaGroupID:       sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "facility-resolver"),
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,
	}

	if strings.Count(cfg.DataURL, "{}") != 1 {
		return nil, errors.New("FACILITY_DATA_URL must contain exactly one {} placeholder for the dataset key")
	}
	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is true")
		}
		if cfg.KafkaRequestTopic == "" {
			return nil, errors.New("KAFKA_REQUEST_TOPIC is required when KAFKA_ENABLED is true")
		}
		if cfg.KafkaResponseTopic == "" {
			return nil, errors.New("KAFKA_RESPONSE_TOPIC is required when KAFKA_ENABLED is true")
		}
	}

	return cfg, nil
}

// parseCacheSize reads FACILITY_CACHE_SIZE. Zero disables the cache.
func parseCacheSize() (int, error) {
	s := os.Getenv("FACILITY_CACHE_SIZE")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.New("invalid FACILITY_CACHE_SIZE")
	}
	return n, nil
}
