package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://data.medicare.gov/resource/{}.json", cfg.DataURL)
	assert.Equal(t, 10*time.Second, cfg.DataTimeout)
	assert.Zero(t, cfg.CacheSize)
	assert.Empty(t, cfg.RedisAddr)
	assert.Zero(t, cfg.RedisDB)
	assert.Equal(t, 10*time.Minute, cfg.RedisTTL)
	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "facility-lookup-requests", cfg.KafkaRequestTopic)
	assert.Equal(t, "facility-lookup-responses", cfg.KafkaResponseTopic)
	assert.Equal(t, "facility-resolver", cfg.KafkaGroupID)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.BatchFlushInterval)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("FACILITY_DATA_URL", "http://localhost:8081/resource/{}.json")
	t.Setenv("FACILITY_DATA_TIMEOUT", "3s")
	t.Setenv("FACILITY_CACHE_SIZE", "250")
	t.Setenv("FACILITY_REDIS_ADDR", "redis:6379")
	t.Setenv("FACILITY_REDIS_PASSWORD", "secret")
	t.Setenv("FACILITY_REDIS_DB", "2")
	t.Setenv("FACILITY_REDIS_TTL", "1h")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_REQUEST_TOPIC", "req")
	t.Setenv("KAFKA_RESPONSE_TOPIC", "resp")
	t.Setenv("KAFKA_GROUP_ID", "custom-group")
	t.Setenv("BATCH_SIZE", "100")
	t.Setenv("BATCH_FLUSH_INTERVAL", "1s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "http://localhost:8081/resource/{}.json", cfg.DataURL)
	assert.Equal(t, 3*time.Second, cfg.DataTimeout)
	assert.Equal(t, 250, cfg.CacheSize)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "secret", cfg.RedisPassword)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, time.Hour, cfg.RedisTTL)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "req", cfg.KafkaRequestTopic)
	assert.Equal(t, "resp", cfg.KafkaResponseTopic)
	assert.Equal(t, "custom-group", cfg.KafkaGroupID)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, 1*time.Second, cfg.BatchFlushInterval)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidDataTimeout(t *testing.T) {
	t.Setenv("FACILITY_DATA_TIMEOUT", "bad")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FACILITY_DATA_TIMEOUT")
}

func TestLoad_NegativeDataTimeout(t *testing.T) {
	t.Setenv("FACILITY_DATA_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FACILITY_DATA_TIMEOUT")
}

func TestLoad_InvalidCacheSize(t *testing.T) {
	t.Setenv("FACILITY_CACHE_SIZE", "-5")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FACILITY_CACHE_SIZE")
}

func TestLoad_InvalidRedisTTL(t *testing.T) {
	t.Setenv("FACILITY_REDIS_TTL", "0s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FACILITY_REDIS_TTL")
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("FACILITY_REDIS_DB", "primary")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FACILITY_REDIS_DB")
}

func TestLoad_DataURLWithoutPlaceholder(t *testing.T) {
	t.Setenv("FACILITY_DATA_URL", "https://data.medicare.gov/resource/xubh-q36u.json")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FACILITY_DATA_URL")
}

func TestLoad_InvalidBatchSize(t *testing.T) {
	t.Setenv("BATCH_SIZE", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BATCH_SIZE")
}

func TestLoad_KafkaEnabledOnlyWhenTrue(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "yes")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.KafkaEnabled)
}
