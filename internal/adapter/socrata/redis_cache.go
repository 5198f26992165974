package socrata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/couchcryptid/facility-resolver/internal/domain"
	"github.com/couchcryptid/facility-resolver/internal/observability"
)

const redisKeyPrefix = "facility-resolver:"

// RedisFinder wraps a Finder with a cache shared between replicas. Redis
// failures are logged and fall through to the wrapped Finder.
type RedisFinder struct {
	inner   domain.Finder
	client  *redis.Client
	ttl     time.Duration
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewRedisFinder creates a Redis cache decorator. Entries expire after ttl.
func NewRedisFinder(inner domain.Finder, client *redis.Client, ttl time.Duration, metrics *observability.Metrics, logger *slog.Logger) *RedisFinder {
	return &RedisFinder{inner: inner, client: client, ttl: ttl, metrics: metrics, logger: logger}
}

func (r *RedisFinder) FindFacilities(ctx context.Context, cat domain.Category, location string) ([]domain.RawRecord, error) {
	key := redisKeyPrefix + searchKey(cat, location)
	var records []domain.RawRecord
	if r.get(ctx, "search", key, &records) {
		return records, nil
	}

	records, err := r.inner.FindFacilities(ctx, cat, location)
	if err != nil {
		return nil, err
	}
	if len(records) > 0 {
		r.set(ctx, key, records)
	}
	return records, nil
}

func (r *RedisFinder) FindByIdentifier(ctx context.Context, cat domain.Category, id string) (domain.RawRecord, error) {
	key := redisKeyPrefix + identifierKey(cat, id)
	var rec domain.RawRecord
	if r.get(ctx, "identifier", key, &rec) {
		return rec, nil
	}

	rec, err := r.inner.FindByIdentifier(ctx, cat, id)
	if err != nil {
		return nil, err
	}
	r.set(ctx, key, rec)
	return rec, nil
}

// CheckReadiness pings Redis.
func (r *RedisFinder) CheckReadiness(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisFinder) get(ctx context.Context, operation, key string, dst any) bool {
	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		r.metrics.CacheLookups.WithLabelValues(operation, "miss").Inc()
		return false
	case err != nil:
		r.metrics.CacheLookups.WithLabelValues(operation, "error").Inc()
		r.logger.Warn("redis cache read failed", "key", key, "error", err)
		return false
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		r.metrics.CacheLookups.WithLabelValues(operation, "error").Inc()
		r.logger.Warn("redis cache entry undecodable", "key", key, "error", err)
		return false
	}
	r.metrics.CacheLookups.WithLabelValues(operation, "hit").Inc()
	return true
}

func (r *RedisFinder) set(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		r.logger.Warn("redis cache encode failed", "key", key, "error", err)
		return
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Warn("redis cache write failed", "key", key, "error", err)
	}
}
