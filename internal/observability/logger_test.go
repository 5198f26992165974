package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "info", "json")

	logger.Debug("hidden")
	logger.Info("lookup done", "category", "hospital")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "lookup done", line["msg"])
	assert.Equal(t, "hospital", line["category"])
	assert.Equal(t, "facility-resolver", line["service"])
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "debug", "text").Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

func TestNewMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()
	a.Lookups.WithLabelValues("search", "found").Inc()
	assert.NotSame(t, a.Lookups, b.Lookups)
	assert.Len(t, a.collectors(), 12)
}

func TestNewMetricsWith_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWith(reg)
	m.Lookups.WithLabelValues("search", "found").Inc()
	m.CacheEnabled.Set(1)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "facility_resolver_lookups_total")
	assert.Contains(t, names, "facility_resolver_cache_enabled")
}
