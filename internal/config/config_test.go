package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.NotEmpty(t, cfg.Database.WriterDSN)
	assert.Equal(t, cfg.Database.WriterDSN, cfg.Database.ReaderDSN)
	assert.Equal(t, "orderdesk", cfg.Observability.ServiceName)
	assert.Equal(t, "orders.events", cfg.Messaging.Kafka.Topic)
	assert.Equal(t, 5*time.Minute, cfg.Cache.DefaultTTL)
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("DB_READER_DSN", "postgres://replica:5432/orderdesk")
	t.Setenv("OBS_LOG_LEVEL", "DEBUG")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.HTTP.Port)
	assert.Equal(t, "postgres://replica:5432/orderdesk", cfg.Database.ReaderDSN)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
}

func TestNewRejectsUnknownCacheDriver(t *testing.T) {
	t.Setenv("CACHE_DRIVER", "memcached")

	_, err := New()
	assert.Error(t, err)
}
