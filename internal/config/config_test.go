package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_PORT", "HTTP_MODE", "JWT_TTL", "FAVORITES_BACKEND", "MONGO_DB", "REDIS_HOST", "CATALOG_LOOKUP_CONCURRENCY", "DB_MAX_OPEN_CONNS", "DB_CONN_MAX_LIFETIME"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "5000", cfg.HTTP.Port)
	assert.Equal(t, "RW", cfg.HTTP.Mode)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TTL)
	assert.Equal(t, BackendMongo, cfg.FavoritesBackend)
	assert.Equal(t, "movieDB", cfg.Mongo.DBName)
	assert.Equal(t, "favorites", cfg.Mongo.Collection)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 0, cfg.OMDb.Concurrency)
	assert.Equal(t, 10, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.Postgres.ConnMaxLifetime)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("FAVORITES_BACKEND", BackendPostgres)
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("CATALOG_LOOKUP_CONCURRENCY", "8")
	t.Setenv("OMDB_TIMEOUT", "not-a-duration")

	cfg := FromEnv()

	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Equal(t, time.Hour, cfg.Auth.TTL)
	assert.Equal(t, BackendPostgres, cfg.FavoritesBackend)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 8, cfg.OMDb.Concurrency)
	assert.Equal(t, 10*time.Second, cfg.OMDb.Timeout)
}
