package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("STORAGE_FILE_PATH", "")
	t.Setenv("REDIS_ADDRESS", "")
	t.Setenv("ENGINE_CALL_DELAY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "promptnovax-store.json", cfg.Storage.FilePath)
	assert.Empty(t, cfg.Storage.EncryptionKey)
	assert.Equal(t, "warning", cfg.LogLevel)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "promptnovax", cfg.Redis.Namespace)
	assert.Equal(t, 2*time.Second, cfg.Engine.CallDelay)
	assert.Equal(t, time.Second, cfg.Engine.KeyCheckDelay)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDRESS", "redis:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("ENGINE_CALL_DELAY", "50ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "redis:6380", cfg.Redis.Address)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 50*time.Millisecond, cfg.Engine.CallDelay)
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "etcd")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown STORAGE_BACKEND")
}

func TestLoad_PostgresRequiresURL(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "DATABASE_URL is required")

	t.Setenv("DATABASE_URL", "postgres://localhost/promptnovax")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
}

func TestLoad_InvalidNumericFallsBack(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("ENGINE_CALL_DELAY", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 2*time.Second, cfg.Engine.CallDelay)
}
