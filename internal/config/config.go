package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Backend names a storage backend for the credential store.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendFile     Backend = "file"
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
)

// Config holds configuration for the prompt engine.
type Config struct {
	LogLevel string
	Storage  StorageConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Engine   EngineConfig
}

// StorageConfig selects and parameterizes the credential store backend.
type StorageConfig struct {
	Backend Backend
	// FilePath is the JSON store location for the file backend.
	FilePath string
	// EncryptionKey is a base64 AES key; empty disables at-rest encryption.
	EncryptionKey string
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Address   string
	Password  string
	DB        int
	Namespace string
}

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	URL string
}

// EngineConfig holds simulated-backend timing.
type EngineConfig struct {
	// CallDelay is how long a simulated provider call takes.
	CallDelay time.Duration
	// KeyCheckDelay is how long a simulated key verification takes.
	KeyCheckDelay time.Duration
}

func getEnvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}

	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}

	return intVal
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(val)
	if err != nil {
		return defaultValue
	}

	return duration
}

func getEnvString(key string, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	return val
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	backend := Backend(getEnvString("STORAGE_BACKEND", string(BackendFile)))
	switch backend {
	case BackendMemory, BackendFile, BackendRedis, BackendPostgres:
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", backend)
	}

	cfg := &Config{
		LogLevel: getEnvString("LOG_LEVEL", "warning"),
		Storage: StorageConfig{
			Backend:       backend,
			FilePath:      getEnvString("STORAGE_FILE_PATH", "promptnovax-store.json"),
			EncryptionKey: getEnvString("STORAGE_ENCRYPTION_KEY", ""),
		},
		Redis: RedisConfig{
			Address:   getEnvString("REDIS_ADDRESS", "localhost:6379"),
			Password:  getEnvString("REDIS_PASSWORD", ""),
			DB:        getEnvInt("REDIS_DB", 0),
			Namespace: getEnvString("REDIS_NAMESPACE", "promptnovax"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Engine: EngineConfig{
			CallDelay:     getEnvDuration("ENGINE_CALL_DELAY", 2*time.Second),
			KeyCheckDelay: getEnvDuration("ENGINE_KEY_CHECK_DELAY", 1*time.Second),
		},
	}

	if cfg.Storage.Backend == BackendPostgres && cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
	}

	return cfg, nil
}
