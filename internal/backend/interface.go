package backend

import (
	"context"
	"time"

	"buildledger/internal/cache"
	"buildledger/internal/kv"
)

// CleanupFunc releases the resources of a backend.
type CleanupFunc func() error

// BackendResult contains the store and its cleanup function
type BackendResult struct {
	Store   kv.Store
	Cleanup CleanupFunc
	// Cache is nil when caching is disabled.
	Cache *cache.Manager
}

// Factory creates stores based on configuration
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// Config holds configuration for backend creation
type Config struct {
	Type BackendType

	SQLiteDBPath string
	PostgresURL  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	CacheEnabled         bool
	CacheSize            int
	CacheTTL             time.Duration
	CacheCleanupInterval time.Duration
}

// BackendType represents the type of backend
type BackendType string

const (
	MemoryBackend   BackendType = "memory"
	SQLiteBackend   BackendType = "sqlite"
	PostgresBackend BackendType = "postgres"
	RedisBackend    BackendType = "redis"
)

func (bt BackendType) String() string {
	return string(bt)
}

func (bt BackendType) IsValid() bool {
	switch bt {
	case MemoryBackend, SQLiteBackend, PostgresBackend, RedisBackend:
		return true
	default:
		return false
	}
}
