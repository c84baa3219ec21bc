package backend

import (
	"context"
	"fmt"

	"buildledger/internal/cache"
	"buildledger/internal/kv"
	"buildledger/internal/log"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.Default()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(log.ComponentBackend),
	}
}

// CreateBackend opens the configured store and, when enabled, wraps it in a
// read cache swept by a background cache.Manager.
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var (
		store kv.Store
		err   error
	)
	switch config.Type {
	case MemoryBackend:
		store = kv.NewMemory()
	case SQLiteBackend:
		store, err = kv.NewSQLite(config.SQLiteDBPath)
	case PostgresBackend:
		store, err = kv.NewPostgres(config.PostgresURL)
	case RedisBackend:
		store, err = kv.NewRedis(ctx, kv.RedisOptions{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
			Prefix:   config.RedisPrefix,
		})
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s backend: %w", config.Type, err)
	}

	f.logger.Info("Initialized backend", log.FieldBackend, config.Type.String())

	result := &BackendResult{Store: store, Cleanup: store.Close}
	if !config.CacheEnabled {
		return result, nil
	}

	lru := cache.NewLRUCache[string](config.CacheSize, config.CacheTTL)
	manager := cache.NewManager(f.logger.Logger.With(log.FieldComponent, log.ComponentCache))
	manager.Register(lru)
	manager.StartCleanup(config.CacheCleanupInterval)

	cached := kv.NewCached(store, lru)
	result.Store = cached
	result.Cache = manager
	result.Cleanup = func() error {
		manager.Stop()
		return cached.Close()
	}

	f.logger.Info("Read cache enabled",
		"size", config.CacheSize,
		"ttl", config.CacheTTL.String())
	return result, nil
}
