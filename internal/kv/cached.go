package kv

import (
	"context"
	"sync"

	"buildledger/internal/cache"
)

// Cached serves Get from an in-process cache and invalidates on writes.
// Misses are not cached, so a key written by another process becomes
// visible once its entry expires.
//
// Every write bumps the key's generation. A Get that missed only fills the
// cache when no write happened between its miss and its fill, so a slow
// reader never puts a value older than the last write back.
type Cached struct {
	Store
	cache *cache.LRUCache[string]

	mu  sync.Mutex
	gen map[string]uint64
}

func NewCached(inner Store, c *cache.LRUCache[string]) *Cached {
	return &Cached{Store: inner, cache: c, gen: make(map[string]uint64)}
}

func (c *Cached) Get(ctx context.Context, key string) (string, bool, error) {
	if v, ok := c.cache.Get(key); ok {
		return v, true, nil
	}
	c.mu.Lock()
	seen := c.gen[key]
	c.mu.Unlock()

	v, ok, err := c.Store.Get(ctx, key)
	if err != nil || !ok {
		return v, ok, err
	}

	c.mu.Lock()
	if c.gen[key] == seen {
		c.cache.Set(key, v)
	}
	c.mu.Unlock()
	return v, true, nil
}

// invalidate drops key and bumps its generation.
func (c *Cached) invalidate(key string) {
	c.mu.Lock()
	c.gen[key]++
	c.cache.Delete(key)
	c.mu.Unlock()
}

func (c *Cached) Set(ctx context.Context, key, value string) error {
	c.invalidate(key)
	if err := c.Store.Set(ctx, key, value); err != nil {
		return err
	}
	c.mu.Lock()
	c.gen[key]++
	c.cache.Set(key, value)
	c.mu.Unlock()
	return nil
}

func (c *Cached) Delete(ctx context.Context, key string) error {
	c.invalidate(key)
	err := c.Store.Delete(ctx, key)
	c.invalidate(key)
	return err
}

func (c *Cached) DeleteMany(ctx context.Context, keys []string) error {
	for _, k := range keys {
		c.invalidate(k)
	}
	err := c.Store.DeleteMany(ctx, keys)
	for _, k := range keys {
		c.invalidate(k)
	}
	return err
}

func (c *Cached) Close() error {
	c.cache.Clear()
	return c.Store.Close()
}

// Stats exposes hit and miss counters of the wrapped cache.
func (c *Cached) Stats() cache.Stats {
	return c.cache.Stats()
}

// Pinger is implemented by stores backed by a remote or file database.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks the underlying store when it supports it.
func Ping(ctx context.Context, s Store) error {
	if c, ok := s.(*Cached); ok {
		s = c.Store
	}
	if p, ok := s.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
