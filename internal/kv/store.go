// Package kv holds the string key-value stores that back every persisted
// collection. A value is an opaque JSON document; callers decide the encoding.
package kv

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a store after Close.
var ErrClosed = errors.New("kv: store closed")

// Store is a flat string key-value store.
type Store interface {
	// Get returns ok=false, with a nil error, when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Delete of an absent key is not an error.
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys []string) error
	// ListKeys returns every key, sorted.
	ListKeys(ctx context.Context) ([]string, error)
	Close() error
}
