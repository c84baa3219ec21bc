package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
)

// placement decides where a record with a new id goes.
type placement int

const (
	prepend placement = iota
	appendLast
)

// readCollection decodes the array stored at key. An absent key is an empty
// collection.
func readCollection[T any](ctx context.Context, r *Repository, key string) ([]T, error) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || raw == "" {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func writeCollection[T any](ctx context.Context, r *Repository, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// listCollection is readCollection that logs failures and degrades to empty.
func listCollection[T any](ctx context.Context, r *Repository, key string) []T {
	items, err := readCollection[T](ctx, r, key)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to read collection", "key", key, "error", err)
		return []T{}
	}
	return items
}

// upsert replaces the record with the same id or inserts it at where.
func upsert[T any](items []T, item T, id func(T) string, where placement) []T {
	want := id(item)
	if i := slices.IndexFunc(items, func(x T) bool { return id(x) == want }); i >= 0 {
		items[i] = item
		return items
	}
	if where == prepend {
		return append([]T{item}, items...)
	}
	return append(items, item)
}

// remove drops every record with the given id and reports whether any matched.
func remove[T any](items []T, target string, id func(T) string) ([]T, bool) {
	out := slices.DeleteFunc(items, func(x T) bool { return id(x) == target })
	return out, len(out) != len(items)
}

func find[T any](items []T, target string, id func(T) string) (T, bool) {
	for _, x := range items {
		if id(x) == target {
			return x, true
		}
	}
	var zero T
	return zero, false
}

// saveRecord runs the locked read-upsert-write cycle for key.
func saveRecord[T any](ctx context.Context, r *Repository, key string, item T, id func(T) string, where placement) error {
	mu := r.lock(key)
	mu.Lock()
	defer mu.Unlock()
	return saveRecordLocked(ctx, r, key, item, id, where)
}

func saveRecordLocked[T any](ctx context.Context, r *Repository, key string, item T, id func(T) string, where placement) error {
	items, err := readCollection[T](ctx, r, key)
	if err != nil {
		return err
	}
	return writeCollection(ctx, r, key, upsert(items, item, id, where))
}

// deleteRecord removes a record by id. Deleting a missing id is a no-op write.
func deleteRecord[T any](ctx context.Context, r *Repository, key, target string, id func(T) string) error {
	mu := r.lock(key)
	mu.Lock()
	defer mu.Unlock()
	return deleteRecordLocked(ctx, r, key, target, id)
}

func deleteRecordLocked[T any](ctx context.Context, r *Repository, key, target string, id func(T) string) error {
	items, err := readCollection[T](ctx, r, key)
	if err != nil {
		return err
	}
	items, _ = remove(items, target, id)
	return writeCollection(ctx, r, key, items)
}
