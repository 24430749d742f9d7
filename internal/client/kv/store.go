// Package kv implements the persisted string key/value store the client keeps
// its session and any cached entries in.
package kv

import "context"

// Store is a durable string-keyed store. Individual operations are atomic;
// MultiRemove removes its keys in one unit.
type Store interface {
	// Get returns the value and true, or "" and false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Remove is a no-op for absent keys.
	Remove(ctx context.Context, key string) error
	// Keys lists every key in lexical order.
	Keys(ctx context.Context) ([]string, error)
	MultiRemove(ctx context.Context, keys []string) error
}
