// Package kv provides a key-value store abstraction for session storage.
// This allows swapping backends (OS keyring, in-memory, etc.) without
// changing the session layer implementation.
package kv

// Store defines a minimal key-value interface for session storage.
// Keys and values are strings; the durable backend is the OS keyring,
// the in-memory backend serves tests.
type Store interface {
	// Set stores a value under the given key, overwriting any previous value.
	Set(key, value string) error

	// Get retrieves a value by key. Returns ErrNotFound if the key doesn't exist.
	Get(key string) (string, error)

	// Delete removes a key. Returns nil if the key doesn't exist.
	Delete(key string) error
}
