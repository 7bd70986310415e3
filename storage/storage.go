// Package storage provides the key-value store abstraction used to persist
// session state (token, expiry, cached profile) between runs.
package storage

import "errors"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// Store defines the interface for persistent string key-value storage.
// Writes are whole-value replacements; implementations must make a
// Set/Delete visible to any Get that starts after it returns.
type Store interface {
	Get(key string) (string, error)
	Set(key string, value string) error
	Delete(key string) error
}
