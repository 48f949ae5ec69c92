// Package storage provides string key-value persistence behind a single
// interface with memory, file, redis, and postgres backends.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has no stored value.
var ErrKeyNotFound = errors.New("key not found")

// KeyValue is the persistence capability the credential store is built on:
// string-keyed get/set of arbitrarily-sized string values. Set replaces the
// whole value in a single write.
type KeyValue interface {
	// Get retrieves the value for a key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set writes the value for a key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Close releases backend resources.
	Close() error
}
