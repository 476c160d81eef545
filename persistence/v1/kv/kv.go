// Package kv holds the key-value media the notebook collection can be persisted to.
// Every medium stores opaque string values under string keys.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key holds no value
var ErrNotFound = errors.New("key not found")

// Medium is a key-value store
type Medium interface {
	// Get returns the value stored under key or ErrNotFound
	Get(ctx context.Context, key string) (string, error)
	// Set overwrites the value stored under key
	Set(ctx context.Context, key, value string) error
	// Delete removes key, deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}
