package repository

import "context"

// KeyValueStore is durable string storage on the installation, surviving process restarts.
type KeyValueStore interface {
	// Get returns the stored value for key, or def when the key is absent.
	Get(ctx context.Context, key, def string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
