// Package store defines the key-value interface the snapshot layer persists
// through. Backends live in subpackages (memory, file, postgres); the
// serialization format is owned entirely by the snapshot package, so swapping
// a backend never touches the catalog or planner.
package store

import "context"

// Store is a string-keyed blob store.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value for key. The second return is false when the key
	// has never been written; that is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes value under key, overwriting any prior value.
	Set(ctx context.Context, key, value string) error
}
