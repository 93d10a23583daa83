package ports

import "context"

// Storage is the durable client-side key space used to persist session, cart
// and wishlist state across restarts. Implementations must be safe for
// concurrent use.
//
// Keys are flat logical names; each store owns a fixed set of keys and no two
// stores share one. Reads happen only at store initialization; afterwards the
// in-memory copy is authoritative and storage is write-only, except for
// logout which deletes.
type Storage interface {
	// Get returns the value for key, or "" with a nil error when the key
	// is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set writes the value for key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Close releases any resources held by the backend.
	Close() error
}
