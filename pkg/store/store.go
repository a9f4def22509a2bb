// Package store persists named layout documents.
//
// A Store maps layout names (user perspectives, the autosaved session) to
// serialized layout documents. Implementations cover local CLI usage
// (FileStore), disabled persistence (NullStore), and shared backends for
// hosted deployments (RedisStore, MongoStore). ScopedStore prefixes names
// for multi-profile isolation on a shared backend.
//
// Stores deal in opaque bytes; the document format itself is owned by the
// persist package. The one exception is MongoStore, which parses documents
// so they land queryable in the collection.
package store

import "context"

// Store persists named layout documents.
//
// Get reports misses via the bool, not an error. Implementations backed by
// remote services honor the context; local ones ignore it.
type Store interface {
	// Get retrieves the document stored under name.
	Get(ctx context.Context, name string) ([]byte, bool, error)

	// Set stores a document under name, replacing any previous one.
	Set(ctx context.Context, name string, data []byte) error

	// Delete removes the document stored under name. Deleting a missing
	// name is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored names in unspecified order.
	List(ctx context.Context) ([]string, error)

	// Close releases any backend resources.
	Close() error
}
