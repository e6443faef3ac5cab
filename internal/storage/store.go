package storage

import (
	"context"
	"errors"
)

// Store persists each named collection as a single serialized JSON
// array. Managers read the full collection, mutate it in memory and
// write it back; a write fully replaces the previous contents.
type Store interface {
	// Read decodes the named collection into out, which must be a
	// pointer to a slice. A collection that has never been written
	// decodes as the empty sequence, not an error.
	Read(ctx context.Context, collection string, out any) error

	// Write replaces the named collection with records. The replacement
	// is atomic: concurrent readers observe either the previous or the
	// new contents, never a partial write.
	Write(ctx context.Context, collection string, records any) error

	// Close releases the backing medium.
	Close() error
}

var (
	// ErrUnavailable marks failures to reach the backing medium.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrSerialization marks records that cannot be encoded to JSON or
	// stored bytes that cannot be decoded back.
	ErrSerialization = errors.New("serialization failed")
)
