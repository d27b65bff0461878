/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kvstore

import "context"

// Store is a durable key-value collaborator: string keys mapped to opaque
// blobs, retained across process restarts until deleted or cleared. Backends
// provide their own synchronization; callers may share a Store across
// goroutines.
type Store interface {
	// Get returns the blob stored under key. A missing key yields an error
	// matching errors.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists stored keys with the given prefix, in ascending key order.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Clear removes every key in the store's namespace.
	Clear(ctx context.Context) error

	// Stream yields stored entries with the given prefix on a channel,
	// in ascending key order, honoring ctx cancellation.
	Stream(ctx context.Context, prefix string, opts ...StreamOption) <-chan StreamResult
}
