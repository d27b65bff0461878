/*
Package kvstore defines the persistent key-value contract ModelStore
serializes into.

The main interface is Store, a durable blob store with explicit lifetime:
values set survive process restarts until deleted or cleared, and a store
handle is always passed or scoped explicitly rather than reached through
ambient global state.

	type Store interface {
	    Get(ctx context.Context, key string) ([]byte, error)
	    Set(ctx context.Context, key string, value []byte) error
	    Delete(ctx context.Context, key string) error
	    Keys(ctx context.Context, prefix string) ([]string, error)
	    Clear(ctx context.Context) error
	    Stream(ctx context.Context, prefix string, opts ...StreamOption) <-chan StreamResult
	}

Implementations:
  - ddb: DynamoDB implementation using single-table records
  - mem: in-memory implementation for tests, with failure injection

Missing keys are reported via errors.ErrNotFound so callers can distinguish
absence from backend failure with errors.Is.
*/
package kvstore
