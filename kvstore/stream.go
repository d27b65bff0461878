/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kvstore

import "time"

// StreamResult represents a single streamed entry with metadata.
type StreamResult struct {
	Key   string     // The entry key
	Value []byte     // The stored blob
	Error error      // Entry- or page-level error, if any
	Meta  StreamMeta // Metadata about this entry
}

// StreamMeta contains metadata about a streamed entry.
type StreamMeta struct {
	Index      int64     // Entry index in stream (0-based)
	PageNumber int       // Backend page number (1-based)
	Timestamp  time.Time // When the entry was retrieved
}

// StreamOptions configures streaming behavior.
type StreamOptions struct {
	BufferSize   int           // Channel buffer size (default: 100)
	PageSize     int32         // Entries per backend page (default: 100)
	MaxRetries   int           // Retry attempts for transient errors (default: 3)
	RetryBackoff time.Duration // Backoff between retries (default: 1s)
}

// StreamOption is a functional option for configuring streaming.
type StreamOption func(*StreamOptions)

// DefaultStreamOptions returns default streaming options.
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{
		BufferSize:   100,
		PageSize:     100,
		MaxRetries:   3,
		RetryBackoff: time.Second,
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) StreamOption {
	return func(opts *StreamOptions) {
		opts.BufferSize = size
	}
}

// WithPageSize sets the backend page size.
func WithPageSize(size int32) StreamOption {
	return func(opts *StreamOptions) {
		opts.PageSize = size
	}
}

// WithMaxRetries sets the maximum retry attempts.
func WithMaxRetries(retries int) StreamOption {
	return func(opts *StreamOptions) {
		opts.MaxRetries = retries
	}
}

// WithRetryBackoff sets the retry backoff duration.
func WithRetryBackoff(backoff time.Duration) StreamOption {
	return func(opts *StreamOptions) {
		opts.RetryBackoff = backoff
	}
}
