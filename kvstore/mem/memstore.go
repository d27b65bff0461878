/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mem provides an in-memory implementation of kvstore.Store for
// testing and ephemeral use.
package mem

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/suparena/modelstore/errors"
	"github.com/suparena/modelstore/kvstore"
)

// Store is an in-memory kvstore.Store. It is durable only for the process
// lifetime; tests also use it as a mock via the failure injection options.
type Store struct {
	mu          sync.RWMutex
	data        map[string][]byte
	getError    error
	setError    error
	deleteError error
	keysError   error
}

// New creates a new in-memory Store.
func New() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// WithGetError makes Get operations return an error
func (s *Store) WithGetError(err error) *Store {
	s.getError = err
	return s
}

// WithSetError makes Set operations return an error
func (s *Store) WithSetError(err error) *Store {
	s.setError = err
	return s
}

// WithDeleteError makes Delete operations return an error
func (s *Store) WithDeleteError(err error) *Store {
	s.deleteError = err
	return s
}

// WithKeysError makes Keys operations return an error
func (s *Store) WithKeysError(err error) *Store {
	s.keysError = err
	return s
}

// Get returns the blob stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if s.getError != nil {
		return nil, s.getError
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, exists := s.data[key]
	if !exists {
		return nil, errors.NewNotFoundError("mem", key)
	}

	// Copy so callers cannot mutate the stored blob.
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if s.setError != nil {
		return s.setError
	}
	if key == "" {
		return errors.NewValidationError("key", "must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	own := make([]byte, len(value))
	copy(own, value)
	s.data[key] = own
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if s.deleteError != nil {
		return s.deleteError
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Keys lists stored keys with the given prefix in ascending order.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	if s.keysError != nil {
		return nil, s.keysError
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Clear removes every stored key.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)
	return nil
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Stream yields stored entries with the given prefix in ascending key order.
func (s *Store) Stream(ctx context.Context, prefix string, opts ...kvstore.StreamOption) <-chan kvstore.StreamResult {
	options := kvstore.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan kvstore.StreamResult, options.BufferSize)

	go func() {
		defer close(resultCh)

		if s.getError != nil {
			resultCh <- kvstore.StreamResult{Error: s.getError}
			return
		}

		keys, err := s.Keys(ctx, prefix)
		if err != nil {
			resultCh <- kvstore.StreamResult{Error: err}
			return
		}

		var index int64
		pageSize := int(options.PageSize)
		if pageSize <= 0 {
			pageSize = 1
		}
		for i, key := range keys {
			select {
			case <-ctx.Done():
				return
			default:
			}

			value, err := s.Get(ctx, key)
			result := kvstore.StreamResult{
				Key:   key,
				Value: value,
				Error: err,
				Meta: kvstore.StreamMeta{
					Index:      index,
					PageNumber: i/pageSize + 1,
					Timestamp:  time.Now(),
				},
			}

			select {
			case resultCh <- result:
				index++
			case <-ctx.Done():
				return
			}
		}
	}()

	return resultCh
}

// Ensure Store implements kvstore.Store.
var _ kvstore.Store = (*Store)(nil)
