/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore

import (
	"fmt"
	"sync"
)

// Storage is a higher-level interface that manages a collection of model
// store handles. Its methods are not generic; they use the empty interface
// (any) so stores for different model types can live behind one manager.
// Every handle is registered and scoped explicitly — there is no ambient
// default store.
type Storage interface {
	// RegisterStore registers a model store under a given key (for example,
	// "users" or "ratings").
	RegisterStore(key string, store any) error
	// GetStore retrieves the registered model store for a given key.
	// The caller must type-assert the returned value to the appropriate
	// ModelStore type.
	GetStore(key string) (any, error)
}

// storageManager is a thread-safe implementation of the Storage interface.
type storageManager struct {
	mu     sync.RWMutex
	stores map[string]any
}

// NewStorageManager creates and returns a new Storage implementation.
func NewStorageManager() Storage {
	return &storageManager{
		stores: make(map[string]any),
	}
}

// RegisterStore stores the provided model store under the given key.
func (sm *storageManager) RegisterStore(key string, store any) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.stores[key]; exists {
		return fmt.Errorf("model store with key %q already registered", key)
	}
	sm.stores[key] = store
	return nil
}

// GetStore retrieves the model store associated with the given key.
func (sm *storageManager) GetStore(key string) (any, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	store, exists := sm.stores[key]
	if !exists {
		return nil, fmt.Errorf("model store with key %q not found", key)
	}
	return store, nil
}
