/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/suparena/modelstore/codec"
	"github.com/suparena/modelstore/kvstore"
)

// ModelStore binds a model type T to an explicitly supplied key-value store
// handle and key prefix. Save and Load move entities through the symmetric
// codec's blob bridge, so only registered attributes are persisted.
type ModelStore[T any] struct {
	store  kvstore.Store
	prefix string
	model  string
}

// NewModelStore creates a ModelStore for type T over the given store handle.
// Keys are namespaced as "<prefix>#<key>"; an empty prefix leaves keys bare.
func NewModelStore[T any](store kvstore.Store, prefix string) *ModelStore[T] {
	return &ModelStore[T]{
		store:  store,
		prefix: prefix,
		model:  typeNameOf[T](),
	}
}

func typeNameOf[T any]() string {
	var zero T
	return reflect.TypeOf(zero).String()
}

func (m *ModelStore[T]) storeKey(key string) string {
	if m.prefix == "" {
		return key
	}
	return m.prefix + "#" + key
}

// Save encodes the registered attributes of entity and stores the blob
// under key.
func (m *ModelStore[T]) Save(ctx context.Context, key string, entity *T) error {
	start := time.Now()
	emitSaveStart(ctx, m.model, key)

	data, err := codec.EncodeBlob(entity)
	if err != nil {
		emitSaveComplete(ctx, m.model, key, 0, time.Since(start), err)
		return fmt.Errorf("failed to encode entity: %w", err)
	}

	err = m.store.Set(ctx, m.storeKey(key), data)
	emitSaveComplete(ctx, m.model, key, len(data), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to store entity: %w", err)
	}
	return nil
}

// Load retrieves the blob stored under key and decodes it into a fresh
// entity. Attributes missing from the stored blob keep their defaults, so
// data saved before an attribute was declared still loads.
func (m *ModelStore[T]) Load(ctx context.Context, key string) (*T, error) {
	start := time.Now()
	emitLoadStart(ctx, m.model, key)

	data, err := m.store.Get(ctx, m.storeKey(key))
	if err != nil {
		emitLoadComplete(ctx, m.model, key, 0, time.Since(start), err)
		return nil, err
	}

	entity, err := codec.DecodeBlob[T](data)
	emitLoadComplete(ctx, m.model, key, len(data), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to decode entity: %w", err)
	}
	return entity, nil
}

// Delete removes the entity stored under key. Deleting a missing key is not
// an error.
func (m *ModelStore[T]) Delete(ctx context.Context, key string) error {
	err := m.store.Delete(ctx, m.storeKey(key))
	emitDeleteComplete(ctx, m.model, key, err)
	if err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}
	return nil
}

// Keys lists the entity keys saved through this ModelStore, with the prefix
// stripped.
func (m *ModelStore[T]) Keys(ctx context.Context) ([]string, error) {
	raw, err := m.store.Keys(ctx, m.storeKeyPrefix())
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, strings.TrimPrefix(k, m.storeKeyPrefix()))
	}
	return keys, nil
}

func (m *ModelStore[T]) storeKeyPrefix() string {
	if m.prefix == "" {
		return ""
	}
	return m.prefix + "#"
}

// GetModelStore retrieves the model store registered under key and asserts it
// to the ModelStore for type T, sparing callers the any-typed round trip
// through Storage.GetStore.
func GetModelStore[T any](s Storage, key string) (*ModelStore[T], error) {
	v, err := s.GetStore(key)
	if err != nil {
		return nil, err
	}
	ms, ok := v.(*ModelStore[T])
	if !ok {
		return nil, fmt.Errorf("model store with key %q is not a %s store", key, typeNameOf[T]())
	}
	return ms, nil
}
