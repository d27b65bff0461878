/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"reflect"

	"github.com/suparena/modelstore/errors"
	"github.com/suparena/modelstore/registry"
)

// KVWriter is the abstract key-value sink encoding writes into. The writer is
// supplied by the persistence side; Set must accept every registered attribute
// value, including nil.
type KVWriter interface {
	Set(key string, value any)
}

// KVReader is the abstract key-value source decoding reads from. Get reports
// whether the key was present so absent keys can be told apart from stored
// nil values.
type KVReader interface {
	Get(key string) (any, bool)
}

// Encode writes every registered attribute of entity into sink, one
// (name, value) pair per attribute, in declaration order. The order carries
// no meaning but is deterministic: encoding the same entity twice produces
// the same write sequence.
func Encode[T any](entity *T, sink KVWriter) error {
	attrs, ok := registry.GetAttrs[T]()
	if !ok {
		return errors.NewNoRegistryError(typeName[T]())
	}
	for _, a := range attrs {
		sink.Set(a.Name, a.Get(entity))
	}
	return nil
}

// Decode constructs a new entity and assigns every registered attribute found
// in source, in declaration order. Keys absent from source leave the field at
// its default; old serialized data lacking a newly declared attribute still
// decodes cleanly.
func Decode[T any](source KVReader) (*T, error) {
	attrs, ok := registry.GetAttrs[T]()
	if !ok {
		return nil, errors.NewNoRegistryError(typeName[T]())
	}
	entity := new(T)
	for _, a := range attrs {
		if v, present := source.Get(a.Name); present {
			a.Set(entity, v)
		}
	}
	return entity, nil
}

func typeName[T any]() string {
	var zero T
	return reflect.TypeOf(zero).String()
}

// MapWriter is a KVWriter collecting writes into a map while preserving the
// write order in Keys.
type MapWriter struct {
	Values map[string]any
	Keys   []string
}

// NewMapWriter returns an empty MapWriter.
func NewMapWriter() *MapWriter {
	return &MapWriter{Values: make(map[string]any)}
}

// Set records the pair and appends the key to the ordered write log.
func (w *MapWriter) Set(key string, value any) {
	if _, exists := w.Values[key]; !exists {
		w.Keys = append(w.Keys, key)
	}
	w.Values[key] = value
}

// MapReader adapts a plain map to the KVReader interface.
type MapReader map[string]any

// Get returns the value for key and whether it was present.
func (r MapReader) Get(key string) (any, bool) {
	v, ok := r[key]
	return v, ok
}
