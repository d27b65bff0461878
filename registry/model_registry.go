/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sync"
)

// FactoryFunc returns a fresh zero-valued instance of a model type.
type FactoryFunc func() interface{}

var (
	modelRegistry = make(map[string]FactoryFunc)
	modelMu       sync.RWMutex
)

// RegisterModel registers a factory for a model name (like "User" or
// "RatingRecord"). Schema tooling resolves model names through this table.
// If a factory is already registered for the name, it panics to prevent
// accidental overrides.
func RegisterModel(name string, fn FactoryFunc) {
	modelMu.Lock()
	defer modelMu.Unlock()
	if _, exists := modelRegistry[name]; exists {
		panic(fmt.Sprintf("model registry: model %q already registered", name))
	}
	modelRegistry[name] = fn
}

// GetModelFactory returns the registered factory for the given model name.
// If no factory is registered, it returns an error.
func GetModelFactory(name string) (FactoryFunc, error) {
	modelMu.RLock()
	defer modelMu.RUnlock()
	fn, ok := modelRegistry[name]
	if !ok {
		return nil, fmt.Errorf("model registry: no model registered for name %q", name)
	}
	return fn, nil
}

// ModelNames returns the registered model names. Order is unspecified.
func ModelNames() []string {
	modelMu.RLock()
	defer modelMu.RUnlock()
	names := make([]string, 0, len(modelRegistry))
	for name := range modelRegistry {
		names = append(names, name)
	}
	return names
}
