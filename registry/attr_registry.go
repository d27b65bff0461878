/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sync"
)

// Attr declares one named attribute of a model type T: its wire name plus the
// typed accessor pair generic code dispatches through. Set receives whatever
// the mapping or decoder produced; coercion of loosely typed values (for
// example float64 from decoded JSON numbers) is the setter's concern.
type Attr[T any] struct {
	Name string
	Get  func(*T) any
	Set  func(*T, any)
}

var (
	attrRegistry = make(map[reflect.Type]any)
	mu           sync.RWMutex
)

// RegisterAttrs declares the ordered attribute list for model type T.
// The declaration is made once, at init time, and is immutable afterwards;
// registering a type twice panics to surface the misuse early.
func RegisterAttrs[T any](attrs []Attr[T]) {
	var zero T
	t := reflect.TypeOf(zero)

	seen := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		if a.Name == "" {
			panic(fmt.Sprintf("attr registry: empty attribute name for type %v", t))
		}
		if a.Get == nil || a.Set == nil {
			panic(fmt.Sprintf("attr registry: attribute %q of type %v missing accessor", a.Name, t))
		}
		if seen[a.Name] {
			panic(fmt.Sprintf("attr registry: duplicate attribute %q for type %v", a.Name, t))
		}
		seen[a.Name] = true
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := attrRegistry[t]; exists {
		panic(fmt.Sprintf("attr registry: type %v already registered", t))
	}

	// Copy so a caller-held slice cannot mutate the declaration later.
	own := make([]Attr[T], len(attrs))
	copy(own, attrs)
	attrRegistry[t] = own
}

// GetAttrs retrieves the declared attribute list for type T, if any,
// in declaration order.
func GetAttrs[T any]() ([]Attr[T], bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	v, ok := attrRegistry[t]
	if !ok {
		return nil, false
	}
	return v.([]Attr[T]), true
}

// AttrNames returns the attribute names declared for type T, in declaration
// order. The returned slice is owned by the caller.
func AttrNames[T any]() ([]string, bool) {
	attrs, ok := GetAttrs[T]()
	if !ok {
		return nil, false
	}
	names := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = a.Name
	}
	return names, true
}
