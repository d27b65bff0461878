/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore

import (
	"github.com/suparena/modelstore/registry"
)

// Construct builds an entity of type T from an external mapping, such as a
// decoded network payload. For each registered attribute present in the
// mapping, the value is assigned through the attribute's setter; attributes
// absent from the mapping keep their defaults. Keys in the mapping that are
// not registered attributes are silently ignored — external data is allowed
// to be over-complete. The mapping is not retained.
func Construct[T any](mapping map[string]any) *T {
	entity := new(T)
	Apply(entity, mapping)
	return entity
}

// Apply assigns the registered attributes present in mapping onto an existing
// entity, with the same tolerant-ingestion policy as Construct. Types with no
// attribute registry are left untouched.
func Apply[T any](entity *T, mapping map[string]any) {
	attrs, ok := registry.GetAttrs[T]()
	if !ok {
		return
	}
	for _, a := range attrs {
		if v, present := mapping[a.Name]; present {
			a.Set(entity, v)
		}
	}
}
