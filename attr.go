/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore

import (
	"github.com/suparena/modelstore/errors"
	"github.com/suparena/modelstore/observe"
	"github.com/suparena/modelstore/registry"
)

// GetAttr reads the named registered attribute of entity through its getter.
// The second return is false when the attribute is not registered for T.
func GetAttr[T any](entity *T, name string) (any, bool) {
	attrs, ok := registry.GetAttrs[T]()
	if !ok {
		return nil, false
	}
	for _, a := range attrs {
		if a.Name == name {
			return a.Get(entity), true
		}
	}
	return nil, false
}

// SetAttr assigns value to the named registered attribute of entity and, when
// hub is non-nil, notifies observers of that attribute on this instance with
// the previous and new value. A nil hub makes this a plain registry-dispatched
// write.
func SetAttr[T any](hub *observe.Hub, entity *T, name string, value any) error {
	attrs, ok := registry.GetAttrs[T]()
	if !ok {
		return errors.NewNoRegistryError(typeNameOf[T]())
	}
	for _, a := range attrs {
		if a.Name != name {
			continue
		}
		old := a.Get(entity)
		a.Set(entity, value)
		if hub != nil {
			hub.Notify(entity, name, old, a.Get(entity))
		}
		return nil
	}
	return errors.NewValidationError(name, "not a registered attribute")
}
