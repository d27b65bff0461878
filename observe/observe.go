/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package observe

import (
	"fmt"
	"reflect"
	"sync"
)

// Callback receives the previous and new value of an observed field.
type Callback func(old, new any)

// subject identifies one field of one specific instance. The instance is held
// by pointer, so two entities with equal contents are still distinct subjects.
type subject struct {
	obj   any
	field string
}

// Hub is a thread-safe subject/observer registry keyed by object identity.
// Subscriptions are scoped to the instance observed at subscription time;
// reassigning a caller's variable to a different instance does not move the
// subscription, it keeps observing the original instance until cancelled.
type Hub struct {
	mu     sync.RWMutex
	subs   map[subject]map[int64]Callback
	nextID int64
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[subject]map[int64]Callback),
	}
}

// Observe subscribes fn to changes of the named field on the given instance.
// obj must be a pointer; identity, not equality, scopes the subscription.
// The returned Subscription must be retained and cancelled explicitly when
// the observation is no longer wanted.
func (h *Hub) Observe(obj any, field string, fn Callback) *Subscription {
	if obj == nil || reflect.ValueOf(obj).Kind() != reflect.Ptr {
		panic(fmt.Sprintf("observe: subject must be a non-nil pointer, got %T", obj))
	}
	if fn == nil {
		panic("observe: nil callback")
	}

	key := subject{obj: obj, field: field}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	if h.subs[key] == nil {
		h.subs[key] = make(map[int64]Callback)
	}
	h.subs[key][id] = fn

	return &Subscription{hub: h, key: key, id: id}
}

// Notify delivers (old, new) to every observer of the named field on the
// given instance. Delivery is synchronous and ordered arbitrarily across
// observers; instances without observers are a no-op.
func (h *Hub) Notify(obj any, field string, old, new any) {
	key := subject{obj: obj, field: field}

	h.mu.RLock()
	callbacks := make([]Callback, 0, len(h.subs[key]))
	for _, fn := range h.subs[key] {
		callbacks = append(callbacks, fn)
	}
	h.mu.RUnlock()

	// Callbacks run outside the lock so they may observe or subscribe freely.
	for _, fn := range callbacks {
		fn(old, new)
	}
}

// ObserverCount returns the number of active observers for the named field
// on the given instance.
func (h *Hub) ObserverCount(obj any, field string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[subject{obj: obj, field: field}])
}

func (h *Hub) remove(key subject, id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	observers := h.subs[key]
	if observers == nil {
		return
	}
	delete(observers, id)
	if len(observers) == 0 {
		delete(h.subs, key)
	}
}

// Subscription is the explicit handle for one observation. Cancel is
// idempotent and safe to call from any goroutine.
type Subscription struct {
	hub  *Hub
	key  subject
	id   int64
	once sync.Once
}

// Cancel stops delivery to this subscription's callback.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.hub.remove(s.key, s.id)
	})
}
