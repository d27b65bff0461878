/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore_test

import (
	"context"
	"testing"

	"github.com/suparena/modelstore"
	"github.com/suparena/modelstore/kvstore/mem"
	"github.com/suparena/modelstore/observe"
	"github.com/suparena/modelstore/testmodels"
)

// Full flow: construct a model from an over-complete payload, persist it,
// reload it through a fresh handle over the same backing store, and observe
// a field change on the loaded instance.
func TestModelLifecycle(t *testing.T) {
	ctx := context.Background()
	backing := mem.New()

	// Ingest an external payload with keys the model does not declare.
	payload := map[string]any{
		"id":      1000,
		"name":    "Clay",
		"email":   "clay@mail.com",
		"isAdmin": true,
	}
	user := modelstore.Construct[testmodels.User](payload)

	manager := modelstore.NewStorageManager()
	users := modelstore.NewModelStore[testmodels.User](backing, "user")
	if err := manager.RegisterStore("users", users); err != nil {
		t.Fatalf("RegisterStore failed: %v", err)
	}

	if err := users.Save(ctx, "1000", user); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// A fresh handle over the same store stands in for a process restart.
	reopened := modelstore.NewModelStore[testmodels.User](backing, "user")
	loaded, err := reopened.Load(ctx, "1000")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.ID != 1000 || loaded.Name != "Clay" || loaded.Email != "clay@mail.com" {
		t.Fatalf("Reloaded entity mismatch: %+v", loaded)
	}

	// Observe the loaded instance and mutate through the registry.
	hub := observe.NewHub()
	var changes []string
	sub := hub.Observe(loaded, "name", func(old, new any) {
		changes = append(changes, old.(string)+"->"+new.(string))
	})

	if err := modelstore.SetAttr(hub, loaded, "name", "Clayton"); err != nil {
		t.Fatalf("SetAttr failed: %v", err)
	}

	sub.Cancel()
	if err := modelstore.SetAttr(hub, loaded, "name", "C."); err != nil {
		t.Fatalf("SetAttr failed: %v", err)
	}

	if len(changes) != 1 || changes[0] != "Clay->Clayton" {
		t.Fatalf("Expected one observed change Clay->Clayton, got %v", changes)
	}

	// Persist the mutation and confirm it sticks.
	if err := users.Save(ctx, "1000", loaded); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	final, err := users.Load(ctx, "1000")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if final.Name != "C." {
		t.Fatalf("Expected persisted name C., got %q", final.Name)
	}
}
