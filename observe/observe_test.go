/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package observe

import (
	"sync"
	"testing"
)

type profile struct {
	Name string
}

func TestObserveAndNotify(t *testing.T) {
	hub := NewHub()
	p := &profile{Name: "Clay"}

	var gotOld, gotNew any
	sub := hub.Observe(p, "Name", func(old, new any) {
		gotOld, gotNew = old, new
	})
	defer sub.Cancel()

	hub.Notify(p, "Name", "Clay", "Clayton")

	if gotOld != "Clay" || gotNew != "Clayton" {
		t.Fatalf("Expected (Clay, Clayton), got (%v, %v)", gotOld, gotNew)
	}
}

func TestInstanceScoping(t *testing.T) {
	hub := NewHub()
	a := &profile{Name: "a"}
	b := &profile{Name: "b"}

	fired := 0
	sub := hub.Observe(a, "Name", func(old, new any) {
		fired++
	})
	defer sub.Cancel()

	// Changes on a different instance never reach a's observer, even though
	// the contents are equal types.
	hub.Notify(b, "Name", "b", "bb")
	if fired != 0 {
		t.Fatalf("Expected no delivery for other instance, got %d", fired)
	}

	hub.Notify(a, "Name", "a", "aa")
	if fired != 1 {
		t.Fatalf("Expected one delivery, got %d", fired)
	}
}

// Reassigning the variable that held the subject does not move the
// subscription: the original instance stays observed until Cancel.
func TestReassignmentKeepsOriginalSubject(t *testing.T) {
	hub := NewHub()
	current := &profile{Name: "first"}
	original := current

	fired := 0
	sub := hub.Observe(current, "Name", func(old, new any) {
		fired++
	})
	defer sub.Cancel()

	current = &profile{Name: "second"}

	hub.Notify(current, "Name", "second", "2nd")
	if fired != 0 {
		t.Fatalf("Expected no delivery for the new instance, got %d", fired)
	}

	hub.Notify(original, "Name", "first", "1st")
	if fired != 1 {
		t.Fatalf("Expected delivery for the original instance, got %d", fired)
	}
}

func TestCancel(t *testing.T) {
	hub := NewHub()
	p := &profile{}

	fired := 0
	sub := hub.Observe(p, "Name", func(old, new any) {
		fired++
	})

	hub.Notify(p, "Name", "", "x")
	sub.Cancel()
	hub.Notify(p, "Name", "x", "y")

	if fired != 1 {
		t.Fatalf("Expected one delivery before cancel, got %d", fired)
	}

	// Cancel is idempotent.
	sub.Cancel()

	if hub.ObserverCount(p, "Name") != 0 {
		t.Fatal("Expected no observers after cancel")
	}
}

func TestMultipleObservers(t *testing.T) {
	hub := NewHub()
	p := &profile{}

	var mu sync.Mutex
	seen := make(map[int]bool)
	subs := make([]*Subscription, 0, 3)
	for i := 0; i < 3; i++ {
		i := i
		subs = append(subs, hub.Observe(p, "Name", func(old, new any) {
			mu.Lock()
			seen[i] = true
			mu.Unlock()
		}))
	}
	defer func() {
		for _, s := range subs {
			s.Cancel()
		}
	}()

	if hub.ObserverCount(p, "Name") != 3 {
		t.Fatalf("Expected 3 observers, got %d", hub.ObserverCount(p, "Name"))
	}

	hub.Notify(p, "Name", "", "x")

	if len(seen) != 3 {
		t.Fatalf("Expected all observers notified, got %d", len(seen))
	}

	subs[1].Cancel()
	if hub.ObserverCount(p, "Name") != 2 {
		t.Fatalf("Expected 2 observers after cancel, got %d", hub.ObserverCount(p, "Name"))
	}
}

func TestObserveValidation(t *testing.T) {
	hub := NewHub()

	t.Run("NonPointerPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("Expected panic for non-pointer subject")
			}
		}()
		hub.Observe(profile{}, "Name", func(old, new any) {})
	})

	t.Run("NilCallbackPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("Expected panic for nil callback")
			}
		}()
		hub.Observe(&profile{}, "Name", nil)
	})
}

func TestConcurrentNotify(t *testing.T) {
	hub := NewHub()
	p := &profile{}

	var count int64
	var mu sync.Mutex
	sub := hub.Observe(p, "Name", func(old, new any) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	defer sub.Cancel()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Notify(p, "Name", "a", "b")
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if count != 10 {
		t.Fatalf("Expected 10 deliveries, got %d", count)
	}
}
