/*
Package observe provides per-field change notification scoped to specific
entity instances.

A Hub maps (instance, field) subjects to observer callbacks. Observing
returns an explicit Subscription handle; the observation lives until the
handle is cancelled, never implicitly:

	hub := observe.NewHub()
	sub := hub.Observe(user, "name", func(old, new any) {
	    fmt.Printf("name: %v -> %v\n", old, new)
	})
	defer sub.Cancel()

	hub.Notify(user, "name", "Clay", "Clayton")

Subjects are identified by pointer, so a subscription follows the instance it
was created for. Reassigning the variable that held the instance does not
transfer the subscription to the new instance — the original instance remains
observed until Cancel is called. Making that lifetime explicit (retain the
handle, cancel it when done) is deliberate; it replaces designs where
reassignment silently orphans observers.

Mutations made through modelstore.SetAttr notify the hub automatically;
direct field writes do not.
*/
package observe
