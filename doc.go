/*
Package modelstore provides an attribute-declared model toolkit for Go
applications: a model type declares an ordered attribute registry once, and
the library derives tolerant construction, symmetric serialization, durable
key-value persistence, and per-field change observation from that single
declaration.

The library follows a declare-once workflow:
  - Declare: register an ordered attribute list (with typed accessors) per
    model type, typically in an init() function or through generated code
  - Construct: build entities from external mappings (decoded payloads),
    ignoring unrecognized keys
  - Persist: encode registered fields through the symmetric codec into a
    key-value store backend
  - Observe: subscribe to per-field changes on a specific entity instance

Key Features:
  - Type-safe operations using Go generics
  - Registry-driven round-trip guarantee: decoding what was encoded yields
    an equal entity on every registered field, in declaration order
  - Forward-compatible decoding: keys absent from old serialized data leave
    the field at its default, never an error
  - Multiple storage backends (DynamoDB, in-memory; more planned)
  - Explicit observation handles with explicit cancellation
  - YAML model schemas with drift verification and code generation

Basic Usage:

	// Declare the registry once (init or generated code)
	registry.RegisterAttrs[User]([]registry.Attr[User]{
	    {Name: "id", Get: func(u *User) any { return u.ID }, Set: ...},
	    {Name: "name", Get: func(u *User) any { return u.Name }, Set: ...},
	})

	// Construct from an external mapping
	user := modelstore.Construct[User](payload)

	// Persist through an explicitly scoped store handle
	users := modelstore.NewModelStore[User](mem.New(), "user")
	err := users.Save(ctx, "1000", user)

	// Observe field changes on this specific instance
	sub := hub.Observe(user, "name", func(old, new any) { ... })
	defer sub.Cancel()

For more information, see the documentation at https://github.com/suparena/modelstore
*/
package modelstore
