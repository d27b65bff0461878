/*
Package registry manages attribute declarations and model factories for ModelStore.

The registry system enables:
  - A single source of truth for which fields of a model participate in
    construction and serialization
  - Deterministic, declaration-ordered encoding
  - Model resolution by name for schema tooling

Attribute Registry:
Associates a Go type with its ordered attribute list and typed accessors:

	registry.RegisterAttrs[User]([]registry.Attr[User]{
	    {
	        Name: "id",
	        Get:  func(u *User) any { return u.ID },
	        Set: func(u *User, v any) {
	            switch n := v.(type) {
	            case int:
	                u.ID = n
	            case float64:
	                u.ID = int(n)
	            }
	        },
	    },
	    {
	        Name: "name",
	        Get:  func(u *User) any { return u.Name },
	        Set:  func(u *User, v any) { s, _ := v.(string); u.Name = s },
	    },
	})

Model Registry:
Maps model names to factory functions:

	registry.RegisterModel("User", func() interface{} {
	    return &User{}
	})

The registry is thread-safe and should be populated during initialization,
typically in init() functions or through generated code. No attribute outside
the registry is ever read or written by generic logic.
*/
package registry
