/*
Package schema loads YAML model declarations and keeps them in step with the
compiled attribute registries.

Schema files declare models and their ordered attributes:

	models:
	  - name: User
	    attributes:
	      - id
	      - name
	      - email

An attribute may also carry an explicit Go field when the default derivation
(first rune upper-cased) is wrong:

	attributes:
	  - name: site_url
	    field: SiteURL

Verification:
Verify[T] compares a declared model against the registry compiled into the
binary and reports drift — a missing registry, a different attribute count,
or attributes out of order — as errors.ErrSchemaDrift.

Code Generation:
Generate emits the registration blocks the declarations imply:

	func init() {
	    registry.RegisterModel("User", func() interface{} {
	        return &User{}
	    })

	    registry.RegisterAttrs[User]([]registry.Attr[User]{
	        {
	            Name: "id",
	            Get:  func(m *User) any { return m.ID },
	            Set:  func(m *User, v any) { modelstore.Assign(&m.ID, v) },
	        },
	        ...
	    })
	}

This automation reduces boilerplate and ensures consistency between the
schema file and the attribute declarations the codec relies on.
*/
package schema
