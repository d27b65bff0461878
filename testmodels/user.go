/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package testmodels provides attribute-declared models used by tests across
// the library. The User declaration doubles as the reference example of a
// hand-written registry with coercing setters.
package testmodels

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/modelstore/registry"
)

// User is the canonical test model: three scalar attributes plus an optional
// timestamp.
type User struct {

	// Unique identifier for the user.
	ID int `json:"id"`

	// Display name of the user.
	Name string `json:"name"`

	// Email address of the user.
	Email string `json:"email"`

	// Timestamp when the user was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"createdAt,omitempty"`
}

func init() {
	registry.RegisterModel("User", func() interface{} {
		return &User{}
	})

	registry.RegisterAttrs[User]([]registry.Attr[User]{
		{
			Name: "id",
			Get:  func(u *User) any { return u.ID },
			Set: func(u *User, v any) {
				// Decoded JSON numbers arrive as float64.
				switch n := v.(type) {
				case int:
					u.ID = n
				case int64:
					u.ID = int(n)
				case float64:
					u.ID = int(n)
				}
			},
		},
		{
			Name: "name",
			Get:  func(u *User) any { return u.Name },
			Set: func(u *User, v any) {
				if s, ok := v.(string); ok {
					u.Name = s
				}
			},
		},
		{
			Name: "email",
			Get:  func(u *User) any { return u.Email },
			Set: func(u *User, v any) {
				if s, ok := v.(string); ok {
					u.Email = s
				}
			},
		},
		{
			Name: "createdAt",
			Get:  func(u *User) any { return u.CreatedAt },
			Set: func(u *User, v any) {
				switch t := v.(type) {
				case nil:
					u.CreatedAt = nil
				case *strfmt.DateTime:
					u.CreatedAt = t
				case strfmt.DateTime:
					u.CreatedAt = &t
				case string:
					if dt, err := strfmt.ParseDateTime(t); err == nil {
						u.CreatedAt = &dt
					}
				}
			},
		},
	})
}
