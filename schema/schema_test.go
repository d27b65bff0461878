/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/suparena/modelstore/errors"
	"github.com/suparena/modelstore/registry"
)

const userSchema = `
models:
  - name: User
    attributes:
      - id
      - name
      - email
`

func TestLoad(t *testing.T) {
	t.Run("ScalarAttributes", func(t *testing.T) {
		models, err := Load(strings.NewReader(userSchema))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(models) != 1 {
			t.Fatalf("Expected 1 model, got %d", len(models))
		}
		m := models[0]
		if m.Name != "User" {
			t.Fatalf("Expected User, got %q", m.Name)
		}
		names := m.AttrNames()
		if len(names) != 3 || names[0] != "id" || names[1] != "name" || names[2] != "email" {
			t.Fatalf("Expected [id name email], got %v", names)
		}
	})

	t.Run("MappingAttributes", func(t *testing.T) {
		doc := `
models:
  - name: Rating
    attributes:
      - id
      - name: site_url
        field: SiteURL
`
		models, err := Load(strings.NewReader(doc))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		attrs := models[0].Attributes
		if attrs[1].Name != "site_url" || attrs[1].FieldName() != "SiteURL" {
			t.Fatalf("Expected explicit field SiteURL, got %+v", attrs[1])
		}
	})

	t.Run("UnknownFieldsRejected", func(t *testing.T) {
		doc := `
models:
  - name: User
    attrs: [id]
`
		if _, err := Load(strings.NewReader(doc)); err == nil {
			t.Fatal("Expected error for unknown YAML field")
		}
	})

	t.Run("EmptyModelName", func(t *testing.T) {
		doc := `
models:
  - attributes: [id]
`
		if _, err := Load(strings.NewReader(doc)); !errors.IsValidationError(err) {
			t.Fatalf("Expected validation error, got %v", err)
		}
	})

	t.Run("DuplicateAttribute", func(t *testing.T) {
		doc := `
models:
  - name: User
    attributes: [id, id]
`
		if _, err := Load(strings.NewReader(doc)); !errors.IsValidationError(err) {
			t.Fatalf("Expected validation error, got %v", err)
		}
	})
}

func TestFieldNameDerivation(t *testing.T) {
	tests := []struct {
		attr Attribute
		want string
	}{
		{Attribute{Name: "id"}, "Id"},
		{Attribute{Name: "email"}, "Email"},
		{Attribute{Name: "id", Field: "ID"}, "ID"},
		{Attribute{Name: ""}, ""},
	}
	for _, tt := range tests {
		if got := tt.attr.FieldName(); got != tt.want {
			t.Errorf("FieldName(%+v) = %q, want %q", tt.attr, got, tt.want)
		}
	}
}

// Test model for Verify
type account struct {
	ID    int
	Name  string
	Email string
}

func init() {
	registry.RegisterAttrs[account]([]registry.Attr[account]{
		{Name: "id", Get: func(a *account) any { return a.ID }, Set: func(a *account, v any) {}},
		{Name: "name", Get: func(a *account) any { return a.Name }, Set: func(a *account, v any) {}},
		{Name: "email", Get: func(a *account) any { return a.Email }, Set: func(a *account, v any) {}},
	})
}

func TestVerify(t *testing.T) {
	t.Run("Match", func(t *testing.T) {
		m := Model{Name: "Account", Attributes: []Attribute{
			{Name: "id"}, {Name: "name"}, {Name: "email"},
		}}
		if err := Verify[account](m); err != nil {
			t.Fatalf("Expected match, got %v", err)
		}
	})

	t.Run("MissingRegistry", func(t *testing.T) {
		type stranger struct{}
		m := Model{Name: "Stranger", Attributes: []Attribute{{Name: "id"}}}
		if err := Verify[stranger](m); !errors.IsNoRegistry(err) {
			t.Fatalf("Expected ErrNoRegistry, got %v", err)
		}
	})

	t.Run("CountDrift", func(t *testing.T) {
		m := Model{Name: "Account", Attributes: []Attribute{
			{Name: "id"}, {Name: "name"},
		}}
		if err := Verify[account](m); !errors.IsSchemaDrift(err) {
			t.Fatalf("Expected ErrSchemaDrift, got %v", err)
		}
	})

	t.Run("OrderDrift", func(t *testing.T) {
		m := Model{Name: "Account", Attributes: []Attribute{
			{Name: "name"}, {Name: "id"}, {Name: "email"},
		}}
		if err := Verify[account](m); !errors.IsSchemaDrift(err) {
			t.Fatalf("Expected ErrSchemaDrift, got %v", err)
		}
	})
}

// The generator's flags must live on the global FlagSet so a host command's
// single flag.Parse() reaches them.
func TestGeneratorFlagsRegistered(t *testing.T) {
	tests := []struct {
		name       string
		defaultVal string
	}{
		{"in", "models.yaml"},
		{"out", ""},
		{"pkg", "models"},
	}
	for _, tt := range tests {
		f := flag.Lookup(tt.name)
		if f == nil {
			t.Errorf("Flag -%s not registered on the global FlagSet", tt.name)
			continue
		}
		if f.DefValue != tt.defaultVal {
			t.Errorf("Flag -%s default = %q, want %q", tt.name, f.DefValue, tt.defaultVal)
		}
	}
}

func TestRun(t *testing.T) {
	t.Run("WritesOutputFile", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "models.yaml")
		out := filepath.Join(dir, "models_gen.go")
		if err := os.WriteFile(in, []byte(userSchema), 0o644); err != nil {
			t.Fatalf("Failed to write schema: %v", err)
		}

		if err := Run(in, out, "models"); err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("Failed to read output: %v", err)
		}
		if !strings.Contains(string(data), `registry.RegisterModel("User"`) {
			t.Fatalf("Output missing registration:\n%s", data)
		}
	})

	t.Run("MissingInput", func(t *testing.T) {
		if err := Run(filepath.Join(t.TempDir(), "nope.yaml"), "", "models"); err == nil {
			t.Fatal("Expected error for missing schema file")
		}
	})
}

func TestGenerate(t *testing.T) {
	models, err := Load(strings.NewReader(userSchema))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var b strings.Builder
	if err := Generate(&b, "models", models); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"// Code generated by modelgen. DO NOT EDIT.",
		"package models",
		`registry.RegisterModel("User"`,
		"registry.RegisterAttrs[User]",
		`Name: "email",`,
		"func(m *User) any { return m.Email }",
		"modelstore.Assign(&m.Id, v)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Generated code missing %q:\n%s", want, out)
		}
	}
}
