/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/suparena/modelstore/errors"
	"github.com/suparena/modelstore/registry"
)

// Attribute is one declared attribute of a model schema. In YAML it is either
// a bare string (the attribute name) or a mapping with an explicit Go field:
//
//	attributes:
//	  - id
//	  - name: email
//	    field: EmailAddress
type Attribute struct {
	Name  string `yaml:"name"`
	Field string `yaml:"field"`
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (a *Attribute) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&a.Name)
	}
	type plain Attribute
	return node.Decode((*plain)(a))
}

// FieldName returns the Go field backing this attribute: the explicit Field
// if set, otherwise the attribute name with its first rune upper-cased.
func (a Attribute) FieldName() string {
	if a.Field != "" {
		return a.Field
	}
	r := []rune(a.Name)
	if len(r) == 0 {
		return ""
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Model is one model declaration: a name plus its ordered attribute list.
type Model struct {
	Name       string      `yaml:"name"`
	Attributes []Attribute `yaml:"attributes"`
}

// AttrNames returns the declared attribute names in order.
func (m Model) AttrNames() []string {
	names := make([]string, len(m.Attributes))
	for i, a := range m.Attributes {
		names[i] = a.Name
	}
	return names
}

// File is the top-level layout of a model schema file.
type File struct {
	Models []Model `yaml:"models"`
}

// Load parses model declarations from YAML.
func Load(r io.Reader) ([]Model, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	for _, m := range f.Models {
		if err := validate(m); err != nil {
			return nil, err
		}
	}
	return f.Models, nil
}

// LoadFile parses model declarations from a YAML file on disk.
func LoadFile(path string) ([]Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func validate(m Model) error {
	if m.Name == "" {
		return errors.NewValidationError("name", "model name must not be empty")
	}
	if len(m.Attributes) == 0 {
		return errors.NewValidationError("attributes", fmt.Sprintf("model %q declares no attributes", m.Name))
	}
	seen := make(map[string]bool, len(m.Attributes))
	for _, a := range m.Attributes {
		if a.Name == "" {
			return errors.NewValidationError("attributes", fmt.Sprintf("model %q has an unnamed attribute", m.Name))
		}
		if seen[a.Name] {
			return errors.NewValidationError("attributes", fmt.Sprintf("model %q repeats attribute %q", m.Name, a.Name))
		}
		seen[a.Name] = true
	}
	return nil
}

// Verify checks that the compiled attribute registry for T matches the
// declared schema for the same model: same attribute names, same order.
// A mismatch is reported as schema drift so CI can catch a YAML file and a
// registry declaration edited out of step.
func Verify[T any](m Model) error {
	got, ok := registry.AttrNames[T]()
	if !ok {
		return errors.NewNoRegistryError(m.Name)
	}
	want := m.AttrNames()
	if len(got) != len(want) {
		return errors.NewSchemaDriftError(m.Name, fmt.Sprintf(
			"schema declares %d attributes [%s], registry has %d [%s]",
			len(want), strings.Join(want, " "), len(got), strings.Join(got, " ")))
	}
	for i := range want {
		if got[i] != want[i] {
			return errors.NewSchemaDriftError(m.Name, fmt.Sprintf(
				"attribute %d is %q in schema but %q in registry", i, want[i], got[i]))
		}
	}
	return nil
}
