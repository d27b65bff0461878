/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// Generate emits Go registration code for the given models into w: one init()
// block per model registering its factory and attribute list, with accessors
// dispatching through modelstore.Assign for loosely typed values.
func Generate(w io.Writer, pkg string, models []Model) error {
	fmt.Fprintf(w, "// Code generated by modelgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(w, "package %s\n\n", pkg)
	fmt.Fprintf(w, "import (\n")
	fmt.Fprintf(w, "\t\"github.com/suparena/modelstore\"\n")
	fmt.Fprintf(w, "\t\"github.com/suparena/modelstore/registry\"\n")
	fmt.Fprintf(w, ")\n")

	for _, m := range models {
		fmt.Fprintf(w, "\nfunc init() {\n")
		fmt.Fprintf(w, "\tregistry.RegisterModel(%q, func() interface{} {\n", m.Name)
		fmt.Fprintf(w, "\t\treturn &%s{}\n", m.Name)
		fmt.Fprintf(w, "\t})\n\n")
		fmt.Fprintf(w, "\tregistry.RegisterAttrs[%s]([]registry.Attr[%s]{\n", m.Name, m.Name)
		for _, a := range m.Attributes {
			field := a.FieldName()
			fmt.Fprintf(w, "\t\t{\n")
			fmt.Fprintf(w, "\t\t\tName: %q,\n", a.Name)
			fmt.Fprintf(w, "\t\t\tGet:  func(m *%s) any { return m.%s },\n", m.Name, field)
			fmt.Fprintf(w, "\t\t\tSet:  func(m *%s, v any) { modelstore.Assign(&m.%s, v) },\n", m.Name, field)
			fmt.Fprintf(w, "\t\t},\n")
		}
		fmt.Fprintf(w, "\t})\n")
		fmt.Fprintf(w, "}\n")
	}
	return nil
}

// Generator flags live on the global FlagSet so a host command (cmd/modelgen)
// can define its own flags alongside them and parse everything in one pass.
var (
	inFlag  = flag.String("in", "models.yaml", "Path to the model schema file")
	outFlag = flag.String("out", "", "Output file (defaults to stdout)")
	pkgFlag = flag.String("pkg", "models", "Package name for generated code")
)

// Run reads the schema at in and writes generated registration code for
// package pkg to the out file, or to stdout when out is empty.
func Run(in, out, pkg string) error {
	models, err := LoadFile(in)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return Generate(w, pkg, models)
}

// Main is the entry point used by cmd/modelgen. It parses the global flags
// (unless the host command already did) and runs the generator.
func Main() {
	if !flag.Parsed() {
		flag.Parse()
	}
	if err := Run(*inFlag, *outFlag, *pkgFlag); err != nil {
		fmt.Fprintf(os.Stderr, "modelgen: %v\n", err)
		os.Exit(1)
	}
}
