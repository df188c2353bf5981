// Package main provides the observegen code generator. It reads an
// observe.yaml schema describing a package's observable types and emits the
// explicit declaration tables (DeclareProperties, DeclareEvents,
// DeclareObservers) the observe framework consumes.
//
// Usage:
//
//	observegen [dir]
//
// dir defaults to the current directory and must contain observe.yaml. The
// generated file is written next to it.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-drift/observe/cmd/observegen/internal/gen"
	"github.com/go-drift/observe/pkg/trace"
)

func main() {
	trace.InitFromEnv()

	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := run(dir); err != nil {
		fmt.Fprintf(os.Stderr, "observegen: %v\n", err)
		os.Exit(1)
	}
}

func run(dir string) error {
	schema, err := gen.Load(filepath.Join(dir, "observe.yaml"))
	if err != nil {
		return err
	}

	source := "observe.yaml"
	if root, err := gen.FindModuleRoot(dir); err == nil {
		if importPath, err := gen.ImportPath(root, dir); err == nil {
			source = importPath + "/observe.yaml"
		}
	}

	code, err := gen.Generate(schema, source)
	if err != nil {
		return err
	}

	out := filepath.Join(dir, schema.Output)
	if err := os.WriteFile(out, code, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}
