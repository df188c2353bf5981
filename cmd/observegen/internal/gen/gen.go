// Package gen turns an observe.yaml declaration schema into Go source with
// the explicit property, event and observer tables the framework consumes.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/observe/pkg/event"
	"github.com/go-drift/observe/pkg/property"
)

// Schema is the root of an observe.yaml file.
type Schema struct {
	// Package is the Go package name of the generated file.
	Package string `yaml:"package"`
	// Output is the generated file name (default observe_gen.go).
	Output string `yaml:"output,omitempty"`
	// Types lists the declaring types.
	Types []Type `yaml:"types"`
}

// Type describes one declaring type.
type Type struct {
	Name       string     `yaml:"name"`
	Properties []Property `yaml:"properties,omitempty"`
	Events     []Event    `yaml:"events,omitempty"`
	Observers  []Observer `yaml:"observers,omitempty"`
}

// Property describes one declared property. Default is a Go literal
// inserted verbatim.
type Property struct {
	Name    string `yaml:"name"`
	Default string `yaml:"default"`
}

// Event describes one declared event type. Handler names the method used
// as the mandatory default handler.
type Event struct {
	Name    string `yaml:"name"`
	Handler string `yaml:"handler"`
}

// Observer wires a method to a property's change notifications.
type Observer struct {
	Property string `yaml:"property"`
	Handler  string `yaml:"handler"`
}

// Load reads and parses an observe.yaml file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if s.Output == "" {
		s.Output = "observe_gen.go"
	}
	return &s, nil
}

// Validate checks the schema against the framework's declaration rules
// before any code is emitted.
func (s *Schema) Validate() error {
	if s.Package == "" {
		return fmt.Errorf("schema: package is required")
	}
	if len(s.Types) == 0 {
		return fmt.Errorf("schema: at least one type is required")
	}
	for _, t := range s.Types {
		if t.Name == "" {
			return fmt.Errorf("schema: type with empty name")
		}
		for _, p := range t.Properties {
			if p.Name == "" {
				return fmt.Errorf("schema: %s: property with empty name", t.Name)
			}
			if property.Forbidden(p.Name) {
				return fmt.Errorf("schema: %s: property %q uses a reserved name", t.Name, p.Name)
			}
			if p.Default == "" {
				return fmt.Errorf("schema: %s: property %q needs a default literal", t.Name, p.Name)
			}
		}
		for _, e := range t.Events {
			if !strings.HasPrefix(e.Name, event.Prefix) {
				return fmt.Errorf("schema: %s: event %q must start with %q", t.Name, e.Name, event.Prefix)
			}
			if e.Handler == "" {
				return fmt.Errorf("schema: %s: event %q needs a default handler method", t.Name, e.Name)
			}
		}
		for _, o := range t.Observers {
			if o.Property == "" || o.Handler == "" {
				return fmt.Errorf("schema: %s: observer needs both property and handler", t.Name)
			}
		}
	}
	return nil
}

var fileTemplate = template.Must(template.New("observe_gen").Parse(`// Code generated by observegen; source {{.Source}}. DO NOT EDIT.

package {{.Schema.Package}}

import (
{{- if .NeedsEvent}}
	"github.com/go-drift/observe/pkg/event"
{{- end}}
{{- if .NeedsProperty}}
	"github.com/go-drift/observe/pkg/property"
{{- end}}
)
{{range .Schema.Types}}{{$t := .}}
{{- if .Properties}}

// DeclareProperties declares {{$t.Name}}'s observable properties.
func (x *{{$t.Name}}) DeclareProperties() map[string]property.Descriptor {
	return map[string]property.Descriptor{
{{- range .Properties}}
		{{printf "%q" .Name}}: property.NewValue({{.Default}}),
{{- end}}
	}
}
{{- end}}
{{- if .Events}}

// DeclareEvents declares {{$t.Name}}'s event types and default handlers.
func (x *{{$t.Name}}) DeclareEvents() []event.Event {
	return []event.Event{
{{- range .Events}}
		{Name: {{printf "%q" .Name}}, Default: x.{{.Handler}}},
{{- end}}
	}
}
{{- end}}
{{- if .Observers}}

// DeclareObservers wires {{$t.Name}}'s property observers.
func (x *{{$t.Name}}) DeclareObservers() []event.Observer {
	return []event.Observer{
{{- range .Observers}}
		{Property: {{printf "%q" .Property}}, Handler: x.{{.Handler}}},
{{- end}}
	}
}
{{- end}}
{{end}}`))

// Generate renders the schema as gofmt-formatted Go source. source is the
// import path or file name recorded in the generated header.
func Generate(s *Schema, source string) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	needsEvent, needsProperty := false, false
	for _, t := range s.Types {
		if len(t.Events) > 0 || len(t.Observers) > 0 {
			needsEvent = true
		}
		if len(t.Properties) > 0 {
			needsProperty = true
		}
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Schema        *Schema
		Source        string
		NeedsEvent    bool
		NeedsProperty bool
	}{Schema: s, Source: source, NeedsEvent: needsEvent, NeedsProperty: needsProperty})
	if err != nil {
		return nil, fmt.Errorf("failed to render template: %w", err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not compile: %w", err)
	}
	return formatted, nil
}

// ImportPath resolves the full import path of dir inside the module rooted
// at root, validating the result.
func ImportPath(root, dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	modPath := modfile.ModulePath(data)
	if modPath == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return "", err
	}
	importPath := modPath
	if rel != "." {
		importPath = modPath + "/" + filepath.ToSlash(rel)
	}
	if err := module.CheckImportPath(importPath); err != nil {
		return "", fmt.Errorf("invalid import path %q: %w", importPath, err)
	}
	return importPath, nil
}

// FindModuleRoot walks up from dir to the enclosing go.mod.
func FindModuleRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}
