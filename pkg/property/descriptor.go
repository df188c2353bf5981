package property

import "github.com/go-drift/observe/pkg/weak"

// Descriptor is the capability every property implementation provides.
// Descriptors are stateless with respect to instances: one descriptor is
// shared by all instances of a type, and all per-instance state lives in
// the Storage passed to each method.
type Descriptor interface {
	// Link allocates the instance's slot for this property. It runs for
	// every property before any LinkDeps call.
	Link(st *Storage, name string)

	// LinkDeps resolves references to sibling properties. By the time it
	// runs, every declared property has an allocated slot.
	LinkDeps(st *Storage, name string)

	// Bind appends an observer to this property's per-instance subscriber
	// list. Observers receive (sender, newValue).
	Bind(st *Storage, name string, m *weak.Method)

	// Unbind removes the first matching observer, by identity.
	Unbind(st *Storage, name string, m *weak.Method)

	// Get returns the property's current value for the instance.
	Get(st *Storage, name string) any

	// Set assigns the property for the instance and reports whether the
	// value changed (and observers were notified). sender is passed
	// through to observers.
	Set(st *Storage, name string, sender any, value any) bool
}

// Declarer is implemented by types that declare observable properties.
// The table is read once per concrete type and cached process-wide; it
// must be the same on every call.
type Declarer interface {
	DeclareProperties() map[string]Descriptor
}

// Merge combines declaration tables, later tables overriding earlier ones.
// Useful for types that embed a base and extend its properties:
//
//	func (w *Slider) DeclareProperties() map[string]property.Descriptor {
//	    return property.Merge(w.RangeBase.DeclareProperties(),
//	        map[string]property.Descriptor{
//	            "step": property.NewValue(0.0),
//	        })
//	}
func Merge(tables ...map[string]Descriptor) map[string]Descriptor {
	out := make(map[string]Descriptor)
	for _, tbl := range tables {
		for name, d := range tbl {
			out[name] = d
		}
	}
	return out
}
