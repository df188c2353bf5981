package property

import (
	"reflect"
	"sync"

	"github.com/go-drift/observe/pkg/errors"
	"github.com/go-drift/observe/pkg/trace"
)

// forbiddenNames are reserved for low-level input events and may never be
// declared as properties.
var forbiddenNames = map[string]struct{}{
	"touch_down": {},
	"touch_move": {},
	"touch_up":   {},
}

// Forbidden reports whether name is reserved and unusable as a property.
func Forbidden(name string) bool {
	_, ok := forbiddenNames[name]
	return ok
}

// Table is the immutable name-to-descriptor mapping for one concrete type.
// All instances of a type share one Table identity.
type Table map[string]Descriptor

// Registry caches property tables process-wide, keyed by concrete type.
// A type's table is built from its Declarer on first discovery and never
// rebuilt, amortizing declaration cost across instances.
//
// The registry is the only synchronized state in the module; instances
// themselves are single-threaded.
type Registry struct {
	mu     sync.Mutex
	tables map[reflect.Type]Table
}

// NewRegistry creates an empty registry. Most callers use the package-level
// Discover, which shares one process-wide registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[reflect.Type]Table)}
}

// DefaultRegistry is the process-wide table cache.
var DefaultRegistry = NewRegistry()

// Discover returns the property table for owner's concrete type, building
// and caching it on first call. Repeat discovery for the same type returns
// the identical cached Table. It fails with a config error if a declared
// name is forbidden.
func (r *Registry) Discover(owner Declarer) (Table, error) {
	const op = "property.Discover"

	t := reflect.TypeOf(owner)
	r.mu.Lock()
	defer r.mu.Unlock()

	if tbl, ok := r.tables[t]; ok {
		return tbl, nil
	}

	decls := owner.DeclareProperties()
	tbl := make(Table, len(decls))
	for name, d := range decls {
		if Forbidden(name) {
			return nil, errors.New(op, errors.KindConfig, name)
		}
		if d == nil {
			return nil, errors.New(op, errors.KindConfig, name)
		}
		tbl[name] = d
	}
	r.tables[t] = tbl
	trace.Logf("discovered %d properties for %v", len(tbl), t)
	return tbl, nil
}

// Discover builds or fetches the cached table for owner's type from the
// process-wide registry.
func Discover(owner Declarer) (Table, error) {
	return DefaultRegistry.Discover(owner)
}

// LinkInstance links every property in the table to one instance's storage:
// a first pass allocates every slot, a second pass resolves cross-property
// dependencies. The split guarantees LinkDeps can read sibling slots.
func LinkInstance(st *Storage, tbl Table) {
	for name, d := range tbl {
		d.Link(st, name)
	}
	for name, d := range tbl {
		d.LinkDeps(st, name)
	}
}
