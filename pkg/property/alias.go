package property

import (
	"github.com/go-drift/observe/pkg/weak"
)

// Alias is a property computed from other properties on the same instance.
// It declares its dependencies by name; whenever one of them changes, the
// alias recomputes and notifies its own observers if the result differs.
//
// Alias is the reason instance linking is two-phase: its dependency wiring
// needs the sibling slots to exist already.
type Alias struct {
	// Compute derives the current value from the instance storage.
	Compute func(st *Storage) any
	// Apply maps an assignment back onto the underlying properties and
	// reports whether anything changed. A nil Apply makes the alias
	// read-only: assignments are ignored.
	Apply func(st *Storage, sender any, value any) bool
	// Deps names the properties whose changes trigger recomputation.
	Deps []string
}

// Link allocates the alias's own slot, used to cache the last published
// value for change detection.
func (a *Alias) Link(st *Storage, name string) {
	st.Alloc(name, Static)
}

// LinkDeps subscribes the alias to each dependency slot.
func (a *Alias) LinkDeps(st *Storage, name string) {
	recompute := weak.Func(func(sender any, args ...any) bool {
		a.publish(st, name, sender)
		return false
	})
	for _, dep := range a.Deps {
		if s, ok := st.Slot(dep); ok {
			s.Bind(recompute)
		}
	}
}

func (a *Alias) publish(st *Storage, name string, sender any) {
	s, ok := st.Slot(name)
	if !ok || a.Compute == nil {
		return
	}
	value := a.Compute(st)
	if s.set && equalValues(s.value, value) {
		return
	}
	s.value = value
	s.set = true
	s.Notify(sender, value)
}

// Bind appends an observer to the alias's subscriber list.
func (a *Alias) Bind(st *Storage, name string, m *weak.Method) {
	if s, ok := st.Slot(name); ok {
		s.Bind(m)
	}
}

// Unbind removes the first matching observer.
func (a *Alias) Unbind(st *Storage, name string, m *weak.Method) {
	if s, ok := st.Slot(name); ok {
		s.Unbind(m)
	}
}

// Get computes the value fresh from the underlying properties.
func (a *Alias) Get(st *Storage, name string) any {
	if a.Compute == nil {
		return nil
	}
	return a.Compute(st)
}

// Set routes the assignment through Apply. The alias republishes (and
// notifies) via its dependency subscriptions when Apply changes an
// underlying property.
func (a *Alias) Set(st *Storage, name string, sender any, value any) bool {
	if a.Apply == nil {
		return false
	}
	return a.Apply(st, sender, value)
}
