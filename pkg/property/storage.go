package property

import (
	"github.com/go-drift/observe/pkg/trace"
	"github.com/go-drift/observe/pkg/weak"
)

// SlotKind distinguishes statically declared properties from properties
// created on a single instance at runtime.
type SlotKind int

const (
	// Static marks a slot backed by the type's declared property table.
	Static SlotKind = iota
	// Dynamic marks a slot created on one instance with CreateProperty.
	Dynamic
)

func (k SlotKind) String() string {
	if k == Dynamic {
		return "dynamic"
	}
	return "static"
}

// Slot is the per-instance state of one property: its boxed current value
// and its observer list.
//
// Slots are NOT thread-safe. They must only be mutated from the UI thread.
type Slot struct {
	kind      SlotKind
	value     any
	set       bool
	observers []*weak.Method
}

// Kind reports whether the slot is statically declared or dynamic.
func (s *Slot) Kind() SlotKind {
	return s.kind
}

// Bind appends an observer. Observers fire in bind order.
func (s *Slot) Bind(m *weak.Method) {
	if m == nil {
		return
	}
	s.observers = append(s.observers, m)
}

// Unbind removes the first occurrence of m, by identity. No-op if absent.
func (s *Slot) Unbind(m *weak.Method) {
	for i, bound := range s.observers {
		if bound == m {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// ObserverCount returns the number of bound observers, dead or alive.
func (s *Slot) ObserverCount() int {
	return len(s.observers)
}

// Notify invokes every live observer with the new value, in bind order.
// Dead references are pruned. Observers bound during notification do not
// fire in this pass; observers unbound during notification are skipped.
func (s *Slot) Notify(sender any, value any) {
	if len(s.observers) == 0 {
		return
	}
	snapshot := make([]*weak.Method, len(s.observers))
	copy(snapshot, s.observers)
	for _, m := range snapshot {
		fn, alive := m.Resolve()
		if !alive {
			s.Unbind(m)
			continue
		}
		if !s.bound(m) {
			continue
		}
		fn(sender, value)
	}
}

func (s *Slot) bound(m *weak.Method) bool {
	for _, bound := range s.observers {
		if bound == m {
			return true
		}
	}
	return false
}

// Storage holds the per-instance property state: one slot per linked
// property. It is created at instance construction and mutated for the
// instance's whole life.
//
// Storage is NOT thread-safe. It must only be accessed from the UI thread.
type Storage struct {
	slots map[string]*Slot
}

// NewStorage creates empty per-instance storage.
func NewStorage() *Storage {
	return &Storage{slots: make(map[string]*Slot)}
}

// Alloc ensures a slot exists for name and returns it. An existing slot is
// returned unchanged, so repeated linking preserves bound observers.
func (st *Storage) Alloc(name string, kind SlotKind) *Slot {
	if s, ok := st.slots[name]; ok {
		return s
	}
	s := &Slot{kind: kind}
	st.slots[name] = s
	trace.Logf("alloc slot %q kind=%s", name, kind)
	return s
}

// Slot returns the slot for name, if allocated.
func (st *Storage) Slot(name string) (*Slot, bool) {
	s, ok := st.slots[name]
	return s, ok
}

// Names returns the names of all allocated slots.
func (st *Storage) Names() []string {
	names := make([]string, 0, len(st.slots))
	for name := range st.slots {
		names = append(names, name)
	}
	return names
}

// ValueOf returns the current raw value of an allocated slot. Slots that
// were never assigned report their zero state as (nil, false); descriptors
// apply their own defaults on top of this.
func (st *Storage) ValueOf(name string) (any, bool) {
	s, ok := st.slots[name]
	if !ok || !s.set {
		return nil, false
	}
	return s.value, true
}
