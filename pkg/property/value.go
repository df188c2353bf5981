package property

import (
	"reflect"

	"github.com/go-drift/observe/pkg/trace"
	"github.com/go-drift/observe/pkg/weak"
)

// emptyValue is the type of the Empty sentinel.
type emptyValue struct{}

func (emptyValue) String() string { return "<empty>" }

// Empty is the absent-value sentinel. Dynamically created properties read
// as Empty until first assignment.
var Empty emptyValue

// Value is the generic boxed-value descriptor: it holds any value, applies
// a default until first assignment, and notifies observers when the value
// changes.
type Value struct {
	def     any
	dynamic bool
}

// NewValue creates a value property with the given default.
func NewValue(def any) *Value {
	return &Value{def: def}
}

// NewDynamic creates the untyped value property used for instance-local
// runtime properties. It defaults to the Empty sentinel.
func NewDynamic() *Value {
	return &Value{def: Empty, dynamic: true}
}

// Link allocates the instance slot.
func (v *Value) Link(st *Storage, name string) {
	kind := Static
	if v.dynamic {
		kind = Dynamic
	}
	st.Alloc(name, kind)
}

// LinkDeps is a no-op: a plain value depends on nothing.
func (v *Value) LinkDeps(st *Storage, name string) {}

// Bind appends an observer to the instance's subscriber list.
func (v *Value) Bind(st *Storage, name string, m *weak.Method) {
	if s, ok := st.Slot(name); ok {
		s.Bind(m)
	}
}

// Unbind removes the first matching observer.
func (v *Value) Unbind(st *Storage, name string, m *weak.Method) {
	if s, ok := st.Slot(name); ok {
		s.Unbind(m)
	}
}

// Get returns the current value, or the default before first assignment.
func (v *Value) Get(st *Storage, name string) any {
	s, ok := st.Slot(name)
	if !ok || !s.set {
		return v.def
	}
	return s.value
}

// Set assigns the value. Assigning a value equal to the current one is a
// no-op returning false; otherwise observers are notified with the new
// value and Set returns true.
func (v *Value) Set(st *Storage, name string, sender any, value any) bool {
	s, ok := st.Slot(name)
	if !ok {
		return false
	}
	current := v.def
	if s.set {
		current = s.value
	}
	if equalValues(current, value) {
		return false
	}
	s.value = value
	s.set = true
	trace.Logf("set %q = %v", name, value)
	s.Notify(sender, value)
	return true
}

// equalValues reports whether two boxed values compare equal. Values of
// different or non-comparable types always count as different, so setting
// a slice or map property always notifies.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
