package property

import (
	"testing"

	"github.com/go-drift/observe/pkg/weak"
)

func TestAllocIsIdempotent(t *testing.T) {
	st := NewStorage()
	s1 := st.Alloc("value", Static)
	s1.Bind(weak.Func(func(sender any, args ...any) bool { return false }))

	s2 := st.Alloc("value", Static)
	if s1 != s2 {
		t.Fatal("re-alloc should return the existing slot")
	}
	if s2.ObserverCount() != 1 {
		t.Error("re-alloc must preserve bound observers")
	}
}

func TestUnbindRemovesFirstOccurrenceOnly(t *testing.T) {
	st := NewStorage()
	s := st.Alloc("value", Static)

	m := weak.Func(func(sender any, args ...any) bool { return false })
	s.Bind(m)
	s.Bind(m)

	s.Unbind(m)
	if s.ObserverCount() != 1 {
		t.Errorf("expected 1 remaining occurrence, got %d", s.ObserverCount())
	}

	s.Unbind(m)
	if s.ObserverCount() != 0 {
		t.Errorf("expected 0 occurrences, got %d", s.ObserverCount())
	}

	// Unbinding a handler that is not bound is a no-op.
	s.Unbind(m)
}

func TestNotifyOrderAndArgs(t *testing.T) {
	st := NewStorage()
	s := st.Alloc("value", Static)

	var order []string
	s.Bind(weak.Func(func(sender any, args ...any) bool {
		order = append(order, "first")
		return false
	}))
	s.Bind(weak.Func(func(sender any, args ...any) bool {
		order = append(order, "second")
		if args[0] != 42 {
			t.Errorf("observer got %v, want 42", args[0])
		}
		return false
	}))

	sender := struct{ name string }{"owner"}
	s.Notify(sender, 42)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("observers fired out of order: %v", order)
	}
}

func TestNotifyPrunesDeadObservers(t *testing.T) {
	st := NewStorage()
	s := st.Alloc("value", Static)

	var anchor weak.Anchor
	calls := 0
	s.Bind(weak.MethodOf(&anchor, func(sender any, args ...any) bool {
		calls++
		return false
	}))
	survived := 0
	s.Bind(weak.Func(func(sender any, args ...any) bool {
		survived++
		return false
	}))

	anchor.Release()
	s.Notify(nil, "x")

	if calls != 0 {
		t.Error("dead observer must not fire")
	}
	if survived != 1 {
		t.Error("live observer after a dead one must still fire")
	}
	if s.ObserverCount() != 1 {
		t.Errorf("dead observer should be pruned, have %d", s.ObserverCount())
	}
}

func TestNotifySnapshotSemantics(t *testing.T) {
	st := NewStorage()
	s := st.Alloc("value", Static)

	lateCalls := 0
	late := weak.Func(func(sender any, args ...any) bool {
		lateCalls++
		return false
	})

	var second *weak.Method
	secondCalls := 0
	second = weak.Func(func(sender any, args ...any) bool {
		secondCalls++
		return false
	})

	s.Bind(weak.Func(func(sender any, args ...any) bool {
		// Mutations during notification: additions wait for the next
		// pass, removals take effect immediately.
		s.Bind(late)
		s.Unbind(second)
		return false
	}))
	s.Bind(second)

	s.Notify(nil, 1)
	if lateCalls != 0 {
		t.Error("observer bound during notification must not fire in the same pass")
	}
	if secondCalls != 0 {
		t.Error("observer unbound during notification must be skipped")
	}

	s.Notify(nil, 2)
	if lateCalls != 1 {
		t.Error("observer bound during a previous pass should fire now")
	}
}

func TestValueOf(t *testing.T) {
	st := NewStorage()
	s := st.Alloc("value", Dynamic)

	if _, ok := st.ValueOf("value"); ok {
		t.Error("unassigned slot should report no value")
	}
	s.value = "hello"
	s.set = true
	if v, ok := st.ValueOf("value"); !ok || v != "hello" {
		t.Errorf("ValueOf = %v, %v", v, ok)
	}
	if _, ok := st.ValueOf("missing"); ok {
		t.Error("missing slot should report no value")
	}
}
