// Package weak provides non-owning handler references for the observe
// framework.
//
// A bound handler must never keep its owning object alive: emitter and
// observer would otherwise form a reference cycle, the classic GUI-toolkit
// leak. Weakness is modeled explicitly rather than through GC-level weak
// pointers: an observing object owns an Anchor (a liveness token it releases
// on disposal), and a Method handle resolves to the callable only while that
// anchor is live. Dead handles are not errors; dispatch skips and prunes
// them silently.
//
// Example:
//
//	type listView struct {
//	    weak.Anchor
//	}
//
//	func (v *listView) onScroll(sender any, args ...any) bool { return false }
//
//	m := weak.MethodOf(&v.Anchor, v.onScroll)
//	worker.Bind("on_scroll", m)
//	// ...
//	v.Release() // worker drops the handler on its next dispatch
package weak

// HandlerFunc is the uniform callback shape for event handlers and property
// observers. sender is the dispatching object. For event dispatch a true
// return short-circuits the handler chain; property observers' return values
// are ignored.
type HandlerFunc func(sender any, args ...any) bool

// Anchor is the liveness token an observing object owns. Embed it in the
// observer and call Release from the observer's Dispose. The zero value is
// live.
type Anchor struct {
	released bool
}

// Release marks the anchor dead. Every Method created from it resolves to
// dead afterwards. Release is idempotent.
func (a *Anchor) Release() {
	a.released = true
}

// Alive reports whether the anchor is still live. A nil anchor is always
// alive; it backs strong references created with Func.
func (a *Anchor) Alive() bool {
	return a == nil || !a.released
}

// Method is a handler reference held by handler lists and property observer
// lists. Its pointer identity is the equality key for bind/unbind: binding
// the same *Method twice creates two occurrences, and unbinding removes the
// first.
type Method struct {
	anchor *Anchor
	fn     HandlerFunc
}

// MethodOf wraps fn in a weak reference tied to anchor. The reference is
// dead once the anchor is released.
func MethodOf(anchor *Anchor, fn HandlerFunc) *Method {
	return &Method{anchor: anchor, fn: fn}
}

// Func wraps a free function or closure that has no owning object. The
// reference is strong and never dies.
func Func(fn HandlerFunc) *Method {
	return &Method{fn: fn}
}

// Resolve returns the callable and whether the reference is still live.
// A dead reference yields (nil, false).
func (m *Method) Resolve() (HandlerFunc, bool) {
	if m == nil || m.fn == nil || !m.anchor.Alive() {
		return nil, false
	}
	return m.fn, true
}

// Alive reports whether the reference would currently resolve.
func (m *Method) Alive() bool {
	_, ok := m.Resolve()
	return ok
}
