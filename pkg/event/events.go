package event

import (
	"strings"

	"github.com/go-drift/observe/pkg/errors"
	"github.com/go-drift/observe/pkg/trace"
	"github.com/go-drift/observe/pkg/weak"
)

// Prefix is the mandatory event-type name prefix. Names without it are
// rejected at registration.
const Prefix = "on_"

// RegisterEventType registers a named event. The name must carry the "on_"
// prefix (naming error otherwise) and a default handler for it must already
// be known, either from the owner's declaration table or a prior SetDefault
// (config error otherwise). Registering an already-registered event is a
// no-op that preserves its bound handlers.
func (d *Dispatcher) RegisterEventType(name string) error {
	const op = "event.RegisterEventType"
	if !strings.HasPrefix(name, Prefix) {
		return errors.New(op, errors.KindNaming, name)
	}
	if d.defaults[name] == nil {
		return errors.New(op, errors.KindConfig, name)
	}
	if _, ok := d.stack[name]; !ok {
		d.stack[name] = nil
		trace.Logf("register %q uid=%d", name, d.uid)
	}
	return nil
}

// UnregisterEventTypes removes the given event types entirely. Bound
// handlers are discarded, not disabled: a later re-registration starts with
// an empty handler list. Unknown names are ignored.
func (d *Dispatcher) UnregisterEventTypes(names ...string) {
	for _, name := range names {
		delete(d.stack, name)
	}
}

// IsEventType reports whether name is a registered event type.
func (d *Dispatcher) IsEventType(name string) bool {
	_, ok := d.stack[name]
	return ok
}

// SetDefault installs or replaces the default handler for an event name.
// fn must be non-nil. A replacement takes effect on the next dispatch,
// including for events registered before the call.
func (d *Dispatcher) SetDefault(name string, fn weak.HandlerFunc) {
	if fn == nil || d.defaults == nil {
		return
	}
	d.defaults[name] = fn
}

// Bind attaches a handler to an event or property.
//
// Event names ("on_" prefix): the handler is appended to the event's chain
// in call order. Binding to an unregistered event name is deliberately a
// silent no-op, so subclass-specific events can be bound optimistically.
// Other names must denote a property; the handler joins that property's
// subscriber list. Unknown property names are a lookup error.
func (d *Dispatcher) Bind(name string, m *weak.Method) error {
	const op = "event.Bind"
	if strings.HasPrefix(name, Prefix) {
		if handlers, ok := d.stack[name]; ok {
			d.stack[name] = append(handlers, m)
		}
		return nil
	}
	desc, ok := d.props[name]
	if !ok {
		return errors.New(op, errors.KindLookup, name)
	}
	desc.Bind(d.storage, name, m)
	return nil
}

// Unbind removes the first bound occurrence of m from an event's chain or
// a property's subscriber list, matching by handle identity. Absent
// handlers and unregistered events are silent no-ops; unknown property
// names are a lookup error.
func (d *Dispatcher) Unbind(name string, m *weak.Method) error {
	const op = "event.Unbind"
	if strings.HasPrefix(name, Prefix) {
		handlers, ok := d.stack[name]
		if !ok {
			return nil
		}
		for i, bound := range handlers {
			if bound == m {
				d.stack[name] = append(handlers[:i], handlers[i+1:]...)
				return nil
			}
		}
		return nil
	}
	desc, ok := d.props[name]
	if !ok {
		return errors.New(op, errors.KindLookup, name)
	}
	desc.Unbind(d.storage, name, m)
	return nil
}

// Dispatch invokes the named event's handler chain in bind order, then the
// default handler.
//
// Each handler is resolved first: dead references are pruned and skipped.
// The first handler returning true short-circuits the chain and Dispatch
// returns true immediately. Otherwise the default handler runs with the
// same arguments and its result is returned.
//
// Dispatching a name that was never registered is a lookup error, distinct
// from a registered event with no handlers.
func (d *Dispatcher) Dispatch(name string, args ...any) (bool, error) {
	const op = "event.Dispatch"
	handlers, ok := d.stack[name]
	if !ok {
		return false, errors.New(op, errors.KindLookup, name)
	}
	trace.Logf("dispatch %q uid=%d handlers=%d", name, d.uid, len(handlers))

	if len(handlers) > 0 {
		snapshot := make([]*weak.Method, len(handlers))
		copy(snapshot, handlers)
		for _, m := range snapshot {
			fn, alive := m.Resolve()
			if !alive {
				d.pruneHandler(name, m)
				continue
			}
			if !d.handlerBound(name, m) {
				continue
			}
			if fn(d.owner, args...) {
				return true, nil
			}
		}
	}

	def := d.defaults[name]
	if def == nil {
		return false, nil
	}
	return def(d.owner, args...), nil
}

func (d *Dispatcher) pruneHandler(name string, m *weak.Method) {
	handlers := d.stack[name]
	for i, bound := range handlers {
		if bound == m {
			d.stack[name] = append(handlers[:i], handlers[i+1:]...)
			trace.Logf("prune dead handler %q uid=%d", name, d.uid)
			return
		}
	}
}

func (d *Dispatcher) handlerBound(name string, m *weak.Method) bool {
	for _, bound := range d.stack[name] {
		if bound == m {
			return true
		}
	}
	return false
}
