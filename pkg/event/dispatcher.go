package event

import (
	"sync/atomic"

	"github.com/go-drift/observe/pkg/errors"
	"github.com/go-drift/observe/pkg/property"
	"github.com/go-drift/observe/pkg/weak"
)

// Event declares one event type: its name (which must carry the "on_"
// prefix) and its mandatory default handler.
type Event struct {
	Name    string
	Default weak.HandlerFunc
}

// Observer declares a method auto-bound to a property's change
// notifications at construction time.
type Observer struct {
	Property string
	Handler  weak.HandlerFunc
}

// EventDeclarer is implemented by owners that declare event types. Every
// declared event is registered during Init.
type EventDeclarer interface {
	DeclareEvents() []Event
}

// ObserverDeclarer is implemented by owners whose methods observe their own
// properties. Each entry is bound, weakly through the dispatcher's anchor,
// to the named property during Init.
type ObserverDeclarer interface {
	DeclareObservers() []Observer
}

// Option configures Init.
type Option func(*initConfig)

type initialValue struct {
	name  string
	value any
}

type initConfig struct {
	values []initialValue
}

// WithValue assigns an initial property value. Values are applied after
// declaration wiring, in option order, so declared observers see them.
func WithValue(name string, value any) Option {
	return func(c *initConfig) {
		c.values = append(c.values, initialValue{name: name, value: value})
	}
}

var uidCounter atomic.Uint64

// Dispatcher is the reactive core every toolkit object embeds. It owns the
// instance's event stack (event name to ordered weak handler list), its
// property storage, and its process-unique identity.
//
// The zero value is not usable; call Init first.
type Dispatcher struct {
	anchor   weak.Anchor
	owner    any
	uid      uint64
	props    map[string]property.Descriptor
	storage  *property.Storage
	stack    map[string][]*weak.Method
	defaults map[string]weak.HandlerFunc
}

// Init wires the dispatcher for owner. It discovers and links the owner's
// declared properties (two-phase), registers its declared event types,
// binds its declared observers, and finally applies WithValue options in
// order. owner is the sender passed to every handler.
func (d *Dispatcher) Init(owner any, opts ...Option) error {
	const op = "event.Init"
	if owner == nil {
		return errors.New(op, errors.KindConfig, "owner")
	}

	d.owner = owner
	d.uid = uidCounter.Add(1)
	d.storage = property.NewStorage()
	d.props = make(map[string]property.Descriptor)
	d.stack = make(map[string][]*weak.Method)
	d.defaults = make(map[string]weak.HandlerFunc)

	if decl, ok := owner.(property.Declarer); ok {
		tbl, err := property.Discover(decl)
		if err != nil {
			return err
		}
		for name, desc := range tbl {
			d.props[name] = desc
		}
		property.LinkInstance(d.storage, tbl)
	}

	if decl, ok := owner.(EventDeclarer); ok {
		for _, e := range decl.DeclareEvents() {
			if e.Default != nil {
				d.defaults[e.Name] = e.Default
			}
			if err := d.RegisterEventType(e.Name); err != nil {
				return err
			}
		}
	}

	if decl, ok := owner.(ObserverDeclarer); ok {
		for _, o := range decl.DeclareObservers() {
			if err := d.Bind(o.Property, weak.MethodOf(&d.anchor, o.Handler)); err != nil {
				return err
			}
		}
	}

	var cfg initConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, iv := range cfg.values {
		if _, err := d.Set(iv.name, iv.value); err != nil {
			return err
		}
	}
	return nil
}

// UID returns the dispatcher's process-unique, monotonically assigned
// identity. Stable and cheap wherever object identity is needed.
func (d *Dispatcher) UID() uint64 {
	return d.uid
}

// Owner returns the object this dispatcher was initialized for.
func (d *Dispatcher) Owner() any {
	return d.owner
}

// Anchor returns the dispatcher's liveness anchor. Handlers wrapped with it
// die when the dispatcher is disposed.
func (d *Dispatcher) Anchor() *weak.Anchor {
	return &d.anchor
}

// Weak wraps fn in a weak reference tied to this dispatcher's lifetime.
// Use it when this object observes another object:
//
//	other.Bind("on_change", w.Weak(w.onOtherChanged))
func (d *Dispatcher) Weak(fn weak.HandlerFunc) *weak.Method {
	return weak.MethodOf(&d.anchor, fn)
}

// Dispose releases the dispatcher: every handler created through Weak (and
// every declared observer) goes dead, and the event stack is dropped.
// Dead handlers require no further cleanup; emitters prune them lazily.
func (d *Dispatcher) Dispose() {
	d.anchor.Release()
	d.stack = nil
	d.defaults = nil
}
