package event

import (
	"github.com/go-drift/observe/pkg/errors"
	"github.com/go-drift/observe/pkg/property"
)

// Get returns the current value of a property. Unknown names are a lookup
// error.
func (d *Dispatcher) Get(name string) (any, error) {
	const op = "event.Get"
	desc, ok := d.props[name]
	if !ok {
		return nil, errors.New(op, errors.KindLookup, name)
	}
	return desc.Get(d.storage, name), nil
}

// Set assigns a property value, notifying subscribers when it changes. The
// boolean reports whether the value actually changed. Unknown names are a
// lookup error.
func (d *Dispatcher) Set(name string, value any) (bool, error) {
	const op = "event.Set"
	desc, ok := d.props[name]
	if !ok {
		return false, errors.New(op, errors.KindLookup, name)
	}
	return desc.Set(d.storage, name, d.owner, value), nil
}

// HasProperty reports whether the instance knows a property by this name,
// declared or dynamic.
func (d *Dispatcher) HasProperty(name string) bool {
	_, ok := d.props[name]
	return ok
}

// CreateProperty adds an untyped value property to this one instance at
// runtime. The type-wide table is untouched: other instances do not see
// the property. Its value reads as property.Empty until first assignment.
// Creating an already-known name is a no-op; forbidden names are a config
// error.
func (d *Dispatcher) CreateProperty(name string) error {
	const op = "event.CreateProperty"
	if property.Forbidden(name) {
		return errors.New(op, errors.KindConfig, name)
	}
	if _, ok := d.props[name]; ok {
		return nil
	}
	desc := property.NewDynamic()
	desc.Link(d.storage, name)
	desc.LinkDeps(d.storage, name)
	d.props[name] = desc
	return nil
}

// Properties returns the declared and dynamic properties that currently
// have allocated storage on this instance. Introspection only: the result
// is a fresh map and never forces lazy properties into existence.
func (d *Dispatcher) Properties() map[string]property.Descriptor {
	out := make(map[string]property.Descriptor, len(d.props))
	for name, desc := range d.props {
		if _, ok := d.storage.Slot(name); ok {
			out[name] = desc
		}
	}
	return out
}

// Setter returns a callable that assigns the named property, for wiring one
// property to mirror another:
//
//	set, _ := follower.Setter("value")
//	leader.Bind("value", follower.Weak(func(sender any, args ...any) bool {
//	    set(args[0])
//	    return false
//	}))
func (d *Dispatcher) Setter(name string) (func(any) bool, error) {
	const op = "event.Setter"
	desc, ok := d.props[name]
	if !ok {
		return nil, errors.New(op, errors.KindLookup, name)
	}
	return func(value any) bool {
		return desc.Set(d.storage, name, d.owner, value)
	}, nil
}

// Getter returns a callable that reads the named property.
func (d *Dispatcher) Getter(name string) (func() any, error) {
	const op = "event.Getter"
	desc, ok := d.props[name]
	if !ok {
		return nil, errors.New(op, errors.KindLookup, name)
	}
	return func() any {
		return desc.Get(d.storage, name)
	}, nil
}
