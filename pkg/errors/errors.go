// Package errors provides structured error handling for the observe
// framework.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindNaming indicates an event-type name that violates the naming
	// convention (missing the "on_" prefix).
	KindNaming
	// KindConfig indicates a registration or declaration problem: a missing
	// default handler, or a property declared with a forbidden name.
	KindConfig
	// KindLookup indicates access to an event or property name the instance
	// does not know.
	KindLookup
)

func (k Kind) String() string {
	switch k {
	case KindNaming:
		return "naming"
	case KindConfig:
		return "config"
	case KindLookup:
		return "lookup"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the observe framework.
//
// All three kinds are fatal to the calling operation: they are surfaced
// immediately and never retried or swallowed. Dead weak handler references
// are not errors and never produce one.
type Error struct {
	// Op is the operation that failed (e.g., "event.RegisterEventType").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Name is the event or property name involved, if any.
	Name string
	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Name != "" && e.Err != nil:
		return fmt.Sprintf("%s [%s] %q: %v", e.Op, e.Kind, e.Name, e.Err)
	case e.Name != "":
		return fmt.Sprintf("%s [%s] %q", e.Op, e.Kind, e.Name)
	case e.Err != nil:
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a structured error.
func New(op string, kind Kind, name string) *Error {
	return &Error{Op: op, Kind: kind, Name: name}
}

// Wrap creates a structured error around an underlying one.
func Wrap(op string, kind Kind, name string, err error) *Error {
	return &Error{Op: op, Kind: kind, Name: name, Err: err}
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == kind
}

// KindOf returns the kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
