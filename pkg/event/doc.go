// Package event implements the dispatcher core of the observe framework:
// named event types with ordered, short-circuiting handler chains, plus the
// property surface every dispatching object exposes.
//
// Toolkit objects embed Dispatcher and initialize it with themselves as
// owner:
//
//	type Worker struct {
//	    event.Dispatcher
//	}
//
//	func (w *Worker) DeclareProperties() map[string]property.Descriptor {
//	    return map[string]property.Descriptor{
//	        "progress": property.NewValue(0.0),
//	    }
//	}
//
//	func (w *Worker) DeclareEvents() []event.Event {
//	    return []event.Event{{Name: "on_start", Default: w.onStart}}
//	}
//
//	w := &Worker{}
//	if err := w.Init(w, event.WithValue("progress", 0.5)); err != nil { ... }
//
// Declaration tables replace name-convention reflection: which events a type
// has, what their default handlers are, and which methods observe which
// properties is all statically visible at the type definition.
//
// # Dispatch protocol
//
// Dispatch invokes an event's bound handlers in bind order. The first
// handler returning true short-circuits the chain: later handlers and the
// default handler are skipped and Dispatch returns true. Otherwise the
// event's default handler runs and its result is returned. Handlers are
// held weakly; a handler whose owner has been disposed is skipped and
// pruned silently.
//
// # Threading
//
// A Dispatcher is NOT thread-safe. All calls must happen on one logical
// thread (the UI thread). Handlers may re-enter Bind, Unbind and Dispatch
// freely: dispatch iterates a snapshot, so handlers bound during a pass
// never fire in that pass, and handlers unbound mid-pass are skipped.
package event
