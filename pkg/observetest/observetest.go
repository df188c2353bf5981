// Package observetest provides helpers for testing code built on the
// observe framework.
//
// The central type is Journal, a cross-handler call recorder: every handler
// it creates appends to one shared log, so tests can assert invocation
// order across an entire dispatch chain:
//
//	j := observetest.NewJournal()
//	w.Bind("on_start", j.Method("first", false))
//	w.Bind("on_start", j.Method("second", true))
//	w.Dispatch("on_start")
//	// j.Names() == ["first", "second"]
package observetest

import "github.com/go-drift/observe/pkg/weak"

// Call records one handler invocation.
type Call struct {
	// Handler is the name the handler was created with.
	Handler string
	// Sender is the dispatching object.
	Sender any
	// Args are the dispatch or notification arguments.
	Args []any
}

// Journal records handler invocations across any number of handlers, in
// the order they fired.
type Journal struct {
	calls []Call
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Handler returns a recording handler. Every invocation is appended to the
// journal under name, and result is returned to the dispatcher (true
// short-circuits event dispatch).
func (j *Journal) Handler(name string, result bool) weak.HandlerFunc {
	return func(sender any, args ...any) bool {
		j.calls = append(j.calls, Call{Handler: name, Sender: sender, Args: args})
		return result
	}
}

// Method is Handler wrapped as a strong weak.Method, ready to Bind.
func (j *Journal) Method(name string, result bool) *weak.Method {
	return weak.Func(j.Handler(name, result))
}

// Calls returns the recorded invocations in order.
func (j *Journal) Calls() []Call {
	return j.calls
}

// Names returns just the handler names, in invocation order.
func (j *Journal) Names() []string {
	names := make([]string, len(j.calls))
	for i, c := range j.calls {
		names[i] = c.Handler
	}
	return names
}

// Len returns the number of recorded invocations.
func (j *Journal) Len() int {
	return len(j.calls)
}

// Reset clears the journal without invalidating issued handlers.
func (j *Journal) Reset() {
	j.calls = nil
}
