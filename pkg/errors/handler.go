package errors

import "sync"

// ErrorHandler receives errors the framework chooses to report rather than
// propagate, such as trace-level diagnostics an application wants collected
// in one place.
type ErrorHandler interface {
	HandleError(err *Error)
}

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
func Report(err *Error) {
	if err == nil {
		return
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}
