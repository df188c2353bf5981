package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output with each error field broken out.
	Verbose bool
}

// HandleError logs an Error to stderr.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[observe error] %s [%s]", err.Op, err.Kind)
		if err.Name != "" {
			fmt.Fprintf(os.Stderr, " name=%s", err.Name)
		}
		if err.Err != nil {
			fmt.Fprintf(os.Stderr, ": %v", err.Err)
		}
		fmt.Fprintln(os.Stderr)
	} else {
		fmt.Fprintf(os.Stderr, "[observe error] %v\n", err)
	}
}
