// Package recovery guards goroutines and the main entry point against
// unhandled panics, logging the stack trace through the same logrus
// stack the rest of the demo host uses before exiting.
package recovery

import (
	"os"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

var log = logrus.StandardLogger()

// HandlePanic should be deferred at the top of main() or a goroutine.
// It logs panic details and exits with code 1.
func HandlePanic() {
	if r := recover(); r != nil {
		log.WithField("stack", string(debug.Stack())).Errorf("panic: %v", r)
		os.Exit(1)
	}
}

// HandlePanicFunc logs panic details, runs cleanup, then exits with code 1.
func HandlePanicFunc(cleanup func()) {
	if r := recover(); r != nil {
		log.WithField("stack", string(debug.Stack())).Errorf("panic: %v", r)
		if cleanup != nil {
			cleanup()
		}
		os.Exit(1)
	}
}
