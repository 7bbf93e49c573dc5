package easygame

import (
	"fmt"
	"os"
	"sync"
)

// Context is the explicit handle for the process-wide display and input
// subsystem. Create exactly one with NewContext, pass it to NewCanvas and
// NewEngine, and let the engine tear it down on closure (or call Shutdown
// yourself when embedding the loop elsewhere).
//
// The window, the frame clock, and the input devices are process-wide
// resources underneath; running two Contexts at once is unsupported.
type Context struct {
	shutdown sync.Once
	closed   bool
	debug    bool

	// exit performs the deliberate hard process exit on closure.
	// Replaced in tests.
	exit func(code int)
}

// contextActive tracks whether a Context currently owns the subsystem.
// Only a diagnostic: a second Context still works well enough for tests,
// but real games must not create one.
var contextActive bool

// NewContext initializes the process-wide subsystem handle.
func NewContext() *Context {
	if contextActive {
		_, _ = fmt.Fprintf(os.Stderr, "[easygame] warning: NewContext called while another Context is active; concurrent contexts are unsupported\n")
	}
	contextActive = true
	return &Context{exit: os.Exit}
}

// SetDebugMode enables per-frame timing logs on stderr for engines created
// with this Context.
func (c *Context) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// Shutdown tears the subsystem down. Idempotent; every call after the first
// is a no-op. Any synthetic input source still installed is dropped so the
// physical devices are visible again.
func (c *Context) Shutdown() {
	c.shutdown.Do(func() {
		c.closed = true
		contextActive = false
		resetInput()
	})
}

// Closed reports whether Shutdown has run.
func (c *Context) Closed() bool {
	return c.closed
}

// terminate is the deliberate, unconditional process exit taken when the
// engine observes a close request. Caller cleanup is not guaranteed to run.
func (c *Context) terminate() {
	c.Shutdown()
	c.exit(0)
}
