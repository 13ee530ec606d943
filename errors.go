package usedrag

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
)

var (
	// ErrNilElement is returned when a hook is mounted without an element.
	ErrNilElement = errors.New("usedrag: nil element")
	// ErrHookDestroyed is returned by Mount after Destroy.
	ErrHookDestroyed = errors.New("usedrag: hook destroyed")
	// ErrNodeDisposed is returned by Node operations on a disposed node.
	ErrNodeDisposed = errors.New("usedrag: node disposed")
	// ErrSceneMismatch is returned when a hook's node is mounted in a scene
	// other than the one it was bound to.
	ErrSceneMismatch = errors.New("usedrag: node mounted in a different scene")
	// ErrUnknownEvent is returned when registering a listener for an
	// EventKind outside the defined set.
	ErrUnknownEvent = errors.New("usedrag: unknown event kind")
	// ErrNoContext is returned by Cell writes made outside the runtime's
	// execution context.
	ErrNoContext = errors.New("usedrag: write outside execution context")
)

// ErrorKind identifies the category of an Error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindSetup indicates the element could not be resolved or measured.
	KindSetup
	// KindRegister indicates the element rejected a listener registration.
	KindRegister
	// KindUnregister indicates the element failed to remove a listener.
	KindUnregister
	// KindCallback indicates the drag handler failed.
	KindCallback
)

func (k ErrorKind) String() string {
	switch k {
	case KindSetup:
		return "setup"
	case KindRegister:
		return "register"
	case KindUnregister:
		return "unregister"
	case KindCallback:
		return "callback"
	default:
		return "unknown"
	}
}

// Error is a structured error produced by a DragHook.
type Error struct {
	// Op is the operation that failed (e.g. "DragHook.Mount").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Event is the event kind involved, if any.
	Event EventKind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	if e.Kind == KindRegister || e.Kind == KindUnregister {
		return fmt.Sprintf("%s [%s] event=%s: %v", e.Op, e.Kind, e.Event, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a panic recovered from a drag handler.
type PanicError struct {
	// Op is the operation that panicked.
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors that cannot be returned to a caller, such as
// those raised inside raw event listeners or deferred mounts.
type ErrorHandler interface {
	HandleError(err *Error)
	HandlePanic(err *PanicError)
}

// LogHandler is an ErrorHandler that logs to stderr.
type LogHandler struct {
	// Verbose enables stack traces for panics.
	Verbose bool
}

// HandleError logs err to stderr.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[usedrag] error: %v\n", err)
}

// HandlePanic logs err to stderr.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[usedrag] %v\n", err)
	if h.Verbose && err.StackTrace != "" {
		_, _ = fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// defaultErrorHandler is used by hooks whose HookConfig has no handler.
var defaultErrorHandler ErrorHandler = &LogHandler{}

// captureStack returns the current call stack, skipping captureStack and its
// caller.
func captureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
