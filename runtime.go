package usedrag

import "sync"

// Runtime is the scene's scheduler. Code running inside its execution
// context (Scene.Update, posted tasks, guarded listeners) may write Cells;
// writes from anywhere else are rejected.
//
// Runtime is NOT thread-safe apart from Post. Enter and Cell writes must
// happen on the update goroutine.
type Runtime struct {
	depth int

	mu      sync.Mutex
	pending []func()
}

// NewRuntime creates a runtime with no active context.
func NewRuntime() *Runtime {
	return &Runtime{}
}

// Enter establishes the execution context. Contexts nest. The returned
// release func may be called any number of times; only the first call has
// an effect.
func (rt *Runtime) Enter() func() {
	rt.depth++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		rt.depth--
	}
}

// Active reports whether the caller is inside the execution context.
func (rt *Runtime) Active() bool {
	return rt.depth > 0
}

// Post queues fn to run inside the execution context on the next Flush.
// Safe to call from any goroutine.
func (rt *Runtime) Post(fn func()) {
	if fn == nil {
		return
	}
	rt.mu.Lock()
	rt.pending = append(rt.pending, fn)
	rt.mu.Unlock()
}

// Flush runs all posted tasks inside the execution context. Tasks posted
// while flushing run on the next Flush.
func (rt *Runtime) Flush() {
	rt.mu.Lock()
	tasks := rt.pending
	rt.pending = nil
	rt.mu.Unlock()

	if len(tasks) == 0 {
		return
	}
	release := rt.Enter()
	defer release()
	for _, fn := range tasks {
		fn()
	}
}

// Cell is a reactive value owned by a Runtime. Writes are accepted only
// inside the runtime's execution context; listeners run after each accepted
// write.
type Cell[T any] struct {
	rt        *Runtime
	value     T
	version   uint64
	listeners []func(T)
}

// NewCell creates a cell holding initial.
func NewCell[T any](rt *Runtime, initial T) *Cell[T] {
	return &Cell[T]{rt: rt, value: initial}
}

// Value returns the current value. Reads are allowed anywhere.
func (c *Cell[T]) Value() T {
	return c.value
}

// Version returns the number of accepted writes.
func (c *Cell[T]) Version() uint64 {
	return c.version
}

// Set stores value and notifies listeners. Returns ErrNoContext, and drops
// the write, when called outside the execution context.
func (c *Cell[T]) Set(value T) error {
	if !c.rt.Active() {
		if globalDebug {
			debugWarn("Cell.Set outside execution context; write dropped")
		}
		return ErrNoContext
	}
	c.value = value
	c.version++
	for _, fn := range c.listeners {
		fn(value)
	}
	return nil
}

// Update applies transform to the current value and stores the result.
func (c *Cell[T]) Update(transform func(T) T) error {
	return c.Set(transform(c.value))
}

// AddListener registers fn to be called after each accepted write. Returns
// an unsubscribe func.
func (c *Cell[T]) AddListener(fn func(T)) func() {
	c.listeners = append(c.listeners, fn)
	idx := len(c.listeners) - 1
	return func() {
		if idx < len(c.listeners) {
			c.listeners[idx] = func(T) {}
		}
	}
}
