package usedrag

import "reflect"

// HookConfig configures a DragHook. The zero value is usable.
type HookConfig struct {
	// Name identifies the hook in error reports and DragEvents.
	Name string
	// ErrorHandler receives errors raised inside raw listeners and deferred
	// mounts. Defaults to a LogHandler.
	ErrorHandler ErrorHandler
	// Sink, if set, receives a DragEvent for every handler invocation.
	Sink EventSink
}

// DragHook tracks pointerdown/pointermove/pointerup on one element and
// reports drag progress to a DragHandler.
//
// The hook is either Idle (no origin) or Dragging (origin present).
// pointerdown records the pointer position relative to the element's
// bounding box; pointermove reports the pointer position minus that origin
// as DragMove; pointerup reports the absolute pointer position as DragEnd
// and returns to Idle. Pointers are not distinguished: a second pointerdown
// while dragging replaces the origin.
//
// DragHook is NOT thread-safe. All methods and listeners run on the UI
// goroutine.
type DragHook struct {
	cfg     HookConfig
	sched   Scheduler
	handler DragHandler

	el        Element
	listeners listenerSet

	origin    Vec2
	dragging  bool
	destroyed bool
}

// NewDragHook creates an unmounted hook. handler is stored for the hook's
// whole lifetime. sched may be nil when the host has no execution context.
func NewDragHook(sched Scheduler, handler DragHandler, cfg HookConfig) *DragHook {
	if handler == nil {
		panic("usedrag: nil drag handler")
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = defaultErrorHandler
	}
	return &DragHook{cfg: cfg, sched: sched, handler: handler}
}

// Mount attaches the hook's listeners to el. Mounting the element the hook
// is already attached to is a no-op. Mounting a different element detaches
// from the old one first and abandons any drag in progress.
//
// If a listener cannot be registered, the listeners already attached are
// removed and the hook is left unmounted.
func (h *DragHook) Mount(el Element) error {
	if h.destroyed {
		return ErrHookDestroyed
	}
	if el == nil {
		return &Error{Op: "DragHook.Mount", Kind: KindSetup, Err: ErrNilElement}
	}
	if h.listeners.attached() {
		if sameElement(h.el, el) {
			return nil
		}
		h.unbind("DragHook.Mount")
	}

	h.el = el
	err := h.listeners.attachAll(el, [numEventKinds]func(PointerEvent){
		EventPointerDown: h.onPointerDown,
		EventPointerMove: h.onPointerMove,
		EventPointerUp:   h.onPointerUp,
	})
	if err != nil {
		h.el = nil
		if e, ok := err.(*Error); ok {
			e.Op = "DragHook.Mount"
		}
		return err
	}
	if globalDebug {
		debugLogf("hook %q mounted", h.cfg.Name)
	}
	return nil
}

// sameElement reports whether a and b are the same element. Elements of a
// non-comparable dynamic type are never considered the same.
func sameElement(a, b Element) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// Destroy detaches every listener and drops the drag origin. No DragEnd is
// emitted for a drag in progress. Destroy is idempotent and safe on a hook
// that was never mounted.
func (h *DragHook) Destroy() {
	if h.destroyed {
		return
	}
	h.destroyed = true
	h.unbind("DragHook.Destroy")
	if globalDebug {
		debugLogf("hook %q destroyed", h.cfg.Name)
	}
}

// unbind detaches all listeners and clears the element and origin. Unregister
// failures are reported and do not stop the remaining detaches.
func (h *DragHook) unbind(op string) {
	for _, err := range h.listeners.detachAll() {
		if e, ok := err.(*Error); ok {
			e.Op = op
			h.cfg.ErrorHandler.HandleError(e)
		}
	}
	h.el = nil
	h.dragging = false
	h.origin = Vec2{}
}

// Mounted reports whether the hook's listeners are attached.
func (h *DragHook) Mounted() bool {
	return h.listeners.attached()
}

// Element returns the mounted element, or nil.
func (h *DragHook) Element() Element {
	return h.el
}

// Dragging reports whether a drag is in progress.
func (h *DragHook) Dragging() bool {
	return h.dragging
}

// Origin returns the drag origin relative to the element's bounding box, and
// whether a drag is in progress.
func (h *DragHook) Origin() (Vec2, bool) {
	return h.origin, h.dragging
}

// Destroyed reports whether Destroy has been called.
func (h *DragHook) Destroyed() bool {
	return h.destroyed
}

func (h *DragHook) onPointerDown(e PointerEvent) {
	guarded(h.sched, func() {
		if h.el == nil {
			return
		}
		box, err := h.el.BoundingBox()
		if err != nil {
			h.cfg.ErrorHandler.HandleError(&Error{Op: "DragHook.pointerdown", Kind: KindSetup, Err: err})
			return
		}
		h.origin = RelativeOrigin(e.Client(), box)
		h.dragging = true
	})
}

func (h *DragHook) onPointerMove(e PointerEvent) {
	guarded(h.sched, func() {
		if !h.dragging {
			return
		}
		d := Delta(e.Client(), h.origin)
		h.report("DragHook.pointermove", DragMove, d.X, d.Y)
	})
}

func (h *DragHook) onPointerUp(e PointerEvent) {
	guarded(h.sched, func() {
		defer func() {
			h.dragging = false
			h.origin = Vec2{}
		}()
		h.report("DragHook.pointerup", DragEnd, e.ClientX, e.ClientY)
	})
}

// report invokes the handler and forwards to the sink. A handler panic is
// recovered and sent to the ErrorHandler.
func (h *DragHook) report(op string, phase DragPhase, dx, dy float64) {
	defer func() {
		if r := recover(); r != nil {
			h.cfg.ErrorHandler.HandlePanic(&PanicError{
				Op:         op,
				Value:      r,
				StackTrace: captureStack(),
			})
		}
	}()
	h.handler.OnDrag(phase, dx, dy)
	if h.cfg.Sink != nil {
		ev := DragEvent{Hook: h.cfg.Name, Phase: phase, DX: dx, DY: dy}
		if n, ok := h.el.(*Node); ok {
			ev.NodeID = n.ID
			ev.EntityID = n.EntityID
		}
		h.cfg.Sink.EmitDrag(ev)
	}
}
