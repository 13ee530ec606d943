package usedrag

// listenerHandle is a live registration of one raw listener on an element.
// The zero value is detached.
type listenerHandle struct {
	el   Element
	kind EventKind
	id   ListenerID
}

// attach registers fn on el for kind. Registration failures are never
// retried; they mean the element reference is broken.
func attach(el Element, kind EventKind, fn func(PointerEvent)) (listenerHandle, error) {
	id, err := el.AddListener(kind, fn)
	if err != nil {
		return listenerHandle{}, &Error{Op: "attach", Kind: KindRegister, Event: kind, Err: err}
	}
	return listenerHandle{el: el, kind: kind, id: id}, nil
}

// live reports whether the handle still refers to a registered listener.
func (h *listenerHandle) live() bool {
	return h.el != nil
}

// detach unregisters the listener. Calling detach on a detached handle is a
// no-op. The handle is cleared even when the element reports an error, so
// the element is never asked to unregister the same listener twice.
func (h *listenerHandle) detach() error {
	if h.el == nil {
		return nil
	}
	el, kind, id := h.el, h.kind, h.id
	*h = listenerHandle{}
	if err := el.RemoveListener(kind, id); err != nil {
		return &Error{Op: "detach", Kind: KindUnregister, Event: kind, Err: err}
	}
	return nil
}

// listenerSet holds at most one listener per event kind.
type listenerSet [numEventKinds]listenerHandle

// attached reports whether any listener in the set is live.
func (s *listenerSet) attached() bool {
	for i := range s {
		if s[i].live() {
			return true
		}
	}
	return false
}

// attachAll registers fns[k] for every kind k. If any registration fails,
// the kinds already attached are detached again and the first error is
// returned, so the set is either fully attached or empty.
func (s *listenerSet) attachAll(el Element, fns [numEventKinds]func(PointerEvent)) error {
	for k := range s {
		if s[k].live() {
			panic("usedrag: listener already attached for " + EventKind(k).String())
		}
		h, err := attach(el, EventKind(k), fns[k])
		if err != nil {
			_ = s.detachAll()
			return err
		}
		s[k] = h
	}
	return nil
}

// detachAll detaches every live listener, continuing past failures. It
// returns the failures in event kind order.
func (s *listenerSet) detachAll() []error {
	var errs []error
	for k := range s {
		if err := s[k].detach(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
