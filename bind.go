package usedrag

// UseDrag binds a new DragHook to n's lifecycle within scene s.
//
// The hook runs its listeners inside the scene's Runtime. It is mounted on n
// as soon as n is part of the scene tree (immediately, if it already is) and
// destroyed when n is disposed. An error from an immediate mount is returned;
// errors from later mounts go to cfg.ErrorHandler. Mounting n in a scene
// other than s fails with ErrSceneMismatch. A nil s binds to the scene n is
// mounted in.
//
// Example:
//
//	offset := usedrag.NewCell(scene.Runtime(), usedrag.Vec2{})
//	usedrag.UseDrag(scene, box, usedrag.DragFunc(func(p usedrag.DragPhase, dx, dy float64) {
//	    if p == usedrag.DragMove {
//	        offset.Set(usedrag.Vec2{X: dx, Y: dy})
//	    }
//	}), usedrag.HookConfig{Name: "box"})
func UseDrag(s *Scene, n *Node, handler DragHandler, cfg HookConfig) (*DragHook, error) {
	if n == nil {
		return nil, &Error{Op: "UseDrag", Kind: KindSetup, Err: ErrNilElement}
	}
	if n.IsDisposed() {
		return nil, &Error{Op: "UseDrag", Kind: KindSetup, Err: ErrNodeDisposed}
	}

	if s == nil {
		s = n.Scene()
	}
	var sched Scheduler
	if s != nil {
		sched = s.Runtime()
	}
	h := NewDragHook(sched, handler, cfg)

	var mountErr error
	immediate := true
	unmount := n.OnMount(func() {
		var err error
		if s != nil && n.Scene() != s {
			h.unbind("UseDrag")
			err = &Error{Op: "UseDrag", Kind: KindSetup, Err: ErrSceneMismatch}
		} else {
			err = h.Mount(n)
		}
		if err == nil {
			return
		}
		if immediate {
			mountErr = err
			return
		}
		if e, ok := err.(*Error); ok {
			h.cfg.ErrorHandler.HandleError(e)
		} else {
			h.cfg.ErrorHandler.HandleError(&Error{Op: "UseDrag", Kind: KindSetup, Err: err})
		}
	})
	immediate = false
	if mountErr != nil {
		unmount()
		h.Destroy()
		return nil, mountErr
	}
	n.OnDispose(h.Destroy)
	return h, nil
}
