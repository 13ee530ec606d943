package usedrag

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers  = 2 // pointer 0 = mouse, 1 = primary touch
	pointerTouch = 1
)

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	seen   bool
	lastX  float64
	lastY  float64
	button MouseButton // button captured at press time
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order (DFS), appending
// visible, interactable nodes with a non-empty area to buf. Skips
// Visible=false or Interactable=false subtrees.
func (s *Scene) collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.Width > 0 || n.Height > 0 {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = s.collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (x, y).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(x, y float64) *Node {
	s.hitBuf = s.collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		box, err := n.BoundingBox()
		if err == nil && box.Contains(x, y) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Update to handle mouse and touch input.
// Injected events take priority: while any are queued, real input is
// ignored. While a test runner is attached, real input is never read.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.testRunner != nil {
		return
	}
	s.processMousePointer()
	s.processTouchPointer()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(0, float64(mx), float64(my), pressed, button)
}

// processTouchPointer handles the first active touch (pointer 1). Further
// touches are ignored; pointers are not disambiguated.
func (s *Scene) processTouchPointer() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	if s.touchActive {
		for _, tid := range touchIDs {
			if tid == s.touchID {
				tx, ty := ebiten.TouchPosition(tid)
				s.processPointer(pointerTouch, float64(tx), float64(ty), true, MouseButtonLeft)
				return
			}
		}
		// Tracked touch lifted: release at its last position.
		ps := &s.pointers[pointerTouch]
		s.processPointer(pointerTouch, ps.lastX, ps.lastY, false, MouseButtonLeft)
		s.touchActive = false
		s.pointers[pointerTouch].seen = false
		return
	}
	if len(touchIDs) > 0 {
		s.touchID = touchIDs[0]
		s.touchActive = true
		tx, ty := ebiten.TouchPosition(s.touchID)
		s.processPointer(pointerTouch, float64(tx), float64(ty), true, MouseButtonLeft)
	}
}

// processPointer turns one pointer's sampled state into raw events on the
// node under the pointer. Order within a frame is move, then down or up.
// There is no pointer capture: events go to whatever node is hit, and a
// release over empty space delivers no pointerup.
func (s *Scene) processPointer(pointerID int, x, y float64, pressed bool, button MouseButton) {
	ps := &s.pointers[pointerID]
	target := s.hitTest(x, y)

	if ps.seen && (x != ps.lastX || y != ps.lastY) {
		s.dispatch(target, PointerEvent{Kind: EventPointerMove, ClientX: x, ClientY: y, Button: ps.button, PointerID: pointerID})
	}
	ps.seen = true
	ps.lastX = x
	ps.lastY = y

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		s.dispatch(target, PointerEvent{Kind: EventPointerDown, ClientX: x, ClientY: y, Button: button, PointerID: pointerID})
	case !pressed && ps.down:
		ps.down = false
		s.dispatch(target, PointerEvent{Kind: EventPointerUp, ClientX: x, ClientY: y, Button: ps.button, PointerID: pointerID})
	}
}

// dispatch delivers e to target and then bubbles it through each ancestor.
func (s *Scene) dispatch(target *Node, e PointerEvent) {
	if s.debug && target != nil {
		debugLogf("%s (%.0f,%.0f) -> %q", e.Kind, e.ClientX, e.ClientY, target.Name)
	}
	for n := target; n != nil; n = n.Parent {
		n.dispatch(e)
	}
}
