package usedrag

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween moves a node's local position toward a target. Hand it to
// Scene.AddTween or call Update(dt) each frame.
type Tween struct {
	x, y   *gween.Tween
	target *Node
	Done   bool
}

// Update advances the tween by dt seconds. A disposed target or a stopped
// tween is left untouched.
func (t *Tween) Update(dt float32) {
	if t.Done {
		return
	}
	if t.target.IsDisposed() {
		t.Done = true
		return
	}
	x, doneX := t.x.Update(dt)
	y, doneY := t.y.Update(dt)
	t.target.X, t.target.Y = float64(x), float64(y)
	t.Done = doneX && doneY
}

// Stop ends the tween where it is.
func (t *Tween) Stop() {
	t.Done = true
}

// TweenPosition animates node.X and node.Y from their current values to
// (toX, toY) over duration seconds.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween{
		x:      gween.New(float32(node.X), float32(toX), duration, fn),
		y:      gween.New(float32(node.Y), float32(toY), duration, fn),
		target: node,
	}
}

// SnapBack is a DragHandler that keeps a node under the pointer while it is
// dragged and animates it back to its rest position on release. A new drag
// interrupts a snap-back in flight.
//
// Move reports give the client position of the node's top-left corner; they
// are converted to the parent's space before being written to X and Y.
type SnapBack struct {
	RestX, RestY float64
	Duration     float32
	Ease         ease.TweenFunc

	// OnRelease, if set, is called with the release position before the
	// snap-back starts.
	OnRelease func(x, y float64)

	scene *Scene
	node  *Node
	tween *Tween
}

// NewSnapBack returns a SnapBack resting at the node's current position.
// A nil fn defaults to ease.OutBack.
func NewSnapBack(s *Scene, n *Node, duration float32, fn ease.TweenFunc) *SnapBack {
	if fn == nil {
		fn = ease.OutBack
	}
	return &SnapBack{
		RestX:    n.X,
		RestY:    n.Y,
		Duration: duration,
		Ease:     fn,
		scene:    s,
		node:     n,
	}
}

// OnDrag implements DragHandler.
func (b *SnapBack) OnDrag(phase DragPhase, dx, dy float64) {
	if b.node.IsDisposed() {
		return
	}
	switch phase {
	case DragMove:
		if b.tween != nil {
			b.tween.Stop()
			b.tween = nil
		}
		var parent Vec2
		if b.node.Parent != nil {
			parent = b.node.Parent.WorldPosition()
		}
		b.node.X, b.node.Y = dx-parent.X, dy-parent.Y
	case DragEnd:
		if b.OnRelease != nil {
			b.OnRelease(dx, dy)
		}
		b.tween = TweenPosition(b.node, b.RestX, b.RestY, b.Duration, b.Ease)
		if b.scene != nil {
			b.scene.AddTween(b.tween)
		}
	}
}

// Settling reports whether a snap-back animation is running.
func (b *SnapBack) Settling() bool {
	return b.tween != nil && !b.tween.Done
}
