package usedrag

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene owns the node tree, the Runtime, and pointer input state.
//
// Each Update first flushes tasks posted to the runtime (inside the
// execution context), then polls input and dispatches raw pointer events to
// node listeners. Pointer dispatch runs outside the execution context, as a
// platform event callback would, so listeners that write Cells must enter it
// themselves. DragHook does this for its handler.
type Scene struct {
	root *Node
	rt   *Runtime

	// ClearColor fills the screen before nodes are drawn. Zero means no clear.
	ClearColor Color

	debug bool

	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	prevTouchIDs []ebiten.TouchID
	touchID      ebiten.TouchID
	touchActive  bool

	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	tweens []*Tween
}

// NewScene creates a new scene with a mounted root node.
func NewScene() *Scene {
	s := &Scene{rt: NewRuntime()}
	root := NewNode("root", 0, 0)
	s.root = root
	root.setScene(s)
	return s
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Runtime returns the scene's scheduler.
func (s *Scene) Runtime() *Runtime {
	return s.rt
}

// Update runs posted tasks, advances the test runner, dispatches pointer
// input, and advances tweens.
func (s *Scene) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))

	s.rt.Flush()
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.updateTweens(dt)
}

// AddTween registers g to be advanced by Update until it is done.
func (s *Scene) AddTween(g *Tween) {
	if g == nil {
		return
	}
	s.tweens = append(s.tweens, g)
}

func (s *Scene) updateTweens(dt float32) {
	if len(s.tweens) == 0 {
		return
	}
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, hook mount/destroy and dropped Cell writes are logged to
// stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that hooks
// and nodes (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
