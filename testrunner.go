package usedrag

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Node   string  `json:"node,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var validActions = map[string]bool{
	"press": true, "move": true, "hover": true, "release": true,
	"click": true, "drag": true, "wait": true, "dispose": true,
}

// TestRunner sequences injected pointer events across frames for automated
// testing of drag interactions. Attach to a Scene via SetTestRunner.
//
// Supported actions: press, move, hover, release, click, drag (fromX/fromY
// to toX/toY over frames), wait (frames), and dispose (node by name).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("usedrag: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("usedrag: parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !validActions[st.Action] {
			return nil, fmt.Errorf("usedrag: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before input is processed each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "hover":
		s.InjectHover(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "dispose":
		if n := s.FindNode(st.Node); n != nil {
			n.Dispose()
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

// FindNode returns the first mounted node with the given name in DFS order,
// or nil.
func (s *Scene) FindNode(name string) *Node {
	return findNode(s.root, name)
}

func findNode(n *Node, name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.children {
		if found := findNode(child, name); found != nil {
			return found
		}
	}
	return nil
}
