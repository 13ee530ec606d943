package usedrag

import "testing"

func TestNewSceneRootMounted(t *testing.T) {
	s := NewScene()
	if s.Root() == nil || !s.Root().Mounted() || s.Root().Scene() != s {
		t.Fatal("root should be mounted in its scene")
	}
	if s.Runtime() == nil {
		t.Fatal("scene should have a runtime")
	}
}

func TestSceneUpdateFlushesPostedTasks(t *testing.T) {
	s := NewScene()
	c := NewCell(s.Runtime(), 0)
	s.Runtime().Post(func() { _ = c.Set(42) })

	s.InjectHover(0, 0) // keep Update off real input
	s.Update()
	if c.Value() != 42 {
		t.Errorf("posted task should run inside the context, value = %d", c.Value())
	}
}

func TestScenePointerDispatchRunsOutsideContext(t *testing.T) {
	s := NewScene()
	n := NewNode("n", 100, 100)
	s.Root().AddChild(n)

	var active bool
	_, _ = n.AddListener(EventPointerDown, func(PointerEvent) { active = s.Runtime().Active() })
	s.InjectPress(10, 10)
	s.Update()
	if active {
		t.Error("raw listeners should run outside the execution context")
	}
}

func TestFindNode(t *testing.T) {
	s := NewScene()
	a := NewNode("a", 1, 1)
	b := NewNode("b", 1, 1)
	a.AddChild(b)
	s.Root().AddChild(a)
	if s.FindNode("b") != b {
		t.Error("FindNode should find nested nodes")
	}
	if s.FindNode("missing") != nil {
		t.Error("FindNode should return nil for unknown names")
	}
}
