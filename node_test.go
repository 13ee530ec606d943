package usedrag

import (
	"errors"
	"testing"
)

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test", 10, 20)
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != "test" || n.Width != 10 || n.Height != 20 {
		t.Errorf("unexpected node %+v", n)
	}
	if !n.Visible || !n.Interactable {
		t.Error("node should be visible and interactable by default")
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
	if n.Mounted() {
		t.Error("new node should not be mounted")
	}
}

func TestNodeBoundingBoxIncludesAncestors(t *testing.T) {
	parent := NewNode("parent", 200, 200)
	parent.X, parent.Y = 10, 20
	child := NewNode("child", 30, 40)
	child.X, child.Y = 5, 6
	parent.AddChild(child)

	box, err := child.BoundingBox()
	if err != nil {
		t.Fatal(err)
	}
	want := Rect{X: 15, Y: 26, Width: 30, Height: 40}
	if box != want {
		t.Errorf("BoundingBox = %v, want %v", box, want)
	}
}

func TestNodeListeners(t *testing.T) {
	n := NewNode("n", 1, 1)
	var got []EventKind
	id, err := n.AddListener(EventPointerDown, func(e PointerEvent) { got = append(got, e.Kind) })
	if err != nil {
		t.Fatal(err)
	}
	if n.ListenerCount(EventPointerDown) != 1 {
		t.Fatalf("ListenerCount = %d, want 1", n.ListenerCount(EventPointerDown))
	}

	n.dispatch(PointerEvent{Kind: EventPointerDown})
	n.dispatch(PointerEvent{Kind: EventPointerUp})
	if len(got) != 1 {
		t.Errorf("dispatched %v, want one pointerdown", got)
	}

	if err := n.RemoveListener(EventPointerDown, id); err != nil {
		t.Fatal(err)
	}
	if err := n.RemoveListener(EventPointerDown, id); err != nil {
		t.Errorf("removing an unknown id should be a no-op, got %v", err)
	}
	if n.ListenerCount(EventPointerDown) != 0 {
		t.Error("listener should be removed")
	}
}

func TestNodeRemoveListenerDuringDispatch(t *testing.T) {
	n := NewNode("n", 1, 1)
	var calls int
	var id ListenerID
	id, _ = n.AddListener(EventPointerMove, func(PointerEvent) {
		calls++
		_ = n.RemoveListener(EventPointerMove, id)
	})
	_, _ = n.AddListener(EventPointerMove, func(PointerEvent) { calls++ })

	n.dispatch(PointerEvent{Kind: EventPointerMove})
	if calls != 2 {
		t.Errorf("calls = %d, want 2 (removal applies to the next event)", calls)
	}
	n.dispatch(PointerEvent{Kind: EventPointerMove})
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestDisposedNodeRejectsElementCalls(t *testing.T) {
	n := NewNode("n", 1, 1)
	n.Dispose()
	if _, err := n.AddListener(EventPointerDown, func(PointerEvent) {}); !errors.Is(err, ErrNodeDisposed) {
		t.Errorf("AddListener err = %v, want ErrNodeDisposed", err)
	}
	if _, err := n.BoundingBox(); !errors.Is(err, ErrNodeDisposed) {
		t.Errorf("BoundingBox err = %v, want ErrNodeDisposed", err)
	}
}

func TestNodeMountNotifications(t *testing.T) {
	s := NewScene()
	parent := NewNode("parent", 10, 10)
	child := NewNode("child", 5, 5)
	parent.AddChild(child)

	var mounts []string
	parent.OnMount(func() { mounts = append(mounts, "parent") })
	child.OnMount(func() { mounts = append(mounts, "child") })
	if len(mounts) != 0 {
		t.Fatal("unmounted nodes should not fire mount callbacks")
	}

	s.Root().AddChild(parent)
	if len(mounts) != 2 || mounts[0] != "parent" || mounts[1] != "child" {
		t.Fatalf("mounts = %v, want [parent child]", mounts)
	}
	if child.Scene() != s {
		t.Error("child should be mounted in s")
	}

	parent.RemoveFromParent()
	if child.Mounted() {
		t.Error("removed subtree should be unmounted")
	}
	s.Root().AddChild(parent)
	if len(mounts) != 4 {
		t.Errorf("remount should fire callbacks again, got %v", mounts)
	}
}

func TestNodeOnMountWhenAlreadyMounted(t *testing.T) {
	s := NewScene()
	n := NewNode("n", 1, 1)
	s.Root().AddChild(n)

	ran := false
	n.OnMount(func() { ran = true })
	if !ran {
		t.Error("OnMount on a mounted node should run immediately")
	}
}

func TestNodeDisposeOrder(t *testing.T) {
	parent := NewNode("parent", 1, 1)
	child := NewNode("child", 1, 1)
	parent.AddChild(child)

	var order []string
	parent.OnDispose(func() { order = append(order, "parent-1") })
	parent.OnDispose(func() { order = append(order, "parent-2") })
	child.OnDispose(func() {
		if child.ListenerCount(EventPointerDown) != 1 {
			t.Error("listeners should still be registered when dispose callbacks run")
		}
		order = append(order, "child")
	})
	_, _ = child.AddListener(EventPointerDown, func(PointerEvent) {})

	parent.Dispose()
	want := []string{"parent-2", "parent-1", "child"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
	if !child.IsDisposed() || child.ListenerCount(EventPointerDown) != 0 {
		t.Error("child should be disposed with listeners cleared")
	}

	ran := false
	parent.OnDispose(func() { ran = true })
	if !ran {
		t.Error("OnDispose on a disposed node should run immediately")
	}
	parent.Dispose()
}

func TestNodeUnregisterDisposer(t *testing.T) {
	n := NewNode("n", 1, 1)
	ran := false
	unreg := n.OnDispose(func() { ran = true })
	unreg()
	n.Dispose()
	if ran {
		t.Error("unregistered disposer should not run")
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewNode("a", 1, 1)
	b := NewNode("b", 1, 1)
	a.AddChild(b)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on cycle")
		}
	}()
	b.AddChild(a)
}

func TestAddChildReparents(t *testing.T) {
	a := NewNode("a", 1, 1)
	b := NewNode("b", 1, 1)
	c := NewNode("c", 1, 1)
	a.AddChild(c)
	b.AddChild(c)
	if a.NumChildren() != 0 || b.NumChildren() != 1 || c.Parent != b {
		t.Error("child should move to the new parent")
	}
}

func TestNodeUnknownEventKind(t *testing.T) {
	n := NewNode("n", 10, 10)
	bad := EventKind(numEventKinds)

	if _, err := n.AddListener(bad, func(PointerEvent) {}); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("AddListener(unknown) err = %v, want ErrUnknownEvent", err)
	}
	if got := n.ListenerCount(bad); got != 0 {
		t.Errorf("ListenerCount(unknown) = %d, want 0", got)
	}
	n.dispatch(PointerEvent{Kind: bad}) // must not panic

	_, err := attach(n, bad, func(PointerEvent) {})
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindRegister || !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("attach(unknown) err = %v, want KindRegister wrapping ErrUnknownEvent", err)
	}
}
