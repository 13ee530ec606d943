package usedrag

// nodeIDCounter is a plain counter; the scene is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

type pointerListener struct {
	id ListenerID
	fn func(PointerEvent)
}

// Node is a rectangular scene graph element. It implements Element: raw
// pointer listeners can be registered per event kind, and its bounding box
// is reported in client (screen) coordinates.
//
// A node is mounted while it is part of a Scene's tree. OnMount callbacks
// fire when it becomes mounted; OnDispose callbacks fire when it is
// disposed.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node
	scene    *Scene

	// Geometry, local to Parent
	X, Y          float64
	Width, Height float64

	// Appearance & interaction
	Color        Color
	Visible      bool
	Interactable bool

	// Metadata
	UserData any
	EntityID uint32

	listeners [numEventKinds][]pointerListener
	nextID    ListenerID

	onMount   []func()
	onDispose []func()
	disposed  bool
}

// NewNode creates a visible, interactable node of the given size.
func NewNode(name string, width, height float64) *Node {
	return &Node{
		ID:           nextNodeID(),
		Name:         name,
		Width:        width,
		Height:       height,
		Color:        ColorWhite,
		Visible:      true,
		Interactable: true,
	}
}

// --- Element ---

// AddListener registers fn for events of the given kind. Fails on a disposed
// node or an unknown kind.
func (n *Node) AddListener(kind EventKind, fn func(PointerEvent)) (ListenerID, error) {
	if n.disposed {
		return 0, ErrNodeDisposed
	}
	if kind >= numEventKinds {
		return 0, ErrUnknownEvent
	}
	if fn == nil {
		panic("usedrag: nil listener")
	}
	n.nextID++
	id := n.nextID
	n.listeners[kind] = append(n.listeners[kind], pointerListener{id: id, fn: fn})
	return id, nil
}

// RemoveListener unregisters a listener. Removing an unknown ID is a no-op.
func (n *Node) RemoveListener(kind EventKind, id ListenerID) error {
	if kind >= numEventKinds {
		return nil
	}
	s := n.listeners[kind]
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerListener{}
			n.listeners[kind] = s[:len(s)-1]
			return nil
		}
	}
	return nil
}

// ListenerCount returns the number of listeners registered for kind.
func (n *Node) ListenerCount(kind EventKind) int {
	if kind >= numEventKinds {
		return 0
	}
	return len(n.listeners[kind])
}

// BoundingBox returns the node's rectangle in client coordinates.
func (n *Node) BoundingBox() (Rect, error) {
	if n.disposed {
		return Rect{}, ErrNodeDisposed
	}
	p := n.WorldPosition()
	return Rect{X: p.X, Y: p.Y, Width: n.Width, Height: n.Height}, nil
}

// WorldPosition returns the node's top-left corner in client coordinates.
func (n *Node) WorldPosition() Vec2 {
	var p Vec2
	for c := n; c != nil; c = c.Parent {
		p.X += c.X
		p.Y += c.Y
	}
	return p
}

// dispatch delivers e to the listeners registered for e.Kind. Listeners
// added or removed during dispatch take effect on the next event.
func (n *Node) dispatch(e PointerEvent) {
	if e.Kind >= numEventKinds {
		return
	}
	ls := n.listeners[e.Kind]
	if len(ls) == 0 {
		return
	}
	snapshot := make([]pointerListener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		l.fn(e)
	}
}

// --- Lifecycle ---

// OnMount registers fn to run each time the node becomes part of a Scene
// tree. If the node is already mounted fn runs immediately. Returns an
// unregister func.
func (n *Node) OnMount(fn func()) func() {
	if fn == nil || n.disposed {
		return func() {}
	}
	n.onMount = append(n.onMount, fn)
	idx := len(n.onMount) - 1
	if n.scene != nil {
		fn()
	}
	return func() {
		if idx < len(n.onMount) {
			n.onMount[idx] = nil
		}
	}
}

// OnDispose registers fn to run when the node is disposed. If the node is
// already disposed fn runs immediately. Returns an unregister func.
func (n *Node) OnDispose(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	if n.disposed {
		fn()
		return func() {}
	}
	n.onDispose = append(n.onDispose, fn)
	idx := len(n.onDispose) - 1
	return func() {
		if idx < len(n.onDispose) {
			n.onDispose[idx] = nil
		}
	}
}

// Mounted reports whether the node is part of a Scene tree.
func (n *Node) Mounted() bool {
	return n.scene != nil
}

// Scene returns the scene the node is mounted in, or nil.
func (n *Node) Scene() *Scene {
	return n.scene
}

// setScene propagates s through the subtree and fires mount callbacks on
// nodes that were not mounted before.
func (n *Node) setScene(s *Scene) {
	was := n.scene
	n.scene = s
	if s != nil && was == nil {
		for _, fn := range n.onMount {
			if fn != nil {
				fn()
			}
		}
	}
	for _, child := range n.children {
		child.setScene(s)
	}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("usedrag: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("usedrag: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if n.scene != nil {
		child.setScene(n.scene)
	}
}

// RemoveChild detaches child from this node. The child and its subtree are
// no longer mounted but keep their listeners.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("usedrag: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	child.setScene(nil)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Disposal ---

// Dispose runs the node's dispose callbacks in reverse registration order,
// removes it from its parent, and recursively disposes all descendants.
// Callbacks run before listeners are cleared, so they can still unregister
// their own listeners.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	for i := len(n.onDispose) - 1; i >= 0; i-- {
		if fn := n.onDispose[i]; fn != nil {
			fn()
		}
	}
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.scene = nil
	n.listeners = [numEventKinds][]pointerListener{}
	n.onMount = nil
	n.onDispose = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
