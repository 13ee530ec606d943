package usedrag

// Vec2 is a 2D vector used for pointer positions, drag origins, and deltas.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle in client coordinates. The origin is the
// top-left corner, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// TopLeft returns the rectangle's top-left corner.
func (r Rect) TopLeft() Vec2 {
	return Vec2{r.X, r.Y}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node color.
var ColorWhite = Color{1, 1, 1, 1}

// EventKind identifies a raw pointer event delivered by an Element.
type EventKind uint8

const (
	EventPointerDown EventKind = iota // a pointer button was pressed over the element
	EventPointerMove                  // the pointer moved over the element
	EventPointerUp                    // a pointer button was released over the element

	numEventKinds = 3
)

// String returns the DOM-style event name.
func (k EventKind) String() string {
	switch k {
	case EventPointerDown:
		return "pointerdown"
	case EventPointerMove:
		return "pointermove"
	case EventPointerUp:
		return "pointerup"
	default:
		return "unknown"
	}
}

// DragPhase is the phase reported to a DragHandler.
type DragPhase uint8

const (
	// DragMove reports the pointer position relative to the drag origin
	// captured at pointerdown.
	DragMove DragPhase = iota
	// DragEnd reports the pointer's absolute client coordinates at
	// pointerup. Unlike DragMove, these are not relative to the origin.
	DragEnd
)

// String returns the phase name, "move" or "end".
func (p DragPhase) String() string {
	switch p {
	case DragMove:
		return "move"
	case DragEnd:
		return "end"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// PointerEvent is a raw pointer event in client coordinates.
type PointerEvent struct {
	Kind      EventKind
	ClientX   float64
	ClientY   float64
	Button    MouseButton
	PointerID int
}

// Client returns the event position as a Vec2.
func (e PointerEvent) Client() Vec2 {
	return Vec2{e.ClientX, e.ClientY}
}

// ListenerID identifies a listener registered on an Element. Zero is never a
// valid ID.
type ListenerID uint32

// Element is a platform UI element that can deliver raw pointer events.
// Node implements it; other hosts can supply their own.
type Element interface {
	// AddListener registers fn for events of the given kind.
	AddListener(kind EventKind, fn func(PointerEvent)) (ListenerID, error)
	// RemoveListener unregisters a listener previously returned by
	// AddListener.
	RemoveListener(kind EventKind, id ListenerID) error
	// BoundingBox returns the element's current rectangle in client
	// coordinates.
	BoundingBox() (Rect, error)
}

// DragHandler receives drag progress.
type DragHandler interface {
	OnDrag(phase DragPhase, dx, dy float64)
}

// DragFunc adapts an ordinary function to a DragHandler.
type DragFunc func(phase DragPhase, dx, dy float64)

// OnDrag calls f(phase, dx, dy).
func (f DragFunc) OnDrag(phase DragPhase, dx, dy float64) {
	f(phase, dx, dy)
}

// DragEvent is published to an EventSink for every handler invocation.
type DragEvent struct {
	Hook     string
	NodeID   uint32
	EntityID uint32
	Phase    DragPhase
	DX, DY   float64
}

// EventSink is the interface for optional ECS integration. When set on a
// HookConfig, every drag report is also forwarded to the sink.
type EventSink interface {
	EmitDrag(event DragEvent)
}
