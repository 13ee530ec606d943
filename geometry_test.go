package usedrag

import "testing"

func TestRelativeOrigin(t *testing.T) {
	tests := []struct {
		name  string
		point Vec2
		box   Rect
		want  Vec2
	}{
		{"inside", Vec2{50, 50}, Rect{X: 10, Y: 10, Width: 100, Height: 100}, Vec2{40, 40}},
		{"at corner", Vec2{10, 10}, Rect{X: 10, Y: 10}, Vec2{0, 0}},
		{"left of box", Vec2{5, 20}, Rect{X: 10, Y: 10}, Vec2{-5, 10}},
		{"zero box", Vec2{3, 4}, Rect{}, Vec2{3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeOrigin(tt.point, tt.box); got != tt.want {
				t.Errorf("RelativeOrigin(%v, %v) = %v, want %v", tt.point, tt.box, got, tt.want)
			}
		})
	}
}

func TestDelta(t *testing.T) {
	if got := Delta(Vec2{90, 80}, Vec2{40, 40}); got != (Vec2{50, 40}) {
		t.Errorf("Delta = %v, want (50, 40)", got)
	}
	if got := Delta(Vec2{0, 0}, Vec2{1, 2}); got != (Vec2{-1, -2}) {
		t.Errorf("Delta = %v, want (-1, -2)", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind EventKind
		want string
	}{
		{EventPointerDown, "pointerdown"},
		{EventPointerMove, "pointermove"},
		{EventPointerUp, "pointerup"},
		{EventKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EventKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestDragPhaseString(t *testing.T) {
	tests := []struct {
		phase DragPhase
		want  string
	}{
		{DragMove, "move"},
		{DragEnd, "end"},
		{DragPhase(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("DragPhase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
