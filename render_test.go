package usedrag

import (
	"image/color"
	"testing"
)

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want color.RGBA
	}{
		{"white", ColorWhite, color.RGBA{255, 255, 255, 255}},
		{"transparent", Color{}, color.RGBA{}},
		{"half alpha premultiplied", Color{R: 1, G: 1, B: 1, A: 0.5}, color.RGBA{127, 127, 127, 127}},
		{"clamped", Color{R: 2, G: -1, B: 0, A: 1}, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.toRGBA(); got != tt.want {
				t.Errorf("toRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{3, 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
