package usedrag

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image scaled and tinted to draw solid nodes.
// Created lazily so the package can be imported without a graphics context.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Draw fills the screen with ClearColor (if set) and draws every visible
// node as a solid rectangle in tree order.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	img := ensureWhitePixel()
	var op ebiten.DrawImageOptions
	s.drawNode(screen, img, s.root, &op)
}

func (s *Scene) drawNode(screen, img *ebiten.Image, n *Node, op *ebiten.DrawImageOptions) {
	if !n.Visible {
		return
	}
	if n.Width > 0 && n.Height > 0 && n.Color.A > 0 {
		p := n.WorldPosition()
		op.GeoM.Reset()
		op.GeoM.Scale(n.Width, n.Height)
		op.GeoM.Translate(p.X, p.Y)
		op.ColorScale.Reset()
		op.ColorScale.Scale(
			float32(n.Color.R*n.Color.A),
			float32(n.Color.G*n.Color.A),
			float32(n.Color.B*n.Color.A),
			float32(n.Color.A),
		)
		screen.DrawImage(img, op)
	}
	for _, child := range n.children {
		s.drawNode(screen, img, child, op)
	}
}
