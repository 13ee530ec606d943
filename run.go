package usedrag

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// Debug enables scene debug mode.
	Debug bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives scene until the window is closed.
//
// For full control, implement ebiten.Game yourself and call Scene.Update and
// Scene.Draw directly.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title == "" {
		cfg.Title = "usedrag"
	}
	scene.SetDebugMode(cfg.Debug)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(&game{scene: scene, cfg: cfg}); err != nil {
		return fmt.Errorf("usedrag: run: %w", err)
	}
	return nil
}
