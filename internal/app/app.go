//go:build ebiten

package app

import (
	"advent-ca/internal/core"
	"advent-ca/internal/render"
	"advent-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a puzzle animation to the ebiten.Game interface.
type Game struct {
	anim    core.Animation
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	steps    int
	done     bool
}

// New constructs a Game for the provided animation. params may be nil.
func New(anim core.Animation, params core.ParametersProvider, cfg *Config) *Game {
	size := anim.Size()
	return &Game{
		anim:    anim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(anim, params, cfg.Panel),
		clock:   core.NewFixedStep(cfg.Rate),
		scale:   cfg.Scale,
	}
}

// Reset rewinds the animation to its first frame.
func (g *Game) Reset() {
	g.anim.Reset()
	g.steps = 0
	g.done = false
	g.tickOnce = false
}

// Update handles per-frame logic and advances the animation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	due := g.clock.Steps()
	switch {
	case g.done:
	case g.tickOnce:
		g.step()
		g.tickOnce = false
	case !g.paused:
		for i := 0; i < due && !g.done; i++ {
			g.step()
		}
	}

	g.hud.Update(ui.Status{Steps: g.steps, Paused: g.paused, Done: g.done})
	return nil
}

func (g *Game) step() {
	g.steps++
	if !g.anim.Step() {
		g.done = true
	}
}

// Draw renders the current frame and the side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.anim.Cells(), g.anim.Palette(), g.scale)
	g.hud.Draw(screen, g.anim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.anim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
