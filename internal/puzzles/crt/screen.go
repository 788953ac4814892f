package crt

import (
	"image/color"

	"advent-ca/internal/core"
	"advent-ca/internal/render"
)

const (
	dark uint8 = iota
	lit
)

var palette = []color.RGBA{
	dark: {R: 12, G: 16, B: 12, A: 255},
	lit:  {R: 90, G: 240, B: 120, A: 255},
}

// Screen draws one pixel per cycle as the beam sweeps left to right, top to
// bottom.
type Screen struct {
	prog  []Instr
	xs    []int
	cycle int
	grid  *core.ByteGrid
}

// NewScreen prepares a blank w x h screen driven by prog.
func NewScreen(prog []Instr, w, h int) *Screen {
	return &Screen{prog: prog, xs: Trace(prog), grid: core.NewByteGrid(w, h)}
}

// Name identifies the animation.
func (s *Screen) Name() string { return "crt" }

// Size returns the screen dimensions.
func (s *Screen) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }

// Reset blanks the screen and rewinds to cycle 1.
func (s *Screen) Reset() {
	s.cycle = 0
	s.grid.Clear()
}

// Step draws the next pixel and reports whether any remain.
func (s *Screen) Step() bool {
	total := s.grid.W * s.grid.H
	if s.cycle >= total {
		return false
	}
	col, row := s.cycle%s.grid.W, s.cycle/s.grid.W
	if Lit(During(s.prog, s.xs, s.cycle+1), col) {
		s.grid.Set(col, row, lit)
	}
	s.cycle++
	return s.cycle < total
}

// Cells exposes the pixel buffer.
func (s *Screen) Cells() []uint8 { return s.grid.Cells() }

// Palette returns the dark and lit colours.
func (s *Screen) Palette() []color.RGBA { return palette }

// String renders the screen with '.' for dark and '#' for lit pixels.
func (s *Screen) String() string { return render.Text(s.grid, ".#") }
