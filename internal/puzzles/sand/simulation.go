package sand

import (
	"fmt"
	"image/color"

	"advent-ca/internal/core"
	"advent-ca/internal/render"
	"advent-ca/pkg/grid"
)

var palette = []color.RGBA{
	Air:  {R: 18, G: 18, B: 28, A: 255},
	Rock: {R: 130, G: 130, B: 130, A: 255},
	Sand: {R: 230, G: 196, B: 110, A: 255},
}

// Simulation replays a pour one grain per step on a fixed frame.
type Simulation struct {
	rocks  *Cave
	cave   *Cave
	rule   grid.Rule
	source grid.Point
	pour   *grid.Pourer[Material]

	origin grid.Point
	frame  *core.ByteGrid
}

// Animate builds a Simulation for part 1 (abyss) or part 2 (floor).
func (s *Solver) Animate(input string, part int) (core.Animation, error) {
	cave, err := Parse(input)
	if err != nil {
		return nil, err
	}
	var rule grid.Rule
	switch part {
	case 1:
		rule = AbyssRule(cave)
	case 2:
		rule = FloorRule(cave, s.cfg.FloorGap)
	default:
		return nil, fmt.Errorf("sand has no part %d", part)
	}
	return NewSimulation(cave, s.cfg.Source(), rule), nil
}

// NewSimulation prepares an animation of pouring sand into rocks.
func NewSimulation(rocks *Cave, source grid.Point, rule grid.Rule) *Simulation {
	lo, hi, _ := rocks.Bounds()
	lo.X = min(lo.X, source.X)
	lo.Y = min(lo.Y, source.Y)
	hi.X = max(hi.X, source.X)
	if rule.HasFloor {
		depth := rule.Floor - source.Y
		lo.X = min(lo.X, source.X-depth)
		hi.X = max(hi.X, source.X+depth)
		hi.Y = rule.Floor
	}
	lo.X--
	hi.X++
	sim := &Simulation{
		rocks:  rocks,
		rule:   rule,
		source: source,
		origin: lo,
		frame:  core.NewByteGrid(hi.X-lo.X+1, hi.Y-lo.Y+1),
	}
	sim.Reset()
	return sim
}

// Name identifies the animation.
func (s *Simulation) Name() string { return "sand" }

// Size returns the frame dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.frame.W, H: s.frame.H} }

// Reset discards all settled sand.
func (s *Simulation) Reset() {
	s.cave = s.rocks.Clone()
	s.pour = grid.NewPourer(s.cave, s.source, s.rule, Sand, 0)
	s.draw()
	if s.rule.HasFloor {
		y := s.rule.Floor - s.origin.Y
		for x := 0; x < s.frame.W; x++ {
			s.frame.Set(x, y, uint8(Rock))
		}
	}
}

// Step drops one grain and reports whether the pour continues.
func (s *Simulation) Step() bool {
	more := s.pour.Step()
	if s.pour.Settled() > 0 {
		s.plot(s.pour.Last(), Sand)
	}
	return more
}

// Settled returns the number of grains at rest.
func (s *Simulation) Settled() int { return s.pour.Settled() }

// Cells exposes the frame buffer.
func (s *Simulation) Cells() []uint8 { return s.frame.Cells() }

// Palette returns the colours for each Material.
func (s *Simulation) Palette() []color.RGBA { return palette }

// String renders the current frame as text.
func (s *Simulation) String() string { return render.Text(s.frame, ".#o") }

func (s *Simulation) draw() {
	s.frame.Clear()
	s.cave.Each(s.plot)
}

func (s *Simulation) plot(p grid.Point, m Material) {
	x, y := p.X-s.origin.X, p.Y-s.origin.Y
	if s.frame.In(x, y) {
		s.frame.Set(x, y, uint8(m))
	}
}

// Display renders a cave over the bounds of its entries.
func Display(cave *Cave) string {
	lo, hi, ok := cave.Bounds()
	if !ok {
		return ""
	}
	g := core.NewByteGrid(hi.X-lo.X+1, hi.Y-lo.Y+1)
	cave.Each(func(p grid.Point, m Material) {
		g.Set(p.X-lo.X, p.Y-lo.Y, uint8(m))
	})
	return render.Text(g, ".#o")
}
