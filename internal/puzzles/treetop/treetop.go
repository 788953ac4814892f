package treetop

import (
	"strconv"

	"advent-ca/internal/core"
	"advent-ca/pkg/grid"
)

// Day is the calendar day this package solves.
const Day = 8

// Forest is a rectangular grid of tree heights 0-9.
type Forest struct {
	*core.ByteGrid
}

// Parse reads rows of digits into a Forest.
func Parse(input string) (Forest, error) {
	g, err := core.ParseDigits(core.Lines(input))
	if err != nil {
		return Forest{}, err
	}
	return Forest{g}, nil
}

// look walks from p in direction d and returns how many trees are seen before
// the edge or the first tree at least as tall, and whether the edge was
// reached.
func (f Forest) look(p, d grid.Point) (seen int, clear bool) {
	h := f.At(p.X, p.Y)
	for q := p.Add(d); f.In(q.X, q.Y); q = q.Add(d) {
		seen++
		if f.At(q.X, q.Y) >= h {
			return seen, false
		}
	}
	return seen, true
}

// Visible reports whether every tree between p and some edge is strictly
// shorter than the tree at p. Edge trees are always visible.
func (f Forest) Visible(p grid.Point) bool {
	for _, d := range grid.Cardinals {
		if _, clear := f.look(p, d); clear {
			return true
		}
	}
	return false
}

// Scenic multiplies the viewing distances in the four directions.
func (f Forest) Scenic(p grid.Point) int {
	score := 1
	for _, d := range grid.Cardinals {
		seen, _ := f.look(p, d)
		score *= seen
	}
	return score
}

func (f Forest) each(fn func(grid.Point)) {
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			fn(grid.P(x, y))
		}
	}
}

// Solver answers the treetop tree house puzzle.
type Solver struct{}

// New returns a Solver.
func New() *Solver { return &Solver{} }

// Name identifies the puzzle.
func (s *Solver) Name() string { return "treetop" }

// Day returns the calendar day.
func (s *Solver) Day() int { return Day }

// PartOne counts trees visible from outside the grid.
func (s *Solver) PartOne(input string) (string, error) {
	f, err := Parse(input)
	if err != nil {
		return "", err
	}
	n := 0
	f.each(func(p grid.Point) {
		if f.Visible(p) {
			n++
		}
	})
	return strconv.Itoa(n), nil
}

// PartTwo finds the highest scenic score.
func (s *Solver) PartTwo(input string) (string, error) {
	f, err := Parse(input)
	if err != nil {
		return "", err
	}
	best := 0
	f.each(func(p grid.Point) {
		best = max(best, f.Scenic(p))
	})
	return strconv.Itoa(best), nil
}

func init() {
	core.Register(core.DayName(Day), func(map[string]string) core.Solver { return New() })
}
