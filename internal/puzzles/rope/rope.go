package rope

import (
	"fmt"
	"strconv"
	"strings"

	"advent-ca/internal/core"
	"advent-ca/pkg/grid"
)

// Day is the calendar day this package solves.
const Day = 9

// Move is one instruction from the input.
type Move struct {
	Dir   grid.Point
	Count int
}

var directions = map[string]grid.Point{
	"U": grid.Up,
	"D": grid.Down,
	"L": grid.Left,
	"R": grid.Right,
}

// Parse reads lines of the form "<U|D|L|R> <count>".
func Parse(input string) ([]Move, error) {
	lines := core.Lines(input)
	moves := make([]Move, 0, len(lines))
	for i, line := range lines {
		d, n, ok := strings.Cut(line, " ")
		if !ok {
			return nil, core.Errorf(i+1, line, "expected \"<dir> <count>\"")
		}
		dir, ok := directions[d]
		if !ok {
			return nil, core.Errorf(i+1, line, "unknown direction %q", d)
		}
		count, err := strconv.Atoi(n)
		if err != nil || count < 0 {
			return nil, core.Errorf(i+1, line, "bad count %q", n)
		}
		moves = append(moves, Move{Dir: dir, Count: count})
	}
	return moves, nil
}

// Rope is a chain of knots. Knot 0 is the head; every other knot follows the
// one before it.
type Rope struct {
	Knots   []grid.Point
	visited map[grid.Point]struct{}
}

// NewRope returns a rope of n knots (n >= 2) starting at the origin.
func NewRope(n int) *Rope {
	if n < 2 {
		panic(fmt.Sprintf("rope: need at least 2 knots, got %d", n))
	}
	r := &Rope{Knots: make([]grid.Point, n), visited: map[grid.Point]struct{}{}}
	r.visited[r.Tail()] = struct{}{}
	return r
}

// Tail returns the last knot.
func (r *Rope) Tail() grid.Point { return r.Knots[len(r.Knots)-1] }

// Visited returns the number of unique positions the tail has occupied.
func (r *Rope) Visited() int { return len(r.visited) }

// Step moves the head one cell in dir and lets every knot catch up.
func (r *Rope) Step(dir grid.Point) {
	r.Knots[0] = r.Knots[0].Add(dir)
	for i := 1; i < len(r.Knots); i++ {
		leader := r.Knots[i-1]
		if r.Knots[i].Touching(leader) {
			break
		}
		r.Knots[i] = Follow(r.Knots[i], leader)
	}
	r.visited[r.Tail()] = struct{}{}
}

// Apply performs every move in order.
func (r *Rope) Apply(moves []Move) {
	for _, m := range moves {
		for n := 0; n < m.Count; n++ {
			r.Step(m.Dir)
		}
	}
}

// Follow moves knot one step toward leader. Cardinal steps are preferred
// over diagonal ones; a step must leave the knot edge-adjacent to the leader,
// or failing that touching it.
func Follow(knot, leader grid.Point) grid.Point {
	if next, ok := grid.Choose(knot, grid.Cardinals, leader.Orthogonal); ok {
		return next
	}
	if next, ok := grid.Choose(knot, grid.Diagonals, leader.Orthogonal); ok {
		return next
	}
	if next, ok := grid.Choose(knot, grid.Diagonals, leader.Touching); ok {
		return next
	}
	panic(fmt.Sprintf("rope: knot %v cannot reach leader %v", knot, leader))
}

// Config holds the rope lengths for each part.
type Config struct {
	KnotsOne int
	KnotsTwo int
}

// DefaultConfig returns the published puzzle constants.
func DefaultConfig() Config { return Config{KnotsOne: 2, KnotsTwo: 10} }

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	atLeastTwo := func(v int) bool { return v >= 2 }
	core.IntFromMap(cfg, "knots_one", &c.KnotsOne, atLeastTwo)
	core.IntFromMap(cfg, "knots_two", &c.KnotsTwo, atLeastTwo)
	return c
}

// Solver answers the rope bridge puzzle.
type Solver struct {
	cfg Config
}

// New returns a Solver using cfg.
func New(cfg Config) *Solver { return &Solver{cfg: cfg} }

// Name identifies the puzzle.
func (s *Solver) Name() string { return "rope" }

// Day returns the calendar day.
func (s *Solver) Day() int { return Day }

// PartOne counts tail positions for the short rope.
func (s *Solver) PartOne(input string) (string, error) { return s.run(input, s.cfg.KnotsOne) }

// PartTwo counts tail positions for the long rope.
func (s *Solver) PartTwo(input string) (string, error) { return s.run(input, s.cfg.KnotsTwo) }

func (s *Solver) run(input string, knots int) (string, error) {
	moves, err := Parse(input)
	if err != nil {
		return "", err
	}
	r := NewRope(knots)
	r.Apply(moves)
	return strconv.Itoa(r.Visited()), nil
}

// Parameters reports the tunables in effect.
func (s *Solver) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Rope",
		Params: []core.Parameter{
			core.IntParam("knots_one", "Knots in part one", s.cfg.KnotsOne),
			core.IntParam("knots_two", "Knots in part two", s.cfg.KnotsTwo),
		},
	}}}
}

func init() {
	core.Register(core.DayName(Day), func(cfg map[string]string) core.Solver {
		return New(FromMap(cfg))
	})
}
