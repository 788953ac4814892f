package crt

import (
	"fmt"
	"strconv"
	"strings"

	"advent-ca/internal/core"
)

// Day is the calendar day this package solves.
const Day = 10

// Instr is one CPU instruction. Noop has Cycles 1 and Delta 0.
type Instr struct {
	Cycles int
	Delta  int
}

// Parse reads "noop" and "addx <v>" lines.
func Parse(input string) ([]Instr, error) {
	lines := core.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty program")
	}
	prog := make([]Instr, 0, len(lines))
	for i, line := range lines {
		op, arg, _ := strings.Cut(line, " ")
		switch op {
		case "noop":
			if arg != "" {
				return nil, core.Errorf(i+1, line, "noop takes no argument")
			}
			prog = append(prog, Instr{Cycles: 1})
		case "addx":
			v, err := core.Atoi(arg)
			if err != nil {
				return nil, core.Errorf(i+1, line, "bad addx argument %q", arg)
			}
			prog = append(prog, Instr{Cycles: 2, Delta: v})
		default:
			return nil, core.Errorf(i+1, line, "unknown instruction %q", op)
		}
	}
	return prog, nil
}

// Trace returns the X register during each cycle; element i is cycle i+1.
func Trace(prog []Instr) []int {
	x := 1
	var xs []int
	for _, in := range prog {
		for c := 0; c < in.Cycles; c++ {
			xs = append(xs, x)
		}
		x += in.Delta
	}
	return xs
}

// During returns X during the 1-based cycle. Cycles past the end of the
// program keep the final register value.
func During(prog []Instr, xs []int, cycle int) int {
	if cycle <= len(xs) {
		return xs[cycle-1]
	}
	x := 1
	for _, in := range prog {
		x += in.Delta
	}
	return x
}

// Lit reports whether the sprite centred on x covers column col.
func Lit(x, col int) bool { return x-1 <= col && col <= x+1 }

// Config holds the sampling cycles and screen geometry.
type Config struct {
	First  int
	Every  int
	Last   int
	Width  int
	Height int
}

// DefaultConfig returns the published puzzle constants.
func DefaultConfig() Config {
	return Config{First: 20, Every: 40, Last: 220, Width: 40, Height: 6}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntFromMap(cfg, "first", &c.First, core.Positive)
	core.IntFromMap(cfg, "every", &c.Every, core.Positive)
	core.IntFromMap(cfg, "last", &c.Last, core.Positive)
	core.IntFromMap(cfg, "width", &c.Width, core.Positive)
	core.IntFromMap(cfg, "height", &c.Height, core.Positive)
	return c
}

// Solver answers the cathode-ray tube puzzle.
type Solver struct {
	cfg Config
}

// New returns a Solver using cfg.
func New(cfg Config) *Solver { return &Solver{cfg: cfg} }

// Name identifies the puzzle.
func (s *Solver) Name() string { return "crt" }

// Day returns the calendar day.
func (s *Solver) Day() int { return Day }

// PartOne sums cycle*X over the sampled cycles.
func (s *Solver) PartOne(input string) (string, error) {
	prog, err := Parse(input)
	if err != nil {
		return "", err
	}
	xs := Trace(prog)
	sum := 0
	for c := s.cfg.First; c <= s.cfg.Last; c += s.cfg.Every {
		sum += c * During(prog, xs, c)
	}
	return strconv.Itoa(sum), nil
}

// PartTwo draws the screen and returns it as lines of '#' and '.'.
func (s *Solver) PartTwo(input string) (string, error) {
	prog, err := Parse(input)
	if err != nil {
		return "", err
	}
	screen := NewScreen(prog, s.cfg.Width, s.cfg.Height)
	for screen.Step() {
	}
	return screen.String(), nil
}

// Parameters reports the tunables in effect.
func (s *Solver) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Signal",
			Params: []core.Parameter{
				core.IntParam("first", "First sampled cycle", s.cfg.First),
				core.IntParam("every", "Cycles between samples", s.cfg.Every),
				core.IntParam("last", "Last sampled cycle", s.cfg.Last),
			},
		},
		{
			Name: "Screen",
			Params: []core.Parameter{
				core.IntParam("width", "Screen width", s.cfg.Width),
				core.IntParam("height", "Screen height", s.cfg.Height),
			},
		},
	}}
}

// Animate replays the beam drawing one pixel per step. Both parts show the
// same screen.
func (s *Solver) Animate(input string, part int) (core.Animation, error) {
	if part != 1 && part != 2 {
		return nil, fmt.Errorf("crt has no part %d", part)
	}
	prog, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return NewScreen(prog, s.cfg.Width, s.cfg.Height), nil
}

func init() {
	core.Register(core.DayName(Day), func(cfg map[string]string) core.Solver {
		return New(FromMap(cfg))
	})
}
