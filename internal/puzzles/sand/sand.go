package sand

import (
	"fmt"
	"strconv"
	"strings"

	"advent-ca/internal/core"
	"advent-ca/pkg/grid"
)

// Day is the calendar day this package solves.
const Day = 14

// Material enumerates the cell states of the cave.
type Material uint8

const (
	Air Material = iota
	Rock
	Sand
)

func (m Material) String() string {
	switch m {
	case Rock:
		return "#"
	case Sand:
		return "o"
	}
	return "."
}

// Priority is the order in which a grain tries to move.
var Priority = []grid.Point{grid.Down, grid.DownLeft, grid.DownRight}

// Cave is the sparse cell map of rock and settled sand.
type Cave = grid.CellMap[Material]

// Parse reads rock paths of the form "x,y -> x,y -> ..." into a cave.
func Parse(input string) (*Cave, error) {
	lines := core.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("no rock paths")
	}
	cave := grid.New(Air)
	for i, line := range lines {
		var prev grid.Point
		for j, tok := range strings.Split(line, " -> ") {
			p, err := parsePoint(tok)
			if err != nil {
				return nil, core.Errorf(i+1, line, "%w", err)
			}
			if j > 0 {
				if p.X != prev.X && p.Y != prev.Y {
					return nil, core.Errorf(i+1, line, "segment %v -> %v is not axis aligned", prev, p)
				}
				for q := prev; q != p; q = q.Toward(p) {
					cave.Set(q, Rock)
				}
			}
			cave.Set(p, Rock)
			prev = p
		}
	}
	return cave, nil
}

func parsePoint(tok string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(tok, ",")
	if !ok {
		return grid.Point{}, fmt.Errorf("bad point %q", tok)
	}
	x, err := core.Atoi(xs)
	if err != nil {
		return grid.Point{}, fmt.Errorf("bad x in %q: %w", tok, err)
	}
	y, err := core.Atoi(ys)
	if err != nil {
		return grid.Point{}, fmt.Errorf("bad y in %q: %w", tok, err)
	}
	return grid.P(x, y), nil
}

// AbyssRule lets grains escape once they pass the lowest rock.
func AbyssRule(cave *Cave) grid.Rule {
	return grid.Rule{Priority: Priority, Abyss: grid.AbyssBelow(cave), HasAbyss: true}
}

// FloorRule places an endless floor gap rows below the lowest rock.
func FloorRule(cave *Cave, gap int) grid.Rule {
	return grid.Rule{Priority: Priority, Floor: grid.AbyssBelow(cave) + gap, HasFloor: true}
}

// Solver answers the regolith reservoir puzzle.
type Solver struct {
	cfg Config
}

// New returns a Solver using cfg.
func New(cfg Config) *Solver { return &Solver{cfg: cfg} }

// Name identifies the puzzle.
func (s *Solver) Name() string { return "sand" }

// Day returns the calendar day.
func (s *Solver) Day() int { return Day }

// PartOne counts grains that settle before sand pours into the abyss.
func (s *Solver) PartOne(input string) (string, error) {
	cave, err := Parse(input)
	if err != nil {
		return "", err
	}
	n, _ := grid.Pour(cave, s.cfg.Source(), AbyssRule(cave), Sand, 0)
	return strconv.Itoa(n), nil
}

// PartTwo counts grains that settle on the floor until the source is blocked.
func (s *Solver) PartTwo(input string) (string, error) {
	cave, err := Parse(input)
	if err != nil {
		return "", err
	}
	n, _ := grid.Pour(cave, s.cfg.Source(), FloorRule(cave, s.cfg.FloorGap), Sand, 0)
	return strconv.Itoa(n), nil
}

// Parameters reports the tunables in effect.
func (s *Solver) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Cave",
		Params: []core.Parameter{
			core.IntParam("source_x", "Source X", s.cfg.SourceX),
			core.IntParam("source_y", "Source Y", s.cfg.SourceY),
			core.IntParam("floor_gap", "Floor gap below lowest rock", s.cfg.FloorGap),
		},
	}}}
}

func init() {
	core.Register(core.DayName(Day), func(cfg map[string]string) core.Solver {
		return New(FromMap(cfg))
	})
}
