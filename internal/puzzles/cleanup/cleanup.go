package cleanup

import (
	"fmt"
	"strconv"
	"strings"

	"advent-ca/internal/core"
)

// Day is the calendar day this package solves.
const Day = 4

// Range is an inclusive section assignment.
type Range struct {
	Lo, Hi int
}

// Contains reports whether r covers all of o.
func (r Range) Contains(o Range) bool { return r.Lo <= o.Lo && o.Hi <= r.Hi }

// Overlaps reports whether r and o share any section.
func (r Range) Overlaps(o Range) bool { return r.Lo <= o.Hi && o.Lo <= r.Hi }

func parseRange(s string) (Range, error) {
	a, b, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, fmt.Errorf("bad range %q", s)
	}
	lo, err := core.Atoi(a)
	if err != nil {
		return Range{}, err
	}
	hi, err := core.Atoi(b)
	if err != nil {
		return Range{}, err
	}
	if lo > hi {
		return Range{}, fmt.Errorf("range %q is reversed", s)
	}
	return Range{lo, hi}, nil
}

// Pair is the two assignments on one line.
type Pair [2]Range

// Parse reads "a-b,c-d" lines.
func Parse(input string) ([]Pair, error) {
	lines := core.Lines(input)
	pairs := make([]Pair, 0, len(lines))
	for i, line := range lines {
		l, r, ok := strings.Cut(line, ",")
		if !ok {
			return nil, core.Errorf(i+1, line, "expected two ranges")
		}
		var p Pair
		var err error
		if p[0], err = parseRange(l); err != nil {
			return nil, core.Errorf(i+1, line, "%w", err)
		}
		if p[1], err = parseRange(r); err != nil {
			return nil, core.Errorf(i+1, line, "%w", err)
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// Solver answers the camp cleanup puzzle.
type Solver struct{}

// New returns a Solver.
func New() *Solver { return &Solver{} }

// Name identifies the puzzle.
func (s *Solver) Name() string { return "cleanup" }

// Day returns the calendar day.
func (s *Solver) Day() int { return Day }

// PartOne counts pairs where one range contains the other.
func (s *Solver) PartOne(input string) (string, error) {
	return count(input, func(p Pair) bool { return p[0].Contains(p[1]) || p[1].Contains(p[0]) })
}

// PartTwo counts pairs that overlap at all.
func (s *Solver) PartTwo(input string) (string, error) {
	return count(input, func(p Pair) bool { return p[0].Overlaps(p[1]) })
}

func count(input string, keep func(Pair) bool) (string, error) {
	pairs, err := Parse(input)
	if err != nil {
		return "", err
	}
	n := 0
	for _, p := range pairs {
		if keep(p) {
			n++
		}
	}
	return strconv.Itoa(n), nil
}

func init() {
	core.Register(core.DayName(Day), func(map[string]string) core.Solver { return New() })
}
