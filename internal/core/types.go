package core

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownDay is returned when a day name has no registered solver.
var ErrUnknownDay = errors.New("unknown day")

// Result holds the two answers produced for one input.
type Result struct {
	PartOne string
	PartTwo string
}

// Solver defines the minimal contract a daily puzzle must implement.
type Solver interface {
	Name() string
	Day() int
	PartOne(input string) (string, error)
	PartTwo(input string) (string, error)
}

// Size describes the dimensions of an animation frame.
type Size struct {
	W int
	H int
}

// Animation is a step-wise simulation that can be drawn frame by frame.
type Animation interface {
	Name() string
	Size() Size
	Reset()
	Step() bool
	Cells() []uint8
	Palette() []color.RGBA
}

// Animator is implemented by solvers that can replay an input visually.
type Animator interface {
	Animate(input string, part int) (Animation, error)
}

// Factory constructs a Solver using an optional configuration map.
type Factory func(cfg map[string]string) Solver

var solvers = map[string]Factory{}

// Register adds a solver factory under the provided day name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	solvers[name] = f
}

// Solvers exposes the registry of available solver factories.
func Solvers() map[string]Factory {
	return solvers
}

// DayName formats the registry key for a day number.
func DayName(day int) string { return fmt.Sprintf("day%02d", day) }

// Lookup resolves names like "14", "day14" or "day01" to a registered factory.
func Lookup(name string) (string, Factory, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if n, err := strconv.Atoi(strings.TrimPrefix(key, "day")); err == nil {
		key = DayName(n)
	}
	f, ok := solvers[key]
	if !ok {
		return "", nil, fmt.Errorf("%w %q", ErrUnknownDay, name)
	}
	return key, f, nil
}

// Names returns the registered day names in order.
func Names() []string {
	names := make([]string, 0, len(solvers))
	for name := range solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Solve runs both parts of s against input.
func Solve(s Solver, input string) (Result, error) {
	one, err := s.PartOne(input)
	if err != nil {
		return Result{}, fmt.Errorf("%s part one: %w", s.Name(), err)
	}
	two, err := s.PartTwo(input)
	if err != nil {
		return Result{}, fmt.Errorf("%s part two: %w", s.Name(), err)
	}
	return Result{PartOne: one, PartTwo: two}, nil
}
