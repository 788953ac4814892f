package calories

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"advent-ca/internal/core"
)

// Day is the calendar day this package solves.
const Day = 1

// Totals sums each blank-line separated group of calorie counts. Every group
// is counted, including the last one.
func Totals(input string) ([]int, error) {
	blocks := core.Blocks(input)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("no elves")
	}
	totals := make([]int, 0, len(blocks))
	for _, b := range blocks {
		sum := 0
		for i, line := range b.Lines {
			v, err := core.Atoi(line)
			if err != nil {
				return nil, core.Errorf(b.Start+i, line, "%w", err)
			}
			sum += v
		}
		totals = append(totals, sum)
	}
	return totals, nil
}

// Config holds how many top elves part two sums.
type Config struct {
	Top int
}

// DefaultConfig returns the published puzzle constants.
func DefaultConfig() Config { return Config{Top: 3} }

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntFromMap(cfg, "top", &c.Top, core.Positive)
	return c
}

// Solver answers the calorie counting puzzle.
type Solver struct {
	cfg Config
}

// New returns a Solver using cfg.
func New(cfg Config) *Solver { return &Solver{cfg: cfg} }

// Name identifies the puzzle.
func (s *Solver) Name() string { return "calories" }

// Day returns the calendar day.
func (s *Solver) Day() int { return Day }

// PartOne returns the largest group total.
func (s *Solver) PartOne(input string) (string, error) { return s.top(input, 1) }

// PartTwo returns the sum of the largest few group totals.
func (s *Solver) PartTwo(input string) (string, error) { return s.top(input, s.cfg.Top) }

func (s *Solver) top(input string, n int) (string, error) {
	totals, err := Totals(input)
	if err != nil {
		return "", err
	}
	slices.SortFunc(totals, func(a, b int) int { return cmp.Compare(b, a) })
	sum := 0
	for _, v := range totals[:min(n, len(totals))] {
		sum += v
	}
	return strconv.Itoa(sum), nil
}

// Parameters reports the tunables in effect.
func (s *Solver) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Calories",
		Params: []core.Parameter{core.IntParam("top", "Elves summed in part two", s.cfg.Top)},
	}}}
}

func init() {
	core.Register(core.DayName(Day), func(cfg map[string]string) core.Solver {
		return New(FromMap(cfg))
	})
}
