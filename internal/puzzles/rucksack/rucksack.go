package rucksack

import (
	"fmt"
	"math/bits"
	"strconv"

	"advent-ca/internal/core"
)

// Day is the calendar day this package solves.
const Day = 3

// Priority maps a-z to 1-26 and A-Z to 27-52. Other bytes have priority 0.
func Priority(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27
	}
	return 0
}

// Set is a bit set of item priorities.
type Set uint64

// Items builds the set of priorities present in s.
func Items(s string) Set {
	var set Set
	for i := 0; i < len(s); i++ {
		set |= 1 << Priority(s[i])
	}
	return set
}

// Only returns the single priority in set, or false when it holds zero or
// several.
func (s Set) Only() (int, bool) {
	if bits.OnesCount64(uint64(s)) != 1 {
		return 0, false
	}
	return bits.TrailingZeros64(uint64(s)), true
}

func parse(input string) ([]string, error) {
	lines := core.Lines(input)
	for i, line := range lines {
		if line == "" {
			return nil, core.Errorf(i+1, line, "empty rucksack")
		}
		for j := 0; j < len(line); j++ {
			if Priority(line[j]) == 0 {
				return nil, core.Errorf(i+1, line, "bad item %q", line[j])
			}
		}
	}
	return lines, nil
}

// Config holds the elf group size for part two.
type Config struct {
	Group int
}

// DefaultConfig returns the published puzzle constants.
func DefaultConfig() Config { return Config{Group: 3} }

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntFromMap(cfg, "group", &c.Group, core.Positive)
	return c
}

// Solver answers the rucksack reorganization puzzle.
type Solver struct {
	cfg Config
}

// New returns a Solver using cfg.
func New(cfg Config) *Solver { return &Solver{cfg: cfg} }

// Name identifies the puzzle.
func (s *Solver) Name() string { return "rucksack" }

// Day returns the calendar day.
func (s *Solver) Day() int { return Day }

// PartOne sums the priority of the item in both compartments of each sack.
func (s *Solver) PartOne(input string) (string, error) {
	lines, err := parse(input)
	if err != nil {
		return "", err
	}
	sum := 0
	for i, line := range lines {
		if len(line)%2 != 0 {
			return "", core.Errorf(i+1, line, "odd item count %d", len(line))
		}
		half := len(line) / 2
		p, ok := (Items(line[:half]) & Items(line[half:])).Only()
		if !ok {
			return "", core.Errorf(i+1, line, "compartments do not share exactly one item")
		}
		sum += p
	}
	return strconv.Itoa(sum), nil
}

// PartTwo sums the badge priority shared by each group of elves.
func (s *Solver) PartTwo(input string) (string, error) {
	lines, err := parse(input)
	if err != nil {
		return "", err
	}
	n := s.cfg.Group
	if len(lines)%n != 0 {
		return "", fmt.Errorf("%d rucksacks do not split into groups of %d", len(lines), n)
	}
	sum := 0
	for i := 0; i < len(lines); i += n {
		common := ^Set(0)
		for _, line := range lines[i : i+n] {
			common &= Items(line)
		}
		p, ok := common.Only()
		if !ok {
			return "", core.Errorf(i+1, lines[i], "group does not share exactly one badge")
		}
		sum += p
	}
	return strconv.Itoa(sum), nil
}

// Parameters reports the tunables in effect.
func (s *Solver) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Rucksacks",
		Params: []core.Parameter{core.IntParam("group", "Elves per badge group", s.cfg.Group)},
	}}}
}

func init() {
	core.Register(core.DayName(Day), func(cfg map[string]string) core.Solver {
		return New(FromMap(cfg))
	})
}
