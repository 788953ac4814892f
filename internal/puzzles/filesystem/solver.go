package filesystem

import (
	"fmt"
	"strconv"

	"advent-ca/internal/core"
)

// Day is the calendar day this package solves.
const Day = 7

// Config holds the disk constants.
type Config struct {
	SmallLimit int
	DiskSize   int
	Needed     int
}

// DefaultConfig returns the published puzzle constants.
func DefaultConfig() Config {
	return Config{SmallLimit: 100000, DiskSize: 70000000, Needed: 30000000}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntFromMap(cfg, "small_limit", &c.SmallLimit, core.NonNegative)
	core.IntFromMap(cfg, "disk_size", &c.DiskSize, core.Positive)
	core.IntFromMap(cfg, "needed", &c.Needed, core.NonNegative)
	return c
}

// Solver answers the no space left on device puzzle.
type Solver struct {
	cfg Config
}

// New returns a Solver using cfg.
func New(cfg Config) *Solver { return &Solver{cfg: cfg} }

// Name identifies the puzzle.
func (s *Solver) Name() string { return "filesystem" }

// Day returns the calendar day.
func (s *Solver) Day() int { return Day }

// PartOne sums the sizes of directories no larger than the small limit.
func (s *Solver) PartOne(input string) (string, error) {
	t, err := Parse(input)
	if err != nil {
		return "", err
	}
	var sum int64
	for _, size := range t.Sizes() {
		if size <= int64(s.cfg.SmallLimit) {
			sum += size
		}
	}
	return strconv.FormatInt(sum, 10), nil
}

// PartTwo finds the smallest directory whose removal frees enough space.
func (s *Solver) PartTwo(input string) (string, error) {
	t, err := Parse(input)
	if err != nil {
		return "", err
	}
	sizes := t.Sizes()
	used := sizes[Root]
	free := int64(s.cfg.DiskSize) - used
	if free < 0 {
		return "", fmt.Errorf("used %d exceeds disk size %d", used, s.cfg.DiskSize)
	}
	need := int64(s.cfg.Needed) - free
	if need <= 0 {
		return "0", nil
	}
	best := int64(-1)
	for _, size := range sizes {
		if size >= need && (best < 0 || size < best) {
			best = size
		}
	}
	return strconv.FormatInt(best, 10), nil
}

// Parameters reports the tunables in effect.
func (s *Solver) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Disk",
		Params: []core.Parameter{
			core.IntParam("small_limit", "Largest directory counted in part one", s.cfg.SmallLimit),
			core.IntParam("disk_size", "Total disk space", s.cfg.DiskSize),
			core.IntParam("needed", "Free space required for the update", s.cfg.Needed),
		},
	}}}
}

func init() {
	core.Register(core.DayName(Day), func(cfg map[string]string) core.Solver {
		return New(FromMap(cfg))
	})
}
