package beacons

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"advent-ca/internal/core"
	"advent-ca/pkg/grid"
)

// Day is the calendar day this package solves.
const Day = 15

// FrequencyScale multiplies the X coordinate in the tuning frequency.
const FrequencyScale = 4000000

// Sensor is a sensor together with the closest beacon it reported.
type Sensor struct {
	Pos    grid.Point
	Beacon grid.Point
}

// Radius is the Manhattan distance within which no other beacon can exist.
func (s Sensor) Radius() int { return s.Pos.MDist(s.Beacon) }

// Span returns the inclusive range of X covered on row y.
func (s Sensor) Span(y int) (Interval, bool) {
	w := s.Radius() - grid.Abs(s.Pos.Y-y)
	if w < 0 {
		return Interval{}, false
	}
	return Interval{Lo: s.Pos.X - w, Hi: s.Pos.X + w}, true
}

// Parse reads "Sensor at x=A, y=B: closest beacon is at x=C, y=D" lines.
func Parse(input string) ([]Sensor, error) {
	lines := core.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("no sensors")
	}
	sensors := make([]Sensor, 0, len(lines))
	for i, line := range lines {
		var s Sensor
		err := core.Scanf(line, "Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d",
			&s.Pos.X, &s.Pos.Y, &s.Beacon.X, &s.Beacon.Y)
		if err != nil {
			return nil, core.Errorf(i+1, line, "malformed sensor report: %v", err)
		}
		sensors = append(sensors, s)
	}
	return sensors, nil
}

// Interval is an inclusive integer range.
type Interval struct {
	Lo, Hi int
}

// Len returns the number of integers in the interval.
func (iv Interval) Len() int { return iv.Hi - iv.Lo + 1 }

// Contains reports whether x lies in the interval.
func (iv Interval) Contains(x int) bool { return iv.Lo <= x && x <= iv.Hi }

// Merge sorts ivs and joins overlapping or adjacent intervals. The input slice
// is reordered.
func Merge(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return nil
	}
	slices.SortFunc(ivs, func(a, b Interval) int { return cmp.Compare(a.Lo, b.Lo) })
	out := []Interval{ivs[0]}
	for _, iv := range ivs[1:] {
		last := &out[len(out)-1]
		if iv.Lo <= last.Hi+1 {
			last.Hi = max(last.Hi, iv.Hi)
			continue
		}
		out = append(out, iv)
	}
	return out
}

// Coverage returns the merged exclusion intervals on row y.
func Coverage(sensors []Sensor, y int) []Interval {
	ivs := make([]Interval, 0, len(sensors))
	for _, s := range sensors {
		if iv, ok := s.Span(y); ok {
			ivs = append(ivs, iv)
		}
	}
	return Merge(ivs)
}

// Excluded counts positions on row y that cannot hold a beacon.
func Excluded(sensors []Sensor, y int) int {
	cov := Coverage(sensors, y)
	n := 0
	for _, iv := range cov {
		n += iv.Len()
	}
	seen := map[grid.Point]bool{}
	for _, s := range sensors {
		b := s.Beacon
		if b.Y != y || seen[b] {
			continue
		}
		seen[b] = true
		for _, iv := range cov {
			if iv.Contains(b.X) {
				n--
				break
			}
		}
	}
	return n
}

// Find locates the only position in [0,limit]x[0,limit] not covered by any
// sensor.
func Find(sensors []Sensor, limit int) (grid.Point, bool) {
	ivs := make([]Interval, 0, len(sensors))
	for y := 0; y <= limit; y++ {
		ivs = ivs[:0]
		for _, s := range sensors {
			if iv, ok := s.Span(y); ok {
				ivs = append(ivs, iv)
			}
		}
		x := 0
		for _, iv := range Merge(ivs) {
			if iv.Lo > x {
				break
			}
			x = max(x, iv.Hi+1)
		}
		if x <= limit {
			return grid.P(x, y), true
		}
	}
	return grid.Point{}, false
}

// Config holds the scan constants.
type Config struct {
	Row   int
	Limit int
}

// DefaultConfig returns the published puzzle constants.
func DefaultConfig() Config { return Config{Row: 2000000, Limit: 4000000} }

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntFromMap(cfg, "row", &c.Row, nil)
	core.IntFromMap(cfg, "limit", &c.Limit, core.NonNegative)
	return c
}

// Solver answers the beacon exclusion zone puzzle.
type Solver struct {
	cfg Config
}

// New returns a Solver using cfg.
func New(cfg Config) *Solver { return &Solver{cfg: cfg} }

// Name identifies the puzzle.
func (s *Solver) Name() string { return "beacons" }

// Day returns the calendar day.
func (s *Solver) Day() int { return Day }

// PartOne counts positions on the configured row where no beacon can be.
func (s *Solver) PartOne(input string) (string, error) {
	sensors, err := Parse(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(Excluded(sensors, s.cfg.Row)), nil
}

// PartTwo returns the tuning frequency of the distress beacon.
func (s *Solver) PartTwo(input string) (string, error) {
	sensors, err := Parse(input)
	if err != nil {
		return "", err
	}
	p, ok := Find(sensors, s.cfg.Limit)
	if !ok {
		return "", fmt.Errorf("every position up to %d is covered", s.cfg.Limit)
	}
	return strconv.FormatInt(int64(p.X)*FrequencyScale+int64(p.Y), 10), nil
}

// Parameters reports the tunables in effect.
func (s *Solver) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Scan",
		Params: []core.Parameter{
			core.IntParam("row", "Row inspected in part one", s.cfg.Row),
			core.IntParam("limit", "Search bound in part two", s.cfg.Limit),
		},
	}}}
}

func init() {
	core.Register(core.DayName(Day), func(cfg map[string]string) core.Solver {
		return New(FromMap(cfg))
	})
}
