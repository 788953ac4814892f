package signal

import (
	"fmt"
	"strconv"

	"advent-ca/internal/core"
)

// Day is the calendar day this package solves.
const Day = 6

// Marker returns the number of bytes read when the last size bytes are all
// distinct.
func Marker(stream string, size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("window size %d must be positive", size)
	}
	counts := map[byte]int{}
	for i := 0; i < len(stream); i++ {
		counts[stream[i]]++
		if i >= size {
			old := stream[i-size]
			if counts[old]--; counts[old] == 0 {
				delete(counts, old)
			}
		}
		if len(counts) == size {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("no window of %d distinct characters", size)
}

// Config holds the window sizes.
type Config struct {
	Packet  int
	Message int
}

// DefaultConfig returns the published puzzle constants.
func DefaultConfig() Config { return Config{Packet: 4, Message: 14} }

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntFromMap(cfg, "packet", &c.Packet, core.Positive)
	core.IntFromMap(cfg, "message", &c.Message, core.Positive)
	return c
}

// Solver answers the tuning trouble puzzle.
type Solver struct {
	cfg Config
}

// New returns a Solver using cfg.
func New(cfg Config) *Solver { return &Solver{cfg: cfg} }

// Name identifies the puzzle.
func (s *Solver) Name() string { return "signal" }

// Day returns the calendar day.
func (s *Solver) Day() int { return Day }

// PartOne finds the start-of-packet marker.
func (s *Solver) PartOne(input string) (string, error) { return find(input, s.cfg.Packet) }

// PartTwo finds the start-of-message marker.
func (s *Solver) PartTwo(input string) (string, error) { return find(input, s.cfg.Message) }

func find(input string, size int) (string, error) {
	lines := core.Lines(input)
	if len(lines) != 1 {
		return "", fmt.Errorf("expected one line of signal, got %d", len(lines))
	}
	n, err := Marker(lines[0], size)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// Parameters reports the tunables in effect.
func (s *Solver) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Markers",
		Params: []core.Parameter{
			core.IntParam("packet", "Start-of-packet window", s.cfg.Packet),
			core.IntParam("message", "Start-of-message window", s.cfg.Message),
		},
	}}}
}

func init() {
	core.Register(core.DayName(Day), func(cfg map[string]string) core.Solver {
		return New(FromMap(cfg))
	})
}
