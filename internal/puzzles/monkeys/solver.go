package monkeys

import "advent-ca/internal/core"

// Config holds the round counts and part one relief divisor.
type Config struct {
	RoundsOne int
	RoundsTwo int
	Relief    int
}

// DefaultConfig returns the published puzzle constants.
func DefaultConfig() Config { return Config{RoundsOne: 20, RoundsTwo: 10000, Relief: 3} }

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntFromMap(cfg, "rounds_one", &c.RoundsOne, core.NonNegative)
	core.IntFromMap(cfg, "rounds_two", &c.RoundsTwo, core.NonNegative)
	core.IntFromMap(cfg, "relief", &c.Relief, core.Positive)
	return c
}

// Solver answers the monkey in the middle puzzle.
type Solver struct {
	cfg Config
}

// New returns a Solver using cfg.
func New(cfg Config) *Solver { return &Solver{cfg: cfg} }

// Name identifies the puzzle.
func (s *Solver) Name() string { return "monkeys" }

// Day returns the calendar day.
func (s *Solver) Day() int { return Day }

// PartOne plays the short game where worry is divided after each inspection.
func (s *Solver) PartOne(input string) (string, error) {
	ms, err := Parse(input)
	if err != nil {
		return "", err
	}
	return play(NewTroop(ms), s.cfg.RoundsOne, DivideBy(uint64(s.cfg.Relief)))
}

// PartTwo plays the long game with worry kept modulo the divisor product.
func (s *Solver) PartTwo(input string) (string, error) {
	ms, err := Parse(input)
	if err != nil {
		return "", err
	}
	t := NewTroop(ms)
	m, err := t.Modulus()
	if err != nil {
		return "", err
	}
	return play(t, s.cfg.RoundsTwo, ModuloOf(m))
}

func play(t *Troop, rounds int, relief Relief) (string, error) {
	for i := 0; i < rounds; i++ {
		if err := t.Round(relief); err != nil {
			return "", err
		}
	}
	return t.Business().String(), nil
}

// Parameters reports the tunables in effect.
func (s *Solver) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Rounds",
		Params: []core.Parameter{
			core.IntParam("rounds_one", "Rounds in part one", s.cfg.RoundsOne),
			core.IntParam("rounds_two", "Rounds in part two", s.cfg.RoundsTwo),
			core.IntParam("relief", "Worry divisor in part one", s.cfg.Relief),
		},
	}}}
}

func init() {
	core.Register(core.DayName(Day), func(cfg map[string]string) core.Solver {
		return New(FromMap(cfg))
	})
}
