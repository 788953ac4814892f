package sand

import (
	"advent-ca/internal/core"
	"advent-ca/pkg/grid"
)

// Config holds the cave constants.
type Config struct {
	SourceX  int
	SourceY  int
	FloorGap int
}

// DefaultConfig returns the published puzzle constants.
func DefaultConfig() Config {
	return Config{SourceX: 500, SourceY: 0, FloorGap: 2}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntFromMap(cfg, "source_x", &c.SourceX, nil)
	core.IntFromMap(cfg, "source_y", &c.SourceY, nil)
	core.IntFromMap(cfg, "floor_gap", &c.FloorGap, core.Positive)
	return c
}

// Source returns the point sand pours from.
func (c Config) Source() grid.Point { return grid.P(c.SourceX, c.SourceY) }
