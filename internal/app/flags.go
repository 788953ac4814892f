package app

import (
	"flag"
	"fmt"
)

// Config represents the command-line parameters of the viewer.
type Config struct {
	Day   string
	Input string
	Part  int
	Scale int
	TPS   int
	Rate  int
	Panel int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Day: "day14", Part: 2, Scale: 3, TPS: 60, Rate: 120, Panel: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Day, "day", c.Day, "day to animate")
	fs.StringVar(&c.Input, "input", c.Input, "input file (default inputs/<day>.txt)")
	fs.IntVar(&c.Part, "part", c.Part, "puzzle part to animate (1 or 2)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "simulation steps per second")
	fs.IntVar(&c.Panel, "panel", c.Panel, "width of the side panel in pixels (0 hides it)")
}

// Validate rejects values the viewer cannot use.
func (c *Config) Validate() error {
	if c.Part != 1 && c.Part != 2 {
		return fmt.Errorf("part must be 1 or 2, got %d", c.Part)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 || c.Rate <= 0 {
		return fmt.Errorf("tps and rate must be positive")
	}
	if c.Panel < 0 {
		return fmt.Errorf("panel width must not be negative")
	}
	return nil
}
