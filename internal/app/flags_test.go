package app

import (
	"flag"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-day", "10", "-part", "1", "-scale", "8", "-rate", "30"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Day != "10" || cfg.Part != 1 || cfg.Scale != 8 || cfg.Rate != 30 || cfg.TPS != 60 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Part = 3 },
		func(c *Config) { c.Scale = 0 },
		func(c *Config) { c.Rate = -1 },
		func(c *Config) { c.Panel = -5 },
	}
	for i, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}
