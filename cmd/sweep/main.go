package main

import (
	"flag"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"advent-ca/internal/core"
	_ "advent-ca/internal/puzzles/beacons"
	_ "advent-ca/internal/puzzles/calories"
	_ "advent-ca/internal/puzzles/cleanup"
	_ "advent-ca/internal/puzzles/crates"
	_ "advent-ca/internal/puzzles/crt"
	_ "advent-ca/internal/puzzles/filesystem"
	_ "advent-ca/internal/puzzles/monkeys"
	_ "advent-ca/internal/puzzles/packets"
	_ "advent-ca/internal/puzzles/rope"
	_ "advent-ca/internal/puzzles/rps"
	_ "advent-ca/internal/puzzles/rucksack"
	_ "advent-ca/internal/puzzles/sand"
	_ "advent-ca/internal/puzzles/signal"
	_ "advent-ca/internal/puzzles/treetop"
	"advent-ca/internal/sweep"
)

var log = logrus.New()

func main() {
	day := flag.String("day", "", "day to sweep")
	key := flag.String("key", "", "integer tunable to vary (see aoc -params)")
	from := flag.Int("from", 1, "first value")
	to := flag.Int("to", 10, "last value")
	step := flag.Int("step", 1, "increment")
	input := flag.String("input", "", "input file (overrides the run file)")
	config := flag.String("config", "", "YAML run file with input paths and tunables")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *day == "" || *key == "" {
		log.Fatalf("-day and -key are required (days: %s)", strings.Join(core.Names(), ", "))
	}
	name, factory, err := core.Lookup(*day)
	if err != nil {
		log.Fatal(err)
	}
	values, err := sweep.Values(*from, *to, *step)
	if err != nil {
		log.Fatal(err)
	}
	rf, err := core.LoadRunFile(*config)
	if err != nil {
		log.WithError(err).Fatal("load run file")
	}
	ds := rf.Spec(name)
	if *input != "" {
		ds.Input = *input
	}
	text, err := core.ReadInput(ds.Input)
	if err != nil {
		log.WithError(err).Fatal("read input")
	}

	log.WithFields(logrus.Fields{"day": name, "key": *key, "scenarios": len(values), "workers": *workers}).Info("sweeping")
	results := sweep.Run(factory, *key, text, sweep.Scenarios(ds.Params, *key, values), *workers)
	if err := sweep.Print(os.Stdout, *key, results); err != nil {
		log.Fatal(err)
	}
}
