package main

import (
	"context"
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
	"advent-ca/internal/runner"
)

var log = logrus.New()

func main() {
	day := flag.String("day", "", "day to solve, e.g. 14 or day14 (comma separated for several)")
	input := flag.String("input", "", "input file (overrides the run file)")
	config := flag.String("config", "", "YAML run file with input paths and tunables")
	all := flag.Bool("all", false, "solve every registered day")
	workers := flag.Int("workers", runtime.NumCPU(), "days solved concurrently")
	params := flag.Bool("params", false, "print the tunables of the selected days and exit")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var days []string
	switch {
	case *all:
	case *day != "":
		days = strings.Split(*day, ",")
	default:
		log.Fatalf("pick a day with -day (available: %s) or use -all", strings.Join(core.Names(), ", "))
	}

	rf, err := core.LoadRunFile(*config)
	if err != nil {
		log.WithError(err).Fatal("load run file")
	}
	jobs, err := runner.Plan(rf, days, *input)
	if err != nil {
		log.WithError(err).Fatal("plan")
	}

	if *params {
		if err := runner.PrintParams(os.Stdout, jobs); err != nil {
			log.Fatal(err)
		}
		return
	}

	r := runner.New(*workers, log)
	reports, runErr := r.Run(context.Background(), jobs)
	if err := runner.Print(os.Stdout, reports, len(jobs) > 1); err != nil {
		log.Fatal(err)
	}
	if runErr != nil {
		log.WithError(runErr).Fatal("solve")
	}
}
