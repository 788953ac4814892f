//go:build ebiten

package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"advent-ca/internal/app"
	"advent-ca/internal/core"
	_ "advent-ca/internal/puzzles/crt"
	_ "advent-ca/internal/puzzles/sand"
)

var log = logrus.New()

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	day, factory, err := core.Lookup(cfg.Day)
	if err != nil {
		log.Fatal(err)
	}
	rf, err := core.LoadRunFile("")
	if err != nil {
		log.Fatal(err)
	}
	ds := rf.Spec(day)
	if cfg.Input != "" {
		ds.Input = cfg.Input
	}

	solver := factory(ds.Params)
	animator, ok := solver.(core.Animator)
	if !ok {
		log.Fatalf("%s (%s) has no animation", day, solver.Name())
	}
	input, err := core.ReadInput(ds.Input)
	if err != nil {
		log.WithError(err).Fatal("read input")
	}
	anim, err := animator.Animate(input, cfg.Part)
	if err != nil {
		log.WithError(err).Fatal("animate")
	}

	params, _ := solver.(core.ParametersProvider)
	game := app.New(anim, params, cfg)
	size := anim.Size()

	ebiten.SetWindowTitle("advent-ca: " + anim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.Panel, size.H*cfg.Scale)

	log.WithFields(logrus.Fields{"day": day, "input": ds.Input, "part": cfg.Part}).Info("starting viewer")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
