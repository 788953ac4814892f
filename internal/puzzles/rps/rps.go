package rps

import (
	"strconv"

	"advent-ca/internal/core"
)

// Day is the calendar day this package solves.
const Day = 2

// Shape is rock, paper or scissors.
type Shape int

const (
	Rock Shape = iota
	Paper
	Scissors
)

// Score is the points awarded for playing the shape.
func (s Shape) Score() int { return int(s) + 1 }

// Outcome of a round from the player's side.
type Outcome int

const (
	Lose Outcome = iota
	Draw
	Win
)

// Score is the points awarded for the outcome.
func (o Outcome) Score() int { return int(o) * 3 }

// Play returns the outcome of me against them.
func Play(me, them Shape) Outcome {
	switch (me - them + 3) % 3 {
	case 0:
		return Draw
	case 1:
		return Win
	}
	return Lose
}

// Respond returns the shape that produces o against them.
func Respond(them Shape, o Outcome) Shape {
	return (them + Shape(o) + 2) % 3
}

// Round is one line of the strategy guide: the opponent's letter A-C and
// the second column X-Z as an index 0-2.
type Round struct {
	Them   Shape
	Column int
}

// Parse reads "A X" style lines.
func Parse(input string) ([]Round, error) {
	lines := core.Lines(input)
	rounds := make([]Round, 0, len(lines))
	for i, line := range lines {
		if len(line) != 3 || line[1] != ' ' || line[0] < 'A' || line[0] > 'C' || line[2] < 'X' || line[2] > 'Z' {
			return nil, core.Errorf(i+1, line, "expected \"<A-C> <X-Z>\"")
		}
		rounds = append(rounds, Round{Them: Shape(line[0] - 'A'), Column: int(line[2] - 'X')})
	}
	return rounds, nil
}

// Solver answers the rock paper scissors puzzle.
type Solver struct{}

// New returns a Solver.
func New() *Solver { return &Solver{} }

// Name identifies the puzzle.
func (s *Solver) Name() string { return "rps" }

// Day returns the calendar day.
func (s *Solver) Day() int { return Day }

// PartOne reads the second column as the shape to play.
func (s *Solver) PartOne(input string) (string, error) {
	return total(input, func(r Round) int {
		me := Shape(r.Column)
		return me.Score() + Play(me, r.Them).Score()
	})
}

// PartTwo reads the second column as the outcome to reach.
func (s *Solver) PartTwo(input string) (string, error) {
	return total(input, func(r Round) int {
		o := Outcome(r.Column)
		return Respond(r.Them, o).Score() + o.Score()
	})
}

func total(input string, score func(Round) int) (string, error) {
	rounds, err := Parse(input)
	if err != nil {
		return "", err
	}
	sum := 0
	for _, r := range rounds {
		sum += score(r)
	}
	return strconv.Itoa(sum), nil
}

func init() {
	core.Register(core.DayName(Day), func(map[string]string) core.Solver { return New() })
}
