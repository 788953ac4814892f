package rps

import (
	"testing"

	"advent-ca/internal/core"
)

func TestSampleAnswers(t *testing.T) {
	res, err := core.Solve(New(), "A Y\nB X\nC Z\n")
	if err != nil {
		t.Fatal(err)
	}
	if res.PartOne != "15" || res.PartTwo != "12" {
		t.Fatalf("got %+v, expected 15 and 12", res)
	}
}

func TestPlayAndRespondAgree(t *testing.T) {
	for them := Rock; them <= Scissors; them++ {
		for o := Lose; o <= Win; o++ {
			me := Respond(them, o)
			if got := Play(me, them); got != o {
				t.Fatalf("Respond(%d,%d) = %d plays to %d", them, o, me, got)
			}
		}
	}
	if Play(Paper, Rock) != Win || Play(Rock, Paper) != Lose || Play(Scissors, Scissors) != Draw {
		t.Fatal("unexpected outcome table")
	}
}

func TestParseRejectsBadRounds(t *testing.T) {
	for _, in := range []string{"D X", "A W", "AX", "A  X"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) should fail", in)
		}
	}
}
