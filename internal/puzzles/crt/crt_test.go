package crt

import (
	"os"
	"strings"
	"testing"

	"advent-ca/internal/core"
)

func readSample(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/sample.txt")
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestSampleAnswers(t *testing.T) {
	res, err := core.Solve(New(DefaultConfig()), readSample(t))
	if err != nil {
		t.Fatal(err)
	}
	if res.PartOne != "13140" {
		t.Fatalf("part one = %s, expected 13140", res.PartOne)
	}
	want := strings.Join([]string{
		"##..##..##..##..##..##..##..##..##..##..",
		"###...###...###...###...###...###...###.",
		"####....####....####....####....####....",
		"#####.....#####.....#####.....#####.....",
		"######......######......######......####",
		"#######.......#######.......#######.....",
	}, "\n")
	if res.PartTwo != want {
		t.Fatalf("part two =\n%s\nexpected\n%s", res.PartTwo, want)
	}
}

func TestTraceSmallProgram(t *testing.T) {
	prog, err := Parse("noop\naddx 3\naddx -5\n")
	if err != nil {
		t.Fatal(err)
	}
	xs := Trace(prog)
	want := []int{1, 1, 1, 4, 4}
	if len(xs) != len(want) {
		t.Fatalf("trace %v, expected %v", xs, want)
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("trace %v, expected %v", xs, want)
		}
	}
	if got := During(prog, xs, 6); got != -1 {
		t.Fatalf("X after the program = %d, expected -1", got)
	}
}

func TestScreenAnimationResets(t *testing.T) {
	s := New(DefaultConfig())
	anim, err := s.Animate(readSample(t), 2)
	if err != nil {
		t.Fatal(err)
	}
	steps := 1
	for anim.Step() {
		steps++
	}
	if steps != 240 {
		t.Fatalf("drew %d pixels, expected 240", steps)
	}
	anim.Reset()
	for _, c := range anim.Cells() {
		if c != 0 {
			t.Fatal("Reset should blank the screen")
		}
	}
	if _, err := s.Animate("noop", 3); err == nil {
		t.Fatal("expected error for unknown part")
	}
}

func TestParseRejectsUnknownInstruction(t *testing.T) {
	for _, in := range []string{"mulx 3", "addx", "addx q", "noop 1"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) should fail", in)
		}
	}
}
