package rope

import (
	"testing"

	"advent-ca/internal/core"
	"advent-ca/pkg/grid"
)

const sample = `R 4
U 4
L 3
D 1
R 4
D 1
L 5
R 2
`

const larger = `R 5
U 8
L 8
D 3
R 17
D 10
L 25
U 20
`

func TestSampleAnswers(t *testing.T) {
	res, err := core.Solve(New(DefaultConfig()), sample)
	if err != nil {
		t.Fatal(err)
	}
	if res.PartOne != "13" || res.PartTwo != "1" {
		t.Fatalf("got %+v, expected 13 and 1", res)
	}
}

func TestLongRopeLargerSample(t *testing.T) {
	got, err := New(DefaultConfig()).PartTwo(larger)
	if err != nil {
		t.Fatal(err)
	}
	if got != "36" {
		t.Fatalf("part two = %s, expected 36", got)
	}
}

func TestTailFollowsStraightMove(t *testing.T) {
	r := NewRope(2)
	r.Apply([]Move{{Dir: grid.Right, Count: 2}})
	if r.Tail() != grid.P(1, 0) {
		t.Fatalf("tail at %v, expected (1,0)", r.Tail())
	}
	if r.Visited() != 2 {
		t.Fatalf("visited %d, expected 2", r.Visited())
	}
}

func TestFollowPriority(t *testing.T) {
	cases := []struct {
		knot, leader, want grid.Point
	}{
		{grid.P(0, 0), grid.P(2, 0), grid.P(1, 0)},
		{grid.P(0, 0), grid.P(0, -2), grid.P(0, -1)},
		{grid.P(0, 0), grid.P(2, 1), grid.P(1, 1)},
		{grid.P(0, 0), grid.P(-1, 2), grid.P(-1, 1)},
		{grid.P(0, 0), grid.P(2, 2), grid.P(1, 1)},
		{grid.P(0, 0), grid.P(-2, -2), grid.P(-1, -1)},
	}
	for _, c := range cases {
		if got := Follow(c.knot, c.leader); got != c.want {
			t.Fatalf("Follow(%v, %v) = %v, expected %v", c.knot, c.leader, got, c.want)
		}
	}
}

func TestFollowPanicsWhenUnreachable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a leader three cells away")
		}
	}()
	Follow(grid.P(0, 0), grid.P(3, 3))
}

func TestParseRejectsBadMoves(t *testing.T) {
	for _, in := range []string{"X 1", "R", "R -1", "R two"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) should fail", in)
		}
	}
}

func TestFromMapKnots(t *testing.T) {
	c := FromMap(map[string]string{"knots_two": "3", "knots_one": "1"})
	if c.KnotsOne != 2 || c.KnotsTwo != 3 {
		t.Fatalf("unexpected config %+v", c)
	}
}
