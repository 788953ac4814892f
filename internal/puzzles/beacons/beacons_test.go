package beacons

import (
	"slices"
	"testing"

	"advent-ca/internal/core"
	"advent-ca/pkg/grid"
)

const sample = `Sensor at x=2, y=18: closest beacon is at x=-2, y=15
Sensor at x=9, y=16: closest beacon is at x=10, y=16
Sensor at x=13, y=2: closest beacon is at x=15, y=3
Sensor at x=12, y=14: closest beacon is at x=10, y=16
Sensor at x=10, y=20: closest beacon is at x=10, y=16
Sensor at x=14, y=17: closest beacon is at x=10, y=16
Sensor at x=8, y=7: closest beacon is at x=2, y=10
Sensor at x=2, y=0: closest beacon is at x=2, y=10
Sensor at x=0, y=11: closest beacon is at x=2, y=10
Sensor at x=20, y=14: closest beacon is at x=25, y=17
Sensor at x=17, y=20: closest beacon is at x=21, y=22
Sensor at x=16, y=7: closest beacon is at x=15, y=3
Sensor at x=14, y=3: closest beacon is at x=15, y=3
Sensor at x=20, y=1: closest beacon is at x=15, y=3
`

func TestSampleAnswers(t *testing.T) {
	s := New(FromMap(map[string]string{"row": "10", "limit": "20"}))
	res, err := core.Solve(s, sample)
	if err != nil {
		t.Fatal(err)
	}
	if res.PartOne != "26" {
		t.Fatalf("part one = %s, expected 26", res.PartOne)
	}
	if res.PartTwo != "56000011" {
		t.Fatalf("part two = %s, expected 56000011", res.PartTwo)
	}
}

func TestMerge(t *testing.T) {
	got := Merge([]Interval{{5, 8}, {0, 2}, {3, 4}, {10, 12}, {11, 11}})
	want := []Interval{{0, 8}, {10, 12}}
	if !slices.Equal(got, want) {
		t.Fatalf("Merge = %v, expected %v", got, want)
	}
	if Merge(nil) != nil {
		t.Fatal("Merge(nil) should be nil")
	}
}

func TestSpan(t *testing.T) {
	s := Sensor{Pos: grid.P(8, 7), Beacon: grid.P(2, 10)}
	if s.Radius() != 9 {
		t.Fatalf("radius = %d, expected 9", s.Radius())
	}
	iv, ok := s.Span(10)
	if !ok || iv != (Interval{2, 14}) {
		t.Fatalf("Span(10) = %v %v, expected [2,14]", iv, ok)
	}
	if _, ok := s.Span(17); ok {
		t.Fatal("row 17 is outside the sensor range")
	}
}

func TestFindUncovered(t *testing.T) {
	sensors, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := Find(sensors, 20)
	if !ok || p != grid.P(14, 11) {
		t.Fatalf("Find = %v %v, expected (14,11)", p, ok)
	}
}

func TestParseRejectsBadLine(t *testing.T) {
	if _, err := Parse("Sensor at x=1, y=2"); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := Parse("Sensor at x=2, y=18: closest beacon is at x=-2, y=15 and then some"); err == nil {
		t.Fatal("expected error for trailing text")
	}
	if _, err := Parse(""); err == nil {
		t.Fatal("expected error for empty input")
	}
}
