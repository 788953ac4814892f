package treetop

import (
	"testing"

	"advent-ca/internal/core"
	"advent-ca/pkg/grid"
)

const sample = `30373
25512
65332
33549
35390
`

func TestSampleAnswers(t *testing.T) {
	res, err := core.Solve(New(), sample)
	if err != nil {
		t.Fatal(err)
	}
	if res.PartOne != "21" || res.PartTwo != "8" {
		t.Fatalf("got %+v, expected 21 and 8", res)
	}
}

func mustParse(t *testing.T, in string) Forest {
	t.Helper()
	f, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestVisibleRows(t *testing.T) {
	f := mustParse(t, "33333\n12122\n33333\n")
	want := []bool{true, true, false, false, true}
	for x, w := range want {
		if got := f.Visible(grid.P(x, 1)); got != w {
			t.Fatalf("Visible(%d,1) = %v, expected %v", x, got, w)
		}
	}
}

func TestVisibleColumns(t *testing.T) {
	f := mustParse(t, "323\n323\n313\n323\n313\n")
	want := []bool{true, false, false, true, true}
	for y, w := range want {
		if got := f.Visible(grid.P(1, y)); got != w {
			t.Fatalf("Visible(1,%d) = %v, expected %v", y, got, w)
		}
	}
}

func TestEdgeTreeAlwaysVisible(t *testing.T) {
	f := mustParse(t, "323\n323\n313\n")
	if !f.Visible(grid.P(1, 2)) {
		t.Fatal("bottom-row tree should be visible from below")
	}
	if !f.Visible(grid.P(1, 1)) {
		t.Fatal("centre tree looks over the shorter bottom tree")
	}
}

func TestScenicScores(t *testing.T) {
	f := mustParse(t, "111111\n121122\n111111\n")
	want := []int{0, 3, 1, 1, 3, 0}
	for x, w := range want {
		if got := f.Scenic(grid.P(x, 1)); got != w {
			t.Fatalf("Scenic(%d,1) = %d, expected %d", x, got, w)
		}
	}
}

func TestParseRejectsRaggedGrid(t *testing.T) {
	if _, err := Parse("123\n12\n"); err == nil {
		t.Fatal("expected error for ragged rows")
	}
}
