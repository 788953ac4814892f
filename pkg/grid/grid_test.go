package grid

import "testing"

var fallPriority = []Point{Down, DownLeft, DownRight}

func TestTouchingAndOrthogonal(t *testing.T) {
	origin := P(0, 0)
	cases := []struct {
		p          Point
		touching   bool
		orthogonal bool
	}{
		{P(0, 0), true, false},
		{P(1, 0), true, true},
		{P(0, -1), true, true},
		{P(1, 1), true, false},
		{P(-1, 1), true, false},
		{P(2, 0), false, false},
		{P(2, 1), false, false},
	}
	for _, tc := range cases {
		if got := origin.Touching(tc.p); got != tc.touching {
			t.Fatalf("Touching(%v) = %v, expected %v", tc.p, got, tc.touching)
		}
		if got := origin.Orthogonal(tc.p); got != tc.orthogonal {
			t.Fatalf("Orthogonal(%v) = %v, expected %v", tc.p, got, tc.orthogonal)
		}
	}
}

func TestMDistAndToward(t *testing.T) {
	if got := P(-2, 3).MDist(P(1, -1)); got != 7 {
		t.Fatalf("MDist = %d, expected 7", got)
	}
	if got := P(0, 0).Toward(P(2, -5)); got != P(1, -1) {
		t.Fatalf("Toward = %v, expected (1,-1)", got)
	}
	if got := P(4, 4).Toward(P(4, 4)); got != P(4, 4) {
		t.Fatalf("Toward same point = %v, expected (4,4)", got)
	}
}

func TestCellMapBoundsAndClone(t *testing.T) {
	m := New[byte]('.')
	if _, _, ok := m.Bounds(); ok {
		t.Fatal("empty map should report no bounds")
	}
	m.Set(P(3, -1), '#')
	m.Set(P(-2, 4), '#')
	m.Set(P(3, -1), 'o')
	if m.Len() != 2 {
		t.Fatalf("Len = %d, expected 2", m.Len())
	}
	lo, hi, ok := m.Bounds()
	if !ok || lo != P(-2, -1) || hi != P(3, 4) {
		t.Fatalf("Bounds = %v %v %v, expected (-2,-1) (3,4) true", lo, hi, ok)
	}
	if m.At(P(0, 0)) != '.' {
		t.Fatal("missing cell should read as background")
	}

	c := m.Clone()
	c.Set(P(9, 9), '#')
	c.Delete(P(3, -1))
	if m.Len() != 2 || !m.Has(P(3, -1)) || m.Has(P(9, 9)) {
		t.Fatal("mutating a clone must not affect the original")
	}
	if got := m.Count(func(_ Point, s byte) bool { return s == '#' }); got != 1 {
		t.Fatalf("Count = %d, expected 1", got)
	}
}

func TestChoosePriorityOrder(t *testing.T) {
	blocked := map[Point]bool{P(0, 1): true}
	got, ok := Choose(P(0, 0), fallPriority, func(p Point) bool { return !blocked[p] })
	if !ok || got != P(-1, 1) {
		t.Fatalf("Choose = %v %v, expected (-1,1) true", got, ok)
	}
	blocked[P(-1, 1)] = true
	blocked[P(1, 1)] = true
	got, ok = Choose(P(0, 0), fallPriority, func(p Point) bool { return !blocked[p] })
	if ok || got != P(0, 0) {
		t.Fatalf("Choose with no free cell = %v %v, expected (0,0) false", got, ok)
	}
}

func TestChooseEmptyPriorityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty priority order")
		}
	}()
	Choose(P(0, 0), nil, func(Point) bool { return true })
}

func TestFallSettlesDirectlyBelowSource(t *testing.T) {
	rule := Rule{Priority: fallPriority, Floor: 5, HasFloor: true}
	for run := 0; run < 3; run++ {
		cells := New[byte](0)
		at, out := Fall(cells, P(500, 0), rule)
		if out != Settled || at != P(500, 4) {
			t.Fatalf("run %d: Fall = %v %v, expected (500,4) settled", run, at, out)
		}
	}
}

func TestFallEscapesPastAbyss(t *testing.T) {
	cells := New[byte](0)
	cells.Set(P(10, 3), '#')
	rule := Rule{Priority: fallPriority, Abyss: AbyssBelow(cells), HasAbyss: true}
	at, out := Fall(cells, P(0, 0), rule)
	if out != Escaped || at.Y != 4 {
		t.Fatalf("Fall = %v %v, expected escape at row 4", at, out)
	}
}

func TestPourStopsWhenSourceBlocked(t *testing.T) {
	cells := New[byte](0)
	rule := Rule{Priority: fallPriority, Floor: 2, HasFloor: true}
	n, stop := Pour(cells, P(0, 0), rule, 'o', 0)
	// A floor at row 2 holds a pyramid of 3 grains on row 1 plus the source.
	if stop != StopBlocked || n != 4 {
		t.Fatalf("Pour = %d %v, expected 4 blocked", n, stop)
	}
	if cells.At(P(0, 0)) != 'o' {
		t.Fatal("last grain should occupy the source")
	}
}

func TestPourLimit(t *testing.T) {
	cells := New[byte](0)
	rule := Rule{Priority: fallPriority, Floor: 10, HasFloor: true}
	n, stop := Pour(cells, P(0, 0), rule, 'o', 5)
	if stop != StopLimit || n != 5 || cells.Len() != 5 {
		t.Fatalf("Pour = %d %v len %d, expected 5 limit len 5", n, stop, cells.Len())
	}
}

func TestPourerStepAfterStop(t *testing.T) {
	cells := New[byte](0)
	cells.Set(P(0, 0), '#')
	p := NewPourer(cells, P(0, 0), Rule{Priority: fallPriority, Floor: 3, HasFloor: true}, 'o', 0)
	if p.Step() {
		t.Fatal("blocked source should stop immediately")
	}
	if p.Stop() != StopBlocked || p.Settled() != 0 {
		t.Fatalf("Stop = %v settled %d, expected blocked 0", p.Stop(), p.Settled())
	}
	if p.Step() {
		t.Fatal("Step after stop should report false")
	}
}
