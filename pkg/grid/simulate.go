package grid

// Choose evaluates from+offset for each offset in priority order and returns
// the first candidate accepted. When nothing is accepted it returns from and
// false. An empty priority order is a programming error and panics.
func Choose(from Point, priority []Point, accept func(Point) bool) (Point, bool) {
	if len(priority) == 0 {
		panic("grid: empty priority order")
	}
	for _, d := range priority {
		c := from.Add(d)
		if accept(c) {
			return c, true
		}
	}
	return from, false
}

// Outcome describes how a single falling entity came to a stop.
type Outcome uint8

const (
	// Settled means no candidate cell was free.
	Settled Outcome = iota
	// Escaped means the entity passed below the abyss line.
	Escaped
)

func (o Outcome) String() string {
	if o == Escaped {
		return "escaped"
	}
	return "settled"
}

// Rule configures the falling simulation.
type Rule struct {
	// Priority lists movement offsets in the order they are tried.
	Priority []Point

	// Entities whose Y exceeds Abyss fall forever.
	Abyss    int
	HasAbyss bool

	// Row Floor is solid everywhere.
	Floor    int
	HasFloor bool
}

// AbyssBelow returns the lowest Y holding an entry, which is the abyss line
// for a rule without a floor.
func AbyssBelow[S comparable](cells *CellMap[S]) int {
	_, hi, ok := cells.Bounds()
	if !ok {
		return 0
	}
	return hi.Y
}

func (r Rule) free(cells interface{ Has(Point) bool }, p Point) bool {
	if r.HasFloor && p.Y >= r.Floor {
		return false
	}
	return !cells.Has(p)
}

// Fall moves an entity from start until it settles or escapes. The map is
// only read; committing the result is up to the caller.
func Fall[S comparable](cells *CellMap[S], start Point, rule Rule) (Point, Outcome) {
	if !rule.HasAbyss && !rule.HasFloor {
		panic("grid: rule needs an abyss or a floor")
	}
	accept := func(p Point) bool { return rule.free(cells, p) }
	pos := start
	for {
		if rule.HasAbyss && pos.Y > rule.Abyss {
			return pos, Escaped
		}
		next, ok := Choose(pos, rule.Priority, accept)
		if !ok {
			return pos, Settled
		}
		pos = next
	}
}

// Stop explains why a pour ended.
type Stop uint8

const (
	// StopNone means the pour is still running.
	StopNone Stop = iota
	// StopEscaped means a grain fell past the abyss.
	StopEscaped
	// StopBlocked means a grain settled on the source.
	StopBlocked
	// StopLimit means the configured number of grains was reached.
	StopLimit
)

func (s Stop) String() string {
	switch s {
	case StopEscaped:
		return "escaped"
	case StopBlocked:
		return "blocked"
	case StopLimit:
		return "limit"
	}
	return "running"
}

// Pourer drops entities from a source one at a time, committing each settled
// entity to the cell map.
type Pourer[S comparable] struct {
	cells  *CellMap[S]
	source Point
	rule   Rule
	state  S
	limit  int

	count int
	last  Point
	stop  Stop
}

// NewPourer prepares a pour into cells. A positive limit stops the pour after
// that many settled entities.
func NewPourer[S comparable](cells *CellMap[S], source Point, rule Rule, settled S, limit int) *Pourer[S] {
	return &Pourer[S]{cells: cells, source: source, rule: rule, state: settled, limit: limit}
}

// Step drops one entity and reports whether another step may follow.
func (p *Pourer[S]) Step() bool {
	if p.stop != StopNone {
		return false
	}
	if p.cells.Has(p.source) {
		p.stop = StopBlocked
		return false
	}
	at, out := Fall(p.cells, p.source, p.rule)
	if out == Escaped {
		p.stop = StopEscaped
		return false
	}
	p.cells.Set(at, p.state)
	p.count++
	p.last = at
	switch {
	case at == p.source:
		p.stop = StopBlocked
	case p.limit > 0 && p.count >= p.limit:
		p.stop = StopLimit
	}
	return p.stop == StopNone
}

// Settled returns the number of entities committed so far.
func (p *Pourer[S]) Settled() int { return p.count }

// Last returns the position of the most recently settled entity.
func (p *Pourer[S]) Last() Point { return p.last }

// Stop returns the terminal condition, or StopNone while running.
func (p *Pourer[S]) Stop() Stop { return p.stop }

// Pour runs a Pourer to completion and returns the settled count together
// with the terminal condition.
func Pour[S comparable](cells *CellMap[S], source Point, rule Rule, settled S, limit int) (int, Stop) {
	p := NewPourer(cells, source, rule, settled, limit)
	for p.Step() {
	}
	return p.Settled(), p.Stop()
}
