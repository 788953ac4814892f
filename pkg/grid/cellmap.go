package grid

// CellMap is a sparse mapping from coordinates to cell states. Coordinates
// without an entry hold the background state.
type CellMap[S comparable] struct {
	cells      map[Point]S
	background S
}

// New returns an empty CellMap whose missing cells read as background.
func New[S comparable](background S) *CellMap[S] {
	return &CellMap[S]{cells: make(map[Point]S), background: background}
}

// Background returns the state reported for coordinates with no entry.
func (m *CellMap[S]) Background() S { return m.background }

// Set stores state at p, replacing any previous entry.
func (m *CellMap[S]) Set(p Point, state S) { m.cells[p] = state }

// Get returns the state stored at p and whether an entry exists.
func (m *CellMap[S]) Get(p Point) (S, bool) {
	s, ok := m.cells[p]
	return s, ok
}

// At returns the state at p, or the background when p has no entry.
func (m *CellMap[S]) At(p Point) S {
	if s, ok := m.cells[p]; ok {
		return s
	}
	return m.background
}

// Has reports whether p holds an explicit entry.
func (m *CellMap[S]) Has(p Point) bool {
	_, ok := m.cells[p]
	return ok
}

// Delete removes the entry at p.
func (m *CellMap[S]) Delete(p Point) { delete(m.cells, p) }

// Len returns the number of explicit entries.
func (m *CellMap[S]) Len() int { return len(m.cells) }

// Bounds returns the smallest and largest coordinates over all entries. ok is
// false when the map is empty.
func (m *CellMap[S]) Bounds() (lo, hi Point, ok bool) {
	for p := range m.cells {
		if !ok {
			lo, hi, ok = p, p, true
			continue
		}
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return lo, hi, ok
}

// Count returns how many entries satisfy keep.
func (m *CellMap[S]) Count(keep func(Point, S) bool) int {
	n := 0
	for p, s := range m.cells {
		if keep(p, s) {
			n++
		}
	}
	return n
}

// Each calls fn for every entry in unspecified order.
func (m *CellMap[S]) Each(fn func(Point, S)) {
	for p, s := range m.cells {
		fn(p, s)
	}
}

// Clone returns an independent copy of the map.
func (m *CellMap[S]) Clone() *CellMap[S] {
	c := &CellMap[S]{cells: make(map[Point]S, len(m.cells)), background: m.background}
	for p, s := range m.cells {
		c.cells[p] = s
	}
	return c
}
