package crates

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"advent-ca/internal/core"
)

// Day is the calendar day this package solves.
const Day = 5

const columnWidth = 4

// Diagram holds the crate stacks, bottom crate first.
type Diagram struct {
	Stacks [][]byte
}

// ParseDiagram reads the drawing of stacked crates. The last line carries the
// stack labels 1..n; every line above it holds "[X]" cells four columns apart.
func ParseDiagram(lines []string) (*Diagram, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty crate diagram")
	}
	labelLine := len(lines)
	labels := strings.Fields(lines[labelLine-1])
	if len(labels) == 0 {
		return nil, core.Errorf(labelLine, lines[labelLine-1], "missing stack labels")
	}
	for i, l := range labels {
		if l != strconv.Itoa(i+1) {
			return nil, core.Errorf(labelLine, lines[labelLine-1], "label %q out of order", l)
		}
	}
	d := &Diagram{Stacks: make([][]byte, len(labels))}
	for y := len(lines) - 2; y >= 0; y-- {
		line := lines[y]
		if len(line) > len(labels)*columnWidth {
			return nil, core.Errorf(y+1, line, "row wider than %d stacks", len(labels))
		}
		for x := 0; x < len(line); x++ {
			c := line[x]
			switch x % columnWidth {
			case 1:
				if c == ' ' {
					continue
				}
				if c < 'A' || c > 'Z' || line[x-1] != '[' || x+1 >= len(line) || line[x+1] != ']' {
					return nil, core.Errorf(y+1, line, "bad crate at column %d", x+1)
				}
				s := x / columnWidth
				if len(d.Stacks[s]) != len(lines)-2-y {
					return nil, core.Errorf(y+1, line, "crate %c floats above stack %d", c, s+1)
				}
				d.Stacks[s] = append(d.Stacks[s], c)
			case 0, 2:
				want := byte(' ')
				if mid := x - x%columnWidth + 1; mid < len(line) && line[mid] != ' ' {
					want = "[ ]"[x%columnWidth]
				}
				if c != want {
					return nil, core.Errorf(y+1, line, "unexpected %q at column %d", c, x+1)
				}
			case 3:
				if c != ' ' {
					return nil, core.Errorf(y+1, line, "unexpected %q between stacks", c)
				}
			}
		}
	}
	return d, nil
}

// Clone returns an independent copy of d.
func (d *Diagram) Clone() *Diagram {
	c := &Diagram{Stacks: make([][]byte, len(d.Stacks))}
	for i, s := range d.Stacks {
		c.Stacks[i] = slices.Clone(s)
	}
	return c
}

// Top spells the top crate of each non-empty stack, left to right.
func (d *Diagram) Top() string {
	var b strings.Builder
	for _, s := range d.Stacks {
		if len(s) > 0 {
			b.WriteByte(s[len(s)-1])
		}
	}
	return b.String()
}

// String draws the diagram in the same column layout it is parsed from.
func (d *Diagram) String() string {
	height := 0
	for _, s := range d.Stacks {
		height = max(height, len(s))
	}
	width := len(d.Stacks)*columnWidth - 1
	rows := make([]string, 0, height+1)
	for y := height - 1; y >= 0; y-- {
		row := []byte(strings.Repeat(" ", width))
		for i, s := range d.Stacks {
			if y < len(s) {
				x := i * columnWidth
				row[x], row[x+1], row[x+2] = '[', s[y], ']'
			}
		}
		rows = append(rows, string(row))
	}
	labels := make([]string, len(d.Stacks))
	for i := range labels {
		labels[i] = fmt.Sprintf(" %d ", i+1)
	}
	rows = append(rows, strings.Join(labels, " "))
	return strings.Join(rows, "\n")
}

// Move is one rearrangement step with 0-based stack indices.
type Move struct {
	Count    int
	From, To int
}

// Crane moves crates between stacks.
type Crane int

const (
	// CrateMover9000 lifts one crate at a time.
	CrateMover9000 Crane = 9000
	// CrateMover9001 lifts the whole group at once.
	CrateMover9001 Crane = 9001
)

// Apply performs m on d.
func (c Crane) Apply(d *Diagram, m Move) error {
	src := d.Stacks[m.From]
	if m.Count > len(src) {
		return fmt.Errorf("cannot move %d crates from stack %d holding %d", m.Count, m.From+1, len(src))
	}
	cut := len(src) - m.Count
	lifted := slices.Clone(src[cut:])
	if c == CrateMover9000 {
		slices.Reverse(lifted)
	}
	d.Stacks[m.From] = src[:cut]
	d.Stacks[m.To] = append(d.Stacks[m.To], lifted...)
	return nil
}

// Plan is the parsed puzzle input.
type Plan struct {
	Diagram *Diagram
	Moves   []Move
}

// Parse splits the input into the diagram and the move list.
func Parse(input string) (*Plan, error) {
	blocks := core.Blocks(input)
	if len(blocks) != 2 {
		return nil, fmt.Errorf("expected diagram and moves separated by one blank line, got %d sections", len(blocks))
	}
	d, err := ParseDiagram(blocks[0].Lines)
	if err != nil {
		return nil, err
	}
	p := &Plan{Diagram: d}
	mb := blocks[1]
	for i, line := range mb.Lines {
		var m Move
		if err := core.Scanf(line, "move %d from %d to %d", &m.Count, &m.From, &m.To); err != nil {
			return nil, core.Errorf(mb.Start+i, line, "expected \"move N from A to B\"")
		}
		m.From--
		m.To--
		if m.Count < 0 || m.From < 0 || m.From >= len(d.Stacks) || m.To < 0 || m.To >= len(d.Stacks) || m.From == m.To {
			return nil, core.Errorf(mb.Start+i, line, "move out of range")
		}
		p.Moves = append(p.Moves, m)
	}
	return p, nil
}

// Run applies every move with crane to a copy of the diagram.
func (p *Plan) Run(crane Crane) (*Diagram, error) {
	d := p.Diagram.Clone()
	for i, m := range p.Moves {
		if err := crane.Apply(d, m); err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return d, nil
}

// Solver answers the supply stacks puzzle.
type Solver struct{}

// New returns a Solver.
func New() *Solver { return &Solver{} }

// Name identifies the puzzle.
func (s *Solver) Name() string { return "crates" }

// Day returns the calendar day.
func (s *Solver) Day() int { return Day }

// PartOne uses the single-crate crane.
func (s *Solver) PartOne(input string) (string, error) { return solve(input, CrateMover9000) }

// PartTwo uses the multi-crate crane.
func (s *Solver) PartTwo(input string) (string, error) { return solve(input, CrateMover9001) }

func solve(input string, crane Crane) (string, error) {
	p, err := Parse(input)
	if err != nil {
		return "", err
	}
	d, err := p.Run(crane)
	if err != nil {
		return "", err
	}
	return d.Top(), nil
}

func init() {
	core.Register(core.DayName(Day), func(map[string]string) core.Solver { return New() })
}
