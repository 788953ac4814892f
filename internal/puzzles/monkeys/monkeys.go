package monkeys

import (
	"fmt"
	"strconv"
	"strings"

	"lukechampine.com/uint128"

	"advent-ca/internal/core"
)

// Day is the calendar day this package solves.
const Day = 11

// Op is the arithmetic a monkey applies while inspecting an item.
type Op uint8

const (
	OpAdd Op = iota
	OpMul
)

func (o Op) String() string {
	if o == OpMul {
		return "*"
	}
	return "+"
}

// Monkey holds one monkey's queue and rules.
type Monkey struct {
	ID    int
	Items []uint128.Uint128
	Op    Op
	// Old is set when the operand is the item itself.
	Old     bool
	Operand uint128.Uint128
	Divisor uint64
	IfTrue  int
	IfFalse int

	Inspected uint64
}

// Parse reads blank-line separated monkey descriptions.
func Parse(input string) ([]*Monkey, error) {
	blocks := core.Blocks(input)
	ms := make([]*Monkey, 0, len(blocks))
	for _, b := range blocks {
		m, err := parseMonkey(b)
		if err != nil {
			return nil, err
		}
		if m.ID != len(ms) {
			return nil, core.Errorf(b.Start, b.Lines[0], "monkey %d out of order, expected %d", m.ID, len(ms))
		}
		ms = append(ms, m)
	}
	if len(ms) < 2 {
		return nil, fmt.Errorf("need at least 2 monkeys, got %d", len(ms))
	}
	for _, m := range ms {
		for _, t := range []int{m.IfTrue, m.IfFalse} {
			if t < 0 || t >= len(ms) || t == m.ID {
				return nil, fmt.Errorf("monkey %d throws to invalid monkey %d", m.ID, t)
			}
		}
	}
	return ms, nil
}

func parseMonkey(b core.Block) (*Monkey, error) {
	if len(b.Lines) != 6 {
		line := ""
		if len(b.Lines) > 0 {
			line = b.Lines[0]
		}
		return nil, core.Errorf(b.Start, line, "monkey has %d lines, expected 6", len(b.Lines))
	}
	field := func(i int, prefix string) (string, error) {
		line := b.Lines[i]
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), prefix)
		if !ok {
			return "", core.Errorf(b.Start+i, line, "expected %q", prefix)
		}
		return rest, nil
	}
	num := func(i int, prefix string) (int, error) {
		rest, err := field(i, prefix)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			return 0, core.Errorf(b.Start+i, b.Lines[i], "bad number %q", rest)
		}
		return n, nil
	}

	m := &Monkey{}
	id, err := field(0, "Monkey ")
	if err != nil {
		return nil, err
	}
	if m.ID, err = strconv.Atoi(strings.TrimSuffix(id, ":")); err != nil || !strings.HasSuffix(id, ":") {
		return nil, core.Errorf(b.Start, b.Lines[0], "bad monkey header")
	}

	items, err := field(1, "Starting items:")
	if err != nil {
		return nil, err
	}
	if items = strings.TrimSpace(items); items != "" {
		for _, tok := range strings.Split(items, ", ") {
			v, err := core.Uatoi(tok)
			if err != nil {
				return nil, core.Errorf(b.Start+1, b.Lines[1], "bad item %q", tok)
			}
			m.Items = append(m.Items, uint128.From64(v))
		}
	}

	op, err := field(2, "Operation: new = old ")
	if err != nil {
		return nil, err
	}
	sym, operand, ok := strings.Cut(op, " ")
	if !ok {
		return nil, core.Errorf(b.Start+2, b.Lines[2], "bad operation")
	}
	switch sym {
	case "+":
		m.Op = OpAdd
	case "*":
		m.Op = OpMul
	default:
		return nil, core.Errorf(b.Start+2, b.Lines[2], "unknown operator %q", sym)
	}
	if operand == "old" {
		m.Old = true
	} else {
		v, err := core.Uatoi(operand)
		if err != nil {
			return nil, core.Errorf(b.Start+2, b.Lines[2], "bad operand %q", operand)
		}
		m.Operand = uint128.From64(v)
	}

	d, err := num(3, "Test: divisible by ")
	if err != nil {
		return nil, err
	}
	if d == 0 {
		return nil, core.Errorf(b.Start+3, b.Lines[3], "divisor must be positive")
	}
	m.Divisor = uint64(d)
	if m.IfTrue, err = num(4, "If true: throw to monkey "); err != nil {
		return nil, err
	}
	if m.IfFalse, err = num(5, "If false: throw to monkey "); err != nil {
		return nil, err
	}
	return m, nil
}

// Inspect applies the monkey's operation to an item. Overflow is an error.
func (m *Monkey) Inspect(item uint128.Uint128) (uint128.Uint128, error) {
	v := m.Operand
	if m.Old {
		v = item
	}
	switch m.Op {
	case OpMul:
		if !v.IsZero() && item.Cmp(uint128.Max.Div(v)) > 0 {
			return uint128.Zero, fmt.Errorf("monkey %d: %v * %v overflows", m.ID, item, v)
		}
		return item.Mul(v), nil
	default:
		if item.Cmp(uint128.Max.Sub(v)) > 0 {
			return uint128.Zero, fmt.Errorf("monkey %d: %v + %v overflows", m.ID, item, v)
		}
		return item.Add(v), nil
	}
}

// Target picks the receiving monkey for a worry value.
func (m *Monkey) Target(item uint128.Uint128) int {
	if item.Mod64(m.Divisor) == 0 {
		return m.IfTrue
	}
	return m.IfFalse
}
