package monkeys

import (
	"cmp"
	"fmt"
	"slices"

	"lukechampine.com/uint128"
)

// Relief reduces a worry value after inspection.
type Relief func(uint128.Uint128) uint128.Uint128

// DivideBy returns relief that divides worry by d.
func DivideBy(d uint64) Relief {
	return func(v uint128.Uint128) uint128.Uint128 { return v.Div64(d) }
}

// ModuloOf returns relief that keeps worry below m.
func ModuloOf(m uint128.Uint128) Relief {
	return func(v uint128.Uint128) uint128.Uint128 { return v.Mod(m) }
}

// Troop is the full set of monkeys passing items around.
type Troop struct {
	Monkeys []*Monkey
}

// NewTroop wraps parsed monkeys.
func NewTroop(ms []*Monkey) *Troop { return &Troop{Monkeys: ms} }

// Modulus is the product of every monkey's divisor. Taking worry values
// modulo it preserves every divisibility test.
func (t *Troop) Modulus() (uint128.Uint128, error) {
	m := uint128.From64(1)
	for _, mk := range t.Monkeys {
		if m.Cmp(uint128.Max.Div64(mk.Divisor)) > 0 {
			return uint128.Zero, fmt.Errorf("divisor product overflows")
		}
		m = m.Mul64(mk.Divisor)
	}
	return m, nil
}

// Round lets each monkey in turn inspect and throw every item it holds.
func (t *Troop) Round(relief Relief) error {
	for _, m := range t.Monkeys {
		items := m.Items
		m.Items = nil
		for _, item := range items {
			v, err := m.Inspect(item)
			if err != nil {
				return err
			}
			v = relief(v)
			m.Inspected++
			to := t.Monkeys[m.Target(v)]
			to.Items = append(to.Items, v)
		}
	}
	return nil
}

// Items returns the number of items currently held by all monkeys.
func (t *Troop) Items() int {
	n := 0
	for _, m := range t.Monkeys {
		n += len(m.Items)
	}
	return n
}

// Business multiplies the two highest inspection counts. The product of two
// uint64 counts always fits in 128 bits.
func (t *Troop) Business() uint128.Uint128 {
	counts := make([]uint64, len(t.Monkeys))
	for i, m := range t.Monkeys {
		counts[i] = m.Inspected
	}
	slices.SortStableFunc(counts, func(a, b uint64) int { return cmp.Compare(b, a) })
	if len(counts) < 2 {
		return uint128.Zero
	}
	return uint128.From64(counts[0]).Mul64(counts[1])
}
