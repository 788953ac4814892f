package monkeys

import (
	"strings"
	"testing"

	"lukechampine.com/uint128"

	"advent-ca/internal/core"
)

const sample = `Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3

Monkey 1:
  Starting items: 54, 65, 75, 74
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0

Monkey 2:
  Starting items: 79, 60, 97
  Operation: new = old * old
  Test: divisible by 13
    If true: throw to monkey 1
    If false: throw to monkey 3

Monkey 3:
  Starting items: 74
  Operation: new = old + 3
  Test: divisible by 17
    If true: throw to monkey 0
    If false: throw to monkey 1
`

func TestSampleAnswers(t *testing.T) {
	res, err := core.Solve(New(DefaultConfig()), sample)
	if err != nil {
		t.Fatal(err)
	}
	if res.PartOne != "10605" {
		t.Fatalf("part one = %s, expected 10605", res.PartOne)
	}
	if res.PartTwo != "2713310158" {
		t.Fatalf("part two = %s, expected 2713310158", res.PartTwo)
	}
}

func TestParse(t *testing.T) {
	ms, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 4 {
		t.Fatalf("parsed %d monkeys, expected 4", len(ms))
	}
	m := ms[2]
	if !m.Old || m.Op != OpMul || m.Divisor != 13 || m.IfTrue != 1 || m.IfFalse != 3 {
		t.Fatalf("unexpected monkey 2: %+v", m)
	}
	if len(ms[1].Items) != 4 || !ms[1].Items[3].Equals64(74) {
		t.Fatalf("unexpected items %v", ms[1].Items)
	}
}

func TestItemCountConstantAcrossRounds(t *testing.T) {
	ms, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	tr := NewTroop(ms)
	want := tr.Items()
	mod, err := tr.Modulus()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 500; i++ {
		if err := tr.Round(ModuloOf(mod)); err != nil {
			t.Fatal(err)
		}
		if got := tr.Items(); got != want {
			t.Fatalf("round %d holds %d items, expected %d", i+1, got, want)
		}
	}
}

func TestFirstRoundQueues(t *testing.T) {
	ms, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	tr := NewTroop(ms)
	if err := tr.Round(DivideBy(3)); err != nil {
		t.Fatal(err)
	}
	want := [][]uint64{{20, 23, 27, 26}, {2080, 25, 167, 207, 401, 1046}, nil, nil}
	for i, m := range tr.Monkeys {
		if len(m.Items) != len(want[i]) {
			t.Fatalf("monkey %d holds %v, expected %v", i, m.Items, want[i])
		}
		for j, v := range want[i] {
			if !m.Items[j].Equals64(v) {
				t.Fatalf("monkey %d holds %v, expected %v", i, m.Items, want[i])
			}
		}
	}
}

func TestInspectOverflow(t *testing.T) {
	m := &Monkey{Op: OpMul, Old: true}
	if _, err := m.Inspect(uint128.Max.Rsh(1)); err == nil {
		t.Fatal("expected overflow error")
	}
	m = &Monkey{Op: OpAdd, Operand: uint128.From64(1)}
	if _, err := m.Inspect(uint128.Max); err == nil {
		t.Fatal("expected overflow error")
	}
	v, err := m.Inspect(uint128.Max.Sub64(1))
	if err != nil || !v.Equals(uint128.Max) {
		t.Fatalf("Inspect = %v %v, expected max", v, err)
	}
}

func TestBusinessDoesNotWrap(t *testing.T) {
	big := uint64(1) << 40
	tr := &Troop{Monkeys: []*Monkey{{Inspected: big}, {Inspected: 3}, {Inspected: big}}}
	want := uint128.From64(1).Lsh(80)
	if got := tr.Business(); !got.Equals(want) {
		t.Fatalf("Business = %v, expected %v", got, want)
	}
}

func TestParseRejectsBadTroops(t *testing.T) {
	cases := map[string]string{
		"single monkey":  strings.SplitN(sample, "\n\n", 2)[0],
		"self target":    strings.Replace(sample, "If true: throw to monkey 2\n    If false: throw to monkey 3", "If true: throw to monkey 0\n    If false: throw to monkey 3", 1),
		"missing target": strings.Replace(sample, "throw to monkey 0", "throw to monkey 9", 1),
		"out of order":   strings.Replace(sample, "Monkey 1:", "Monkey 5:", 1),
		"bad operator":   strings.Replace(sample, "old + 6", "old - 6", 1),
		"zero divisor":   strings.Replace(sample, "divisible by 19", "divisible by 0", 1),
	}
	for name, in := range cases {
		if _, err := Parse(in); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
