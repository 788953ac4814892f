package rucksack

import (
	"testing"

	"advent-ca/internal/core"
)

const sample = `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
`

func TestSampleAnswers(t *testing.T) {
	res, err := core.Solve(New(DefaultConfig()), sample)
	if err != nil {
		t.Fatal(err)
	}
	if res.PartOne != "157" || res.PartTwo != "70" {
		t.Fatalf("got %+v, expected 157 and 70", res)
	}
}

func TestPriority(t *testing.T) {
	cases := map[byte]int{'a': 1, 'z': 26, 'A': 27, 'Z': 52, 'p': 16, 'L': 38, '1': 0}
	for c, want := range cases {
		if got := Priority(c); got != want {
			t.Fatalf("Priority(%q) = %d, expected %d", c, got, want)
		}
	}
}

func TestGroupsMustDivideEvenly(t *testing.T) {
	if _, err := New(DefaultConfig()).PartTwo("ab\ncd\n"); err == nil {
		t.Fatal("expected error for incomplete group")
	}
}

func TestRejectsBadItems(t *testing.T) {
	if _, err := New(DefaultConfig()).PartOne("ab1c"); err == nil {
		t.Fatal("expected error for non-letter item")
	}
	if _, err := New(DefaultConfig()).PartOne("abc"); err == nil {
		t.Fatal("expected error for odd length")
	}
}
