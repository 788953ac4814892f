package packets

import (
	"testing"

	"advent-ca/internal/core"
)

const sample = `[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]
`

func TestSampleAnswers(t *testing.T) {
	res, err := core.Solve(New(), sample)
	if err != nil {
		t.Fatal(err)
	}
	if res.PartOne != "13" || res.PartTwo != "140" {
		t.Fatalf("got %+v, expected 13 and 140", res)
	}
}

func TestDividerTiesSortFirst(t *testing.T) {
	cases := map[string]string{
		"[2]\n[1]\n":     "12",
		"[[2]]\n[[6]]\n": "8",
		"[7]\n[6]\n":     "3",
	}
	for in, want := range cases {
		got, err := New().PartTwo(in)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("PartTwo(%q) = %s, expected %s", in, got, want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, in := range []string{"[]", "[[[]]]", "[1,[2,[3,[4,[5,6,7]]]],8,9]", "[10,[],0]", "7"} {
		p, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if got := p.String(); got != in {
			t.Fatalf("String() = %q, expected %q", got, in)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "[", "[1,", "[1]]", "[1;2]", "[a]", "[,]", "[1,]"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) should fail", in)
		}
	}
}

func TestCompareMultiDigit(t *testing.T) {
	a, _ := Parse("[10]")
	b, _ := Parse("[9]")
	if Compare(a, b) != 1 {
		t.Fatal("10 should sort after 9")
	}
	c, _ := Parse("[[10]]")
	if Compare(c, Int(10)) != 0 {
		t.Fatal("mixed types should promote the integer")
	}
}

func allPackets(t *testing.T) []Packet {
	t.Helper()
	pairs, err := ParsePairs(sample)
	if err != nil {
		t.Fatal(err)
	}
	var ps []Packet
	for _, p := range pairs {
		ps = append(ps, p.Left, p.Right)
	}
	return append(ps, Dividers...)
}

func TestCompareIsTotalOrder(t *testing.T) {
	ps := allPackets(t)
	for _, a := range ps {
		if Compare(a, a) != 0 {
			t.Fatalf("%v should equal itself", a)
		}
		for _, b := range ps {
			if Compare(a, b) != -Compare(b, a) {
				t.Fatalf("Compare(%v,%v) not antisymmetric", a, b)
			}
		}
	}
}

func TestCompareIsTransitive(t *testing.T) {
	ps := allPackets(t)
	for _, a := range ps {
		for _, b := range ps {
			for _, c := range ps {
				if Compare(a, b) < 0 && Compare(b, c) < 0 && Compare(a, c) >= 0 {
					t.Fatalf("%v < %v < %v but not %v < %v", a, b, c, a, c)
				}
			}
		}
	}
}
