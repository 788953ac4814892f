package filesystem

import (
	"testing"

	"advent-ca/internal/core"
)

const sample = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`

func TestSampleAnswers(t *testing.T) {
	res, err := core.Solve(New(DefaultConfig()), sample)
	if err != nil {
		t.Fatal(err)
	}
	if res.PartOne != "95437" || res.PartTwo != "24933642" {
		t.Fatalf("got %+v, expected 95437 and 24933642", res)
	}
}

func TestSizesAndPaths(t *testing.T) {
	tr, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int64{"/": 48381165, "/a": 94853, "/a/e": 584, "/d": 24933642}
	sizes := tr.Sizes()
	if len(sizes) != len(want) {
		t.Fatalf("got %d directories, expected %d", len(sizes), len(want))
	}
	for i, size := range sizes {
		path := tr.Path(i)
		if want[path] != size {
			t.Fatalf("size of %s = %d, expected %d", path, size, want[path])
		}
	}
}

func TestRepeatedListingIsIdempotent(t *testing.T) {
	tr, err := Parse(sample + "$ cd /\n$ ls\ndir a\n14848514 b.txt\n")
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Sizes()[Root]; got != 48381165 {
		t.Fatalf("root size = %d, expected 48381165", got)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"$ cd ..",
		"$ rm -rf /",
		"123 x",
		"$ ls\nabc x",
		"",
	}
	for _, in := range cases {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) should fail", in)
		}
	}
}
