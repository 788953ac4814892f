package signal

import (
	"testing"

	"advent-ca/internal/core"
)

func TestSampleAnswers(t *testing.T) {
	res, err := core.Solve(New(DefaultConfig()), "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n")
	if err != nil {
		t.Fatal(err)
	}
	if res.PartOne != "7" || res.PartTwo != "19" {
		t.Fatalf("got %+v, expected 7 and 19", res)
	}
}

func TestMarker(t *testing.T) {
	cases := []struct {
		in        string
		four, ten int
	}{
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, c := range cases {
		if got, err := Marker(c.in, 4); err != nil || got != c.four {
			t.Fatalf("Marker(%s, 4) = %d %v, expected %d", c.in, got, err, c.four)
		}
		if got, err := Marker(c.in, 14); err != nil || got != c.ten {
			t.Fatalf("Marker(%s, 14) = %d %v, expected %d", c.in, got, err, c.ten)
		}
	}
}

func TestMarkerMissing(t *testing.T) {
	if _, err := Marker("aaaa", 2); err == nil {
		t.Fatal("expected error when no window is distinct")
	}
	if _, err := Marker("abc", 0); err == nil {
		t.Fatal("expected error for zero window")
	}
}
