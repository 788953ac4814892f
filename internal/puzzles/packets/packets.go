package packets

import (
	"fmt"
	"strconv"
	"strings"

	"advent-ca/internal/core"
)

// Day is the calendar day this package solves.
const Day = 13

// Packet is either an integer or a list of packets.
type Packet struct {
	IsList bool
	Value  int
	List   []Packet
}

// Int returns an integer packet.
func Int(v int) Packet { return Packet{Value: v} }

// List returns a list packet.
func List(items ...Packet) Packet { return Packet{IsList: true, List: items} }

func (p Packet) String() string {
	if !p.IsList {
		return strconv.Itoa(p.Value)
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range p.List {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Parse reads one packet. The whole string must be consumed.
func Parse(s string) (Packet, error) {
	r := reader{s: s}
	p, err := r.packet()
	if err != nil {
		return Packet{}, err
	}
	if r.pos != len(s) {
		return Packet{}, fmt.Errorf("trailing input at offset %d", r.pos)
	}
	return p, nil
}

type reader struct {
	s   string
	pos int
}

func (r *reader) packet() (Packet, error) {
	if r.pos >= len(r.s) {
		return Packet{}, fmt.Errorf("unexpected end of packet")
	}
	c := r.s[r.pos]
	switch {
	case c == '[':
		r.pos++
		p := List()
		if r.pos < len(r.s) && r.s[r.pos] == ']' {
			r.pos++
			return p, nil
		}
		for {
			child, err := r.packet()
			if err != nil {
				return Packet{}, err
			}
			p.List = append(p.List, child)
			if r.pos >= len(r.s) {
				return Packet{}, fmt.Errorf("unclosed list")
			}
			switch r.s[r.pos] {
			case ',':
				r.pos++
			case ']':
				r.pos++
				return p, nil
			default:
				return Packet{}, fmt.Errorf("unexpected %q at offset %d", r.s[r.pos], r.pos)
			}
		}
	case c >= '0' && c <= '9':
		start := r.pos
		for r.pos < len(r.s) && r.s[r.pos] >= '0' && r.s[r.pos] <= '9' {
			r.pos++
		}
		v, err := strconv.Atoi(r.s[start:r.pos])
		if err != nil {
			return Packet{}, err
		}
		return Int(v), nil
	}
	return Packet{}, fmt.Errorf("unexpected %q at offset %d", c, r.pos)
}

// Compare orders packets: -1 when a comes first, 1 when b does, 0 when equal.
func Compare(a, b Packet) int {
	switch {
	case !a.IsList && !b.IsList:
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		}
		return 0
	case !a.IsList:
		return Compare(List(a), b)
	case !b.IsList:
		return Compare(a, List(b))
	}
	for i := 0; i < len(a.List) && i < len(b.List); i++ {
		if c := Compare(a.List[i], b.List[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a.List) < len(b.List):
		return -1
	case len(a.List) > len(b.List):
		return 1
	}
	return 0
}

// Pair is two packets read from consecutive lines.
type Pair struct {
	Left, Right Packet
}

// ParsePairs reads blank-line separated pairs of packets.
func ParsePairs(input string) ([]Pair, error) {
	var pairs []Pair
	for _, b := range core.Blocks(input) {
		if len(b.Lines) != 2 {
			return nil, core.Errorf(b.Start, strings.Join(b.Lines, " "), "expected 2 packets, got %d", len(b.Lines))
		}
		var ps [2]Packet
		for i, line := range b.Lines {
			p, err := Parse(line)
			if err != nil {
				return nil, core.Errorf(b.Start+i, line, "%w", err)
			}
			ps[i] = p
		}
		pairs = append(pairs, Pair{ps[0], ps[1]})
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no packets")
	}
	return pairs, nil
}

// Dividers are inserted among the packets in part two, in ascending order.
var Dividers = []Packet{List(List(Int(2))), List(List(Int(6)))}

// Solver answers the distress signal puzzle.
type Solver struct{}

// New returns a Solver.
func New() *Solver { return &Solver{} }

// Name identifies the puzzle.
func (s *Solver) Name() string { return "packets" }

// Day returns the calendar day.
func (s *Solver) Day() int { return Day }

// PartOne sums the 1-based indices of pairs already in order.
func (s *Solver) PartOne(input string) (string, error) {
	pairs, err := ParsePairs(input)
	if err != nil {
		return "", err
	}
	sum := 0
	for i, p := range pairs {
		if Compare(p.Left, p.Right) < 0 {
			sum += i + 1
		}
	}
	return strconv.Itoa(sum), nil
}

// PartTwo places the dividers among all packets in sorted order and
// multiplies their 1-based positions. Input packets equal to a divider sort
// before it.
func (s *Solver) PartTwo(input string) (string, error) {
	pairs, err := ParsePairs(input)
	if err != nil {
		return "", err
	}
	key := 1
	for i, d := range Dividers {
		pos := i + 1
		for _, p := range pairs {
			if Compare(p.Left, d) <= 0 {
				pos++
			}
			if Compare(p.Right, d) <= 0 {
				pos++
			}
		}
		key *= pos
	}
	return strconv.Itoa(key), nil
}

func init() {
	core.Register(core.DayName(Day), func(map[string]string) core.Solver { return New() })
}
