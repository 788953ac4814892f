package core

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseError reports a line of input that does not match the expected
// grammar.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line <= 0 {
		return fmt.Sprintf("parse: %v", e.Err)
	}
	return fmt.Sprintf("parse line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Errorf builds a ParseError for the 1-based line n.
func Errorf(n int, text, format string, args ...any) error {
	return &ParseError{Line: n, Text: text, Err: fmt.Errorf(format, args...)}
}

// Scanf is fmt.Sscanf over a whole line: text left over after the last verb
// is an error. Trailing whitespace is allowed.
func Scanf(line, format string, args ...any) error {
	var rest string
	n, err := fmt.Sscanf(line, format+"%s", append(args, &rest)...)
	switch {
	case n > len(args):
		return fmt.Errorf("trailing text %q", rest)
	case n < len(args):
		if err == nil {
			err = fmt.Errorf("input does not match format")
		}
		return err
	}
	return nil
}

// ReadInput reads a puzzle input file and strips its trailing newline.
func ReadInput(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", path, err)
	}
	return Trim(string(b)), nil
}

// Trim removes a single trailing newline (LF or CRLF).
func Trim(input string) string {
	input = strings.TrimSuffix(input, "\n")
	return strings.TrimSuffix(input, "\r")
}

// Lines splits input into lines after trimming the trailing newline. Empty
// input yields no lines.
func Lines(input string) []string {
	input = Trim(input)
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Block is a group of consecutive non-empty lines. Start is the 1-based line
// number of its first line.
type Block struct {
	Start int
	Lines []string
}

// Blocks splits input on empty lines. Every empty line ends a block, so two
// consecutive empty lines produce an empty block.
func Blocks(input string) []Block {
	lines := Lines(input)
	if len(lines) == 0 {
		return nil
	}
	var blocks []Block
	cur := Block{Start: 1}
	for i, l := range lines {
		if l == "" {
			blocks = append(blocks, cur)
			cur = Block{Start: i + 2}
			continue
		}
		cur.Lines = append(cur.Lines, l)
	}
	return append(blocks, cur)
}

// Atoi parses a signed decimal integer with no surrounding space; overflow is
// an error.
func Atoi(s string) (int, error) { return strconv.Atoi(s) }

// Uatoi parses an unsigned 64-bit decimal integer; overflow is an error.
func Uatoi(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) }
