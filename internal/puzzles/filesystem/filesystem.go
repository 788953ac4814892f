package filesystem

import (
	"fmt"
	"strings"

	"advent-ca/internal/core"
)

// Root is the index of the top-level directory in every Tree.
const Root = 0

// Dir is a directory node. Parent and Children are indices into Tree.Dirs.
type Dir struct {
	Name     string
	Parent   int
	Children map[string]int
	Files    map[string]int64
}

// Tree stores directories in an arena addressed by index.
type Tree struct {
	Dirs []Dir
}

// NewTree returns a tree holding only the root directory.
func NewTree() *Tree {
	t := &Tree{}
	t.mkdir("/", Root)
	return t
}

func (t *Tree) mkdir(name string, parent int) int {
	t.Dirs = append(t.Dirs, Dir{Name: name, Parent: parent, Children: map[string]int{}, Files: map[string]int64{}})
	return len(t.Dirs) - 1
}

// Child returns the index of name under dir, creating it when missing.
func (t *Tree) Child(dir int, name string) int {
	if i, ok := t.Dirs[dir].Children[name]; ok {
		return i
	}
	i := t.mkdir(name, dir)
	t.Dirs[dir].Children[name] = i
	return i
}

// Path returns the absolute path of dir.
func (t *Tree) Path(dir int) string {
	if dir == Root {
		return "/"
	}
	var parts []string
	for i := dir; i != Root; i = t.Dirs[i].Parent {
		parts = append(parts, t.Dirs[i].Name)
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}

// Sizes returns the total size of every directory, indexed like Dirs.
func (t *Tree) Sizes() []int64 {
	sizes := make([]int64, len(t.Dirs))
	var walk func(int) int64
	walk = func(i int) int64 {
		var total int64
		for _, size := range t.Dirs[i].Files {
			total += size
		}
		for _, c := range t.Dirs[i].Children {
			total += walk(c)
		}
		sizes[i] = total
		return total
	}
	walk(Root)
	return sizes
}

// Parse replays a terminal session of cd and ls commands into a Tree.
func Parse(input string) (*Tree, error) {
	lines := core.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty terminal log")
	}
	t := NewTree()
	cwd := Root
	listing := false
	for i, line := range lines {
		fields := strings.Fields(line)
		switch {
		case len(fields) == 3 && fields[0] == "$" && fields[1] == "cd":
			listing = false
			switch arg := fields[2]; arg {
			case "/":
				cwd = Root
			case "..":
				if cwd == Root {
					return nil, core.Errorf(i+1, line, "cd .. above root")
				}
				cwd = t.Dirs[cwd].Parent
			default:
				cwd = t.Child(cwd, arg)
			}
		case len(fields) == 2 && fields[0] == "$" && fields[1] == "ls":
			listing = true
		case len(fields) > 0 && fields[0] == "$":
			return nil, core.Errorf(i+1, line, "unknown command")
		case !listing:
			return nil, core.Errorf(i+1, line, "output outside of ls")
		case len(fields) == 2 && fields[0] == "dir":
			t.Child(cwd, fields[1])
		case len(fields) == 2:
			size, err := core.Atoi(fields[0])
			if err != nil || size < 0 {
				return nil, core.Errorf(i+1, line, "bad file size %q", fields[0])
			}
			t.Dirs[cwd].Files[fields[1]] = int64(size)
		default:
			return nil, core.Errorf(i+1, line, "unrecognised line")
		}
	}
	return t, nil
}
