package render

import (
	"strings"

	"advent-ca/internal/core"
)

// Text renders a grid as lines of glyphs, one byte per cell. Cell values past
// the end of glyphs use the last glyph.
func Text(g *core.ByteGrid, glyphs string) string {
	if g == nil || glyphs == "" {
		return ""
	}
	last := len(glyphs) - 1
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			idx := int(g.At(x, y))
			if idx > last {
				idx = last
			}
			b.WriteByte(glyphs[idx])
		}
	}
	return b.String()
}
