package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    colorful.Color
	Bg    colorful.Color
	Depth float64 // Nearest plotted depth, +Inf when empty
	Width int     // 0 for the trailing half of a wide rune
}

// Buffer is a compositor over a flat cell array, flushed to a tcell screen once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Cell returns the cell at x, y; out of bounds yields an empty cell
func (b *Buffer) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Plot draws a glyph subject to a depth test, nearer wins
func (b *Buffer) Plot(x, y int, depth float64, r rune, fg colorful.Color) bool {
	if !b.inBounds(x, y) {
		return false
	}
	c := &b.cells[y*b.width+x]
	if depth >= c.Depth {
		return false
	}
	c.Rune, c.Fg, c.Depth, c.Width = r, fg, depth, 1
	return true
}

// Set draws a glyph on top of everything, ignoring depth
func (b *Buffer) Set(x, y int, r rune, fg colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune, c.Fg, c.Depth, c.Width = r, fg, 0, 1
}

// BlendBg mixes bg into the cell background in Lab space
func (b *Buffer) BlendBg(x, y int, bg colorful.Color, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Bg = c.Bg.BlendLab(bg, clampUnit(alpha)).Clamped()
}

// Text writes s starting at x, y and returns the number of columns used
// Wide runes take two cells; runes falling partly outside the buffer are skipped
func (b *Buffer) Text(x, y int, s string, fg colorful.Color) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > b.width {
			break
		}
		if b.inBounds(col, y) && b.inBounds(col+w-1, y) {
			b.Set(col, y, r, fg)
			if w == 2 {
				b.cells[y*b.width+col].Width = 2
				tail := &b.cells[y*b.width+col+1]
				tail.Rune, tail.Depth, tail.Width = 0, 0, 0
			}
		}
		col += w
	}
	return col - x
}

// Flush writes every cell to the screen; the caller shows the screen
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if x > 0 && b.cells[y*b.width+x-1].Width == 2 {
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(ToTcell(c.Fg)).Background(ToTcell(c.Bg))
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

// StringWidth returns the display width of s in cells
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
