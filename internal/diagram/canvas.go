// Package diagram lays out an HR diagram on a character grid.
//
// The grid is plain data: each cell carries a rune and an optional colour.
// Terminal views style the cells; headless output prints them as text.
package diagram

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one character position.
type Cell struct {
	Rune  rune   // 0 marks the trailing half of a wide rune
	Color string // "#rrggbb", or empty for the default foreground
	Bold  bool
}

// Canvas is a fixed-size grid of cells.
type Canvas struct {
	Width  int
	Height int
	cells  []Cell
}

// NewCanvas returns a canvas filled with spaces.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{Width: width, Height: height, cells: make([]Cell, width*height)}
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' '}
	}
	return c
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// At returns the cell at (x, y); out-of-bounds positions read as blank.
func (c *Canvas) At(x, y int) Cell {
	if !c.inBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return c.cells[y*c.Width+x]
}

// Set writes one cell. Out-of-bounds writes are ignored.
func (c *Canvas) Set(x, y int, r rune, color string) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y*c.Width+x] = Cell{Rune: r, Color: color}
}

// Embolden marks the cell at (x, y) bold.
func (c *Canvas) Embolden(x, y int) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y*c.Width+x].Bold = true
}

// Text writes s starting at (x, y) and returns the number of columns used.
// Wide runes take two columns; text past the right edge is dropped.
func (c *Canvas) Text(x, y int, s string, color string) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > c.Width {
			break
		}
		c.Set(col, y, r, color)
		if w == 2 {
			c.Set(col+1, y, 0, color)
		}
		col += w
	}
	return col - x
}

// Row returns the cells of row y.
func (c *Canvas) Row(y int) []Cell {
	if y < 0 || y >= c.Height {
		return nil
	}
	return c.cells[y*c.Width : (y+1)*c.Width]
}

// String renders the canvas as plain text, one line per row, with trailing
// spaces trimmed.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.Height; y++ {
		var line strings.Builder
		for _, cell := range c.Row(y) {
			if cell.Rune == 0 {
				continue
			}
			line.WriteRune(cell.Rune)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		if y < c.Height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
