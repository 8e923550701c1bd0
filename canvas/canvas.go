// Package canvas provides the 2D character grid that shapes render into,
// plus display-width helpers for fitting labels to terminal cells.
package canvas

import (
	"strings"

	"github.com/biantaishabi2/beautiful-mermaid/core"
)

// Canvas is a rune matrix addressable by (x, y) in [0,width) x [0,height).
// Writes outside the grid are silently dropped (clipping, not an error);
// reads outside the grid return a space.
//
// A Canvas is allocated fresh per render call and is not synchronized:
// writes from multiple goroutines need external coordination, while
// concurrent reads of a finished canvas are safe.
//
// Coordinate system: origin (0,0) is top-left, X grows rightward, Y grows
// downward, one cell per codepoint.
type Canvas struct {
	cells  [][]rune
	width  int
	height int
}

// New creates a canvas of the given size filled with spaces. Non-positive
// dimensions yield an empty canvas.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([][]rune, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]rune, width)
		for x := 0; x < width; x++ {
			cells[y][x] = ' '
		}
	}

	return &Canvas{cells: cells, width: width, height: height}
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// Get returns the character at p, or a space if p is out of bounds.
func (c *Canvas) Get(p core.Point) rune {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return ' '
	}
	return c.cells[p.Y][p.X]
}

// Set places a character at p. Out-of-bounds writes are dropped.
func (c *Canvas) Set(p core.Point, char rune) {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return
	}
	c.cells[p.Y][p.X] = char
}

// Rows returns the canvas contents as one string per row.
func (c *Canvas) Rows() []string {
	rows := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		rows[y] = string(c.cells[y])
	}
	return rows
}

// String returns the canvas as newline-joined rows.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.cells[y][x])
		}
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Blit copies src onto c with src's origin at offset. Cells falling outside
// c are clipped.
func (c *Canvas) Blit(src *Canvas, offset core.Point) {
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			c.Set(core.Point{X: offset.X + x, Y: offset.Y + y}, src.cells[y][x])
		}
	}
}
