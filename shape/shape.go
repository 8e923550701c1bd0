// Package shape computes node shape geometry from labels and rasterizes
// bordered shapes onto character canvases. Every operation is a pure
// function of its inputs; dimensions feed both rendering and
// attachment-point queries.
package shape

import (
	"strings"

	"github.com/biantaishabi2/beautiful-mermaid/canvas"
	"github.com/biantaishabi2/beautiful-mermaid/core"
)

// Kind names a node shape, using the kebab-case vocabulary of the graph
// model.
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindRounded   Kind = "rounded"
	KindStadium   Kind = "stadium"
)

// Options control rendering of a shape.
type Options struct {
	// ASCII selects plain ASCII borders instead of Unicode box drawing.
	ASCII bool
	// Padding is the number of blank cells between label and border,
	// applied on every side.
	Padding int
}

// LabelArea is the rectangle inside a shape where the label is placed.
type LabelArea struct {
	X, Y          int
	Width, Height int
}

// Dimensions is the geometric layout of a shape computed from its label:
// outer size, label placement, and a 3-entry column/row grid splitting the
// shape into border and interior bands.
type Dimensions struct {
	Width, Height int
	LabelArea     LabelArea
	GridColumns   [3]int
	GridRows      [3]int
}

// Shape is one node shape kind. Implementations are stateless values.
type Shape interface {
	// Kind returns the shape's name.
	Kind() Kind
	// Dimensions computes the layout for a label.
	Dimensions(label string, opts Options) Dimensions
	// Render rasterizes the shape and its label onto a fresh canvas of
	// exactly dims.Width x dims.Height cells.
	Render(label string, dims Dimensions, opts Options) *canvas.Canvas
	// AttachmentPoint returns the coordinate on the shape's bounding
	// box where an edge arriving from dir should terminate, given the
	// box's top-left corner in drawing space.
	AttachmentPoint(dir core.Direction, dims Dimensions, base core.Point) core.Point
}

// registry maps shape kinds to implementations. Populated at init and
// read-only afterwards.
var registry = map[Kind]Shape{
	KindRectangle: Rectangle{},
	KindRounded:   Rectangle{},
	KindStadium:   Stadium{},
}

// Get returns the shape for kind, falling back to the rectangle for
// unknown kinds so callers always receive a usable shape.
func Get(kind Kind) Shape {
	if s, ok := registry[kind]; ok {
		return s
	}
	return Rectangle{}
}

// splitLines splits a label on line feeds. An input without a line feed is
// one line equal to the whole string, including the empty string.
func splitLines(label string) []string {
	return strings.Split(label, "\n")
}

// codePointWidth counts codepoints, the cell unit of the canvas model.
// Grid geometry uses codepoint counts, not terminal display cells.
func codePointWidth(line string) int {
	return len([]rune(line))
}

// maxLineWidth returns the widest line in codepoints.
func maxLineWidth(lines []string) int {
	max := 0
	for _, line := range lines {
		if w := codePointWidth(line); w > max {
			max = w
		}
	}
	return max
}
