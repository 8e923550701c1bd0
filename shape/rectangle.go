package shape

import (
	"github.com/biantaishabi2/beautiful-mermaid/canvas"
	"github.com/biantaishabi2/beautiful-mermaid/core"
)

// BoxAttachmentPoint is the shape-agnostic attachment rule shared by every
// shape kind: corners map to exact box corners, edge midpoints use floored
// half-width or half-height, Middle uses both. It is a pure coordinate
// transform independent of border style.
func BoxAttachmentPoint(dir core.Direction, dims Dimensions, base core.Point) core.Point {
	width := dims.Width
	height := dims.Height

	centerX := base.X + width/2
	centerY := base.Y + height/2

	switch dir {
	case core.Up:
		return core.Point{X: centerX, Y: base.Y}
	case core.Down:
		return core.Point{X: centerX, Y: base.Y + height - 1}
	case core.Left:
		return core.Point{X: base.X, Y: centerY}
	case core.Right:
		return core.Point{X: base.X + width - 1, Y: centerY}
	case core.UpperLeft:
		return core.Point{X: base.X, Y: base.Y}
	case core.UpperRight:
		return core.Point{X: base.X + width - 1, Y: base.Y}
	case core.LowerLeft:
		return core.Point{X: base.X, Y: base.Y + height - 1}
	case core.LowerRight:
		return core.Point{X: base.X + width - 1, Y: base.Y + height - 1}
	default:
		return core.Point{X: centerX, Y: centerY}
	}
}

// boxBorder holds the border glyphs for rectangular shapes.
type boxBorder struct {
	topLeft, topRight       rune
	bottomLeft, bottomRight rune
	horizontal, vertical    rune
}

var (
	roundedBorder = boxBorder{'╭', '╮', '╰', '╯', '─', '│'}
	asciiBorder   = boxBorder{'+', '+', '+', '+', '-', '|'}
)

// Rectangle is the plain box shape. It also serves the rounded kind: the
// corner glyphs are the only difference and both live in the same border
// table.
type Rectangle struct{}

func (Rectangle) Kind() Kind { return KindRectangle }

// Dimensions lays the label out with a single border column per side.
func (Rectangle) Dimensions(label string, opts Options) Dimensions {
	lines := splitLines(label)
	lineWidth := maxLineWidth(lines)

	innerWidth := 2*opts.Padding + lineWidth
	innerHeight := len(lines) + 2*opts.Padding
	width := innerWidth + 2
	height := innerHeight + 2
	if height < 3 {
		height = 3
	}

	return Dimensions{
		Width:  width,
		Height: height,
		LabelArea: LabelArea{
			X:      1 + opts.Padding,
			Y:      1 + opts.Padding,
			Width:  lineWidth,
			Height: len(lines),
		},
		GridColumns: [3]int{1, innerWidth, 1},
		GridRows:    [3]int{1, innerHeight, 1},
	}
}

// Render draws the border and the centered label.
func (r Rectangle) Render(label string, dims Dimensions, opts Options) *canvas.Canvas {
	width, height := dims.Width, dims.Height
	innerWidth := dims.GridColumns[1]
	innerHeight := dims.GridRows[1]
	c := canvas.New(width, height)

	border := roundedBorder
	if opts.ASCII {
		border = asciiBorder
	}

	c.Set(core.Point{X: 0, Y: 0}, border.topLeft)
	c.Set(core.Point{X: width - 1, Y: 0}, border.topRight)
	c.Set(core.Point{X: 0, Y: height - 1}, border.bottomLeft)
	c.Set(core.Point{X: width - 1, Y: height - 1}, border.bottomRight)
	for x := 1; x < width-1; x++ {
		c.Set(core.Point{X: x, Y: 0}, border.horizontal)
		c.Set(core.Point{X: x, Y: height - 1}, border.horizontal)
	}
	for y := 1; y < height-1; y++ {
		c.Set(core.Point{X: 0, Y: y}, border.vertical)
		c.Set(core.Point{X: width - 1, Y: y}, border.vertical)
	}

	drawLabel(c, label, 1, innerWidth, innerHeight, width, height)
	return c
}

func (Rectangle) AttachmentPoint(dir core.Direction, dims Dimensions, base core.Point) core.Point {
	return BoxAttachmentPoint(dir, dims, base)
}

// drawLabel centers the label lines inside the interior band starting at
// column borderWidth. Centering is floor-biased on odd remainders; cells
// outside the interior columns or below the canvas are clipped.
func drawLabel(c *canvas.Canvas, label string, borderWidth, innerWidth, innerHeight, width, height int) {
	lines := splitLines(label)
	startY := 1 + (innerHeight-len(lines))/2

	for i, line := range lines {
		runes := []rune(line)
		textX := borderWidth + (innerWidth-len(runes))/2
		for j, ch := range runes {
			x := textX + j
			y := startY + i
			if x > 0 && x < width-1 && y < height {
				c.Set(core.Point{X: x, Y: y}, ch)
			}
		}
	}
}
