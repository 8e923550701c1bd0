package shape

import (
	"github.com/biantaishabi2/beautiful-mermaid/canvas"
	"github.com/biantaishabi2/beautiful-mermaid/core"
)

// Stadium is the pill shape: a box with capsule ends. Its end caps need two
// columns per side, so the outer width is the inner width plus four.
type Stadium struct{}

func (Stadium) Kind() Kind { return KindStadium }

// Dimensions computes the stadium layout. Height is never below 3: the
// minimum box accommodates a one-row pill.
func (Stadium) Dimensions(label string, opts Options) Dimensions {
	lines := splitLines(label)
	lineWidth := maxLineWidth(lines)

	innerWidth := 2*opts.Padding + lineWidth
	width := innerWidth + 4
	innerHeight := len(lines) + 2*opts.Padding
	height := innerHeight + 2
	if height < 3 {
		height = 3
	}

	return Dimensions{
		Width:  width,
		Height: height,
		LabelArea: LabelArea{
			X:      2 + opts.Padding,
			Y:      1 + opts.Padding,
			Width:  lineWidth,
			Height: len(lines),
		},
		GridColumns: [3]int{2, innerWidth, 2},
		GridRows:    [3]int{1, innerHeight, 1},
	}
}

// Render rasterizes the stadium. Three border regimes: a height-3 pill gets
// only end caps at the vertical center; the Unicode form draws rounded
// corners with line fills; the ASCII form repeats the end caps down the
// full height with dashes on the top and bottom rows.
func (Stadium) Render(label string, dims Dimensions, opts Options) *canvas.Canvas {
	width, height := dims.Width, dims.Height
	innerWidth := dims.GridColumns[1]
	innerHeight := dims.GridRows[1]
	c := canvas.New(width, height)

	centerY := height / 2
	hChar := '─'
	if opts.ASCII {
		hChar = '-'
	}

	switch {
	case height == 3:
		c.Set(core.Point{X: 0, Y: centerY}, '(')
		c.Set(core.Point{X: width - 1, Y: centerY}, ')')
	case !opts.ASCII:
		c.Set(core.Point{X: 0, Y: 0}, '╭')
		for x := 1; x < width-1; x++ {
			c.Set(core.Point{X: x, Y: 0}, hChar)
		}
		c.Set(core.Point{X: width - 1, Y: 0}, '╮')

		for y := 1; y < height-1; y++ {
			c.Set(core.Point{X: 0, Y: y}, '│')
			c.Set(core.Point{X: width - 1, Y: y}, '│')
		}

		c.Set(core.Point{X: 0, Y: height - 1}, '╰')
		for x := 1; x < width-1; x++ {
			c.Set(core.Point{X: x, Y: height - 1}, hChar)
		}
		c.Set(core.Point{X: width - 1, Y: height - 1}, '╯')
	default:
		for y := 0; y < height; y++ {
			c.Set(core.Point{X: 0, Y: y}, '(')
			c.Set(core.Point{X: width - 1, Y: y}, ')')
		}
		for x := 1; x < width-1; x++ {
			c.Set(core.Point{X: x, Y: 0}, hChar)
			c.Set(core.Point{X: x, Y: height - 1}, hChar)
		}
	}

	drawLabel(c, label, 2, innerWidth, innerHeight, width, height)
	return c
}

func (Stadium) AttachmentPoint(dir core.Direction, dims Dimensions, base core.Point) core.Point {
	return BoxAttachmentPoint(dir, dims, base)
}
