// Package export renders positioned diagrams into text-based output
// formats. Only the node surfaces are drawn here; edge routing belongs to
// the layout collaborator and is out of scope.
package export

import (
	"fmt"
	"math"

	"github.com/biantaishabi2/beautiful-mermaid/canvas"
	"github.com/biantaishabi2/beautiful-mermaid/core"
	"github.com/biantaishabi2/beautiful-mermaid/diagram"
	"github.com/biantaishabi2/beautiful-mermaid/markup"
	"github.com/biantaishabi2/beautiful-mermaid/shape"
)

// ASCIIExporter stamps each positioned node's rendered shape onto a single
// canvas sized to the graph.
type ASCIIExporter struct {
	opts shape.Options
}

// NewASCIIExporter creates an exporter with the given shape options.
func NewASCIIExporter(opts shape.Options) *ASCIIExporter {
	return &ASCIIExporter{opts: opts}
}

// Export renders the positioned graph to a text grid. Node labels are
// normalized (break tags, markdown) and tag-stripped before rasterizing;
// node coordinates are truncated to integer cells.
func (e *ASCIIExporter) Export(g *diagram.PositionedGraph) (string, error) {
	if g == nil {
		return "", fmt.Errorf("positioned graph is nil")
	}

	width := int(math.Ceil(g.Width))
	height := int(math.Ceil(g.Height))
	for _, node := range g.Nodes {
		// The grid must cover every node even when the declared graph
		// size is lagging behind the layout.
		label := nodeLabel(node.Label)
		dims := shape.Get(node.Shape).Dimensions(label, e.opts)
		if right := int(node.X) + dims.Width; right > width {
			width = right
		}
		if bottom := int(node.Y) + dims.Height; bottom > height {
			height = bottom
		}
	}

	grid := canvas.New(width, height)
	for _, node := range g.Nodes {
		label := nodeLabel(node.Label)
		s := shape.Get(node.Shape)
		dims := s.Dimensions(label, e.opts)
		rendered := s.Render(label, dims, e.opts)
		grid.Blit(rendered, core.Point{X: int(node.X), Y: int(node.Y)})
	}

	return grid.String(), nil
}

// GetFileExtension returns the recommended file extension.
func (e *ASCIIExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name.
func (e *ASCIIExporter) GetFormatName() string {
	return "ASCII/Unicode Art"
}

// nodeLabel converts a raw label to the plain multi-line text a canvas can
// hold: markup normalized, formatting tags dropped.
func nodeLabel(raw string) string {
	return markup.StripFormattingTags(markup.NormalizeBrTags(raw))
}
