package export

import (
	"strings"
	"testing"

	"github.com/biantaishabi2/beautiful-mermaid/diagram"
	"github.com/biantaishabi2/beautiful-mermaid/shape"
)

func TestASCIIExporterNilGraph(t *testing.T) {
	e := NewASCIIExporter(shape.Options{ASCII: true})
	if _, err := e.Export(nil); err == nil {
		t.Error("Export(nil) error = nil, want error")
	}
}

func TestASCIIExporterSingleNode(t *testing.T) {
	e := NewASCIIExporter(shape.Options{ASCII: true})
	g := &diagram.PositionedGraph{
		Width:  5,
		Height: 3,
		Nodes: []diagram.PositionedNode{
			{ID: "a", Label: "A", Shape: shape.KindStadium, X: 0, Y: 0},
		},
	}

	out, err := e.Export(g)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	want := "     \n( A )\n     "
	if out != want {
		t.Errorf("Export = %q, want %q", out, want)
	}
}

func TestASCIIExporterOffsetAndGrowth(t *testing.T) {
	e := NewASCIIExporter(shape.Options{ASCII: true})
	// Declared size too small: the grid grows to cover the node.
	g := &diagram.PositionedGraph{
		Width:  1,
		Height: 1,
		Nodes: []diagram.PositionedNode{
			{ID: "b", Label: "B", Shape: shape.KindRectangle, X: 2, Y: 1},
		},
	}

	out, err := e.Export(g)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4:\n%s", len(lines), out)
	}
	if lines[1] != "  +-+" {
		t.Errorf("row 1 = %q, want %q", lines[1], "  +-+")
	}
	if lines[2] != "  |B|" {
		t.Errorf("row 2 = %q, want %q", lines[2], "  |B|")
	}
}

func TestASCIIExporterNormalizesLabels(t *testing.T) {
	e := NewASCIIExporter(shape.Options{ASCII: true})
	g := &diagram.PositionedGraph{
		Nodes: []diagram.PositionedNode{
			{ID: "n", Label: "**a**<br>b", Shape: shape.KindRectangle, X: 0, Y: 0},
		},
	}

	out, err := e.Export(g)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	// Markdown bold resolves to tags which are then stripped; the break
	// tag yields a second line.
	if !strings.Contains(out, "|a|") || !strings.Contains(out, "|b|") {
		t.Errorf("normalized label rows missing:\n%s", out)
	}
}

func TestASCIIExporterMetadata(t *testing.T) {
	e := NewASCIIExporter(shape.Options{})
	if e.GetFileExtension() != ".txt" {
		t.Errorf("GetFileExtension = %q", e.GetFileExtension())
	}
	if e.GetFormatName() == "" {
		t.Error("GetFormatName is empty")
	}
}
