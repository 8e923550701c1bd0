// Package diagram holds the graph model exchanged with the parser and
// layout collaborators: the parsed graph on one side, positioned nodes and
// edges on the other. The shapes of these types mirror the JSON the
// embedding renderer speaks (camelCase keys, omitted optionals).
package diagram

import (
	"github.com/biantaishabi2/beautiful-mermaid/shape"
)

// FlowDirection is the declared growth direction of a flowchart.
type FlowDirection string

const (
	DirectionTD FlowDirection = "TD"
	DirectionTB FlowDirection = "TB"
	DirectionLR FlowDirection = "LR"
	DirectionBT FlowDirection = "BT"
	DirectionRL FlowDirection = "RL"
)

// EdgeStyle is the stroke style of an edge.
type EdgeStyle string

const (
	EdgeSolid  EdgeStyle = "solid"
	EdgeDotted EdgeStyle = "dotted"
	EdgeThick  EdgeStyle = "thick"
)

// Node is one parsed node: an id, a raw label (markup not yet normalized),
// and a shape kind.
type Node struct {
	ID    string     `json:"id"`
	Label string     `json:"label"`
	Shape shape.Kind `json:"shape"`
}

// Edge is a parsed connection between two nodes.
type Edge struct {
	Source        string    `json:"source"`
	Target        string    `json:"target"`
	Label         string    `json:"label,omitempty"`
	Style         EdgeStyle `json:"style"`
	HasArrowStart bool      `json:"hasArrowStart"`
	HasArrowEnd   bool      `json:"hasArrowEnd"`
}

// Subgraph is a named group of nodes, possibly nested.
type Subgraph struct {
	ID        string         `json:"id"`
	Label     string         `json:"label"`
	NodeIDs   []string       `json:"nodeIds"`
	Children  []Subgraph     `json:"children"`
	Direction *FlowDirection `json:"direction,omitempty"`
}

// Graph is the parsed diagram before layout. Node order is significant:
// layout and rendering follow declaration order.
type Graph struct {
	Direction FlowDirection `json:"direction"`
	Nodes     *NodeMap      `json:"nodes"`
	Edges     []Edge        `json:"edges"`
	Subgraphs []Subgraph    `json:"subgraphs"`
}

// Point is a position in layout space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PositionedNode is a node with final coordinates assigned by the layout
// collaborator. X and Y address the node's top-left corner.
type PositionedNode struct {
	ID     string     `json:"id"`
	Label  string     `json:"label"`
	Shape  shape.Kind `json:"shape"`
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
}

// PositionedEdge is an edge routed through explicit points.
type PositionedEdge struct {
	Source        string    `json:"source"`
	Target        string    `json:"target"`
	Label         string    `json:"label,omitempty"`
	Style         EdgeStyle `json:"style"`
	HasArrowStart bool      `json:"hasArrowStart"`
	HasArrowEnd   bool      `json:"hasArrowEnd"`
	Points        []Point   `json:"points"`
	LabelPosition *Point    `json:"labelPosition,omitempty"`
}

// PositionedGroup is a laid-out subgraph frame.
type PositionedGroup struct {
	ID       string            `json:"id"`
	Label    string            `json:"label"`
	X        float64           `json:"x"`
	Y        float64           `json:"y"`
	Width    float64           `json:"width"`
	Height   float64           `json:"height"`
	Children []PositionedGroup `json:"children"`
}

// PositionedGraph is the layout collaborator's output and this renderer's
// input.
type PositionedGraph struct {
	Width  float64           `json:"width"`
	Height float64           `json:"height"`
	Nodes  []PositionedNode  `json:"nodes"`
	Edges  []PositionedEdge  `json:"edges"`
	Groups []PositionedGroup `json:"groups"`
}

// RenderOptions carry caller-supplied style strings. All values are opaque
// and passed through verbatim; nil means the consumer's default.
type RenderOptions struct {
	BG          *string  `json:"bg,omitempty"`
	FG          *string  `json:"fg,omitempty"`
	Line        *string  `json:"line,omitempty"`
	Accent      *string  `json:"accent,omitempty"`
	Muted       *string  `json:"muted,omitempty"`
	Surface     *string  `json:"surface,omitempty"`
	Border      *string  `json:"border,omitempty"`
	Font        *string  `json:"font,omitempty"`
	Padding     *float64 `json:"padding,omitempty"`
	NodeSpacing *float64 `json:"nodeSpacing,omitempty"`
	Transparent *bool    `json:"transparent,omitempty"`
}
