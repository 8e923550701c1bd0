// Package core contains the fundamental types shared by the beautiful-mermaid
// layout and rendering packages.
package core

// Point represents a 2D coordinate in drawing space.
type Point struct {
	X, Y int
}

// Direction selects an attachment point on a shape's bounding box: four
// edge midpoints, four corners, or the center.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	UpperLeft
	UpperRight
	LowerLeft
	LowerRight
	Middle
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case UpperLeft:
		return "UpperLeft"
	case UpperRight:
		return "UpperRight"
	case LowerLeft:
		return "LowerLeft"
	case LowerRight:
		return "LowerRight"
	case Middle:
		return "Middle"
	default:
		return "Unknown"
	}
}

// Opposite returns the direction across the box center. Middle is its own
// opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case UpperLeft:
		return LowerRight
	case UpperRight:
		return LowerLeft
	case LowerLeft:
		return UpperRight
	case LowerRight:
		return UpperLeft
	default:
		return d
	}
}
