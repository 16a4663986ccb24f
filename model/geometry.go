package model

import (
	"math"

	"github.com/anotb/pptx-masters/units"
)

// Position is a rectangle in inches, measured from the slide's top-left corner.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// PositionFromEMU converts an offset and extent in EMUs to a Position rounded
// to hundredths of an inch.
func PositionFromEMU(x, y, cx, cy int64) Position {
	return Position{
		X: units.Round(units.EMUToInches(x), 2),
		Y: units.Round(units.EMUToInches(y), 2),
		W: units.Round(units.EMUToInches(cx), 2),
		H: units.Round(units.EMUToInches(cy), 2),
	}
}

// IsZero reports whether all four components are zero.
func (p Position) IsZero() bool {
	return p.X == 0 && p.Y == 0 && p.W == 0 && p.H == 0
}

// IsEmptySize reports whether the rectangle has neither width nor height.
func (p Position) IsEmptySize() bool {
	return p.W == 0 && p.H == 0
}

// Right returns the right edge.
func (p Position) Right() float64 {
	return p.X + p.W
}

// Bottom returns the bottom edge.
func (p Position) Bottom() float64 {
	return p.Y + p.H
}

// Near reports whether every component of p is within tol of o.
func (p Position) Near(o Position, tol float64) bool {
	return math.Abs(p.X-o.X) <= tol &&
		math.Abs(p.Y-o.Y) <= tol &&
		math.Abs(p.W-o.W) <= tol &&
		math.Abs(p.H-o.H) <= tol
}

// Intersects reports whether p and o overlap.
func (p Position) Intersects(o Position) bool {
	return p.X < o.Right() && o.X < p.Right() &&
		p.Y < o.Bottom() && o.Y < p.Bottom()
}

// Dimensions is the slide size in inches.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultDimensions is the standard 4:3 slide size used when a presentation
// does not declare one.
var DefaultDimensions = Dimensions{Width: 10, Height: 7.5}
