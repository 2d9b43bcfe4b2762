package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is returned when a rectangle has inverted or non-finite
// coordinates.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle in PDF user space (Y grows upwards).
// The zero value is the empty rectangle at the origin.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect creates a rectangle from its corners. It returns ErrInvalidGeometry
// if minX > maxX, minY > maxY or any coordinate is NaN or infinite.
func NewRect(minX, minY, maxX, maxY float64) (Rect, error) {
	for _, v := range [...]float64{minX, minY, maxX, maxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Rect{}, fmt.Errorf("%w: non-finite coordinate %v", ErrInvalidGeometry, v)
		}
	}
	if minX > maxX || minY > maxY {
		return Rect{}, fmt.Errorf("%w: (%g, %g, %g, %g)", ErrInvalidGeometry, minX, minY, maxX, maxY)
	}
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, nil
}

// MustRect is like NewRect but panics on invalid input. Intended for tests and
// literals known to be valid.
func MustRect(minX, minY, maxX, maxY float64) Rect {
	r, err := NewRect(minX, minY, maxX, maxY)
	if err != nil {
		panic(err)
	}
	return r
}

// NewRectFromPoints creates a rectangle spanning two points
func NewRectFromPoints(p1, p2 Point) Rect {
	return Rect{
		MinX: math.Min(p1.X, p2.X),
		MinY: math.Min(p1.Y, p2.Y),
		MaxX: math.Max(p1.X, p2.X),
		MaxY: math.Max(p1.Y, p2.Y),
	}
}

// Validate reports whether the rectangle satisfies the min <= max invariant.
func (r Rect) Validate() error {
	_, err := NewRect(r.MinX, r.MinY, r.MaxX, r.MaxY)
	return err
}

// Width returns MaxX - MinX
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns MaxY - MinY
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: (r.MinX + r.MaxX) / 2,
		Y: (r.MinY + r.MaxY) / 2,
	}
}

// ContainsPoint checks if a point is inside the rectangle (edges inclusive)
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX &&
		p.Y >= r.MinY && p.Y <= r.MaxY
}

// Contains reports whether other lies completely inside r (edges inclusive).
func (r Rect) Contains(other Rect) bool {
	return other.MinX >= r.MinX && other.MaxX <= r.MaxX &&
		other.MinY >= r.MinY && other.MaxY <= r.MaxY
}

// Overlaps reports whether two rectangles share at least one point.
// Touching edges count as overlap.
func (r Rect) Overlaps(other Rect) bool {
	return !(r.MaxX < other.MinX ||
		r.MinX > other.MaxX ||
		r.MaxY < other.MinY ||
		r.MinY > other.MaxY)
}

// OverlapsVertically reports whether the Y ranges of the rectangles intersect.
func (r Rect) OverlapsVertically(other Rect) bool {
	return r.MinY <= other.MaxY && other.MinY <= r.MaxY
}

// OverlapsHorizontally reports whether the X ranges of the rectangles intersect.
func (r Rect) OverlapsHorizontally(other Rect) bool {
	return r.MinX <= other.MaxX && other.MinX <= r.MaxX
}

// Intersection returns the intersection of two rectangles, or the empty
// rectangle when they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	if !r.Overlaps(other) {
		return Rect{}
	}
	return Rect{
		MinX: math.Max(r.MinX, other.MinX),
		MinY: math.Max(r.MinY, other.MinY),
		MaxX: math.Min(r.MaxX, other.MaxX),
		MaxY: math.Min(r.MaxY, other.MaxY),
	}
}

// Union returns the smallest rectangle containing both rectangles
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, other.MinX),
		MinY: math.Min(r.MinY, other.MinY),
		MaxX: math.Max(r.MaxX, other.MaxX),
		MaxY: math.Max(r.MaxY, other.MaxY),
	}
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Expand grows the rectangle by a margin on all sides
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		MinX: r.MinX - margin,
		MinY: r.MinY - margin,
		MaxX: r.MaxX + margin,
		MaxY: r.MaxY + margin,
	}
}

// OverlapRatio calculates the intersection area relative to the smaller of the
// two rectangles. Returns a value between 0 and 1.
func (r Rect) OverlapRatio(other Rect) float64 {
	if !r.Overlaps(other) {
		return 0
	}

	minArea := math.Min(r.Area(), other.Area())
	if minArea == 0 {
		return 0
	}

	return r.Intersection(other).Area() / minArea
}

// IsEmpty returns true if the rectangle has zero area
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// String formats the rectangle as [minX minY maxX maxY]
func (r Rect) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", r.MinX, r.MinY, r.MaxX, r.MaxY)
}

// BoundingBox returns the bounding rectangle of the given elements. For an
// empty set it returns the zero Rect, whose width and height are 0.
func BoundingBox[E Element](elements []E) Rect {
	if len(elements) == 0 {
		return Rect{}
	}
	bbox := elements[0].BoundingBox()
	for _, e := range elements[1:] {
		bbox = bbox.Union(e.BoundingBox())
	}
	return bbox
}
