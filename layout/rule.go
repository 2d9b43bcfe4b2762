package layout

import (
	"errors"
	"fmt"

	"github.com/tsawler/blockify/model"
)

var (
	// ErrNilRule is returned when the builder is used without a rule.
	ErrNilRule = errors.New("layout: nil rule")

	// ErrUnknownDirection is returned for an unknown sweep direction or
	// horizontal check name in a configuration.
	ErrUnknownDirection = errors.New("layout: unknown direction")

	// ErrUnknownRule is returned for an unknown rule name in a configuration.
	ErrUnknownRule = errors.New("layout: unknown rule")
)

// Axis identifies the orientation of a lane
type Axis int

const (
	// NoAxis marks a leaf node that was not split
	NoAxis Axis = iota
	// Vertical lanes run top to bottom and separate columns
	Vertical
	// Horizontal lanes run left to right and separate rows of blocks
	Horizontal
)

// String returns a string representation of the axis
func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "none"
	}
}

// HorizontalSweepDirection is the order in which horizontal lane positions
// are tried
type HorizontalSweepDirection int

const (
	TopToBottom HorizontalSweepDirection = iota
	BottomToTop
)

// String returns the configuration name of the direction
func (d HorizontalSweepDirection) String() string {
	switch d {
	case TopToBottom:
		return "top-to-bottom"
	case BottomToTop:
		return "bottom-to-top"
	default:
		return "unknown"
	}
}

// ParseHorizontalSweepDirection parses "top-to-bottom" or "bottom-to-top".
func ParseHorizontalSweepDirection(s string) (HorizontalSweepDirection, error) {
	switch s {
	case "top-to-bottom", "":
		return TopToBottom, nil
	case "bottom-to-top":
		return BottomToTop, nil
	}
	return 0, fmt.Errorf("%w: horizontal sweep %q", ErrUnknownDirection, s)
}

// VerticalSweepDirection is the order in which vertical lane positions are
// tried
type VerticalSweepDirection int

const (
	LeftToRight VerticalSweepDirection = iota
	RightToLeft
)

// String returns the configuration name of the direction
func (d VerticalSweepDirection) String() string {
	switch d {
	case LeftToRight:
		return "left-to-right"
	case RightToLeft:
		return "right-to-left"
	default:
		return "unknown"
	}
}

// ParseVerticalSweepDirection parses "left-to-right" or "right-to-left".
func ParseVerticalSweepDirection(s string) (VerticalSweepDirection, error) {
	switch s {
	case "left-to-right", "":
		return LeftToRight, nil
	case "right-to-left":
		return RightToLeft, nil
	}
	return 0, fmt.Errorf("%w: vertical sweep %q", ErrUnknownDirection, s)
}

// Rule decides, per axis, how thick candidate lanes are, in which order
// their positions are tried and whether a lane is a valid cut. Rules must be
// safe for concurrent use; all implementations in this package are
// stateless apart from their immutable configuration.
type Rule interface {
	VerticalLaneWidth(area *Area) float64
	VerticalSweepDirection() VerticalSweepDirection
	IsValidVerticalLane(area *Area, lane model.Rect) bool

	HorizontalLaneHeight(area *Area) float64
	HorizontalSweepDirection() HorizontalSweepDirection
	IsValidHorizontalLane(area *Area, lane model.Rect) bool
}

// Lane is an accepted empty corridor of an area
type Lane struct {
	Axis Axis
	Rect model.Rect
}

// Cut returns the coordinate the area is split at: the lane center along the
// cut axis.
func (l Lane) Cut() float64 {
	if l.Axis == Vertical {
		return (l.Rect.MinX + l.Rect.MaxX) / 2
	}
	return (l.Rect.MinY + l.Rect.MaxY) / 2
}
