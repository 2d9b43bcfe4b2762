package layout

import (
	"fmt"

	"github.com/tsawler/blockify/model"
)

// HorizontalCheck selects how characters touching a horizontal lane are
// treated
type HorizontalCheck int

const (
	// CheckCharacters rejects a horizontal lane overlapped by any character
	CheckCharacters HorizontalCheck = iota
	// CheckIgnoreAscendersDescenders lets ascender and descender letters
	// reach into a horizontal lane
	CheckIgnoreAscendersDescenders
)

// String returns the configuration name of the check
func (c HorizontalCheck) String() string {
	switch c {
	case CheckCharacters:
		return "characters"
	case CheckIgnoreAscendersDescenders:
		return "ignore-ascenders-descenders"
	default:
		return "unknown"
	}
}

// ParseHorizontalCheck parses a horizontal check name.
func ParseHorizontalCheck(s string) (HorizontalCheck, error) {
	switch s {
	case "characters", "":
		return CheckCharacters, nil
	case "ignore-ascenders-descenders":
		return CheckIgnoreAscendersDescenders, nil
	}
	return 0, fmt.Errorf("%w: horizontal check %q", ErrUnknownDirection, s)
}

// TextRuleConfig holds the thresholds of the text page rule
type TextRuleConfig struct {
	HorizontalSweep HorizontalSweepDirection
	VerticalSweep   VerticalSweepDirection
	HorizontalCheck HorizontalCheck

	// TallAreaRatio: areas at least this fraction of the page height use
	// MinLaneWidth for vertical lanes (default: 0.5)
	TallAreaRatio float64

	// LaneWidthFactor multiplies the most common character width to get the
	// vertical lane width of short areas (default: 2)
	LaneWidthFactor float64

	// MinLaneWidth is the vertical lane width of tall areas (default: 0.1)
	MinLaneWidth float64

	// MinColumnWidthFactor: the elements on each side of a vertical lane must
	// span more than this multiple of the document's most common character
	// width (default: 25)
	MinColumnWidthFactor float64

	// MaxMathRatio is the largest fraction of math characters allowed on
	// either side of a vertical lane (default: 0.75)
	MaxMathRatio float64

	// ConsecutiveDistance is the largest extraction order distance of two
	// characters on the same row that a vertical lane may not separate
	// (default: 2)
	ConsecutiveDistance int

	// PitchFactor multiplies the document line pitch to get the horizontal
	// lane height (default: 2)
	PitchFactor float64
}

// DefaultTextRuleConfig returns the default thresholds
func DefaultTextRuleConfig() TextRuleConfig {
	return TextRuleConfig{
		HorizontalSweep:      TopToBottom,
		VerticalSweep:        LeftToRight,
		HorizontalCheck:      CheckCharacters,
		TallAreaRatio:        0.5,
		LaneWidthFactor:      2,
		MinLaneWidth:         0.1,
		MinColumnWidthFactor: 25,
		MaxMathRatio:         0.75,
		ConsecutiveDistance:  2,
		PitchFactor:          2,
	}
}

// TextRule is the default rule for text pages. Besides requiring lanes to be
// free of characters it rejects vertical lanes that would cut off narrow
// slivers, split formula-dense regions or separate characters that follow
// each other in reading order on the same row.
type TextRule struct {
	config TextRuleConfig
}

// NewTextRule creates a text rule with default configuration
func NewTextRule() *TextRule {
	return &TextRule{config: DefaultTextRuleConfig()}
}

// NewTextRuleWithConfig creates a text rule with custom configuration
func NewTextRuleWithConfig(config TextRuleConfig) *TextRule {
	return &TextRule{config: config}
}

// Config returns the rule configuration
func (r *TextRule) Config() TextRuleConfig { return r.config }

// VerticalSweepDirection implements Rule
func (r *TextRule) VerticalSweepDirection() VerticalSweepDirection {
	return r.config.VerticalSweep
}

// VerticalLaneWidth implements Rule. Tall areas get a near-zero width so that
// tight column gaps can still be found.
func (r *TextRule) VerticalLaneWidth(area *Area) float64 {
	if area.Rect().Height() < r.config.TallAreaRatio*area.Page().BBox.Height() {
		w := maxFloat64(area.Document().MostCommonWidth, area.Statistics().MostCommonWidth)
		return r.config.LaneWidthFactor * w
	}
	return r.config.MinLaneWidth
}

// IsValidVerticalLane implements Rule
func (r *TextRule) IsValidVerticalLane(area *Area, lane model.Rect) bool {
	if area.anyCharacterOverlapping(lane, nil) {
		return false
	}

	left, right := area.besideLane(Vertical, lane)

	minWidth := r.config.MinColumnWidthFactor * area.Document().MostCommonWidth
	if model.BoundingBox(left).Width() <= minWidth || model.BoundingBox(right).Width() <= minWidth {
		return false
	}

	if mathRatio(left) > r.config.MaxMathRatio || mathRatio(right) > r.config.MaxMathRatio {
		return false
	}

	return !r.separatesConsecutiveCharacters(area, lane)
}

// separatesConsecutiveCharacters reports whether a character A left of the
// lane has a successor B (order A+1 .. A+ConsecutiveDistance) right of the
// lane on the same row. The row of A is A's vertical extent widened by half
// the most common character height on both sides, reaching from A to the
// right edge of the area.
func (r *TextRule) separatesConsecutiveCharacters(area *Area, lane model.Rect) bool {
	pad := area.Statistics().MostCommonHeight / 2
	region := model.Rect{MinX: area.Rect().MinX, MinY: area.Rect().MinY, MaxX: lane.MinX, MaxY: area.Rect().MaxY}

	for _, a := range area.CharactersOverlapping(region) {
		if a.BBox.MaxX >= lane.MinX {
			continue
		}
		row := model.Rect{
			MinX: a.BBox.MaxX,
			MinY: a.BBox.MinY - pad,
			MaxX: maxFloat64(area.Rect().MaxX, a.BBox.MaxX),
			MaxY: a.BBox.MaxY + pad,
		}
		for d := 1; d <= r.config.ConsecutiveDistance; d++ {
			for _, b := range area.charactersWithOrder(a.Order + d) {
				if b.BBox.MinX > lane.MaxX && row.Overlaps(b.BBox) {
					return true
				}
			}
		}
	}
	return false
}

// HorizontalSweepDirection implements Rule
func (r *TextRule) HorizontalSweepDirection() HorizontalSweepDirection {
	return r.config.HorizontalSweep
}

// HorizontalLaneHeight implements Rule
func (r *TextRule) HorizontalLaneHeight(area *Area) float64 {
	return r.config.PitchFactor * area.Document().LinePitch
}

// IsValidHorizontalLane implements Rule
func (r *TextRule) IsValidHorizontalLane(area *Area, lane model.Rect) bool {
	if r.config.HorizontalCheck == CheckIgnoreAscendersDescenders {
		return !area.anyCharacterOverlapping(lane, func(c *model.Character) bool {
			return c.IsAscenderLetter() || c.IsDescenderLetter()
		})
	}
	return !area.anyCharacterOverlapping(lane, nil)
}

// mathRatio returns the fraction of characters among elements that are math
// symbols, subscripts or superscripts. A region without characters has ratio 0.
func mathRatio(elements []model.Element) float64 {
	var numMath, numOther int
	for _, e := range elements {
		c, ok := e.(*model.Character)
		if !ok {
			continue
		}
		if c.Flags.IsMath() {
			numMath++
		} else {
			numOther++
		}
	}
	if numMath+numOther == 0 {
		return 0
	}
	return float64(numMath) / float64(numMath+numOther)
}
