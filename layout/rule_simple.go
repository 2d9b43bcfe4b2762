package layout

import "github.com/tsawler/blockify/model"

// SimpleRuleConfig holds configuration for the simple rule
type SimpleRuleConfig struct {
	HorizontalSweep HorizontalSweepDirection
	VerticalSweep   VerticalSweepDirection

	// LaneWidthFactor multiplies the larger of the document's and the area's
	// most common character width (default: 2.5)
	LaneWidthFactor float64

	// LaneHeightFactor multiplies the larger of the document's and the
	// area's most common character height (default: 1.5)
	LaneHeightFactor float64
}

// DefaultSimpleRuleConfig returns the default simple rule configuration
func DefaultSimpleRuleConfig() SimpleRuleConfig {
	return SimpleRuleConfig{
		HorizontalSweep:  TopToBottom,
		VerticalSweep:    LeftToRight,
		LaneWidthFactor:  2.5,
		LaneHeightFactor: 1.5,
	}
}

// SimpleRule accepts any lane that no element (of any kind) overlaps. Lane
// sizes derive from the most common character dimensions only. It predates
// TextRule and is kept as a selectable alternative.
type SimpleRule struct {
	config SimpleRuleConfig
}

// NewSimpleRule creates a simple rule with default configuration
func NewSimpleRule() *SimpleRule {
	return &SimpleRule{config: DefaultSimpleRuleConfig()}
}

// NewSimpleRuleWithConfig creates a simple rule with custom configuration
func NewSimpleRuleWithConfig(config SimpleRuleConfig) *SimpleRule {
	return &SimpleRule{config: config}
}

// Config returns the rule configuration
func (r *SimpleRule) Config() SimpleRuleConfig { return r.config }

func (r *SimpleRule) VerticalSweepDirection() VerticalSweepDirection {
	return r.config.VerticalSweep
}

// VerticalLaneWidth implements Rule
func (r *SimpleRule) VerticalLaneWidth(area *Area) float64 {
	w := maxFloat64(area.Document().MostCommonWidth, area.Statistics().MostCommonWidth)
	return r.config.LaneWidthFactor * w
}

func (r *SimpleRule) IsValidVerticalLane(area *Area, lane model.Rect) bool {
	return len(area.ElementsOverlapping(lane)) == 0
}

func (r *SimpleRule) HorizontalSweepDirection() HorizontalSweepDirection {
	return r.config.HorizontalSweep
}

func (r *SimpleRule) HorizontalLaneHeight(area *Area) float64 {
	h := maxFloat64(area.Document().MostCommonHeight, area.Statistics().MostCommonHeight)
	return r.config.LaneHeightFactor * h
}

func (r *SimpleRule) IsValidHorizontalLane(area *Area, lane model.Rect) bool {
	return r.IsValidVerticalLane(area, lane)
}
