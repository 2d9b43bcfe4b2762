package layout

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Rule names accepted in RuleConfig.Name
const (
	RuleText   = "text"
	RuleSimple = "simple"
)

// RuleConfig is the serializable description of a rule. Zero numeric fields
// take the default of the selected rule.
//
//	name: text
//	horizontal_sweep: top-to-bottom
//	vertical_sweep: left-to-right
//	horizontal_check: characters
//	min_column_width_factor: 25
type RuleConfig struct {
	Name            string `yaml:"name"`
	HorizontalSweep string `yaml:"horizontal_sweep"`
	VerticalSweep   string `yaml:"vertical_sweep"`
	HorizontalCheck string `yaml:"horizontal_check"`

	TallAreaRatio        float64 `yaml:"tall_area_ratio"`
	LaneWidthFactor      float64 `yaml:"lane_width_factor"`
	LaneHeightFactor     float64 `yaml:"lane_height_factor"`
	MinLaneWidth         float64 `yaml:"min_lane_width"`
	MinColumnWidthFactor float64 `yaml:"min_column_width_factor"`
	MaxMathRatio         float64 `yaml:"max_math_ratio"`
	ConsecutiveDistance  int     `yaml:"consecutive_distance"`
	PitchFactor          float64 `yaml:"pitch_factor"`
}

// ParseRuleConfig decodes a YAML rule configuration.
func ParseRuleConfig(data []byte) (RuleConfig, error) {
	var rc RuleConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return RuleConfig{}, fmt.Errorf("parsing rule config: %w", err)
	}
	return rc, nil
}

// Marshal encodes the configuration as YAML.
func (rc RuleConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(rc)
}

// Rule builds the configured rule.
func (rc RuleConfig) Rule() (Rule, error) {
	hs, err := ParseHorizontalSweepDirection(rc.HorizontalSweep)
	if err != nil {
		return nil, err
	}
	vs, err := ParseVerticalSweepDirection(rc.VerticalSweep)
	if err != nil {
		return nil, err
	}

	switch rc.Name {
	case RuleText, "":
		check, err := ParseHorizontalCheck(rc.HorizontalCheck)
		if err != nil {
			return nil, err
		}
		cfg := DefaultTextRuleConfig()
		cfg.HorizontalSweep = hs
		cfg.VerticalSweep = vs
		cfg.HorizontalCheck = check
		setIfPositive(&cfg.TallAreaRatio, rc.TallAreaRatio)
		setIfPositive(&cfg.LaneWidthFactor, rc.LaneWidthFactor)
		setIfPositive(&cfg.MinLaneWidth, rc.MinLaneWidth)
		setIfPositive(&cfg.MinColumnWidthFactor, rc.MinColumnWidthFactor)
		setIfPositive(&cfg.MaxMathRatio, rc.MaxMathRatio)
		setIfPositive(&cfg.PitchFactor, rc.PitchFactor)
		if rc.ConsecutiveDistance > 0 {
			cfg.ConsecutiveDistance = rc.ConsecutiveDistance
		}
		return NewTextRuleWithConfig(cfg), nil

	case RuleSimple:
		cfg := DefaultSimpleRuleConfig()
		cfg.HorizontalSweep = hs
		cfg.VerticalSweep = vs
		setIfPositive(&cfg.LaneWidthFactor, rc.LaneWidthFactor)
		setIfPositive(&cfg.LaneHeightFactor, rc.LaneHeightFactor)
		return NewSimpleRuleWithConfig(cfg), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownRule, rc.Name)
}

// TextRuleConfigOf returns the serializable form of a text rule configuration.
func TextRuleConfigOf(cfg TextRuleConfig) RuleConfig {
	return RuleConfig{
		Name:                 RuleText,
		HorizontalSweep:      cfg.HorizontalSweep.String(),
		VerticalSweep:        cfg.VerticalSweep.String(),
		HorizontalCheck:      cfg.HorizontalCheck.String(),
		TallAreaRatio:        cfg.TallAreaRatio,
		LaneWidthFactor:      cfg.LaneWidthFactor,
		MinLaneWidth:         cfg.MinLaneWidth,
		MinColumnWidthFactor: cfg.MinColumnWidthFactor,
		MaxMathRatio:         cfg.MaxMathRatio,
		ConsecutiveDistance:  cfg.ConsecutiveDistance,
		PitchFactor:          cfg.PitchFactor,
	}
}

func setIfPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}
