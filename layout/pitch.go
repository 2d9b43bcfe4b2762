package layout

import (
	"sort"

	"github.com/tsawler/blockify/model"
)

// PitchConfig holds configuration for line pitch estimation
type PitchConfig struct {
	// LineOverlapRatio is the minimum vertical overlap, as a fraction of the
	// smaller glyph height, for a character to continue the current line
	// (default: 0.5)
	LineOverlapRatio float64

	// MaxPitchFactor discards baseline distances larger than this multiple
	// of the most common character height, e.g. gaps between paragraphs or
	// jumps between columns (default: 4.0)
	MaxPitchFactor float64
}

// DefaultPitchConfig returns sensible default configuration
func DefaultPitchConfig() PitchConfig {
	return PitchConfig{
		LineOverlapRatio: 0.5,
		MaxPitchFactor:   4.0,
	}
}

// PitchEstimator estimates the typical distance between consecutive
// baselines of a document
type PitchEstimator struct {
	config PitchConfig
}

// NewPitchEstimator creates an estimator with default configuration
func NewPitchEstimator() *PitchEstimator {
	return &PitchEstimator{config: DefaultPitchConfig()}
}

// NewPitchEstimatorWithConfig creates an estimator with custom configuration
func NewPitchEstimatorWithConfig(config PitchConfig) *PitchEstimator {
	return &PitchEstimator{config: config}
}

// textLine is a run of characters consecutive in extraction order that share
// a row.
type textLine struct {
	bbox     model.Rect
	baseline float64
}

// Estimate returns the most common baseline distance between consecutive
// lines over all pages of doc. When no pair of lines exists it falls back to
// the most common character height, and to 0 for a document without
// characters.
func (e *PitchEstimator) Estimate(doc *model.Document, dims DimensionStatistics) float64 {
	if doc == nil || dims.CharacterCount == 0 {
		return 0
	}

	maxPitch := dims.MostCommonHeight * e.config.MaxPitchFactor

	var distances []float64
	for _, page := range doc.Pages {
		lines := e.groupIntoLines(page.Characters())
		for i := 1; i < len(lines); i++ {
			d := lines[i-1].baseline - lines[i].baseline
			if d <= 0 {
				continue
			}
			if maxPitch > 0 && d > maxPitch {
				continue
			}
			distances = append(distances, d)
		}
	}

	if len(distances) == 0 {
		return dims.MostCommonHeight
	}
	return mostCommon(distances)
}

// groupIntoLines walks characters in extraction order and starts a new line
// whenever a character does not overlap the current line vertically.
func (e *PitchEstimator) groupIntoLines(chars []*model.Character) []textLine {
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]*model.Character, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	var lines []textLine
	var current []*model.Character
	var currentBBox model.Rect

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, textLine{bbox: currentBBox, baseline: baselineOf(current)})
		}
	}

	for _, c := range sorted {
		if len(current) == 0 {
			current = []*model.Character{c}
			currentBBox = c.BBox
			continue
		}

		if e.sameLine(currentBBox, c.BBox) {
			current = append(current, c)
			currentBBox = currentBBox.Union(c.BBox)
			continue
		}

		flush()
		current = []*model.Character{c}
		currentBBox = c.BBox
	}
	flush()

	return lines
}

func (e *PitchEstimator) sameLine(line, glyph model.Rect) bool {
	overlap := minFloat64(line.MaxY, glyph.MaxY) - maxFloat64(line.MinY, glyph.MinY)
	if overlap < 0 {
		return false
	}
	h := minFloat64(line.Height(), glyph.Height())
	if h <= 0 {
		return overlap >= 0
	}
	return overlap >= h*e.config.LineOverlapRatio
}

// baselineOf returns the most common bottom edge of the characters that do
// not descend below the baseline, or of all characters if every one of them
// is a descender or sub/superscript.
func baselineOf(chars []*model.Character) float64 {
	var bottoms []float64
	for _, c := range chars {
		if c.IsDescenderLetter() || c.IsSubscript() || c.IsSuperscript() {
			continue
		}
		bottoms = append(bottoms, c.BBox.MinY)
	}
	if len(bottoms) == 0 {
		for _, c := range chars {
			bottoms = append(bottoms, c.BBox.MinY)
		}
	}
	return mostCommon(bottoms)
}

func minFloat64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
