package layout

import (
	"math"

	"github.com/tsawler/blockify/model"
)

// statsPrecision is the number of buckets per point used when rounding
// dimensions before counting them, absorbing floating-point jitter.
const statsPrecision = 10

// DimensionStatistics holds the most common glyph dimensions of a region.
// The zero value describes a region without characters.
type DimensionStatistics struct {
	// MostCommonWidth is the mode of the rounded character widths
	MostCommonWidth float64

	// MostCommonHeight is the mode of the rounded character heights
	MostCommonHeight float64

	// CharacterCount is the number of characters the statistics were computed from
	CharacterCount int
}

// ComputeDimensionStatistics computes the most common width and height of
// the given characters. Ties are broken by the smallest value.
func ComputeDimensionStatistics(chars []*model.Character) DimensionStatistics {
	if len(chars) == 0 {
		return DimensionStatistics{}
	}

	widths := make([]float64, len(chars))
	heights := make([]float64, len(chars))
	for i, c := range chars {
		widths[i] = c.BBox.Width()
		heights[i] = c.BBox.Height()
	}

	return DimensionStatistics{
		MostCommonWidth:  mostCommon(widths),
		MostCommonHeight: mostCommon(heights),
		CharacterCount:   len(chars),
	}
}

// mostCommon returns the mode of values rounded to 1/statsPrecision.
// It returns 0 for an empty slice.
func mostCommon(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	counts := make(map[int64]int, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		counts[bucket(v)]++
	}

	best, bestCount := int64(0), 0
	for b, n := range counts {
		if n > bestCount || (n == bestCount && b < best) {
			best, bestCount = b, n
		}
	}
	return float64(best) / statsPrecision
}

func bucket(v float64) int64 {
	return int64(math.Round(v * statsPrecision))
}

// DocumentStats are the document-wide statistics shared by every area of a
// document. They are computed once before segmentation and never mutated.
type DocumentStats struct {
	DimensionStatistics

	// LinePitch is the estimated baseline-to-baseline distance of
	// consecutive text lines
	LinePitch float64
}

// ComputeDocumentStats computes the dimension statistics and the estimated
// line pitch over all characters of doc.
func ComputeDocumentStats(doc *model.Document) *DocumentStats {
	return ComputeDocumentStatsWithConfig(doc, DefaultPitchConfig())
}

// ComputeDocumentStatsWithConfig is like ComputeDocumentStats with a custom
// line pitch configuration.
func ComputeDocumentStatsWithConfig(doc *model.Document, config PitchConfig) *DocumentStats {
	if doc == nil {
		return &DocumentStats{}
	}
	dims := ComputeDimensionStatistics(doc.Characters())
	return &DocumentStats{
		DimensionStatistics: dims,
		LinePitch:           NewPitchEstimatorWithConfig(config).Estimate(doc, dims),
	}
}

// PageContext is the immutable page-level context shared by all areas of a
// page.
type PageContext struct {
	// Number is the 1-indexed page number
	Number int

	// BBox is the page rectangle
	BBox model.Rect

	// Stats are the dimension statistics of the whole page
	Stats DimensionStatistics

	// Document are the statistics of the owning document
	Document *DocumentStats
}

// NewPageContext computes the page statistics for page.
func NewPageContext(page *model.Page, doc *DocumentStats) *PageContext {
	if doc == nil {
		doc = &DocumentStats{}
	}
	return &PageContext{
		Number:   page.Number,
		BBox:     page.BBox,
		Stats:    ComputeDimensionStatistics(page.Characters()),
		Document: doc,
	}
}
