// Package layout segments a page into rectangular blocks by recursively
// cutting it along empty lanes (an X-Y cut).
//
// # Segmentation
//
// Statistics are computed once per document and threaded through every
// [Area] as an immutable context:
//
//	stats := layout.ComputeDocumentStats(doc)
//	area, err := layout.NewPageArea(doc.GetPage(1), stats)
//	tree, err := layout.NewBuilder(layout.NewTextRule()).Build(area)
//	for _, block := range tree.Blocks() {
//	    fmt.Println(block.Rect(), len(block.Elements()))
//	}
//
// For each area the [Builder] asks [FindVerticalLane] for a column gap and,
// failing that, [FindHorizontalLane] for a row gap. An accepted [Lane] cuts
// the area into two children at the lane center; an area without a valid
// lane is a leaf block. The resulting [Tree] is an arena of nodes with IDs
// assigned in pre-order, so sequential and parallel builds yield identical
// trees.
//
// # Rules
//
// A [Rule] decides lane thickness, sweep direction and validity per axis:
//
//   - [TextRule] - the default; vertical lanes must leave wide enough
//     columns on both sides, must not split formula-dense regions and must
//     not separate characters that follow each other in reading order on the
//     same row
//   - [SimpleRule] - any lane not touched by an element is valid
//
// Rules can be described in YAML and built with [ParseRuleConfig] and
// [RuleConfig.Rule].
//
// # Statistics
//
//   - [DimensionStatistics] - most common character width and height
//   - [DocumentStats] - document-wide dimensions and estimated line pitch
//   - [PitchEstimator] - groups characters into lines and takes the most
//     common baseline distance
package layout
