// Package model provides the input representation consumed by page
// segmentation: positioned elements produced by an upstream content-stream
// decoder.
//
// # Document Structure
//
// A [Document] holds [Page] values; each page carries its rectangle and a list
// of [Element] values:
//
//	doc := model.NewDocument()
//	page := model.NewPage(612, 792)
//	page.AddElement(&model.Character{Text: "a", BBox: r, Order: 0})
//	doc.AddPage(page)
//
// # Elements
//
// All page content implements the [Element] interface. The concrete types are:
//
//   - [Character] - a single glyph with [GlyphFlags]
//   - [Figure] - an embedded image or form
//   - [Shape] - a vector path
//
// Every element carries its extraction order, the index assigned when the
// page content was linearized.
//
// # Geometry
//
//   - [Rect] - axis-aligned rectangle with overlap and containment queries
//   - [Point] - 2D point with distance calculation
//   - [BoundingBox] - bounding rectangle of a set of elements
//
// Invalid rectangles (inverted or non-finite corners) are rejected by
// [NewRect] and [Document.Validate] with [ErrInvalidGeometry].
package model
