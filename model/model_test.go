package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Point Tests
// ============================================================================

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Point
		expected float64
	}{
		{"same point", Point{0, 0}, Point{0, 0}, 0},
		{"horizontal", Point{0, 0}, Point{3, 0}, 3},
		{"vertical", Point{0, 0}, Point{0, 4}, 4},
		{"diagonal 3-4-5", Point{0, 0}, Point{3, 4}, 5},
		{"negative coords", Point{-1, -1}, Point{2, 3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.p1.Distance(tt.p2), 0.0001)
		})
	}
}

// ============================================================================
// Rect Tests
// ============================================================================

func TestNewRect(t *testing.T) {
	r, err := NewRect(10, 20, 110, 70)
	require.NoError(t, err)
	assert.Equal(t, Rect{MinX: 10, MinY: 20, MaxX: 110, MaxY: 70}, r)
	assert.Equal(t, 100.0, r.Width())
	assert.Equal(t, 50.0, r.Height())
}

func TestNewRect_Invalid(t *testing.T) {
	tests := []struct {
		name                   string
		minX, minY, maxX, maxY float64
	}{
		{"inverted x", 10, 0, 5, 10},
		{"inverted y", 0, 10, 10, 5},
		{"nan", math.NaN(), 0, 10, 10},
		{"inf", 0, 0, math.Inf(1), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRect(tt.minX, tt.minY, tt.maxX, tt.maxY)
			assert.True(t, errors.Is(err, ErrInvalidGeometry), "got %v", err)
		})
	}
}

func TestNewRect_Degenerate(t *testing.T) {
	r, err := NewRect(5, 5, 5, 5)
	require.NoError(t, err)
	assert.True(t, r.IsEmpty())
}

func TestMustRect_Panics(t *testing.T) {
	assert.Panics(t, func() { MustRect(1, 0, 0, 1) })
}

func TestNewRectFromPoints(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   Rect
	}{
		{"normal", Point{10, 20}, Point{50, 70}, Rect{10, 20, 50, 70}},
		{"reversed", Point{50, 70}, Point{10, 20}, Rect{10, 20, 50, 70}},
		{"same point", Point{10, 10}, Point{10, 10}, Rect{10, 10, 10, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewRectFromPoints(tt.p1, tt.p2))
		})
	}
}

func TestRectCenter(t *testing.T) {
	assert.Equal(t, Point{50, 25}, MustRect(0, 0, 100, 50).Center())
}

func TestRectOverlaps(t *testing.T) {
	r := MustRect(0, 0, 100, 100)

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"overlapping", MustRect(50, 50, 150, 150), true},
		{"touching edge", MustRect(100, 0, 150, 50), true},
		{"inside", MustRect(25, 25, 75, 75), true},
		{"containing", MustRect(-10, -10, 190, 190), true},
		{"no overlap right", MustRect(150, 0, 200, 50), false},
		{"no overlap left", MustRect(-100, 0, -50, 50), false},
		{"no overlap above", MustRect(0, 150, 50, 200), false},
		{"no overlap below", MustRect(0, -100, 50, -50), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Overlaps(tt.other))
			assert.Equal(t, tt.expected, tt.other.Overlaps(r), "overlap must be symmetric")
		})
	}
}

func TestRectContains(t *testing.T) {
	r := MustRect(0, 0, 100, 100)

	assert.True(t, r.Contains(MustRect(10, 10, 20, 20)))
	assert.True(t, r.Contains(r), "a rectangle contains itself")
	assert.False(t, r.Contains(MustRect(90, 90, 110, 110)))
	assert.True(t, r.ContainsPoint(Point{0, 50}))
	assert.False(t, r.ContainsPoint(Point{-1, 50}))
}

func TestRectOverlapsAxis(t *testing.T) {
	a := MustRect(0, 0, 10, 10)
	b := MustRect(50, 5, 60, 15)

	assert.True(t, a.OverlapsVertically(b))
	assert.False(t, a.OverlapsHorizontally(b))
	assert.False(t, a.Overlaps(b))
}

func TestRectIntersection(t *testing.T) {
	r := MustRect(0, 0, 100, 100)

	t.Run("overlapping", func(t *testing.T) {
		assert.Equal(t, MustRect(50, 50, 100, 100), r.Intersection(MustRect(50, 50, 150, 150)))
	})

	t.Run("disjoint", func(t *testing.T) {
		assert.Equal(t, Rect{}, r.Intersection(MustRect(200, 200, 250, 250)))
	})
}

func TestRectUnionAndArea(t *testing.T) {
	u := MustRect(0, 0, 50, 50).Union(MustRect(25, 25, 100, 100))
	assert.Equal(t, MustRect(0, 0, 100, 100), u)
	assert.Equal(t, 10000.0, u.Area())
	assert.Equal(t, MustRect(-5, -5, 105, 105), u.Expand(5))
}

func TestRectOverlapRatio(t *testing.T) {
	r := MustRect(0, 0, 100, 100)

	assert.Equal(t, 1.0, r.OverlapRatio(r))
	assert.Equal(t, 0.0, r.OverlapRatio(MustRect(200, 200, 300, 300)))
	assert.InDelta(t, 0.25, r.OverlapRatio(MustRect(50, 50, 150, 150)), 1e-9)
	assert.Equal(t, 0.0, r.OverlapRatio(MustRect(10, 10, 10, 50)), "zero-area box")
}

// ============================================================================
// BoundingBox Tests
// ============================================================================

func TestBoundingBox(t *testing.T) {
	elems := []Element{
		&Character{Text: "a", BBox: MustRect(10, 10, 15, 20)},
		&Figure{BBox: MustRect(40, 0, 90, 30)},
		&Shape{BBox: MustRect(5, 25, 6, 60)},
	}

	assert.Equal(t, MustRect(5, 0, 90, 60), BoundingBox(elems))
}

func TestBoundingBox_Empty(t *testing.T) {
	bbox := BoundingBox([]Element(nil))
	assert.Equal(t, Rect{}, bbox)
	assert.Equal(t, 0.0, bbox.Width())
	assert.Equal(t, 0.0, bbox.Height())
}

func TestBoundingBox_Characters(t *testing.T) {
	chars := []*Character{
		{BBox: MustRect(0, 0, 5, 10)},
		{BBox: MustRect(20, 2, 25, 12)},
	}
	assert.Equal(t, MustRect(0, 0, 25, 12), BoundingBox(chars))
}

// ============================================================================
// Element Tests
// ============================================================================

func TestElementKinds(t *testing.T) {
	tests := []struct {
		elem Element
		kind ElementKind
		name string
	}{
		{&Character{Order: 1}, KindCharacter, "Character"},
		{&Figure{Order: 2}, KindFigure, "Figure"},
		{&Shape{Order: 3}, KindShape, "Shape"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.elem.Kind())
			assert.Equal(t, tt.name, tt.elem.Kind().String())
			assert.Equal(t, i+1, tt.elem.ExtractionOrder())
		})
	}
	assert.Equal(t, "Unknown", KindUnknown.String())
}

func TestGlyphFlags(t *testing.T) {
	c := &Character{Flags: FlagLatin | FlagAscender}

	assert.True(t, c.IsLatinLetter())
	assert.True(t, c.IsAscenderLetter())
	assert.False(t, c.IsDescenderLetter())
	assert.False(t, c.Flags.IsMath())

	for _, f := range []GlyphFlags{FlagMathSymbol, FlagSubscript, FlagSuperscript} {
		assert.True(t, f.IsMath(), "flag %d", f)
	}
	assert.True(t, (&Character{Flags: FlagSubscript}).IsSubscript())
	assert.True(t, (&Character{Flags: FlagSuperscript}).IsSuperscript())
	assert.True(t, (&Character{Flags: FlagMathSymbol}).IsMathSymbol())
}

func TestCharacters(t *testing.T) {
	a := &Character{Text: "a", Order: 0}
	b := &Character{Text: "b", Order: 2}
	elems := []Element{a, &Figure{Order: 1}, b}

	assert.Equal(t, []*Character{a, b}, Characters(elems))
}

// ============================================================================
// Page / Document Tests
// ============================================================================

func TestPage(t *testing.T) {
	page := NewPage(612, 792)
	page.AddElement(&Character{Text: "b", BBox: MustRect(100, 100, 105, 110), Order: 2})
	page.AddElement(&Figure{BBox: MustRect(300, 300, 400, 400), Order: 0})
	page.AddElement(&Character{Text: "a", BBox: MustRect(90, 100, 95, 110), Order: 1})

	assert.Equal(t, 612.0, page.Width())
	assert.Equal(t, 792.0, page.Height())
	assert.Len(t, page.Characters(), 2)

	ordered := page.InExtractionOrder()
	for i, e := range ordered {
		assert.Equal(t, i, e.ExtractionOrder())
	}

	inRegion := page.GetElementsInRegion(MustRect(80, 80, 120, 120))
	assert.Len(t, inRegion, 2)
}

func TestDocument(t *testing.T) {
	doc := NewDocument()
	p1 := NewPage(100, 100)
	p1.AddElement(&Character{Text: "x", BBox: MustRect(1, 1, 2, 2)})
	p2 := NewPage(100, 100)
	p2.AddElement(&Character{Text: "y", BBox: MustRect(1, 1, 2, 2)})
	doc.AddPage(p1)
	doc.AddPage(p2)

	assert.Equal(t, 2, doc.PageCount())
	assert.Equal(t, 1, p1.Number)
	assert.Equal(t, 2, p2.Number)
	assert.Same(t, p2, doc.GetPage(2))
	assert.Nil(t, doc.GetPage(0))
	assert.Nil(t, doc.GetPage(3))
	assert.Len(t, doc.Characters(), 2)
	assert.NoError(t, doc.Validate())
}

func TestDocumentValidate_InvalidElement(t *testing.T) {
	doc := NewDocument()
	page := NewPage(100, 100)
	page.AddElement(&Character{Text: "x", BBox: Rect{MinX: 10, MaxX: 5, MaxY: 10}})
	doc.AddPage(page)

	err := doc.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
	assert.Contains(t, err.Error(), "page 1")
}
