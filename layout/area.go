package layout

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tidwall/rtree"

	"github.com/tsawler/blockify/model"
)

// ErrNilArea is returned when a nil area is passed to the builder.
var ErrNilArea = errors.New("layout: nil area")

// Area is a rectangle of a page together with the elements overlapping it.
// An Area is immutable after construction: its element set, spatial index and
// statistics are computed once in the constructor.
type Area struct {
	rect     model.Rect
	elements []model.Element    // extraction order
	chars    []*model.Character // extraction order
	byOrder  map[int][]*model.Character
	index    rtree.RTreeG[int] // values index into elements
	stats    DimensionStatistics
	page     *PageContext
	pageArea bool
}

// NewPageArea creates the root area of a page: the page rectangle with all
// page elements overlapping it.
func NewPageArea(page *model.Page, doc *DocumentStats) (*Area, error) {
	if page == nil {
		return nil, fmt.Errorf("creating page area: %w", ErrNilArea)
	}
	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("creating page area: %w", err)
	}

	ctx := NewPageContext(page, doc)
	elements := make([]model.Element, 0, len(page.Elements))
	for _, e := range page.Elements {
		if page.BBox.Overlaps(e.BoundingBox()) {
			elements = append(elements, e)
		}
	}

	a := newArea(page.BBox, elements, ctx)
	a.pageArea = true
	return a, nil
}

// NewArea creates an area for an already isolated region of a page. Only
// elements overlapping rect are kept.
func NewArea(rect model.Rect, elements []model.Element, page *PageContext) (*Area, error) {
	if err := rect.Validate(); err != nil {
		return nil, fmt.Errorf("creating area: %w", err)
	}
	if page == nil {
		page = &PageContext{BBox: rect, Document: &DocumentStats{}}
	}

	kept := make([]model.Element, 0, len(elements))
	for i, e := range elements {
		if e == nil {
			return nil, fmt.Errorf("creating area: element %d is nil: %w", i, model.ErrInvalidGeometry)
		}
		if err := e.BoundingBox().Validate(); err != nil {
			return nil, fmt.Errorf("creating area: element %d: %w", i, err)
		}
		if rect.Overlaps(e.BoundingBox()) {
			kept = append(kept, e)
		}
	}
	return newArea(rect, kept, page), nil
}

// newArea builds the index and statistics. elements must already be
// validated.
func newArea(rect model.Rect, elements []model.Element, page *PageContext) *Area {
	sorted := make([]model.Element, len(elements))
	copy(sorted, elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExtractionOrder() < sorted[j].ExtractionOrder()
	})

	a := &Area{
		rect:     rect,
		elements: sorted,
		byOrder:  make(map[int][]*model.Character),
		page:     page,
	}

	for i, e := range sorted {
		r := e.BoundingBox()
		a.index.Insert([2]float64{r.MinX, r.MinY}, [2]float64{r.MaxX, r.MaxY}, i)
		if c, ok := e.(*model.Character); ok {
			a.chars = append(a.chars, c)
			a.byOrder[c.Order] = append(a.byOrder[c.Order], c)
		}
	}
	a.stats = ComputeDimensionStatistics(a.chars)

	return a
}

// Rect returns the area rectangle
func (a *Area) Rect() model.Rect { return a.rect }

// Elements returns the elements of the area in extraction order. The slice
// must not be modified.
func (a *Area) Elements() []model.Element { return a.elements }

// Characters returns the characters of the area in extraction order. The
// slice must not be modified.
func (a *Area) Characters() []*model.Character { return a.chars }

// Len returns the number of elements in the area
func (a *Area) Len() int { return len(a.elements) }

// Statistics returns the dimension statistics of the area's characters
func (a *Area) Statistics() DimensionStatistics { return a.stats }

// Page returns the page context of the area
func (a *Area) Page() *PageContext { return a.page }

// Document returns the statistics of the document owning the area
func (a *Area) Document() *DocumentStats {
	if a.page.Document == nil {
		return &emptyDocumentStats
	}
	return a.page.Document
}

var emptyDocumentStats DocumentStats

// IsTextAreaOfPage reports whether the area is the root area of its page
func (a *Area) IsTextAreaOfPage() bool { return a.pageArea }

// ElementsOverlapping returns the elements whose bounding box overlaps rect,
// in extraction order. Touching edges count as overlap.
func (a *Area) ElementsOverlapping(rect model.Rect) []model.Element {
	idx := a.search(rect)
	out := make([]model.Element, len(idx))
	for i, j := range idx {
		out[i] = a.elements[j]
	}
	return out
}

// CharactersOverlapping returns the characters whose bounding box overlaps
// rect, in extraction order.
func (a *Area) CharactersOverlapping(rect model.Rect) []*model.Character {
	var out []*model.Character
	for _, j := range a.search(rect) {
		if c, ok := a.elements[j].(*model.Character); ok {
			out = append(out, c)
		}
	}
	return out
}

// anyCharacterOverlapping reports whether a character overlaps rect for which
// skip returns false. skip may be nil.
func (a *Area) anyCharacterOverlapping(rect model.Rect, skip func(*model.Character) bool) bool {
	found := false
	a.index.Search([2]float64{rect.MinX, rect.MinY}, [2]float64{rect.MaxX, rect.MaxY},
		func(_, _ [2]float64, i int) bool {
			c, ok := a.elements[i].(*model.Character)
			if !ok || !rect.Overlaps(c.BBox) {
				return true
			}
			if skip != nil && skip(c) {
				return true
			}
			found = true
			return false
		})
	return found
}

// charactersWithOrder returns the characters with extraction order n.
func (a *Area) charactersWithOrder(n int) []*model.Character {
	return a.byOrder[n]
}

// search returns the indices of overlapping elements sorted ascending, which
// is extraction order.
func (a *Area) search(rect model.Rect) []int {
	var idx []int
	a.index.Search([2]float64{rect.MinX, rect.MinY}, [2]float64{rect.MaxX, rect.MaxY},
		func(_, _ [2]float64, i int) bool {
			if rect.Overlaps(a.elements[i].BoundingBox()) {
				idx = append(idx, i)
			}
			return true
		})
	sort.Ints(idx)
	return idx
}

// besideLane splits the area elements into those lying strictly before and
// strictly after lane along axis. Elements touching the lane are in neither.
func (a *Area) besideLane(axis Axis, lane model.Rect) (before, after []model.Element) {
	for _, e := range a.elements {
		r := e.BoundingBox()
		switch axis {
		case Vertical:
			if r.MaxX < lane.MinX {
				before = append(before, e)
			} else if r.MinX > lane.MaxX {
				after = append(after, e)
			}
		case Horizontal:
			if r.MinY > lane.MaxY {
				before = append(before, e)
			} else if r.MaxY < lane.MinY {
				after = append(after, e)
			}
		}
	}
	return before, after
}

// split partitions the area at coordinate at along axis. For a vertical cut
// the first child is the left part; for a horizontal cut the first child is
// the upper part. Elements are assigned by the position of their center.
func (a *Area) split(axis Axis, at float64) (first, second *Area) {
	var firstRect, secondRect model.Rect
	var firstElems, secondElems []model.Element

	switch axis {
	case Vertical:
		firstRect = model.Rect{MinX: a.rect.MinX, MinY: a.rect.MinY, MaxX: at, MaxY: a.rect.MaxY}
		secondRect = model.Rect{MinX: at, MinY: a.rect.MinY, MaxX: a.rect.MaxX, MaxY: a.rect.MaxY}
	case Horizontal:
		firstRect = model.Rect{MinX: a.rect.MinX, MinY: at, MaxX: a.rect.MaxX, MaxY: a.rect.MaxY}
		secondRect = model.Rect{MinX: a.rect.MinX, MinY: a.rect.MinY, MaxX: a.rect.MaxX, MaxY: at}
	}

	for _, e := range a.elements {
		if inFirst(axis, e.BoundingBox().Center(), at) {
			firstElems = append(firstElems, e)
		} else {
			secondElems = append(secondElems, e)
		}
	}

	return newArea(firstRect, firstElems, a.page), newArea(secondRect, secondElems, a.page)
}

// separates reports whether cutting at coordinate at leaves at least one
// element on each side.
func (a *Area) separates(axis Axis, at float64) bool {
	var nFirst, nSecond int
	for _, e := range a.elements {
		if inFirst(axis, e.BoundingBox().Center(), at) {
			nFirst++
		} else {
			nSecond++
		}
		if nFirst > 0 && nSecond > 0 {
			return true
		}
	}
	return false
}

func inFirst(axis Axis, center model.Point, at float64) bool {
	if axis == Vertical {
		return center.X < at
	}
	return center.Y >= at
}
