package model

import (
	"fmt"
	"sort"
)

// Page represents a single decoded PDF page
type Page struct {
	Number   int       // 1-indexed page number
	BBox     Rect      // Page rectangle (media box) in points
	Elements []Element // Positioned elements
}

// NewPage creates a new page with given dimensions anchored at the origin
func NewPage(width, height float64) *Page {
	return &Page{
		BBox:     Rect{MaxX: width, MaxY: height},
		Elements: make([]Element, 0),
	}
}

// Width returns the page width
func (p *Page) Width() float64 { return p.BBox.Width() }

// Height returns the page height
func (p *Page) Height() float64 { return p.BBox.Height() }

// AddElement adds an element to the page
func (p *Page) AddElement(elem Element) {
	p.Elements = append(p.Elements, elem)
}

// Characters returns all Character elements of the page
func (p *Page) Characters() []*Character {
	return Characters(p.Elements)
}

// InExtractionOrder returns a copy of the page elements sorted by extraction
// order. Elements sharing an index keep their relative position.
func (p *Page) InExtractionOrder() []Element {
	sorted := make([]Element, len(p.Elements))
	copy(sorted, p.Elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExtractionOrder() < sorted[j].ExtractionOrder()
	})
	return sorted
}

// GetElementsInRegion returns elements whose bounding box overlaps rect
func (p *Page) GetElementsInRegion(rect Rect) []Element {
	var elements []Element
	for _, elem := range p.Elements {
		if rect.Overlaps(elem.BoundingBox()) {
			elements = append(elements, elem)
		}
	}
	return elements
}

// Validate checks the page rectangle and every element rectangle.
func (p *Page) Validate() error {
	if err := p.BBox.Validate(); err != nil {
		return fmt.Errorf("page %d: %w", p.Number, err)
	}
	for i, elem := range p.Elements {
		if elem == nil {
			return fmt.Errorf("page %d: element %d is nil: %w", p.Number, i, ErrInvalidGeometry)
		}
		if err := elem.BoundingBox().Validate(); err != nil {
			return fmt.Errorf("page %d: element %d (%s): %w", p.Number, i, elem.Kind(), err)
		}
	}
	return nil
}
