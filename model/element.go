package model

// ElementKind represents the variant of a positioned page element
type ElementKind int

const (
	KindUnknown ElementKind = iota
	KindCharacter
	KindFigure
	KindShape
)

func (k ElementKind) String() string {
	switch k {
	case KindCharacter:
		return "Character"
	case KindFigure:
		return "Figure"
	case KindShape:
		return "Shape"
	default:
		return "Unknown"
	}
}

// Element is the interface for all positioned page elements produced by the
// content-stream decoder.
type Element interface {
	Kind() ElementKind
	BoundingBox() Rect
	// ExtractionOrder is the element's position in the linearized reading
	// order of its page.
	ExtractionOrder() int
}

// GlyphFlags classifies a glyph
type GlyphFlags uint8

const (
	FlagMathSymbol GlyphFlags = 1 << iota
	FlagSubscript
	FlagSuperscript
	FlagAscender
	FlagDescender
	FlagLatin
)

// Has reports whether all bits of f are set.
func (g GlyphFlags) Has(f GlyphFlags) bool {
	return g&f == f
}

// IsMath reports whether the glyph counts towards the math ratio of a region:
// math symbols, subscripts and superscripts.
func (g GlyphFlags) IsMath() bool {
	return g&(FlagMathSymbol|FlagSubscript|FlagSuperscript) != 0
}

// Character is a single positioned glyph
type Character struct {
	Text     string
	BBox     Rect
	Order    int
	FontSize float64
	FontName string
	Flags    GlyphFlags
}

func (c *Character) Kind() ElementKind    { return KindCharacter }
func (c *Character) BoundingBox() Rect    { return c.BBox }
func (c *Character) ExtractionOrder() int { return c.Order }

func (c *Character) IsMathSymbol() bool     { return c.Flags.Has(FlagMathSymbol) }
func (c *Character) IsSubscript() bool      { return c.Flags.Has(FlagSubscript) }
func (c *Character) IsSuperscript() bool    { return c.Flags.Has(FlagSuperscript) }
func (c *Character) IsAscenderLetter() bool { return c.Flags.Has(FlagAscender) }
func (c *Character) IsDescenderLetter() bool {
	return c.Flags.Has(FlagDescender)
}
func (c *Character) IsLatinLetter() bool { return c.Flags.Has(FlagLatin) }

// Figure represents an embedded image or form XObject
type Figure struct {
	BBox  Rect
	Order int
	// Alt text if available
	AltText string
}

func (f *Figure) Kind() ElementKind    { return KindFigure }
func (f *Figure) BoundingBox() Rect    { return f.BBox }
func (f *Figure) ExtractionOrder() int { return f.Order }

// Shape represents a stroked or filled vector path (rules, boxes)
type Shape struct {
	BBox   Rect
	Order  int
	Filled bool
}

func (s *Shape) Kind() ElementKind    { return KindShape }
func (s *Shape) BoundingBox() Rect    { return s.BBox }
func (s *Shape) ExtractionOrder() int { return s.Order }

// Characters returns the Character variants of elements, preserving order.
func Characters(elements []Element) []*Character {
	var chars []*Character
	for _, e := range elements {
		if c, ok := e.(*Character); ok {
			chars = append(chars, c)
		}
	}
	return chars
}
