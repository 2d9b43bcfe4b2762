package glyph

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/blockify/model"
)

const (
	ascenderLetters  = "bdfhiklt"
	descenderLetters = "gjpqy"
)

// Classify derives the glyph flags of a character from its text. Multi-rune
// text (ligatures, combining sequences) is classified by its first base rune
// after compatibility decomposition. Sub- and superscript flags are only set
// for the dedicated Unicode forms; positional sub/superscripts must be
// flagged by the decoder.
func Classify(text string) model.GlyphFlags {
	if text == "" {
		return 0
	}

	var flags model.GlyphFlags
	r := firstRune(text)

	switch {
	case isSuperscriptForm(r):
		flags |= model.FlagSuperscript
	case isSubscriptForm(r):
		flags |= model.FlagSubscript
	}

	if IsMathSymbol(r) {
		flags |= model.FlagMathSymbol
	}

	base := baseRune(text)
	if IsLatinLetter(base) {
		flags |= model.FlagLatin
		if IsAscender(base) {
			flags |= model.FlagAscender
		}
		if IsDescender(base) {
			flags |= model.FlagDescender
		}
	}

	return flags
}

// NewCharacter creates a character whose flags are derived from text with
// Classify.
func NewCharacter(text string, order int, bbox model.Rect) *model.Character {
	return &model.Character{
		Text:  text,
		BBox:  bbox,
		Order: order,
		Flags: Classify(text),
	}
}

// IsMathSymbol reports whether r is a mathematical symbol: Unicode category
// Sm, the Mathematical Operators blocks, or the Mathematical Alphanumeric
// Symbols block.
func IsMathSymbol(r rune) bool {
	return unicode.Is(unicode.Sm, r) ||
		(r >= 0x2200 && r <= 0x22FF) || // Mathematical Operators
		(r >= 0x2A00 && r <= 0x2AFF) || // Supplemental Mathematical Operators
		(r >= 0x27C0 && r <= 0x27EF) || // Miscellaneous Mathematical Symbols-A
		(r >= 0x2980 && r <= 0x29FF) || // Miscellaneous Mathematical Symbols-B
		(r >= 0x1D400 && r <= 0x1D7FF) // Mathematical Alphanumeric Symbols
}

// IsLatinLetter reports whether r is a letter of the Latin script.
func IsLatinLetter(r rune) bool {
	return unicode.IsLetter(r) && unicode.Is(unicode.Latin, r)
}

// IsAscender reports whether r reaches above the x-height: upper case Latin
// letters and the lower case letters b d f h i k l t.
func IsAscender(r rune) bool {
	if !IsLatinLetter(r) {
		return false
	}
	return unicode.IsUpper(r) || strings.ContainsRune(ascenderLetters, r)
}

// IsDescender reports whether r reaches below the baseline (g j p q y).
func IsDescender(r rune) bool {
	return strings.ContainsRune(descenderLetters, r)
}

// isSuperscriptForm reports whether r is in the dedicated superscript forms:
// U+00B2, U+00B3, U+00B9 and U+2070–U+207F.
func isSuperscriptForm(r rune) bool {
	return r == 0x00B2 || r == 0x00B3 || r == 0x00B9 ||
		(r >= 0x2070 && r <= 0x207F)
}

// isSubscriptForm reports whether r is in the subscript forms U+2080–U+209C.
func isSubscriptForm(r rune) bool {
	return r >= 0x2080 && r <= 0x209C
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return unicode.ReplacementChar
}

// baseRune returns the first non-mark rune of the NFKD decomposition of s, so
// that "é" classifies as "e" and the ligature "ﬁ" as "f".
func baseRune(s string) rune {
	for _, r := range norm.NFKD.String(s) {
		if !unicode.Is(unicode.Mn, r) {
			return r
		}
	}
	return firstRune(s)
}
