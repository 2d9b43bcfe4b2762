package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsawler/blockify/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.GlyphFlags
	}{
		{"empty", "", 0},
		{"x-height letter", "a", model.FlagLatin},
		{"ascender", "b", model.FlagLatin | model.FlagAscender},
		{"upper case", "Q", model.FlagLatin | model.FlagAscender},
		{"descender", "g", model.FlagLatin | model.FlagDescender},
		{"accented", "é", model.FlagLatin},
		{"ligature", "ﬁ", model.FlagLatin | model.FlagAscender},
		{"digit", "7", 0},
		{"plus", "+", model.FlagMathSymbol},
		{"summation", "∑", model.FlagMathSymbol},
		{"math italic x", "𝑥", model.FlagMathSymbol | model.FlagLatin},
		{"superscript two", "²", model.FlagSuperscript},
		{"subscript two", "₂", model.FlagSubscript},
		{"greek", "α", 0},
		{"cyrillic", "ж", 0},
		{"punctuation", ".", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestIsMathSymbol(t *testing.T) {
	for _, r := range "=<>±×÷∀∃∈∫√⊂⊕⟨⦃⨁" {
		assert.True(t, IsMathSymbol(r), "%q", r)
	}
	for _, r := range "aZ1,;(" {
		assert.False(t, IsMathSymbol(r), "%q", r)
	}
}

func TestAscenderDescender(t *testing.T) {
	for _, r := range "bdfhiklt" {
		assert.True(t, IsAscender(r), "%q", r)
		assert.False(t, IsDescender(r), "%q", r)
	}
	for _, r := range "gjpqy" {
		assert.True(t, IsDescender(r), "%q", r)
	}
	for _, r := range "acemnorsuvwxz" {
		assert.False(t, IsAscender(r), "%q", r)
		assert.False(t, IsDescender(r), "%q", r)
	}
	assert.False(t, IsAscender('Ж'), "non-Latin upper case")
}

func TestIsLatinLetter(t *testing.T) {
	assert.True(t, IsLatinLetter('z'))
	assert.True(t, IsLatinLetter('ß'))
	assert.False(t, IsLatinLetter('5'))
	assert.False(t, IsLatinLetter('λ'))
}

func TestNewCharacter(t *testing.T) {
	c := NewCharacter("y", 3, model.Rect{MaxX: 5, MaxY: 10})

	assert.Equal(t, 3, c.ExtractionOrder())
	assert.Equal(t, model.KindCharacter, c.Kind())
	assert.True(t, c.IsDescenderLetter())
	assert.True(t, c.IsLatinLetter())
	assert.False(t, c.IsMathSymbol())
}
