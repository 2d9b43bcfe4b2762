// Package glyph classifies glyph text into the flags used by page
// segmentation: math symbols, Unicode sub/superscript forms, Latin letters
// and their ascender/descender shape.
//
//	flags := glyph.Classify("∑")   // model.FlagMathSymbol
//	flags = glyph.Classify("é")    // model.FlagLatin
//	flags = glyph.Classify("g")    // model.FlagLatin | model.FlagDescender
//
// Decoders that know the geometric role of a glyph (a digit raised above the
// baseline) should set [model.FlagSubscript] or [model.FlagSuperscript]
// themselves and OR them with the result of [Classify].
package glyph
