// Package hocr writes and reads block partitions as hOCR documents.
//
// Each segmented page becomes an ocr_page element and each leaf block an
// ocr_carea element holding ocr_line spans:
//
//	<div class="ocr_page" id="page_1" title="bbox 0 0 612 792; ppageno 0">
//	  <div class="ocr_carea" id="block_1_1" title="bbox 72 72 300 400">
//	    <span class="ocr_line" id="line_1_1_1" title="bbox 72 72 300 84">...</span>
//	  </div>
//	</div>
//
// hOCR boxes use image coordinates: integer pixels, origin at the top-left
// corner of the page, Y growing downwards.
package hocr

import (
	"fmt"
	"math"
	"strings"

	"github.com/tsawler/blockify/model"
)

// hOCR class names
const (
	ClassPage = "ocr_page"
	ClassArea = "ocr_carea"
	ClassLine = "ocr_line"
)

// Document is an hOCR document
type Document struct {
	Title    string
	Language string
	Metadata map[string]string // ocr-system, ocr-capabilities, ...
	Pages    []Page
}

// Page is one segmented page
type Page struct {
	ID     string
	Number int // 1-indexed, written as ppageno Number-1
	BBox   Box
	Blocks []Block
}

// Class returns the hOCR class of a page
func (Page) Class() string { return ClassPage }

// Block is a leaf block of the partition
type Block struct {
	ID    string
	BBox  Box
	Lines []Line
}

// Class returns the hOCR class of a block
func (Block) Class() string { return ClassArea }

// Text returns the text of the block, one line per row
func (b Block) Text() string {
	texts := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}

// Line is a row of characters inside a block
type Line struct {
	ID   string
	BBox Box
	Text string
}

// Class returns the hOCR class of a line
func (Line) Class() string { return ClassLine }

// Box is an hOCR bounding box: (X0, Y0) is the top-left corner and
// (X1, Y1) the bottom-right corner in image coordinates.
type Box struct {
	X0, Y0, X1, Y1 int
}

// BoxOf converts r, given in the user space of page, into image
// coordinates. The box is widened to whole units so that it always covers r.
func BoxOf(r, page model.Rect) Box {
	return Box{
		X0: int(math.Floor(r.MinX - page.MinX)),
		Y0: int(math.Floor(page.MaxY - r.MaxY)),
		X1: int(math.Ceil(r.MaxX - page.MinX)),
		Y1: int(math.Ceil(page.MaxY - r.MinY)),
	}
}

// Rect converts the box back into the user space of page.
func (b Box) Rect(page model.Rect) model.Rect {
	return model.Rect{
		MinX: page.MinX + float64(b.X0),
		MinY: page.MaxY - float64(b.Y1),
		MaxX: page.MinX + float64(b.X1),
		MaxY: page.MaxY - float64(b.Y0),
	}
}

// Width returns the width of the box
func (b Box) Width() int { return b.X1 - b.X0 }

// Height returns the height of the box
func (b Box) Height() int { return b.Y1 - b.Y0 }

// String formats the box as an hOCR title property
func (b Box) String() string {
	return fmt.Sprintf("bbox %d %d %d %d", b.X0, b.Y0, b.X1, b.Y1)
}
