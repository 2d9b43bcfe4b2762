package hocr

import (
	"fmt"
	"strings"

	"github.com/tsawler/blockify/layout"
	"github.com/tsawler/blockify/model"
)

// NewDocument creates an hOCR document with one page per tree.
func NewDocument(title string, trees ...*layout.Tree) *Document {
	doc := &Document{
		Title: title,
		Metadata: map[string]string{
			"ocr-system":          "blockify",
			"ocr-capabilities":    strings.Join([]string{ClassPage, ClassArea, ClassLine}, " "),
			"ocr-number-of-pages": fmt.Sprint(len(trees)),
		},
	}
	for _, t := range trees {
		if t == nil || t.Root() == nil {
			continue
		}
		doc.Pages = append(doc.Pages, NewPage(t))
	}
	return doc
}

// NewPage converts the leaves of a page's block tree into an hOCR page.
// Blocks keep tree order; lines within a block follow extraction order.
func NewPage(tree *layout.Tree) Page {
	root := tree.Root()
	ctx := root.Area.Page()
	pageRect := ctx.BBox

	page := Page{
		ID:     fmt.Sprintf("page_%d", ctx.Number),
		Number: ctx.Number,
		BBox:   BoxOf(pageRect, pageRect),
	}

	for i, block := range tree.Blocks() {
		b := Block{
			ID:   fmt.Sprintf("block_%d_%d", ctx.Number, i+1),
			BBox: BoxOf(block.Rect(), pageRect),
		}
		for j, l := range groupLines(block.Characters()) {
			b.Lines = append(b.Lines, Line{
				ID:   fmt.Sprintf("line_%d_%d_%d", ctx.Number, i+1, j+1),
				BBox: BoxOf(l.bbox, pageRect),
				Text: l.text.String(),
			})
		}
		page.Blocks = append(page.Blocks, b)
	}

	return page
}

type lineRun struct {
	bbox model.Rect
	text strings.Builder
}

// groupLines splits characters, already in extraction order, into runs that
// overlap vertically.
func groupLines(chars []*model.Character) []*lineRun {
	var lines []*lineRun
	var cur *lineRun
	for _, c := range chars {
		if cur == nil || !cur.bbox.OverlapsVertically(c.BBox) {
			cur = &lineRun{bbox: c.BBox}
			lines = append(lines, cur)
		} else {
			cur.bbox = cur.bbox.Union(c.BBox)
		}
		cur.text.WriteString(c.Text)
	}
	return lines
}
