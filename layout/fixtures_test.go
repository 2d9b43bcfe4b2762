package layout

import (
	"github.com/tsawler/blockify/glyph"
	"github.com/tsawler/blockify/model"
)

// makeChar creates a test character with flags derived from its text
func makeChar(text string, order int, x, y, width, height float64) *model.Character {
	return &model.Character{
		Text:  text,
		Order: order,
		BBox:  model.Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height},
		Flags: glyph.Classify(text),
	}
}

// textColumn lays out rows of 5x10 characters from x0 to x1 with a pitch of
// 12, the first row occupying [top-10, top]. Orders start at order and run
// row by row.
func textColumn(order int, x0, x1, top float64, rows int) []model.Element {
	var elems []model.Element
	for r := 0; r < rows; r++ {
		y := top - 10 - float64(r)*12
		for x := x0; x+5 <= x1; x += 5 {
			elems = append(elems, makeChar("a", order, x, y, 5, 10))
			order++
		}
	}
	return elems
}

// twoColumnPage returns a 1000 x height page with two 10-row columns at
// x∈[0,400] and x∈[600,1000], top row at [990,1000]. The left column comes
// first in reading order.
func twoColumnPage(height float64) *model.Page {
	page := &model.Page{Number: 1, BBox: model.Rect{MaxX: 1000, MaxY: height}}
	left := textColumn(0, 0, 400, 1000, 10)
	right := textColumn(len(left), 600, 1000, 1000, 10)
	page.Elements = append(left, right...)
	return page
}

// headedTwoColumnPage adds a full-width heading row at [1050,1060] above
// the columns of twoColumnPage on a 1000 x 1100 page. The heading comes
// first in reading order.
func headedTwoColumnPage() *model.Page {
	page := &model.Page{Number: 1, BBox: model.Rect{MaxX: 1000, MaxY: 1100}}
	heading := textColumn(0, 0, 1000, 1060, 1)
	left := textColumn(len(heading), 0, 400, 1000, 10)
	right := textColumn(len(heading)+len(left), 600, 1000, 1000, 10)
	page.Elements = append(append(heading, left...), right...)
	return page
}

func docOf(pages ...*model.Page) *model.Document {
	doc := model.NewDocument()
	for _, p := range pages {
		doc.AddPage(p)
	}
	return doc
}

// pageArea builds the root area of page with document statistics computed
// over the page's own document.
func pageArea(page *model.Page) *Area {
	stats := ComputeDocumentStats(docOf(page))
	area, err := NewPageArea(page, stats)
	if err != nil {
		panic(err)
	}
	return area
}

// regionArea builds an area for rect inside page with the given document
// statistics.
func regionArea(page *model.Page, rect model.Rect, stats *DocumentStats) *Area {
	area, err := NewArea(rect, page.Elements, NewPageContext(page, stats))
	if err != nil {
		panic(err)
	}
	return area
}
