// Package blockify segments the pages of a decoded PDF document into
// rectangular blocks by recursive X-Y cuts along empty lanes.
//
// Basic usage:
//
//	result, err := blockify.Segment(doc)
//	if err != nil {
//	    // handle error
//	}
//	for _, page := range result.Pages {
//	    for _, block := range page.Blocks() {
//	        fmt.Println(page.Page.Number, block.Rect())
//	    }
//	}
//
// With options:
//
//	result, err := blockify.Segment(doc,
//	    blockify.WithPages(1, 2),
//	    blockify.WithRule(layout.NewSimpleRule()),
//	    blockify.WithParallel(4),
//	)
//
// The document must already be decoded into characters, figures and shapes
// (see the model package). For lower-level control use the layout package
// directly.
package blockify

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/blockify/hocr"
	"github.com/tsawler/blockify/layout"
	"github.com/tsawler/blockify/model"
	"github.com/tsawler/blockify/render"
)

var (
	// ErrNilDocument is returned when Segment is called without a document.
	ErrNilDocument = errors.New("blockify: nil document")

	// ErrPageOutOfRange is returned when a selected page does not exist.
	ErrPageOutOfRange = errors.New("blockify: page out of range")
)

// Result is the segmentation of a document
type Result struct {
	// Document is the segmented document
	Document *model.Document

	// Stats are the document-wide statistics all pages were segmented with
	Stats *layout.DocumentStats

	// Pages holds one result per selected page, in page order
	Pages []PageResult
}

// PageResult is the segmentation of one page
type PageResult struct {
	Page *model.Page
	Tree *layout.Tree

	// Stats are the dimension statistics of the page's characters
	Stats layout.DimensionStatistics
}

// Blocks returns the leaf blocks of the page in tree order
func (p PageResult) Blocks() []*layout.Area {
	return p.Tree.Blocks()
}

// Render draws the page partition.
func (p PageResult) Render(opts render.Options) *image.RGBA {
	return render.Page(p.Tree, opts)
}

// Page returns the result for a page number, or nil if the page was not
// segmented.
func (r *Result) Page(number int) *PageResult {
	for i := range r.Pages {
		if r.Pages[i].Page.Number == number {
			return &r.Pages[i]
		}
	}
	return nil
}

// BlockCount returns the number of blocks over all pages
func (r *Result) BlockCount() int {
	n := 0
	for _, p := range r.Pages {
		n += len(p.Tree.Leaves())
	}
	return n
}

// HOCR converts the result into an hOCR document.
func (r *Result) HOCR() *hocr.Document {
	trees := make([]*layout.Tree, len(r.Pages))
	for i, p := range r.Pages {
		trees[i] = p.Tree
	}
	return hocr.NewDocument(r.Document.Metadata.Title, trees...)
}

// WriteHOCR writes the result as hOCR.
func (r *Result) WriteHOCR(w io.Writer) error {
	return hocr.Write(w, r.HOCR())
}

// Segment segments the pages of doc. Statistics are computed once over the
// whole document, even when only some pages are selected.
func Segment(doc *model.Document, opts ...Option) (*Result, error) {
	return SegmentContext(context.Background(), doc, opts...)
}

// SegmentContext is like Segment but stops starting new pages once ctx is
// done.
func SegmentContext(ctx context.Context, doc *model.Document, opts ...Option) (*Result, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("invalid options: %w", o.err)
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	numbers, err := resolvePages(doc.PageCount(), o.pages)
	if err != nil {
		return nil, err
	}

	stats := layout.ComputeDocumentStatsWithConfig(doc, o.pitch)
	builder := layout.NewBuilderWithConfig(o.rule, layout.BuilderConfig{
		Parallel:   o.parallel,
		MaxWorkers: o.workers,
		MaxDepth:   o.maxDepth,
		Logger:     o.logger,
	})

	o.logger.WithFields(logrus.Fields{
		"pages":      len(numbers),
		"characters": stats.CharacterCount,
		"width":      stats.MostCommonWidth,
		"height":     stats.MostCommonHeight,
		"line_pitch": stats.LinePitch,
		"parallel":   o.parallel,
	}).Debug("computed document statistics")

	result := &Result{
		Document: doc,
		Stats:    stats,
		Pages:    make([]PageResult, len(numbers)),
	}

	run := func(i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		page := doc.GetPage(numbers[i])
		pr, err := segmentPage(builder, page, stats, o.logger)
		if err != nil {
			return err
		}
		result.Pages[i] = pr
		return nil
	}

	if !o.parallel {
		for i := range numbers {
			if err := run(i); err != nil {
				return nil, err
			}
		}
		return result, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range numbers {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return run(i)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// segmentPage builds the block tree of one page.
func segmentPage(builder *layout.Builder, page *model.Page, stats *layout.DocumentStats, log logrus.FieldLogger) (PageResult, error) {
	start := time.Now()

	area, err := layout.NewPageArea(page, stats)
	if err != nil {
		return PageResult{}, fmt.Errorf("page %d: %w", page.Number, err)
	}

	tree, err := builder.Build(area)
	if err != nil {
		return PageResult{}, fmt.Errorf("page %d: %w", page.Number, err)
	}

	log.WithFields(logrus.Fields{
		"page":     page.Number,
		"elements": area.Len(),
		"blocks":   len(tree.Leaves()),
		"depth":    tree.Depth(),
		"elapsed":  time.Since(start).String(),
	}).Debug("segmented page")

	return PageResult{
		Page:  page,
		Tree:  tree,
		Stats: area.Page().Stats,
	}, nil
}

// resolvePages validates the selected page numbers and returns them sorted
// and deduplicated. No selection means all pages.
func resolvePages(pageCount int, selected []int) ([]int, error) {
	if len(selected) == 0 {
		numbers := make([]int, pageCount)
		for i := range numbers {
			numbers[i] = i + 1
		}
		return numbers, nil
	}

	seen := make(map[int]bool)
	var numbers []int
	for _, p := range selected {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("%w: page %d (1-%d)", ErrPageOutOfRange, p, pageCount)
		}
		if !seen[p] {
			seen[p] = true
			numbers = append(numbers, p)
		}
	}

	sort.Ints(numbers)
	return numbers, nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := blockify.Must(blockify.Segment(doc))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
