// Package render draws block partitions into images for visual inspection.
//
//	img := render.Page(tree, render.DefaultOptions())
//	err := render.WritePNGFile("page1.png", img)
//
// Page coordinates are flipped so that the top of the page is at the top of
// the image.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/tsawler/blockify/layout"
	"github.com/tsawler/blockify/model"
)

// Options control what is drawn and how
type Options struct {
	// Scale is the number of pixels per page unit (default: 1)
	Scale float64

	// StrokeWidth is the width of block outlines in pixels (default: 1)
	StrokeWidth float64

	DrawElements bool // outline every element
	DrawLanes    bool // shade the lanes of split nodes
	DrawLabels   bool // number blocks in tree order

	Background   color.Color
	BlockColor   color.Color
	LaneColor    color.Color
	ElementColor color.Color
	LabelColor   color.Color
}

// DefaultOptions returns options drawing everything at 1 pixel per point
func DefaultOptions() Options {
	return Options{
		Scale:        1,
		StrokeWidth:  1,
		DrawElements: true,
		DrawLanes:    true,
		DrawLabels:   true,
		Background:   color.White,
		BlockColor:   color.RGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff},
		LaneColor:    color.NRGBA{R: 0x20, G: 0x60, B: 0xd0, A: 0x40},
		ElementColor: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		LabelColor:   color.Black,
	}
}

// canvas maps page coordinates to image pixels
type canvas struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	page  model.Rect
	scale float64
}

// Page draws the block tree of a page: lanes first, then elements, then
// block outlines and labels on top.
func Page(tree *layout.Tree, opts Options) *image.RGBA {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = 1
	}

	page := tree.Root().Area.Page().BBox
	w := int(math.Ceil(page.Width() * opts.Scale))
	h := int(math.Ceil(page.Height() * opts.Scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	c := &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		z:     vector.NewRasterizer(w, h),
		page:  page,
		scale: opts.Scale,
	}
	if opts.Background != nil {
		draw.Draw(c.img, c.img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	if opts.DrawLanes {
		tree.Walk(func(n *layout.Node) bool {
			if !n.IsLeaf() {
				c.fill(n.Lane, opts.LaneColor)
			}
			return true
		})
	}

	if opts.DrawElements {
		for _, e := range tree.Root().Area.Elements() {
			c.outline(e.BoundingBox(), 1, opts.ElementColor)
		}
	}

	for i, block := range tree.Blocks() {
		c.outline(block.Rect(), opts.StrokeWidth, opts.BlockColor)
		if opts.DrawLabels {
			c.label(block.Rect(), strconv.Itoa(i+1), opts.LabelColor)
		}
	}

	return c.img
}

// toImage converts a page point to image coordinates
func (c *canvas) toImage(x, y float64) (float32, float32) {
	return float32((x - c.page.MinX) * c.scale), float32((c.page.MaxY - y) * c.scale)
}

// fillPixels fills the axis-aligned pixel rectangle [x0,x1] x [y0,y1].
func (c *canvas) fillPixels(x0, y0, x1, y1 float32, col color.Color) {
	if col == nil || x1 <= x0 || y1 <= y0 {
		return
	}
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.MoveTo(x0, y0)
	c.z.LineTo(x1, y0)
	c.z.LineTo(x1, y1)
	c.z.LineTo(x0, y1)
	c.z.ClosePath()
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// fill shades r
func (c *canvas) fill(r model.Rect, col color.Color) {
	x0, y0 := c.toImage(r.MinX, r.MaxY)
	x1, y1 := c.toImage(r.MaxX, r.MinY)
	c.fillPixels(x0, y0, x1, y1, col)
}

// outline strokes the inside edge of r with a band of width pixels
func (c *canvas) outline(r model.Rect, width float64, col color.Color) {
	x0, y0 := c.toImage(r.MinX, r.MaxY)
	x1, y1 := c.toImage(r.MaxX, r.MinY)
	sw := float32(width)
	if x1-x0 <= 2*sw || y1-y0 <= 2*sw {
		c.fillPixels(x0, y0, x1, y1, col)
		return
	}
	c.fillPixels(x0, y0, x1, y0+sw, col)
	c.fillPixels(x0, y1-sw, x1, y1, col)
	c.fillPixels(x0, y0+sw, x0+sw, y1-sw, col)
	c.fillPixels(x1-sw, y0+sw, x1, y1-sw, col)
}

// label writes s just inside the top-left corner of r
func (c *canvas) label(r model.Rect, s string, col color.Color) {
	if col == nil {
		return
	}
	x, y := c.toImage(r.MinX, r.MaxY)
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(int(x)+3, int(y)+3+face.Ascent),
	}
	d.DrawString(s)
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// PNG encodes img as PNG and returns the bytes.
func PNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePNGFile encodes img as PNG into filename.
func WritePNGFile(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
