// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package track provides plotters for genomic coverage tracks and open
// reading frame annotation, for use with gonum plots.
package track

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/biogo/ribo/orf"
)

// FrameColors are the colors used for reading frames 0, 1 and 2.
var FrameColors = [3]color.RGBA{
	{R: 0xe4, G: 0x1a, B: 0x1c, A: 0xff},
	{R: 0x37, G: 0x7e, B: 0xb8, A: 0xff},
	{R: 0x4d, G: 0xaf, B: 0x4a, A: 0xff},
}

// CoverageXYs converts a dense count vector into plotter points, with
// position i placed at x = start+i.
func CoverageXYs(counts []float64, start int) plotter.XYs {
	xys := make(plotter.XYs, len(counts))
	for i, v := range counts {
		xys[i].X = float64(start + i)
		xys[i].Y = v
	}
	return xys
}

// Coverage returns a line plotter for counts starting at genomic
// position start, filled down to the x-axis with col.
func Coverage(counts []float64, start int, col color.Color) (*plotter.Line, error) {
	l, err := plotter.NewLine(CoverageXYs(counts, start))
	if err != nil {
		return nil, err
	}
	l.Color = col
	l.FillColor = col
	return l, nil
}

// Blocks is a plotter drawing open reading frames of a single frame as
// filled boxes in a horizontal band of the plot.
type Blocks struct {
	// ORFs holds the intervals to draw. Coordinates are ORF
	// coordinates plus Offset, allowing transcript-relative ORFs
	// to be placed on a genomic axis.
	ORFs   []orf.ORF
	Offset int

	// Base and Height place the band in data coordinates.
	Base, Height float64

	Color color.Color
}

// Plot renders the blocks onto the canvas. Plot satisfies the
// plot.Plotter interface.
func (b *Blocks) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	yMin := trY(b.Base)
	yMax := trY(b.Base + b.Height)
	for _, o := range b.ORFs {
		xMin := trX(float64(o.Start + b.Offset))
		xMax := trX(float64(o.End + b.Offset))
		c.FillPolygon(b.Color, []vg.Point{
			{X: xMin, Y: yMin},
			{X: xMax, Y: yMin},
			{X: xMax, Y: yMax},
			{X: xMin, Y: yMax},
		})
	}
}

// DataRange returns the span of the blocks in data coordinates. An
// empty band reports an inverted infinite x-range so that it does not
// contribute to the axis limits. DataRange satisfies the
// plot.DataRanger interface.
func (b *Blocks) DataRange() (xMin, xMax, yMin, yMax float64) {
	if len(b.ORFs) == 0 {
		return math.Inf(1), math.Inf(-1), b.Base, b.Base + b.Height
	}
	first := b.ORFs[0]
	xMin = float64(first.Start + b.Offset)
	xMax = float64(first.End + b.Offset)
	for _, o := range b.ORFs[1:] {
		if x := float64(o.Start + b.Offset); x < xMin {
			xMin = x
		}
		if x := float64(o.End + b.Offset); x > xMax {
			xMax = x
		}
	}
	return xMin, xMax, b.Base, b.Base + b.Height
}

// Thumbnail draws a filled box for plot legends. Thumbnail satisfies
// the plot.Thumbnailer interface.
func (b *Blocks) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
	}
	c.FillPolygon(b.Color, pts)
}

// FrameBands returns one Blocks plotter per reading frame, stacked
// below base in descending bands of the given height, colored with
// FrameColors.
func FrameBands(orfs [3][]orf.ORF, offset int, base, height float64) [3]*Blocks {
	var bands [3]*Blocks
	for f := range orfs {
		bands[f] = &Blocks{
			ORFs:   orfs[f],
			Offset: offset,
			Base:   base - float64(f+1)*height*1.5,
			Height: height,
			Color:  FrameColors[f],
		}
	}
	return bands
}
