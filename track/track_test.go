// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package track

import (
	"math"
	"testing"

	"gonum.org/v1/plot/plotter"
	check "gopkg.in/check.v1"

	"github.com/biogo/ribo/orf"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestCoverageXYs(c *check.C) {
	got := CoverageXYs([]float64{2, 0, 5}, 100)
	c.Check(got, check.DeepEquals, plotter.XYs{
		{X: 100, Y: 2},
		{X: 101, Y: 0},
		{X: 102, Y: 5},
	})
	c.Check(CoverageXYs(nil, 0), check.HasLen, 0)
}

func (s *S) TestBlocksDataRange(c *check.C) {
	b := &Blocks{
		ORFs:   []orf.ORF{{Start: 3, End: 12}, {Start: 15, End: 24}},
		Offset: 1000,
		Base:   -4,
		Height: 2,
	}
	xMin, xMax, yMin, yMax := b.DataRange()
	c.Check(xMin, check.Equals, 1003.0)
	c.Check(xMax, check.Equals, 1024.0)
	c.Check(yMin, check.Equals, -4.0)
	c.Check(yMax, check.Equals, -2.0)

	// A band without ORFs must not contribute to the x-axis limits:
	// its x-range is inverted infinite so folding it into a plot of a
	// region at a large coordinate leaves the axis untouched.
	empty := &Blocks{Base: 0, Height: 1}
	xMin, xMax, yMin, yMax = empty.DataRange()
	c.Check(math.IsInf(xMin, 1), check.Equals, true)
	c.Check(math.IsInf(xMax, -1), check.Equals, true)
	c.Check(yMin, check.Equals, 0.0)
	c.Check(yMax, check.Equals, 1.0)
	c.Check(math.Min(1e6, xMin), check.Equals, 1e6)
	c.Check(math.Max(1e6+2, xMax), check.Equals, 1e6+2)
}

func (s *S) TestFrameBands(c *check.C) {
	var orfs [3][]orf.ORF
	orfs[1] = []orf.ORF{{Start: 1, End: 10}}
	bands := FrameBands(orfs, 50, 0, 2)
	for f, b := range bands {
		c.Check(b.Color, check.Equals, FrameColors[f])
		c.Check(b.Offset, check.Equals, 50)
		c.Check(b.Height, check.Equals, 2.0)
	}
	c.Check(bands[0].Base, check.Equals, -3.0)
	c.Check(bands[1].Base, check.Equals, -6.0)
	c.Check(bands[2].Base, check.Equals, -9.0)
	c.Check(bands[1].ORFs, check.DeepEquals, orfs[1])
}
