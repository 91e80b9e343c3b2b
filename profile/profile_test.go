// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"bytes"
	"encoding/binary"
	"testing"

	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestRange(c *check.C) {
	set := Set{"chr1": []float32{0, 1, 2, 3, 4, 5}}
	for i, t := range []struct {
		chrom             string
		start, end, shift int
		want              []float64
	}{
		{"chr1", 1, 4, 0, []float64{1, 2, 3}},
		{"chr1", 1, 4, 2, []float64{3, 4, 5}},
		{"chr1", 1, 4, -2, []float64{0, 0, 1}},
		// Clamped at both ends.
		{"chr1", 4, 8, 0, []float64{4, 5, 0, 0}},
		{"chr1", -2, 2, 0, []float64{0, 0, 0, 1}},
		// Inverted range is normalised.
		{"chr1", 4, 1, 0, []float64{1, 2, 3}},
		// Unknown chromosome yields zeros.
		{"chr2", 0, 3, 0, []float64{0, 0, 0}},
		// Empty range.
		{"chr1", 2, 2, 0, []float64{}},
	} {
		got := set.Range(t.chrom, t.start, t.end, t.shift)
		c.Check(got, check.DeepEquals, t.want, check.Commentf("test %d", i))
	}
}

func (s *S) TestRoundTrip(c *check.C) {
	set := Set{
		"chr1": []float32{0, 0, 1.5, 3, 0},
		"chr2": []float32{},
		"chr3": []float32{7},
	}
	var buf bytes.Buffer
	err := WriteSet(&buf, set)
	c.Assert(err, check.Equals, nil)
	got, err := ReadSet(&buf)
	c.Assert(err, check.Equals, nil)
	c.Check(got, check.DeepEquals, set)
}

func (s *S) TestReadBadMagic(c *check.C) {
	_, err := ReadSet(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	c.Check(err, check.Not(check.Equals), nil)
}

func (s *S) TestReadCorruptHeader(c *check.C) {
	var buf bytes.Buffer
	err := WriteSet(&buf, Set{"chr1": []float32{1, 2, 3}})
	c.Assert(err, check.Equals, nil)
	data := buf.Bytes()

	// Inflate the chromosome name length beyond the cap.
	corrupt := append([]byte(nil), data...)
	binary.LittleEndian.PutUint32(corrupt[8:], 1<<20)
	_, err = ReadSet(bytes.NewReader(corrupt))
	c.Check(err, check.ErrorMatches, `profile: chromosome name length .* exceeds .*`)

	// Inflate the count vector length; the read must fail on the
	// short input rather than allocating the claimed size.
	corrupt = append([]byte(nil), data...)
	binary.LittleEndian.PutUint64(corrupt[16:], 1<<40)
	_, err = ReadSet(bytes.NewReader(corrupt))
	c.Check(err, check.Not(check.Equals), nil)
}

func (s *S) TestAccumulator(c *check.C) {
	a := NewAccumulator()
	c.Assert(a.Add("chr1", 2, 6, 1), check.Equals, nil)
	c.Assert(a.Add("chr1", 4, 8, 2), check.Equals, nil)
	c.Assert(a.Add("chr2", 0, 3, 0.5), check.Equals, nil)
	// Ignored interval.
	c.Assert(a.Add("chr1", 5, 5, 1), check.Equals, nil)

	set := a.Set()
	c.Check(set["chr1"], check.DeepEquals, []float32{0, 0, 1, 1, 3, 3, 2, 2})
	c.Check(set["chr2"], check.DeepEquals, []float32{0.5, 0.5, 0.5})

	c.Check(set.Range("chr1", 3, 7, 0), check.DeepEquals, []float64{1, 3, 3, 2})
}
