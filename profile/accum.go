// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"github.com/biogo/store/step"
)

// depth is a float32 count satisfying the step.Equaler interface.
type depth float32

// Equal returns whether d equals e. Equal assumes the underlying type
// of e is a depth.
func (d depth) Equal(e step.Equaler) bool {
	return d == e.(depth)
}

// An Accumulator builds per-chromosome count profiles from read
// intervals, using step vectors to hold runs of equal depth compactly.
type Accumulator struct {
	vecs map[string]*step.Vector
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{vecs: make(map[string]*step.Vector)}
}

// Add records weight over the half-open interval [start,end) on the
// named chromosome. Intervals with end <= start or negative start are
// ignored.
func (a *Accumulator) Add(chrom string, start, end int, weight float32) error {
	if end <= start || start < 0 {
		return nil
	}
	vec, ok := a.vecs[chrom]
	if !ok {
		var err error
		vec, err = step.New(start, end, depth(0))
		if err != nil {
			return err
		}
		vec.Relaxed = true
		a.vecs[chrom] = vec
	}
	return vec.ApplyRange(start, end, func(e step.Equaler) step.Equaler {
		return e.(depth) + depth(weight)
	})
}

// Set flattens the accumulated depths into a Set of dense count
// vectors. Each chromosome vector spans [0,end) of the deepest
// interval recorded for it.
func (a *Accumulator) Set() Set {
	s := make(Set, len(a.vecs))
	for chrom, vec := range a.vecs {
		counts := make([]float32, vec.End())
		vec.Do(func(start, end int, e step.Equaler) {
			d := float32(e.(depth))
			if d == 0 {
				return
			}
			for i := start; i < end; i++ {
				counts[i] = d
			}
		})
		s[chrom] = counts
	}
	return s
}
