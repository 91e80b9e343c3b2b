// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orf provides open reading frame detection in nucleotide sequences.
package orf

import (
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

// A CodonSet is a case-insensitive set of 3-letter codons.
type CodonSet map[string]bool

// NewCodonSet returns a CodonSet holding the given codons. Codons are
// stored upper case; codons whose length is not 3 are ignored.
func NewCodonSet(codons ...string) CodonSet {
	s := make(CodonSet, len(codons))
	for _, c := range codons {
		if len(c) != 3 {
			continue
		}
		s[strings.ToUpper(c)] = true
	}
	return s
}

// Has returns whether the set holds the codon c.
func (s CodonSet) Has(c string) bool { return s[strings.ToUpper(c)] }

// Default codon sets. Both DNA and RNA alphabets are included so that
// sequences of either kind can be scanned without conversion.
var (
	DefaultStarts = NewCodonSet("ATG", "AUG")
	DefaultStops  = NewCodonSet("TAA", "TAG", "TGA", "UAA", "UAG", "UGA")
)

// An ORF is a half-open interval [Start,End) over sequence positions
// beginning with a start codon and ending immediately after an in-frame
// stop codon, with no in-frame stop codon in between.
type ORF struct {
	Start, End int
}

// Len returns the length of the reading frame in nucleotides.
func (o ORF) Len() int { return o.End - o.Start }

// Frame returns the reading frame of the ORF.
func (o ORF) Frame() int { return o.Start % 3 }

// scanner state within one frame.
type state int

const (
	seekingStart state = iota
	seekingStop
)

// Find scans s in each of the three reading frames and returns the
// non-overlapping ORFs found per frame, in ascending order of start
// position. Within a frame the first in-frame stop codon after a start
// closes the ORF; further start codons before that stop are ignored,
// and a start with no following stop is discarded. ORFs shorter than
// minLen nucleotides are not reported. If starts or stops is nil the
// corresponding default set is used.
func Find(s []alphabet.Letter, starts, stops CodonSet, minLen int) [3][]ORF {
	if starts == nil {
		starts = DefaultStarts
	}
	if stops == nil {
		stops = DefaultStops
	}
	var found [3][]ORF
	for frame := 0; frame < 3; frame++ {
		var (
			st    = seekingStart
			begin int
		)
		for i := frame; i+3 <= len(s); i += 3 {
			c := codonAt(s, i)
			switch {
			case st == seekingStart && starts.Has(c):
				begin = i
				st = seekingStop
			case st == seekingStop && stops.Has(c):
				end := i + 3
				if end-begin >= minLen {
					found[frame] = append(found[frame], ORF{Start: begin, End: end})
				}
				st = seekingStart
			}
		}
		// An open ORF at the end of the walk has no stop codon
		// and so is not reported.
	}
	return found
}

// FindSeq is a convenience wrapper around Find for linear sequences.
func FindSeq(s *linear.Seq, starts, stops CodonSet, minLen int) [3][]ORF {
	return Find(s.Seq, starts, stops, minLen)
}

func codonAt(s []alphabet.Letter, i int) string {
	b := [3]byte{byte(s[i]), byte(s[i+1]), byte(s[i+2])}
	return string(b[:])
}
