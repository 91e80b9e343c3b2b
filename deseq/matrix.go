// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deseq prepares gene count data for, and collects results
// from, differential expression analysis with the external DESeq2
// statistical engine.
package deseq

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// A Test describes one differential expression comparison between two
// groups of samples.
type Test struct {
	Name string   `json:"name"`
	A    []string `json:"samples1"`
	B    []string `json:"samples2"`
}

// A Gene is one row of a count table.
type Gene struct {
	ID     string
	Name   string
	Length int
	Counts []float64
}

// A Table is a gene count matrix with per-gene annotation. Rows are
// genes, columns are samples.
type Table struct {
	Samples []string
	Genes   []Gene
}

// ReadTable reads a count table from CSV data. The expected header is
// an index column, gene_name, gene_length, then one column per sample.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	if len(header) < 3 || header[1] != "gene_name" || header[2] != "gene_length" {
		return nil, fmt.Errorf("deseq: unexpected count table header %q", header)
	}
	t := &Table{Samples: header[3:]}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		g := Gene{ID: rec[0], Name: rec[1], Counts: make([]float64, len(rec)-3)}
		g.Length, err = strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("deseq: gene %s: bad length %q", g.ID, rec[2])
		}
		for i, f := range rec[3:] {
			g.Counts[i], err = strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("deseq: gene %s: bad count %q", g.ID, f)
			}
		}
		t.Genes = append(t.Genes, g)
	}
	return t, nil
}

// KeepPrefix removes genes whose identifier does not begin with the
// given prefix, for example restricting to a single species in a table
// that includes spike-in genes.
func (t *Table) KeepPrefix(prefix string) {
	kept := t.Genes[:0]
	for _, g := range t.Genes {
		if len(g.ID) >= len(prefix) && g.ID[:len(prefix)] == prefix {
			kept = append(kept, g)
		}
	}
	t.Genes = kept
}

func (t *Table) sampleIndex(name string) (int, error) {
	for i, s := range t.Samples {
		if s == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("deseq: unknown sample %q", name)
}

// Select returns the genes expressed in both conditions of the test:
// genes with a count of at least minCount in one or more samples of
// each group.
func (t *Table) Select(test Test, minCount float64) ([]Gene, error) {
	ai, err := indices(t, test.A)
	if err != nil {
		return nil, err
	}
	bi, err := indices(t, test.B)
	if err != nil {
		return nil, err
	}
	var sel []Gene
	for _, g := range t.Genes {
		if anyAtLeast(g.Counts, ai, minCount) && anyAtLeast(g.Counts, bi, minCount) {
			sel = append(sel, g)
		}
	}
	return sel, nil
}

func indices(t *Table, samples []string) ([]int, error) {
	idx := make([]int, len(samples))
	for i, name := range samples {
		var err error
		idx[i], err = t.sampleIndex(name)
		if err != nil {
			return nil, err
		}
	}
	return idx, nil
}

func anyAtLeast(counts []float64, idx []int, min float64) bool {
	for _, i := range idx {
		if counts[i] >= min {
			return true
		}
	}
	return false
}

// WriteCounts writes the selected genes as an integer count matrix for
// the test's samples, group A columns then group B columns. DESeq2
// requires integer counts, so values are rounded.
func (t *Table) WriteCounts(w io.Writer, test Test, genes []Gene) error {
	idx, err := indices(t, append(append([]string{}, test.A...), test.B...))
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	header := append([]string{""}, test.A...)
	header = append(header, test.B...)
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := make([]string, len(idx)+1)
	for _, g := range genes {
		rec[0] = g.ID
		for i, j := range idx {
			rec[i+1] = strconv.FormatInt(int64(math.Round(g.Counts[j])), 10)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteConditions writes the sample to condition assignment table for
// the test, labelling group A samples "a" and group B samples "b".
func WriteConditions(w io.Writer, test Test) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"", "condition"}); err != nil {
		return err
	}
	for _, s := range test.A {
		if err := cw.Write([]string{s, "a"}); err != nil {
			return err
		}
	}
	for _, s := range test.B {
		if err := cw.Write([]string{s, "b"}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
