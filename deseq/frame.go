// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deseq

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// A Frame is a table of per-gene values keyed by gene identifier, such
// as a DESeq2 result table or gene annotation columns carried through
// an analysis. Values are held as strings so that annotation and
// numeric columns can coexist; missing numeric values are "NA".
type Frame struct {
	Cols  []string
	Genes []string
	rows  map[string][]string
}

// NewFrame returns an empty frame with the given columns.
func NewFrame(cols ...string) *Frame {
	return &Frame{Cols: cols, rows: make(map[string][]string)}
}

// Append adds a gene row to the frame. Append panics if the number of
// values does not match the frame's columns.
func (f *Frame) Append(gene string, values ...string) {
	if len(values) != len(f.Cols) {
		panic(fmt.Sprintf("deseq: row length mismatch: %d != %d", len(values), len(f.Cols)))
	}
	if _, ok := f.rows[gene]; !ok {
		f.Genes = append(f.Genes, gene)
	}
	f.rows[gene] = values
}

// Row returns the values for the given gene, or nil if absent.
func (f *Frame) Row(gene string) []string { return f.rows[gene] }

// Rename applies fn to each column name.
func (f *Frame) Rename(fn func(string) string) {
	for i, c := range f.Cols {
		f.Cols[i] = fn(c)
	}
}

// FloatCol returns the named column parsed as float64 keyed by gene.
// "NA" and empty values parse to NaN.
func (f *Frame) FloatCol(name string) (map[string]float64, error) {
	col := -1
	for i, c := range f.Cols {
		if c == name {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("deseq: no column %q", name)
	}
	v := make(map[string]float64, len(f.Genes))
	for _, g := range f.Genes {
		s := f.rows[g][col]
		if s == "NA" || s == "" {
			v[g] = math.NaN()
			continue
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("deseq: gene %s column %q: %v", g, name, err)
		}
		v[g] = x
	}
	return v, nil
}

// ReadFrame reads a CSV table whose first column is the gene
// identifier, as written by the DESeq2 driver script.
func ReadFrame(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("deseq: unexpected result header %q", header)
	}
	f := NewFrame(header[1:]...)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		f.Append(rec[0], rec[1:]...)
	}
	return f, nil
}

// WriteCSV writes the frame as CSV with an unnamed leading gene
// identifier column.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{""}, f.Cols...)); err != nil {
		return err
	}
	for _, g := range f.Genes {
		if err := cw.Write(append([]string{g}, f.rows[g]...)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// InnerJoin joins frames on gene identifier, keeping only genes
// present in every frame, in the row order of the first frame.
// Columns are concatenated left to right.
func InnerJoin(frames ...*Frame) *Frame {
	if len(frames) == 0 {
		return NewFrame()
	}
	var cols []string
	for _, f := range frames {
		cols = append(cols, f.Cols...)
	}
	joined := NewFrame(cols...)
	for _, g := range frames[0].Genes {
		values := make([]string, 0, len(cols))
		ok := true
		for _, f := range frames {
			row := f.Row(g)
			if row == nil {
				ok = false
				break
			}
			values = append(values, row...)
		}
		if ok {
			joined.Append(g, values...)
		}
	}
	return joined
}
