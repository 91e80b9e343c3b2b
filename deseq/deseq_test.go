// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deseq

import (
	"bytes"
	"math"
	"strings"
	"testing"

	check "gopkg.in/check.v1"
)

func TestPackage(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const countCSV = `,gene_name,gene_length,s1,s2,t1,t2
ENSDARG01,nanog,1500,10,0,5,7
ENSDARG02,sox19b,900,0.4,0.2,8,9
ENSDARG03,pou5f3,2100,3,4,0,0.2
ERCC-0001,spikein,1000,100,100,100,100
`

var testAB = Test{Name: "wt vs mut", A: []string{"s1", "s2"}, B: []string{"t1", "t2"}}

func (s *S) TestReadTable(c *check.C) {
	t, err := ReadTable(strings.NewReader(countCSV))
	c.Assert(err, check.Equals, nil)
	c.Check(t.Samples, check.DeepEquals, []string{"s1", "s2", "t1", "t2"})
	c.Assert(t.Genes, check.HasLen, 4)
	c.Check(t.Genes[0], check.DeepEquals, Gene{
		ID: "ENSDARG01", Name: "nanog", Length: 1500,
		Counts: []float64{10, 0, 5, 7},
	})
}

func (s *S) TestKeepPrefix(c *check.C) {
	t, err := ReadTable(strings.NewReader(countCSV))
	c.Assert(err, check.Equals, nil)
	t.KeepPrefix("ENSDAR")
	c.Check(t.Genes, check.HasLen, 3)
	for _, g := range t.Genes {
		c.Check(strings.HasPrefix(g.ID, "ENSDAR"), check.Equals, true)
	}
}

func (s *S) TestSelect(c *check.C) {
	t, err := ReadTable(strings.NewReader(countCSV))
	c.Assert(err, check.Equals, nil)
	t.KeepPrefix("ENSDAR")

	// Gene 2 fails the threshold in group A, gene 3 in group B.
	sel, err := t.Select(testAB, 1)
	c.Assert(err, check.Equals, nil)
	c.Assert(sel, check.HasLen, 1)
	c.Check(sel[0].ID, check.Equals, "ENSDARG01")

	// No threshold keeps everything.
	sel, err = t.Select(testAB, 0)
	c.Assert(err, check.Equals, nil)
	c.Check(sel, check.HasLen, 3)

	_, err = t.Select(Test{A: []string{"nope"}, B: []string{"t1"}}, 1)
	c.Check(err, check.Not(check.Equals), nil)
}

func (s *S) TestWriteCounts(c *check.C) {
	t, err := ReadTable(strings.NewReader(countCSV))
	c.Assert(err, check.Equals, nil)
	sel, err := t.Select(testAB, 0)
	c.Assert(err, check.Equals, nil)

	var buf bytes.Buffer
	err = t.WriteCounts(&buf, testAB, sel[:2])
	c.Assert(err, check.Equals, nil)
	c.Check(buf.String(), check.Equals, ",s1,s2,t1,t2\n"+
		"ENSDARG01,10,0,5,7\n"+
		"ENSDARG02,0,0,8,9\n")
}

func (s *S) TestWriteConditions(c *check.C) {
	var buf bytes.Buffer
	err := WriteConditions(&buf, testAB)
	c.Assert(err, check.Equals, nil)
	c.Check(buf.String(), check.Equals, ",condition\n"+
		"s1,a\ns2,a\nt1,b\nt2,b\n")
}

func (s *S) TestBuildCommand(c *check.C) {
	d := DESeq2{
		Script:     "run_deseq.r",
		Counts:     "count.csv",
		Conditions: "cond.csv",
		Out:        "de.csv",
		PAdjust:    "fdr",
	}
	cmd, err := d.BuildCommand()
	c.Assert(err, check.Equals, nil)
	c.Check(cmd.Args, check.DeepEquals, []string{
		"Rscript", "run_deseq.r", "count.csv", "cond.csv", "de.csv", "fdr",
	})
}

const resultCSV = `,baseMean,log2FoldChange,pvalue,padj
ENSDARG01,100.5,-2.3,0.0001,0.001
ENSDARG02,7.2,0.4,NA,NA
`

func (s *S) TestFrame(c *check.C) {
	f, err := ReadFrame(strings.NewReader(resultCSV))
	c.Assert(err, check.Equals, nil)
	c.Check(f.Cols, check.DeepEquals, []string{"baseMean", "log2FoldChange", "pvalue", "padj"})
	c.Check(f.Genes, check.DeepEquals, []string{"ENSDARG01", "ENSDARG02"})

	padj, err := f.FloatCol("padj")
	c.Assert(err, check.Equals, nil)
	c.Check(padj["ENSDARG01"], check.Equals, 0.001)
	c.Check(math.IsNaN(padj["ENSDARG02"]), check.Equals, true)

	f.Rename(func(col string) string { return "wt vs mut " + col })
	c.Check(f.Cols[0], check.Equals, "wt vs mut baseMean")

	_, err = f.FloatCol("baseMean")
	c.Check(err, check.Not(check.Equals), nil)
}

func (s *S) TestClassify(c *check.C) {
	nan := math.NaN()
	for i, t := range []struct {
		l2fc, padj float64
		want       Class
	}{
		{0.5, 0.5, ClassNone},
		{0.5, 0.001, ClassSig},
		{3, 0.5, ClassFC},
		{-3, 0.5, ClassFC},
		{3, 0.001, ClassSigFC},
		{-3, 0.001, ClassSigFC},
		// Cutoffs are strict: equality does not qualify.
		{2, 0.01, ClassNone},
		// Missing statistics fail every cutoff.
		{nan, 0.001, ClassSig},
		{3, nan, ClassFC},
		{nan, nan, ClassNone},
	} {
		c.Check(Classify(t.l2fc, t.padj, 2, 0.01), check.Equals, t.want, check.Commentf("test %d", i))
	}
}

func (s *S) TestInnerJoin(c *check.C) {
	anno := NewFrame("gene_name")
	anno.Append("g1", "nanog")
	anno.Append("g2", "sox19b")
	anno.Append("g3", "pou5f3")

	de := NewFrame("padj")
	de.Append("g3", "0.01")
	de.Append("g1", "0.5")

	j := InnerJoin(anno, de)
	c.Check(j.Cols, check.DeepEquals, []string{"gene_name", "padj"})
	c.Check(j.Genes, check.DeepEquals, []string{"g1", "g3"})
	c.Check(j.Row("g1"), check.DeepEquals, []string{"nanog", "0.5"})

	var buf bytes.Buffer
	err := j.WriteCSV(&buf)
	c.Assert(err, check.Equals, nil)
	c.Check(buf.String(), check.Equals, ",gene_name,padj\n"+
		"g1,nanog,0.5\ng3,pou5f3,0.01\n")
}
