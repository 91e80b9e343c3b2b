// orfscan finds open reading frames in FASTA sequences and reports
// them as GFF features with their reading frame and length.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"

	"github.com/biogo/ribo/orf"
)

var (
	inName  = flag.String("in", "", "Filename for input. Defaults to stdin.")
	outName = flag.String("out", "", "Filename for output. Defaults to stdout.")
	starts  = flag.String("starts", "", "Comma separated start codons. Defaults to ATG/AUG.")
	stops   = flag.String("stops", "", "Comma separated stop codons. Defaults to the canonical three.")
	minLen  = flag.Int("min", 0, "Minimum ORF length in nucleotides.")
	help    = flag.Bool("help", false, "Print this usage message.")
)

func codonSet(list string) orf.CodonSet {
	if list == "" {
		return nil
	}
	return orf.NewCodonSet(strings.Split(list, ",")...)
}

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	var in *fasta.Reader
	t := linear.NewSeq("", nil, alphabet.DNA)
	if *inName == "" {
		in = fasta.NewReader(os.Stdin, t)
	} else if f, err := os.Open(*inName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v.\n", err)
		os.Exit(1)
	} else {
		defer f.Close()
		in = fasta.NewReader(f, t)
	}

	var out *gff.Writer
	if *outName == "" {
		out = gff.NewWriter(os.Stdout, 60, true)
	} else if f, err := os.Create(*outName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v.\n", err)
		os.Exit(1)
	} else {
		defer f.Close()
		buf := bufio.NewWriter(f)
		defer buf.Flush()
		out = gff.NewWriter(buf, 60, true)
	}

	startSet := codonSet(*starts)
	stopSet := codonSet(*stops)

	sc := seqio.NewScanner(in)
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		found := orf.FindSeq(s, startSet, stopSet, *minLen)

		var n int
		for _, frame := range found {
			n += len(frame)
		}
		fmt.Fprintf(os.Stderr, "%s: found %d ORFs.\n", s.Name(), n)
		if n == 0 {
			continue
		}

		out.WriteMetaData(gff.Sequence{SeqName: s.Name(), Type: s.Alphabet().Moltype()})
		for f, frame := range found {
			for _, o := range frame {
				out.Write(&gff.Feature{
					SeqName:    s.Name(),
					Source:     "orfscan",
					Feature:    "ORF",
					FeatStart:  o.Start,
					FeatEnd:    o.End,
					FeatStrand: seq.Plus,
					FeatFrame:  gff.Frame(f),
					FeatAttributes: gff.Attributes{
						gff.Attribute{
							Tag:   "Length",
							Value: fmt.Sprint(o.Len()),
						},
					},
				})
			}
		}
	}
	if err := sc.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v.\n", err)
		os.Exit(1)
	}
}
