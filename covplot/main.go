// covplot renders ribosome-protected-fragment and total RNA coverage
// over a genomic region, with the open reading frames of a transcript
// sequence drawn as frame-colored blocks under the coverage tracks.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/biogo/ribo/orf"
	"github.com/biogo/ribo/profile"
	"github.com/biogo/ribo/track"
)

var (
	rpfName = flag.String("rpf", "", "Filename for the ribosome footprint profile set.")
	rnaName = flag.String("rna", "", "Filename for the total RNA profile set.")
	seqName = flag.String("seq", "", "Filename for the transcript FASTA sequence.")
	chrom   = flag.String("chrom", "", "Chromosome name of the plotted region.")
	start   = flag.Int("start", 0, "Region start coordinate.")
	end     = flag.Int("end", 0, "Region end coordinate.")
	shift   = flag.Int("shift", 0, "Coordinate shift applied to footprint counts, correcting to the ribosome P-site.")
	minLen  = flag.Int("min", 0, "Minimum ORF length in nucleotides.")
	outName = flag.String("out", "covplot.png", "Filename for the rendered plot.")
	help    = flag.Bool("help", false, "Print this usage message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *rpfName == "" || *rnaName == "" || *seqName == "" || *chrom == "" || *end <= *start {
		flag.Usage()
		os.Exit(1)
	}

	rpf, err := profile.ReadFile(*rpfName)
	if err != nil {
		log.Fatalf("failed reading footprint profiles: %v", err)
	}
	rna, err := profile.ReadFile(*rnaName)
	if err != nil {
		log.Fatalf("failed reading RNA profiles: %v", err)
	}

	sf, err := os.Open(*seqName)
	if err != nil {
		log.Fatalf("failed opening %q: %v", *seqName, err)
	}
	in := fasta.NewReader(sf, linear.NewSeq("", nil, alphabet.DNA))
	s, err := in.Read()
	sf.Close()
	if err != nil && err != io.EOF {
		log.Fatalf("failed reading %q: %v", *seqName, err)
	}
	if s == nil {
		log.Fatalf("no sequence in %q", *seqName)
	}

	rpfCounts := rpf.Range(*chrom, *start, *end, *shift)
	rnaCounts := rna.Range(*chrom, *start, *end, 0)
	orfs := orf.FindSeq(s.(*linear.Seq), nil, nil, *minLen)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s %s:%d-%d", s.Name(), *chrom, *start, *end)
	p.X.Label.Text = "Position"
	p.Y.Label.Text = "Count"

	rpfLine, err := track.Coverage(rpfCounts, *start, color.RGBA{R: 0x80, G: 0x3d, B: 0x99, A: 0xc0})
	if err != nil {
		log.Fatalf("failed building footprint track: %v", err)
	}
	rnaLine, err := track.Coverage(rnaCounts, *start, color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xc0})
	if err != nil {
		log.Fatalf("failed building RNA track: %v", err)
	}
	p.Add(rnaLine, rpfLine)
	p.Legend.Add("RPF", rpfLine)
	p.Legend.Add("RNA", rnaLine)
	p.Legend.Top = true

	yMax := floats.Max(append(append([]float64{1}, rpfCounts...), rnaCounts...))
	bands := track.FrameBands(orfs, *start, 0, yMax/20)
	for f, b := range bands {
		p.Add(b)
		p.Legend.Add(fmt.Sprintf("Frame %d", f), b)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, *outName); err != nil {
		log.Fatalf("failed writing %q: %v", *outName, err)
	}
}
