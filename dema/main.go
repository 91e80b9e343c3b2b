// dema renders an MA plot from a merged differential expression table:
// mean expression against log2 fold change, with genes classified by
// P-value and fold-change cutoffs.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/biogo/ribo/deseq"
)

var (
	deName   = flag.String("de", "de.csv", "Filename for the merged differential expression table.")
	testName = flag.String("test", "", "Name of the test to plot.")
	cutFC    = flag.Float64("fc", 2, "Fold change cutoff (log2).")
	cutP     = flag.Float64("p", 0.01, "Adjusted P-value cutoff.")
	outName  = flag.String("out", "de_ma.png", "Filename for the rendered plot.")
	help     = flag.Bool("help", false, "Print this usage message.")
)

// Class presentation, in drawing order so that significant points
// overlay the background.
var classColors = [...]color.RGBA{
	deseq.ClassNone:  {R: 0xb3, G: 0xb3, B: 0xb3, A: 0xff},
	deseq.ClassSig:   {R: 0xb2, G: 0xdf, B: 0x8a, A: 0xff},
	deseq.ClassFC:    {R: 0xa6, G: 0xce, B: 0xe3, A: 0xff},
	deseq.ClassSigFC: {R: 0x33, G: 0xa0, B: 0x2c, A: 0xff},
}

var classNames = [...]string{
	deseq.ClassNone:  "",
	deseq.ClassSig:   "Sig",
	deseq.ClassFC:    "FC",
	deseq.ClassSigFC: "Sig+FC",
}

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *testName == "" {
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*deName)
	if err != nil {
		log.Fatalf("failed opening %q: %v", *deName, err)
	}
	frame, err := deseq.ReadFrame(f)
	f.Close()
	if err != nil {
		log.Fatalf("failed reading %q: %v", *deName, err)
	}

	baseMean, err := frame.FloatCol(*testName + " baseMean")
	if err != nil {
		log.Fatalf("failed reading base means: %v", err)
	}
	l2fc, err := frame.FloatCol(*testName + " log2FoldChange")
	if err != nil {
		log.Fatalf("failed reading fold changes: %v", err)
	}
	padj, err := frame.FloatCol(*testName + " padj")
	if err != nil {
		log.Fatalf("failed reading adjusted P-values: %v", err)
	}

	var classes [len(classColors)]plotter.XYs
	for _, g := range frame.Genes {
		m, fc := baseMean[g], l2fc[g]
		if !(m > 0) || math.IsNaN(fc) {
			continue
		}
		cl := deseq.Classify(fc, padj[g], *cutFC, *cutP)
		classes[cl] = append(classes[cl], plotter.XY{X: math.Log10(m), Y: fc})
	}

	p := plot.New()
	p.Title.Text = *testName
	p.X.Label.Text = "Base mean (log10)"
	p.Y.Label.Text = "Fold change (log2)"

	for cl, xys := range classes {
		if len(xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			log.Fatalf("failed building scatter: %v", err)
		}
		sc.GlyphStyle.Color = classColors[cl]
		sc.GlyphStyle.Radius = vg.Points(1.5)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		if deseq.Class(cl) != deseq.ClassNone {
			p.Legend.Add(fmt.Sprintf("%s %d", classNames[cl], len(xys)), sc)
		}
	}
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 5*vg.Inch, *outName); err != nil {
		log.Fatalf("failed writing %q: %v", *outName, err)
	}
}
