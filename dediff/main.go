// dediff computes gene differential expression between sample groups.
// It prepares count and condition tables for each requested test,
// hands them to the external DESeq2 statistical engine, and merges the
// per-test results with the gene annotation into a single table.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/biogo/ribo/deseq"
)

var (
	countName = flag.String("count", "", "Filename for the gene count table.")
	testsName = flag.String("tests", "", "Filename for the JSON test definitions.")
	script    = flag.String("script", "run_deseq.r", "DESeq2 driver script passed to Rscript.")
	pAdjust   = flag.String("padjust", "fdr", "P-value adjustment method.")
	minCount  = flag.Float64("min", 1, "Minimum read count per condition.")
	prefix    = flag.String("prefix", "", "Keep only genes whose identifier has this prefix.")
	outName   = flag.String("out", "de.csv", "Filename for the merged result table.")
	help      = flag.Bool("help", false, "Print this usage message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *countName == "" || *testsName == "" {
		flag.Usage()
		os.Exit(1)
	}

	tf, err := os.Open(*testsName)
	if err != nil {
		log.Fatalf("failed opening %q: %v", *testsName, err)
	}
	var tests []deseq.Test
	err = json.NewDecoder(tf).Decode(&tests)
	tf.Close()
	if err != nil {
		log.Fatalf("failed reading tests: %v", err)
	}
	if len(tests) == 0 {
		log.Fatal("no tests defined")
	}

	cf, err := os.Open(*countName)
	if err != nil {
		log.Fatalf("failed opening %q: %v", *countName, err)
	}
	table, err := deseq.ReadTable(cf)
	cf.Close()
	if err != nil {
		log.Fatalf("failed reading counts: %v", err)
	}
	if *prefix != "" {
		table.KeepPrefix(*prefix)
	}
	fmt.Fprintf(os.Stderr, "Read %d genes and %d samples.\n", len(table.Genes), len(table.Samples))

	// Carry the gene annotation as the left-most result columns.
	anno := deseq.NewFrame("gene_name", "gene_length")
	for _, g := range table.Genes {
		anno.Append(g.ID, g.Name, strconv.Itoa(g.Length))
	}
	merged := []*deseq.Frame{anno}

	for _, test := range tests {
		fmt.Fprintf(os.Stderr, "Running test %q.\n", test.Name)
		genes, err := table.Select(test, *minCount)
		if err != nil {
			log.Fatalf("failed selecting genes: %v", err)
		}
		fmt.Fprintf(os.Stderr, "... %d genes pass the count threshold.\n", len(genes))

		if err = writeCounts(table, test, genes, "count.csv"); err != nil {
			log.Fatalf("failed writing counts: %v", err)
		}
		if err = writeConditions(test, "cond.csv"); err != nil {
			log.Fatalf("failed writing conditions: %v", err)
		}

		d := deseq.DESeq2{
			Script:     *script,
			Counts:     "count.csv",
			Conditions: "cond.csv",
			Out:        "test_de.csv",
			PAdjust:    *pAdjust,
		}
		if err = d.Run(); err != nil {
			log.Fatalf("DESeq2 failed for test %q: %v", test.Name, err)
		}

		rf, err := os.Open(d.Out)
		if err != nil {
			log.Fatalf("failed opening %q: %v", d.Out, err)
		}
		res, err := deseq.ReadFrame(rf)
		rf.Close()
		if err != nil {
			log.Fatalf("failed reading results: %v", err)
		}
		res.Rename(func(col string) string { return test.Name + " " + col })
		merged = append(merged, res)
	}

	out, err := os.Create(*outName)
	if err != nil {
		log.Fatalf("failed creating %q: %v", *outName, err)
	}
	err = deseq.InnerJoin(merged...).WriteCSV(out)
	if err != nil {
		out.Close()
		log.Fatalf("failed writing %q: %v", *outName, err)
	}
	if err = out.Close(); err != nil {
		log.Fatalf("failed writing %q: %v", *outName, err)
	}
}

func writeCounts(t *deseq.Table, test deseq.Test, genes []deseq.Gene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = t.WriteCounts(f, test, genes)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeConditions(test deseq.Test, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = deseq.WriteConditions(f, test)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
