// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fetchseq retrieves transcript nucleotide sequences from Entrez by
// accession and writes them as FASTA.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/ncbi/entrez"
)

const (
	db   = "nuccore"
	tool = "biogo.ribo"
)

var (
	retmax  = flag.Int("retmax", 100, "retmax specifies the number of records to be retrieved per request.")
	out     = flag.String("out", "", "out specifies destination of the returned data (default to stdout).")
	email   = flag.String("email", "", "email specifies the email address to be sent to the server (required).")
	retries = flag.Int("retry", 5, "retry specifies the number of attempts to retrieve the data.")
	help    = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *email == "" || flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: fetchseq [options] <accession>...")
		flag.Usage()
		os.Exit(1)
	}
	query := strings.Join(flag.Args(), " OR ")

	h := entrez.History{}
	s, err := entrez.DoSearch(db, query, nil, &h, tool, *email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Will retrieve %d records.\n", s.Count)

	var of *os.File
	if *out == "" {
		of = os.Stdout
	} else {
		of, err = os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer of.Close()
	}

	var (
		buf   = &bytes.Buffer{}
		p     = &entrez.Parameters{RetMax: *retmax, RetType: "fasta", RetMode: "text"}
		bn, n int64
	)
	for p.RetStart = 0; p.RetStart < s.Count; p.RetStart += p.RetMax {
		fmt.Fprintf(os.Stderr, "Attempting to retrieve %d records starting from %d with %d retries.\n", p.RetMax, p.RetStart, *retries)
		for t := 0; t < *retries; t++ {
			buf.Reset()
			var (
				r   io.ReadCloser
				_bn int64
			)
			r, err = entrez.Fetch(db, p, tool, *email, &h)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to retrieve on attempt %d... retrying.\n", t)
				continue
			}
			_bn, err = io.Copy(buf, r)
			bn += _bn
			r.Close()
			if err == nil {
				break
			}
			fmt.Fprintf(os.Stderr, "Failed to buffer on attempt %d... retrying.\n", t)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Exceeded retries: last error: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintln(os.Stderr, "Retrieved records... writing out.")
		_n, err := io.Copy(of, buf)
		n += _n
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if bn != n {
		fmt.Fprintf(os.Stderr, "Writethrough mismatch: %d != %d\n", bn, n)
	}
}
