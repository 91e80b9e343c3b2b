// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deseq

import (
	"os"
	"os/exec"

	"github.com/biogo/external"
)

// DESeq2 invokes a DESeq2 driver script with Rscript. The script takes
// the count matrix, the condition assignment table, the result path
// and the p-value adjustment method as positional arguments.
type DESeq2 struct {
	// Usage: Rscript <script> <counts> <conditions> <out> <padjust>
	Cmd string `buildarg:"{{if .}}{{split .}}{{else}}Rscript{{end}}"` // Rscript

	// Driver script, for example run_deseq.r.
	Script string `buildarg:"{{.}}"` // <script>

	// Integer count matrix CSV, genes by samples.
	Counts string `buildarg:"{{.}}"` // <counts>

	// Sample to condition assignment CSV.
	Conditions string `buildarg:"{{.}}"` // <conditions>

	// Result table CSV written by the script.
	Out string `buildarg:"{{.}}"` // <out>

	// P-value adjustment method name passed to the script,
	// for example "fdr".
	PAdjust string `buildarg:"{{.}}"` // <padjust>
}

// BuildCommand satisfies the external.CommandBuilder interface.
func (d DESeq2) BuildCommand() (*exec.Cmd, error) {
	cl := external.Must(external.Build(d))
	return exec.Command(cl[0], cl[1:]...), nil
}

// Run builds and synchronously executes the DESeq2 invocation with its
// output forwarded to standard error. A non-zero exit status is
// returned as an error.
func (d DESeq2) Run() error {
	cmd, err := d.BuildCommand()
	if err != nil {
		return err
	}
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
