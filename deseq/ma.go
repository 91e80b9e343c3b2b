// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deseq

import "math"

// A Class is the significance class of a gene in an MA plot.
type Class int

const (
	ClassNone  Class = iota // neither cutoff met
	ClassSig                // adjusted P-value below cutoff only
	ClassFC                 // fold change beyond cutoff only
	ClassSigFC              // both cutoffs met
)

// Classify assigns the significance class for a gene from its log2
// fold change and adjusted P-value. NaN values fail every cutoff, so
// genes with missing statistics land in ClassNone.
func Classify(l2fc, padj, cutFC, cutP float64) Class {
	sig := padj < cutP
	fc := math.Abs(l2fc) > cutFC
	switch {
	case sig && fc:
		return ClassSigFC
	case fc:
		return ClassFC
	case sig:
		return ClassSig
	}
	return ClassNone
}
