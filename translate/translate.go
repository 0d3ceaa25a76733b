// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package translate turns a nucleotide sequence into its three forward
// reading-frame amino acid translations, for comparisons that need to find
// matches conserved at the protein level despite nucleotide drift.
package translate

import (
	"github.com/kortschak/dotplot/alphabet"
)

// universalCodonTable lists, in the order produced by encoding each codon
// with alphabet.DNA ("ACGT", most significant base first), the single-letter
// amino acid each codon translates to under the standard genetic code; '-'
// marks a stop codon. This is the same 64-entry table (and the same
// ACGT-ordered codon indexing) used by the original translation routine
// this package replaces.
const universalCodonTable = "KNKNTTTTRSRSIIMIQHQHPPPPRRRRLLLLEDEDAAAAGGGGVVVV-Y-YSSSS-CWCLFLF"

// Codon returns the amino acid symbol for the three-base codon, or the stop
// symbol '-' if codon does not encode an amino acid under the standard
// genetic code.
func Codon(codon []byte) (byte, error) {
	id, err := alphabet.EncodeTuple(alphabet.DNA, codon)
	if err != nil {
		return 0, err
	}
	return universalCodonTable[id-1], nil
}

// Frames translates seq in its three forward reading frames. Frame i starts
// at offset i and runs for as many whole codons as remain; a trailing
// partial codon is dropped. The returned sequences are amino acid sequences
// over alphabet.Protein, each floor((len(seq)-i)/3) symbols long.
func Frames(seq []byte) ([3][]byte, error) {
	var out [3][]byte
	for frame := 0; frame < 3; frame++ {
		n := (len(seq) - frame) / 3
		if n < 0 {
			n = 0
		}
		aa := make([]byte, n)
		for i := 0; i < n; i++ {
			codon := seq[frame+i*3 : frame+i*3+3]
			sym, err := Codon(codon)
			if err != nil {
				return out, err
			}
			aa[i] = sym
		}
		out[frame] = aa
	}
	return out, nil
}
