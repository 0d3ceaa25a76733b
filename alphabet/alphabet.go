// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alphabet describes the finite symbol sets that sequences in the
// dotplot suite are drawn from, and the base-A positional encoding used to
// turn a k-length window of symbols into a single integer tuple code.
package alphabet

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol is returned when a byte outside an Alphabet's symbol set
// is presented for encoding.
var ErrInvalidSymbol = errors.New("alphabet: symbol not in alphabet")

// Alphabet is a closed set of one-byte symbols, optionally naming one symbol
// as a wildcard that never contributes a match when extending an alignment,
// and optionally carrying a complement mapping for reverse-complement
// comparisons of nucleotide sequences.
type Alphabet struct {
	symbols    string
	index      [256]int8
	wildcard   byte
	hasWild    bool
	complement [256]byte
	hasComp    bool
}

// New returns an Alphabet over the given symbols with no wildcard.
func New(symbols string) *Alphabet {
	return newAlphabet(symbols, 0, false)
}

// NewWithWildcard returns an Alphabet over the given symbols in which
// wildcard always counts as a mismatch during match extension, regardless
// of what it is paired against.
func NewWithWildcard(symbols string, wildcard byte) *Alphabet {
	return newAlphabet(symbols, wildcard, true)
}

func newAlphabet(symbols string, wildcard byte, hasWild bool) *Alphabet {
	a := &Alphabet{symbols: symbols, wildcard: wildcard, hasWild: hasWild}
	for i := range a.index {
		a.index[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		a.index[symbols[i]] = int8(i)
	}
	return a
}

// WithComplement attaches a complement mapping to a copy of a, to be used by
// ReverseComplement. pairs must name full complement pairs, e.g. "AT", "CG";
// any symbol not named complements to itself.
func (a *Alphabet) WithComplement(pairs ...[2]byte) *Alphabet {
	b := *a
	for i := range b.complement {
		b.complement[i] = byte(i)
	}
	for _, p := range pairs {
		b.complement[p[0]] = p[1]
		b.complement[p[1]] = p[0]
	}
	b.hasComp = true
	return &b
}

// Len returns the number of symbols in the alphabet.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Symbols returns the alphabet's symbol set in index order.
func (a *Alphabet) Symbols() string { return a.symbols }

// IndexOf returns the zero-based rank of sym within the alphabet.
func (a *Alphabet) IndexOf(sym byte) (int, bool) {
	idx := a.index[sym]
	if idx < 0 {
		return 0, false
	}
	return int(idx), true
}

// IsWildcard reports whether sym is the alphabet's wildcard symbol. An
// alphabet with no configured wildcard reports false for every symbol.
func (a *Alphabet) IsWildcard(sym byte) bool {
	return a.hasWild && sym == a.wildcard
}

// HasComplement reports whether a can complement symbols.
func (a *Alphabet) HasComplement() bool { return a.hasComp }

// Complement returns the complement of sym. It returns sym unchanged if the
// alphabet carries no complement mapping or sym was not named in one.
func (a *Alphabet) Complement(sym byte) byte {
	if !a.hasComp {
		return sym
	}
	return a.complement[sym]
}

// ReverseComplement returns the reverse complement of seq. It returns an
// error if the alphabet has no complement mapping.
func (a *Alphabet) ReverseComplement(seq []byte) ([]byte, error) {
	if !a.hasComp {
		return nil, fmt.Errorf("alphabet: no complement mapping defined")
	}
	out := make([]byte, len(seq))
	for i, s := range seq {
		out[len(seq)-1-i] = a.Complement(s)
	}
	return out, nil
}

// Ipow returns x to the power of n for non-negative n. It is used to size
// the LAST table of a k-tuple index: a k-tuple over an alphabet of A
// symbols has A^k possible codes.
func Ipow(x, n int) int {
	r := 1
	for ; n > 0; n-- {
		r *= x
	}
	return r
}

// EncodeTuple treats window as a base-A positional number, most significant
// symbol first, and returns its 1-based code: 0 is reserved to mean "no
// chain" in a k-tuple index, so a valid tuple code is always >= 1.
func EncodeTuple(a *Alphabet, window []byte) (int, error) {
	id := 0
	base := a.Len()
	for _, s := range window {
		idx, ok := a.IndexOf(s)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
		}
		id = id*base + idx
	}
	return id + 1, nil
}

// DecodeTuple reverses EncodeTuple, returning the k symbols the given
// 1-based tuple code stands for.
func DecodeTuple(a *Alphabet, id, k int) ([]byte, error) {
	if id < 1 {
		return nil, fmt.Errorf("alphabet: tuple code must be >= 1, got %d", id)
	}
	base := a.Len()
	n := id - 1
	out := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		out[i] = a.symbols[n%base]
		n /= base
	}
	return out, nil
}

// DNA is the four-symbol nucleotide alphabet with no ambiguity code.
var DNA = New("ACGT").WithComplement([2]byte{'A', 'T'}, [2]byte{'C', 'G'})

// DNAAmbiguous is the nucleotide alphabet with N standing for the wildcard
// symbol used by repeat-masked or low-confidence base calls.
var DNAAmbiguous = NewWithWildcard("ACGTN", 'N').WithComplement([2]byte{'A', 'T'}, [2]byte{'C', 'G'})

// Protein is the twenty-amino-acid alphabet plus the stop symbol ('-') that
// package translate emits for stop codons and a wildcard symbol ('.').
var Protein = NewWithWildcard("ACDEFGHIKLMNPQRSTVWY-.", '.')
