// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ktuple builds the inverted index of k-tuple occurrences used to
// seed sequence comparisons: for every position in a sequence, the k
// symbols starting there are encoded to a tuple code, and each code's
// occurrences are threaded into a singly linked, most-recent-first chain.
package ktuple

import (
	"errors"
	"fmt"

	"github.com/kortschak/dotplot/alphabet"
)

// ErrSequenceTooShort is returned when a sequence has fewer than k symbols,
// so no tuple of length k can be taken from it.
var ErrSequenceTooShort = errors.New("ktuple: sequence shorter than tuple size")

// Index is the inverted index of k-tuple occurrences in a sequence.
//
// Last holds, for every tuple code (zero-based), the 1-based position of
// its most recent occurrence, or 0 if the tuple never occurs or its chain
// has been suppressed. Prev holds, for every position, the 1-based
// position of the previous occurrence of the tuple starting there, again
// 0-terminated. Codes holds the zero-based tuple code starting at each
// position, retained so that repeat suppression and the previous-base
// skip optimisation in package compare do not need to re-encode symbols.
type Index struct {
	Alphabet *alphabet.Alphabet
	K        int
	Last     []int32
	Prev     []int32
	Codes    []int32
}

// Build constructs the inverted index for seq under the given alphabet and
// tuple size k.
func Build(seq []byte, k int, a *alphabet.Alphabet) (*Index, error) {
	if k < 1 {
		return nil, fmt.Errorf("ktuple: k must be >= 1, got %d", k)
	}
	if len(seq) < k {
		return nil, ErrSequenceTooShort
	}

	n := len(seq) - k + 1
	ix := &Index{
		Alphabet: a,
		K:        k,
		Last:     make([]int32, alphabet.Ipow(a.Len(), k)),
		Prev:     make([]int32, n),
		Codes:    make([]int32, n),
	}
	for i := 0; i < n; i++ {
		id, err := alphabet.EncodeTuple(a, seq[i:i+k])
		if err != nil {
			return nil, err
		}
		code := int32(id - 1)
		ix.Codes[i] = code
		if head := ix.Last[code]; head == 0 {
			ix.Prev[i] = 0
		} else {
			ix.Prev[i] = head
		}
		ix.Last[code] = int32(i + 1)
	}
	return ix, nil
}

// Chain is a cursor over the occurrence chain for a single tuple code,
// yielding positions from most recent to oldest.
type Chain struct {
	prev []int32
	pos  int32
}

// Chain returns a cursor over the occurrences of the zero-based tuple code.
func (ix *Index) Chain(code int32) Chain {
	return Chain{prev: ix.Prev, pos: ix.Last[code]}
}

// Next advances the cursor, returning the next (in most-recent-first order)
// zero-based position, or ok=false once the chain is exhausted.
func (c *Chain) Next() (pos int, ok bool) {
	if c.pos == 0 {
		return 0, false
	}
	p := int(c.pos - 1)
	c.pos = c.prev[p]
	return p, true
}

// Active reports whether the chain for a tuple code still has a reachable
// head, i.e. whether it has not been suppressed by SuppressRepeats.
func (ix *Index) Active(code int32) bool {
	return ix.Last[code] != 0
}

// SuppressRepeats zeroes the chain head of every tuple code occurring more
// than maxRepeat times, dropping that code's class from future seeding
// without disturbing the positional Prev links, which are left addressable
// only for provenance; this is the "repeat suppression" used by the fast
// comparison path to stop over-represented tuples such as homopolymer runs
// from dominating the seed set. It returns the number of codes suppressed.
func (ix *Index) SuppressRepeats(maxRepeat int) int {
	suppressed := 0
	for code := range ix.Last {
		n := 0
		c := ix.Chain(int32(code))
		for {
			_, ok := c.Next()
			if !ok {
				break
			}
			n++
			if n > maxRepeat {
				ix.Last[code] = 0
				suppressed++
				break
			}
		}
	}
	return suppressed
}
