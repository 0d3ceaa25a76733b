// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compare implements the sequence comparison drivers of the
// dotplot suite: Compare, an exhaustive seed-and-extend search over every
// k-tuple occurrence; FastCompare, a single pass over s2's k-tuples against
// s1's inverted index that trades some of Compare's exhaustiveness for
// speed on long, repeat-rich sequences; and TranslatedCompare, which
// searches the amino acid translations of both sequences.
package compare

import (
	"errors"
	"fmt"

	"github.com/kortschak/dotplot/alphabet"
	"github.com/kortschak/dotplot/dotstore"
	"github.com/kortschak/dotplot/extend"
	"github.com/kortschak/dotplot/ktuple"
)

// ErrInvalidParameter is returned when an Options or FastOptions value does
// not describe a usable comparison.
var ErrInvalidParameter = errors.New("compare: invalid parameter")

// Options configures Compare.
type Options struct {
	K        int // Tuple size used to seed matches.
	Window   int // Sliding mismatch-window size used to extend a seed.
	Mismatch int // Maximum mismatches tolerated within Window.
	MinMatch int // Minimum extended length for a match to be reported.
}

func (o Options) validate() error {
	if o.MinMatch < o.K {
		return fmt.Errorf("%w: minmatch (%d) must be >= k (%d)", ErrInvalidParameter, o.MinMatch, o.K)
	}
	return nil
}

// Compare finds every seed-and-extend match between s1 and s2: s1 is
// indexed by its k-tuples, then for every k-tuple occurrence in s2, every
// matching occurrence in s1 is extended and reported if it is at least
// MinMatch long.
func Compare(s1, s2 []byte, a *alphabet.Alphabet, opt Options) (*dotstore.Store, error) {
	if err := opt.validate(); err != nil {
		return nil, err
	}
	idx, err := ktuple.Build(s1, opt.K, a)
	if err != nil {
		return nil, err
	}
	if len(s2) < opt.K {
		return nil, ktuple.ErrSequenceTooShort
	}

	store := dotstore.New()
	store.SetMaxX(len(s1))
	store.SetMaxY(len(s2))

	isWildcard := func(b byte) bool { return a.IsWildcard(b) }
	for j := 0; j <= len(s2)-opt.K; j++ {
		id, err := alphabet.EncodeTuple(a, s2[j:j+opt.K])
		if err != nil {
			return nil, err
		}
		c := idx.Chain(int32(id - 1))
		for {
			i, ok := c.Next()
			if !ok {
				break
			}
			length, err := extend.Length(s1, s2, i, j, opt.K, opt.Window, opt.Mismatch, isWildcard)
			if err != nil {
				return nil, err
			}
			if length >= opt.MinMatch {
				store.Append(i, j, length)
			}
		}
	}
	return store, nil
}
