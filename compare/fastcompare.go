// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compare

import (
	"fmt"

	"github.com/kortschak/dotplot/alphabet"
	"github.com/kortschak/dotplot/dotstore"
	"github.com/kortschak/dotplot/extend"
	"github.com/kortschak/dotplot/ktuple"
)

// FastOptions configures FastCompare.
type FastOptions struct {
	Window    int // Sliding mismatch-window size used to extend a seed.
	Mismatch  int // Maximum mismatches tolerated within Window.
	MaxK      int // Upper bound on the tuple size derived from Window.
	MaxRepeat int // Tuples occurring more than this many times are suppressed; 0 disables suppression.

	// ReverseComplement, when set, also searches the reverse complement
	// of s2 and returns its matches as a second store. a must have a
	// complement mapping (see alphabet.Alphabet.WithComplement).
	ReverseComplement bool

	// SelfCompare must be set by the caller when s2 is known to be
	// identical to s1, so that the forward pass can restrict itself to
	// one triangle of the comparison and mirror matches across the
	// diagonal, rather than finding and reporting every match twice.
	SelfCompare bool
}

func (o FastOptions) validate() error {
	if o.MaxK < 1 {
		return fmt.Errorf("%w: maxk (%d) must be >= 1", ErrInvalidParameter, o.MaxK)
	}
	return nil
}

// FastStats reports diagnostics about a FastCompare run, mirroring the
// suppressed/qualified seed counters the original fast comparison routine
// tracked for post-run reporting.
type FastStats struct {
	SuppressedClasses int // Tuple classes dropped by repeat suppression.
	SeedsExtended      int // Seeds that survived previous-base skip and were extended.
	MatchesEmitted     int // Extended seeds that reached at least length k.
}

// FastCompare walks s1 and s2's k-tuples in lockstep, using a tuple size
// derived from min(Window, MaxK). It applies two optimizations not present
// in Compare:
//
// Repeat suppression drops the occurrence chain of any tuple in s1 that
// recurs more than MaxRepeat times, so that a short highly-repetitive
// region (a homopolymer run, a microsatellite) cannot dominate the seed
// set with matches that extend no further than the window itself.
//
// The previous-base skip avoids reporting a seed when the symbol
// immediately before it also matched: such a seed's match is already
// covered by the one found one position earlier, unless that earlier
// seed's tuple class was itself suppressed, in which case this seed is the
// only remaining witness for the match and must not be skipped.
func FastCompare(s1, s2 []byte, a *alphabet.Alphabet, opt FastOptions) (forward, reverse *dotstore.Store, stats FastStats, err error) {
	if err := opt.validate(); err != nil {
		return nil, nil, FastStats{}, err
	}

	k := opt.MaxK
	if opt.Window < k {
		k = opt.Window
	}
	if k < 1 {
		k = 1
	}

	idx, err := ktuple.Build(s1, k, a)
	if err != nil {
		return nil, nil, FastStats{}, err
	}
	if opt.MaxRepeat > 0 {
		stats.SuppressedClasses = idx.SuppressRepeats(opt.MaxRepeat)
	}

	forward = dotstore.New()
	forward.SetMaxX(len(s1))
	forward.SetMaxY(len(s2))
	if err := fastPass(s1, s2, a, idx, k, opt, false, forward, &stats); err != nil {
		return nil, nil, FastStats{}, err
	}

	reverse = dotstore.New()
	reverse.SetMaxX(len(s1))
	reverse.SetMaxY(len(s2))
	if opt.ReverseComplement {
		rc, err := a.ReverseComplement(s2)
		if err != nil {
			return nil, nil, FastStats{}, err
		}
		if err := fastPass(s1, rc, a, idx, k, opt, true, reverse, &stats); err != nil {
			return nil, nil, FastStats{}, err
		}
	}

	return forward, reverse, stats, nil
}

func fastPass(s1, seq2 []byte, a *alphabet.Alphabet, idx *ktuple.Index, k int, opt FastOptions, rc bool, store *dotstore.Store, stats *FastStats) error {
	isWildcard := func(b byte) bool { return a.IsWildcard(b) }
	selfDiag := opt.SelfCompare && !rc

	for j := 0; j <= len(seq2)-k; j++ {
		id, err := alphabet.EncodeTuple(a, seq2[j:j+k])
		if err != nil {
			// An unseedable window (an invalid symbol) simply yields no
			// seeds at this position; it is not a fatal condition for the
			// rest of the comparison.
			continue
		}
		code := int32(id - 1)

		c := idx.Chain(code)
		for {
			i, ok := c.Next()
			if !ok {
				break
			}
			if selfDiag && i < j {
				continue
			}
			if i > 0 && j > 0 && s1[i-1] == seq2[j-1] {
				prev := idx.Codes[i-1]
				if idx.Active(prev) {
					// The seed one position earlier is still live and
					// will (or did) report a match that already covers
					// this one.
					continue
				}
			}
			stats.SeedsExtended++

			length, err := extend.Length(s1, seq2, i, j, k, opt.Window, opt.Mismatch, isWildcard)
			if err != nil {
				return err
			}
			if length < k {
				continue
			}
			stats.MatchesEmitted++
			store.Append(i, j, length)
			if selfDiag && i != j {
				store.Append(j, i, length)
			}
		}
	}
	return nil
}
