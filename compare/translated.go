// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compare

import (
	"github.com/kortschak/dotplot/alphabet"
	"github.com/kortschak/dotplot/dotstore"
	"github.com/kortschak/dotplot/extend"
	"github.com/kortschak/dotplot/translate"
)

// TranslatedCompare compares s1 and s2 at the amino acid level: both are
// translated into their three forward reading frames, and every one of the
// nine frame pairings is searched for amino acid matches with a relaxed
// comparison (mismatch scaled down by three, no minimum length beyond the
// seed itself). Each amino acid match only proposes a candidate region;
// synonymous codons can hide real nucleotide mismatches behind an identical
// translation, so every candidate is re-extended from scratch at nucleotide
// resolution, using the caller's real Window and Mismatch, and is kept only
// if that nucleotide-level extension clears opt.MinMatch. This lets
// distantly related coding sequences, whose nucleotide identity has drifted
// but whose translation has not, still produce a dot-plot match, without
// overstating how long the nucleotide-level match actually is.
func TranslatedCompare(s1, s2 []byte, opt Options) (*dotstore.Store, error) {
	f1, err := translate.Frames(s1)
	if err != nil {
		return nil, err
	}
	f2, err := translate.Frames(s2)
	if err != nil {
		return nil, err
	}

	// The amino stage only seeds candidates; it must never itself be the
	// filter that decides whether a match is long enough, so its minimum
	// match length is relaxed to the seed length (the shortest length
	// Compare can ever report) rather than the caller's real MinMatch.
	aminoOpt := Options{
		K:        opt.K,
		Window:   opt.Window,
		Mismatch: opt.Mismatch / 3,
		MinMatch: opt.K,
	}

	store := dotstore.New()
	store.SetMaxX(len(s1))
	store.SetMaxY(len(s2))

	isWildcard := func(b byte) bool { return alphabet.DNA.IsWildcard(b) }
	for xframe := 0; xframe < 3; xframe++ {
		for yframe := 0; yframe < 3; yframe++ {
			if len(f1[xframe]) < opt.K || len(f2[yframe]) < opt.K {
				continue
			}
			hits, err := Compare(f1[xframe], f2[yframe], alphabet.Protein, aminoOpt)
			if err != nil {
				return nil, err
			}
			var extendErr error
			hits.Each(func(d dotstore.Dot) {
				if extendErr != nil {
					return
				}
				x := d.X*3 + xframe
				y := d.Y*3 + yframe
				length, err := extend.Length(s1, s2, x, y, 0, opt.Window, opt.Mismatch, isWildcard)
				if err != nil {
					extendErr = err
					return
				}
				if length >= opt.MinMatch {
					store.Append(x, y, length)
				}
			})
			if extendErr != nil {
				return nil, extendErr
			}
		}
	}
	return store, nil
}
