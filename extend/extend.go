// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extend implements gap-tolerant extension of a k-tuple seed match
// into the longest run that still satisfies a sliding mismatch-count
// window, the core primitive shared by the exhaustive and fast comparison
// drivers in package compare.
package extend

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when the window and mismatch parameters
// passed to Length do not describe a usable sliding window.
var ErrInvalidParameter = errors.New("extend: invalid window parameters")

// Length extends a seed match of length k, anchored at p1 in s1 and p2 in
// s2, for as long as a window of size window contains no more than
// mismatch mismatching positions. isWildcard, if non-nil, marks symbols of
// s1 that always count as a mismatch regardless of what they are paired
// against; pass nil to disable wildcard handling.
//
// The seed itself (the first k symbols) is assumed to already match and is
// not re-examined; extension begins at offset k and proceeds one symbol at
// a time using a circular mismatch-count buffer of size window. It stops
// either because one of the sequences is exhausted, in which case the
// full extended length is returned, or because pushing the next symbol
// into the window would exceed mismatch, in which case the length is
// trimmed back by one to exclude that symbol.
func Length(s1, s2 []byte, p1, p2, k, window, mismatch int, isWildcard func(byte) bool) (int, error) {
	if window < 1 {
		return 0, fmt.Errorf("%w: window must be >= 1, got %d", ErrInvalidParameter, window)
	}
	if window < k {
		return 0, fmt.Errorf("%w: window (%d) must be >= k (%d)", ErrInvalidParameter, window, k)
	}
	if mismatch >= window {
		return 0, fmt.Errorf("%w: mismatch (%d) must be < window (%d)", ErrInvalidParameter, mismatch, window)
	}

	buf := make([]byte, window)
	sum := 0
	d := k
	for {
		if p1+d >= len(s1) || p2+d >= len(s2) {
			// One of the sequences has been exhausted without exceeding
			// the mismatch budget: d already counts every accepted symbol.
			return d, nil
		}

		var bit byte
		switch {
		case isWildcard != nil && isWildcard(s1[p1+d]):
			bit = 1
		case s1[p1+d] != s2[p2+d]:
			bit = 1
		}
		slot := d % window
		sum -= int(buf[slot])
		buf[slot] = bit
		sum += int(bit)
		d++

		if sum > mismatch {
			// The symbol just folded into the window pushed the
			// mismatch count over budget: it is not part of the match.
			return d - 1, nil
		}
	}
}
