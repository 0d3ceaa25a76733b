// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"errors"

	"github.com/kortschak/dotplot/alphabet"
	"github.com/kortschak/dotplot/extend"
	"github.com/kortschak/dotplot/ktuple"
	"github.com/kortschak/dotplot/quadtree"
)

// The error values below collapse the lower-level packages' sentinel
// errors into the handful of conditions callers of this package need to
// distinguish: a malformed sequence or parameter, a spatial query that
// needs an index that has not been built, or a query that named a point
// absent from one that has.
var (
	// ErrInvalidSymbol is returned when a sequence contains a byte
	// outside the comparison's alphabet.
	ErrInvalidSymbol = alphabet.ErrInvalidSymbol

	// ErrSequenceTooShort is returned when a sequence has fewer symbols
	// than the tuple size used to index it.
	ErrSequenceTooShort = ktuple.ErrSequenceTooShort

	// ErrInvalidParameter is returned when the window and mismatch
	// parameters of a match extension are out of range. It is package
	// extend's value; a minimum match length below k or a MaxK below 1 is
	// reported with compare.ErrInvalidParameter, and a bad grid region,
	// scale or dimension with dotgrid.ErrInvalidParameter, which are
	// distinct values.
	ErrInvalidParameter = extend.ErrInvalidParameter

	// ErrIndexRequired is returned by Comparison methods that need a
	// quad-tree index built with CreateIndex first.
	ErrIndexRequired = errors.New("dotplot: index required; call CreateIndex first")

	// ErrNotFound is returned when a query names coordinates absent from
	// an index.
	ErrNotFound = quadtree.ErrNotFound
)
