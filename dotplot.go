// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dotplot computes and indexes dot-matrix sequence comparisons: for
// a pair of sequences, it finds the matching diagonal runs a dot plot would
// draw, stores them compactly, indexes them for spatial queries, and
// downsamples those queries onto a raster fit for rendering.
//
// A Comparison pairs a dotstore.Store holding the raw matches with an
// optional quadtree.Tree spatial index over it, mirroring the lifecycle
// described for the underlying store: built by a comparison driver,
// optionally indexed, queried while the index stands, then discarded.
package dotplot

import (
	"github.com/kortschak/dotplot/alphabet"
	"github.com/kortschak/dotplot/areamatch"
	"github.com/kortschak/dotplot/compare"
	"github.com/kortschak/dotplot/dotgrid"
	"github.com/kortschak/dotplot/dotstore"
	"github.com/kortschak/dotplot/quadtree"
)

// Options is the seed-and-extend comparison configuration; see
// compare.Options.
type Options = compare.Options

// FastOptions is the fast lockstep comparison configuration; see
// compare.FastOptions.
type FastOptions = compare.FastOptions

// Comparison is a dot store together with its optional spatial index.
type Comparison struct {
	Store *dotstore.Store
	tree  *quadtree.Tree
}

// NewComparison wraps an existing dot store, with no index built yet.
func NewComparison(store *dotstore.Store) *Comparison {
	return &Comparison{Store: store}
}

// Compare runs the exhaustive seed-and-extend comparison of s1 against s2
// and returns its result, unindexed.
func Compare(s1, s2 []byte, a *alphabet.Alphabet, opt Options) (*Comparison, error) {
	store, err := compare.Compare(s1, s2, a, opt)
	if err != nil {
		return nil, err
	}
	return NewComparison(store), nil
}

// FastStats is the diagnostic summary returned alongside a FastCompare run;
// see compare.FastStats.
type FastStats = compare.FastStats

// FastCompare runs the lockstep fast comparison of s1 against s2, returning
// the forward-strand result and, if opt.ReverseComplement is set, the
// reverse-complement result as a second Comparison, along with suppression
// and extension diagnostics.
func FastCompare(s1, s2 []byte, a *alphabet.Alphabet, opt FastOptions) (forward, reverse *Comparison, stats FastStats, err error) {
	f, r, stats, err := compare.FastCompare(s1, s2, a, opt)
	if err != nil {
		return nil, nil, FastStats{}, err
	}
	return NewComparison(f), NewComparison(r), stats, nil
}

// CreateIndex builds a quad-tree index over the comparison's current dots.
// The store must not be mutated (appended to, deleted from) while the
// index stands; doing so is a programming error, since the tree holds
// direct references into the store's chunks.
func (c *Comparison) CreateIndex() {
	maxX, maxY := c.Store.MaxX(), c.Store.MaxY()
	if maxX == 0 {
		maxX = 1
	}
	if maxY == 0 {
		maxY = 1
	}
	t := quadtree.New(maxX, maxY)
	c.Store.EachRef(t.Insert)
	c.tree = t
}

// DestroyIndex discards the quad-tree index, if any.
func (c *Comparison) DestroyIndex() {
	c.tree = nil
}

// Indexed reports whether CreateIndex has been called since the last
// DestroyIndex.
func (c *Comparison) Indexed() bool {
	return c.tree != nil
}

// LongestInRow returns the longest match at the given Y coordinate, or nil
// if none exists there.
func (c *Comparison) LongestInRow(y int) (*dotstore.Dot, error) {
	if c.tree == nil {
		return nil, ErrIndexRequired
	}
	ref, ok := c.tree.LongestInRow(y)
	if !ok {
		return nil, nil
	}
	d := ref.Dot()
	return &d, nil
}

// LongestInColumn returns the longest match at the given X coordinate, or
// nil if none exists there.
func (c *Comparison) LongestInColumn(x int) (*dotstore.Dot, error) {
	if c.tree == nil {
		return nil, ErrIndexRequired
	}
	ref, ok := c.tree.LongestInColumn(x)
	if !ok {
		return nil, nil
	}
	d := ref.Dot()
	return &d, nil
}

// CountAreaMatches returns the number of unit diagonal cells of matches
// that intersect the rectangle (x1,y1)-(x2,y2); see areamatch.Count.
func (c *Comparison) CountAreaMatches(x1, y1, x2, y2 float64, window int) (int, error) {
	if c.tree == nil {
		return 0, ErrIndexRequired
	}
	return areamatch.Count(c.tree, x1, y1, x2, y2, window), nil
}

// Grid downsamples the comparison's area-match counts over
// (x1,y1)-(x2,y2) onto a raster of the given cell scale; see
// dotgrid.Calculate.
func (c *Comparison) Grid(x1, y1, x2, y2, scale float64, window int) (*dotgrid.Grid, error) {
	if c.tree == nil {
		return nil, ErrIndexRequired
	}
	return dotgrid.Calculate(c, x1, y1, x2, y2, scale, window)
}
