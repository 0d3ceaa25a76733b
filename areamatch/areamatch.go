// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package areamatch counts, for an arbitrary floating-point query
// rectangle over a dot-matrix comparison, how many unit diagonal cells
// belonging to a match intersect it. This is the primitive package dotgrid
// downsamples over to build a raster suitable for rendering.
package areamatch

import (
	"math"

	"github.com/kortschak/dotplot/quadtree"
)

// Count returns the number of unit cells of matches indexed by t that
// intersect the rectangle (x1,y1)-(x2,y2), half-open on the high edge.
// window bounds how far to the left of or above the rectangle a match may
// start and still be considered, matching the window used to produce the
// comparison's matches: a longer match could in principle start further
// away and still reach the rectangle, but window is taken as a practical
// bound on match length for the purpose of the spatial pre-query.
func Count(t *quadtree.Tree, x1, y1, x2, y2 float64, window int) int {
	w := float64(window)
	lox := int(math.Floor(x1 - w))
	loy := int(math.Floor(y1 - w))
	hix := int(math.Ceil(x2))
	hiy := int(math.Ceil(y2))

	count := 0
	for _, ref := range t.Query(lox, loy, hix, hiy) {
		dx, dy := float64(ref.X()), float64(ref.Y())
		if !(dx >= x1-w && dy >= y1-w && dx < x2 && dy < y2) {
			continue
		}

		x, y := dx+0.5, dy+0.5
		length := float64(ref.Length())
		switch {
		case x >= x1 && x < x2 && y >= y1 && y < y2:
			count += countInside(t, x, y, length, x2, y2)
		case x >= y-y1+x1 && x < y-y1+x2:
			count += countAbove(t, x, y, length, y1, x2)
		case y > x-x1+y1 && y < x-x1+y2:
			count += countLeft(t, x, y, length, x1, y2)
		}
	}
	return count
}

// countInside handles a match whose start lies inside the rectangle: it
// walks the match's diagonal one cell at a time, stopping either when the
// rectangle's far edge is reached, or earlier if another match's diagonal
// takes over the same cells (found by probing for a dot at each successive
// point), since that match's own contribution should not be double
// counted.
func countInside(t *quadtree.Tree, x, y, length, x2, y2 float64) int {
	protrude := length
	if x+protrude > x2 {
		protrude = x2 - x
	}
	if y+protrude > y2 {
		protrude = y2 - y
	}
	if protrude <= 0 {
		return 0
	}

	n := 0
	xp, yp := int(x), int(y)
	for {
		n++
		protrude -= 1.0
		xp++
		yp++
		if _, ok := t.At(xp, yp); ok {
			break
		}
		if protrude < 1.0 {
			break
		}
	}
	return n
}

// countAbove handles a match whose start lies above the rectangle but
// whose diagonal enters it through the top edge.
func countAbove(t *quadtree.Tree, x, y, length, y1, x2 float64) int {
	if length <= y1-y {
		return 0
	}
	protrude := length - (y1 - y)
	if sigma := length - (x2 - x); sigma > 0 {
		protrude -= sigma
	}

	n := 0
	xp, yp := int(x), int(y)
	for {
		if float64(yp) >= y1 {
			n++
			protrude -= 1.0
		}
		xp++
		yp++
		if _, ok := t.At(xp, yp); ok {
			break
		}
		if protrude < 1.0 {
			break
		}
	}
	return n
}

// countLeft handles a match whose start lies to the left of the rectangle
// but whose diagonal enters it through the left edge.
func countLeft(t *quadtree.Tree, x, y, length, x1, y2 float64) int {
	if length <= x1-x {
		return 0
	}
	protrude := length - (x1 - x)
	if sigma := length - (y2 - y); sigma > 0 {
		protrude -= sigma
	}

	n := 0
	xp, yp := int(x), int(y)
	for {
		if float64(xp) >= x1 {
			n++
			protrude -= 1.0
		}
		xp++
		yp++
		if _, ok := t.At(xp, yp); ok {
			break
		}
		if protrude < 1.0 {
			break
		}
	}
	return n
}
