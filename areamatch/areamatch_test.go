// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package areamatch

import (
	"testing"

	"github.com/kortschak/dotplot/dotstore"
	"github.com/kortschak/dotplot/quadtree"
)

// diagonalTree builds a tree over a single descending-length diagonal:
// dots at (i,i) with length 300-i, for i in [0,300), mirroring a
// self-comparison whose matches all run along the main diagonal.
func diagonalTree(t *testing.T) *quadtree.Tree {
	t.Helper()
	store := dotstore.New()
	tree := quadtree.New(300, 300)
	for i := 0; i < 300; i++ {
		tree.Insert(store.Append(i, i, 300-i))
	}
	return tree
}

func TestCountAreaMatchesOnDiagonal(t *testing.T) {
	tree := diagonalTree(t)

	cases := []struct {
		x1, y1, x2, y2 float64
		window         int
		want           int
	}{
		{100, 100, 200, 200, 10, 100},
		{0, 0, 10, 10, 10, 10},
		{10, 0, 20, 10, 10, 0},
		{10, 5, 20, 15, 10, 5},
		{250, 250, 300, 300, 10, 50},
	}
	for _, c := range cases {
		got := Count(tree, c.x1, c.y1, c.x2, c.y2, c.window)
		if got != c.want {
			t.Errorf("Count(%v,%v,%v,%v,%v) = %d, want %d", c.x1, c.y1, c.x2, c.y2, c.window, got, c.want)
		}
	}
}

func TestCountAreaMatchesUnitCellIsZeroOrOne(t *testing.T) {
	tree := diagonalTree(t)
	for y := 0; y < 300; y++ {
		for x := 0; x < 300; x++ {
			n := Count(tree, float64(x), float64(y), float64(x+1), float64(y+1), 10)
			if n != 0 && n != 1 {
				t.Fatalf("Count at unit cell (%d,%d) = %d, want 0 or 1", x, y, n)
			}
		}
	}
}

func TestCountAreaMatchesEmptyTree(t *testing.T) {
	tree := quadtree.New(10, 10)
	if got := Count(tree, 0, 0, 10, 10, 3); got != 0 {
		t.Fatalf("Count on empty tree = %d, want 0", got)
	}
}
