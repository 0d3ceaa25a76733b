// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"testing"

	"github.com/kortschak/dotplot/alphabet"
	"github.com/kortschak/dotplot/dotstore"
)

func TestCompareLifecycle(t *testing.T) {
	s := []byte("ACGTACGTACGTACGTACGT")
	comp, err := Compare(s, s, alphabet.DNA, Options{K: 3, Window: 4, Mismatch: 0, MinMatch: 3})
	if err != nil {
		t.Fatal(err)
	}
	if comp.Indexed() {
		t.Fatal("new comparison should not be indexed")
	}

	if _, err := comp.CountAreaMatches(0, 0, 1, 1, 4); err != ErrIndexRequired {
		t.Fatalf("got error %v, want ErrIndexRequired", err)
	}
	if _, err := comp.LongestInRow(0); err != ErrIndexRequired {
		t.Fatalf("got error %v, want ErrIndexRequired", err)
	}
	if _, err := comp.Grid(0, 0, 1, 1, 1, 4); err != ErrIndexRequired {
		t.Fatalf("got error %v, want ErrIndexRequired", err)
	}

	comp.CreateIndex()
	defer comp.DestroyIndex()
	if !comp.Indexed() {
		t.Fatal("comparison should be indexed after CreateIndex")
	}

	n, err := comp.CountAreaMatches(0, 0, float64(len(s)), float64(len(s)), 4)
	if err != nil {
		t.Fatal(err)
	}
	if n == 0 {
		t.Fatal("expected at least one area match over the full self-diagonal")
	}

	d, err := comp.LongestInRow(0)
	if err != nil {
		t.Fatal(err)
	}
	if d == nil || d.X != 0 || d.Y != 0 {
		t.Fatalf("got %+v, want the full self-diagonal starting at (0,0)", d)
	}

	grid, err := comp.Grid(0, 0, float64(len(s)), float64(len(s)), 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	if grid.Width() == 0 || grid.Height() == 0 {
		t.Fatal("expected a non-empty raster")
	}

	comp.DestroyIndex()
	if comp.Indexed() {
		t.Fatal("comparison should not be indexed after DestroyIndex")
	}
}

func TestCreateIndexDefaultsEmptyStoreExtent(t *testing.T) {
	// A store that has never had a dot appended or an extent set reports
	// MaxX() == MaxY() == 0; CreateIndex must not build a degenerate
	// zero-size quad-tree box in that case.
	comp := NewComparison(dotstore.New())

	comp.CreateIndex()
	defer comp.DestroyIndex()

	n, err := comp.CountAreaMatches(0, 0, 1, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("got %d, want 0", n)
	}
}

func TestFastCompareLifecycle(t *testing.T) {
	s := []byte("ACGTACGTACGTACGTACGTACGTACGT")
	forward, reverse, stats, err := FastCompare(s, s, alphabet.DNA, FastOptions{
		Window:      6,
		Mismatch:    1,
		MaxK:        4,
		SelfCompare: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if reverse.Store.Count() != 0 {
		t.Fatal("reverse complement was not requested, expected an empty reverse store")
	}
	if forward.Store.Count() == 0 {
		t.Fatal("expected at least one forward match")
	}
	if stats.MatchesEmitted == 0 {
		t.Fatal("expected non-zero match stats")
	}
}
