// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"errors"
	"testing"

	"github.com/kortschak/dotplot/dotstore"
)

func buildGrid(t *testing.T, n int) (*dotstore.Store, *Tree) {
	t.Helper()
	store := dotstore.New()
	tree := New(n-1, n-1)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			ref := store.Append(x, y, 1)
			tree.Insert(ref)
		}
	}
	return store, tree
}

func TestHundredByHundredGrid(t *testing.T) {
	_, tree := buildGrid(t, 100)

	if got := len(tree.Query(10, 10, 19, 19)); got != 100 {
		t.Errorf("10x10 block query returned %d, want 100", got)
	}
	if got := len(tree.Query(0, 0, 99, 99)); got != 10000 {
		t.Errorf("full query returned %d, want 10000", got)
	}

	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x += 2 {
			if err := tree.Delete(x, y); err != nil {
				t.Fatalf("Delete(%d,%d): %v", x, y, err)
			}
		}
	}
	if got := len(tree.Query(0, 0, 99, 99)); got != 5000 {
		t.Errorf("after deleting every alternate point, query returned %d, want 5000", got)
	}
}

func TestDeleteMissingReturnsNotFound(t *testing.T) {
	tree := New(10, 10)
	tree.Insert(dotstore.New().Append(1, 1, 1))
	if err := tree.Delete(5, 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestInsertDuplicateCoordinateMergesMax(t *testing.T) {
	store := dotstore.New()
	tree := New(100, 100)
	tree.Insert(store.Append(5, 5, 3))
	tree.Insert(store.Append(5, 5, 30))
	tree.Insert(store.Append(5, 5, 10))

	refs := tree.Query(5, 5, 5, 5)
	if len(refs) != 1 {
		t.Fatalf("got %d entries at (5,5), want 1", len(refs))
	}
	if refs[0].Length() != 30 {
		t.Fatalf("Length() = %d, want 30 (max of inserted lengths)", refs[0].Length())
	}
}

func TestLeafSplitsPastCapacity(t *testing.T) {
	store := dotstore.New()
	tree := New(1000, 1000)
	for i := 0; i < leafCapacity+5; i++ {
		tree.Insert(store.Append(i*10, i*10, i))
	}
	refs := tree.Query(0, 0, 1000, 1000)
	if len(refs) != leafCapacity+5 {
		t.Fatalf("got %d dots after split, want %d", len(refs), leafCapacity+5)
	}
}

func TestLongestInRowAndColumn(t *testing.T) {
	store := dotstore.New()
	tree := New(100, 100)
	tree.Insert(store.Append(10, 20, 3))
	tree.Insert(store.Append(50, 20, 40))
	tree.Insert(store.Append(90, 20, 7))
	tree.Insert(store.Append(30, 60, 5))

	row, ok := tree.LongestInRow(20)
	if !ok || row.Length() != 40 {
		t.Fatalf("LongestInRow(20) = %v, %v, want length 40", row, ok)
	}
	col, ok := tree.LongestInColumn(30)
	if !ok || col.Length() != 5 {
		t.Fatalf("LongestInColumn(30) = %v, %v, want length 5", col, ok)
	}
	if _, ok := tree.LongestInColumn(99); ok {
		t.Fatal("LongestInColumn on an empty column should report false")
	}
}

func TestAt(t *testing.T) {
	store := dotstore.New()
	tree := New(100, 100)
	tree.Insert(store.Append(42, 7, 9))

	ref, ok := tree.At(42, 7)
	if !ok || ref.Length() != 9 {
		t.Fatalf("At(42,7) = %v, %v, want length 9, true", ref, ok)
	}
	if _, ok := tree.At(1, 1); ok {
		t.Fatal("At on an empty cell should report false")
	}
}
