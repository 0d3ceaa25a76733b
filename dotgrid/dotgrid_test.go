// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotgrid

import (
	"fmt"
	"testing"
)

// constSource always returns the same count, however it is queried.
type constSource struct{ n int }

func (s constSource) CountAreaMatches(x1, y1, x2, y2 float64, window int) (int, error) {
	return s.n, nil
}

// diagSource approximates a diagonal comparison: a cell at (x,y) holds a
// match if x and y fall in the same scale-sized band.
type diagSource struct{ scale float64 }

func (s diagSource) CountAreaMatches(x1, y1, x2, y2 float64, window int) (int, error) {
	if int(x1/s.scale) == int(y1/s.scale) {
		return 1, nil
	}
	return 0, nil
}

func TestCalculateDimensions(t *testing.T) {
	g, err := Calculate(constSource{n: 3}, 0, 0, 100, 50, 10, 5)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 10 || g.Height() != 5 {
		t.Fatalf("dimensions = %dx%d, want 10x5", g.Width(), g.Height())
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) != 3 {
				t.Fatalf("At(%d,%d) = %d, want 3", x, y, g.At(x, y))
			}
		}
	}
}

func TestCalculateRejectsDegenerateRegion(t *testing.T) {
	cases := []struct{ x1, y1, x2, y2, scale float64 }{
		{0, 0, 0, 10, 1},
		{0, 0, 10, 0, 1},
		{0, 0, 10, 10, 0},
		{0, 0, 10, 10, -1},
	}
	for _, c := range cases {
		if _, err := Calculate(constSource{}, c.x1, c.y1, c.x2, c.y2, c.scale, 1); err == nil {
			t.Errorf("%+v: expected error", c)
		}
	}
}

func TestAddInPlace(t *testing.T) {
	a, _ := Calculate(constSource{n: 1}, 0, 0, 10, 10, 5, 1)
	b, _ := Calculate(constSource{n: 2}, 0, 0, 10, 10, 5, 1)
	if err := a.AddInPlace(b); err != nil {
		t.Fatal(err)
	}
	if a.At(0, 0) != 3 {
		t.Fatalf("At(0,0) = %d, want 3", a.At(0, 0))
	}
}

func TestAddInPlaceRejectsMismatchedDimensions(t *testing.T) {
	a, _ := Calculate(constSource{n: 1}, 0, 0, 10, 10, 5, 1)
	b, _ := Calculate(constSource{n: 1}, 0, 0, 10, 10, 2, 1)
	if err := a.AddInPlace(b); err == nil {
		t.Fatal("expected error for mismatched dimensions")
	}
}

func TestFlipInPlace(t *testing.T) {
	g := NewGrid(2, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			g.set(x, y, y*2+x)
		}
	}
	g.FlipInPlace()
	want := [][2]int{{4, 5}, {2, 3}, {0, 1}}
	for y, row := range want {
		for x, v := range row {
			if g.At(x, y) != v {
				t.Errorf("At(%d,%d) = %d, want %d", x, y, g.At(x, y), v)
			}
		}
	}
}

func TestLuminanceAllZeroGridIsWhite(t *testing.T) {
	g, _ := Calculate(constSource{n: 0}, 0, 0, 20, 20, 5, 1)
	lum := g.Luminance()
	for i, v := range lum {
		if v != 255 {
			t.Fatalf("pixel %d = %d, want 255 (an all-zero grid renders white)", i, v)
		}
	}
}

func TestLuminanceUniformNonzeroGridIsBlack(t *testing.T) {
	// Every cell holds the same nonzero count, so it is the 100th
	// percentile of its own cumulative histogram and renders at the dark
	// end, not white: only the all-zero grid gets the white special case.
	g, _ := Calculate(constSource{n: 5}, 0, 0, 20, 20, 5, 1)
	lum := g.Luminance()
	for i, v := range lum {
		if v != 0 {
			t.Fatalf("pixel %d = %d, want 0", i, v)
		}
	}
}

func TestHistogramIsCumulative(t *testing.T) {
	g := NewGrid(2, 2)
	g.set(0, 0, 0)
	g.set(1, 0, 1)
	g.set(0, 1, 1)
	g.set(1, 1, 2)
	hist := g.Histogram()
	want := []int{1, 3, 4}
	for v, w := range want {
		if hist[v] != w {
			t.Errorf("Histogram()[%d] = %d, want %d", v, hist[v], w)
		}
	}
}

func TestLuminanceSpansFullRange(t *testing.T) {
	g, err := Calculate(diagSource{scale: 10}, 0, 0, 100, 100, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	lum := g.Luminance()
	seen := map[byte]bool{}
	for _, v := range lum {
		seen[v] = true
	}
	if !seen[255] {
		t.Error("expected the lowest-count cells to render white (255)")
	}
	if len(seen) < 2 {
		t.Errorf("expected more than one luminance value, got %v", fmt.Sprint(seen))
	}
}
