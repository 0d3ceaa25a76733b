// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dotgrid downsamples a comparison's area-match counts onto an
// integer raster suitable for rendering, and converts that raster to an
// 8-bit luminance image using a histogram-equalized mapping so that sparse
// and dense comparisons both produce a usable image.
package dotgrid

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when a grid is asked to cover a
// degenerate or negative-area region.
var ErrInvalidParameter = errors.New("dotgrid: invalid parameter")

// Source counts area matches over a rectangle, the interface a
// dotplot.Comparison satisfies once indexed.
type Source interface {
	CountAreaMatches(x1, y1, x2, y2 float64, window int) (int, error)
}

// Grid is a two-dimensional raster of area-match counts.
type Grid struct {
	width, height int
	data          []int
}

// NewGrid returns a zeroed Grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{width: width, height: height, data: make([]int, width*height)}
}

// Width returns the grid's horizontal extent in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's vertical extent in cells.
func (g *Grid) Height() int { return g.height }

// At returns the count stored at (x, y).
func (g *Grid) At(x, y int) int { return g.data[y*g.width+x] }

func (g *Grid) set(x, y, v int) { g.data[y*g.width+x] = v }

// Max returns the largest count in the grid, or 0 for an empty grid.
func (g *Grid) Max() int {
	max := 0
	for _, v := range g.data {
		if v > max {
			max = v
		}
	}
	return max
}

// Min returns the smallest count in the grid, or 0 for an empty grid.
func (g *Grid) Min() int {
	if len(g.data) == 0 {
		return 0
	}
	min := g.data[0]
	for _, v := range g.data {
		if v < min {
			min = v
		}
	}
	return min
}

// Calculate downsamples source's area-match counts onto a new Grid: the
// region (x1,y1)-(x2,y2) is divided into cells of side scale, and each
// cell holds the area-match count of its own rectangle under the given
// window.
func Calculate(source Source, x1, y1, x2, y2, scale float64, window int) (*Grid, error) {
	if x2 <= x1 || y2 <= y1 || scale <= 0 {
		return nil, fmt.Errorf("%w: region and scale must have positive extent", ErrInvalidParameter)
	}

	numx := int((x2 - x1) / scale)
	numy := int((y2 - y1) / scale)
	g := NewGrid(numx, numy)
	for y := 0; y < numy; y++ {
		for x := 0; x < numx; x++ {
			cx1 := x1 + float64(x)*scale
			cy1 := y1 + float64(y)*scale
			n, err := source.CountAreaMatches(cx1, cy1, cx1+scale, cy1+scale, window)
			if err != nil {
				return nil, err
			}
			g.set(x, y, n)
		}
	}
	return g, nil
}

// AddInPlace adds other's counts into g, cell by cell. The two grids must
// share the same dimensions.
func (g *Grid) AddInPlace(other *Grid) error {
	if g.width != other.width || g.height != other.height {
		return fmt.Errorf("%w: dimensions (%d,%d) and (%d,%d) differ", ErrInvalidParameter, g.width, g.height, other.width, other.height)
	}
	for i := range g.data {
		g.data[i] += other.data[i]
	}
	return nil
}

// FlipInPlace reverses the grid's row order, turning a top-left-origin
// raster into a bottom-left-origin one or vice versa.
func (g *Grid) FlipInPlace() {
	row := make([]int, g.width)
	for y := 0; y < g.height/2; y++ {
		top := g.data[y*g.width : (y+1)*g.width]
		bot := g.data[(g.height-1-y)*g.width : (g.height-y)*g.width]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
}

// Histogram returns the cumulative histogram of cell counts, indexed by
// count value from 0 to the grid's maximum: Histogram()[v] is the number of
// cells holding a count <= v.
func (g *Grid) Histogram() []int {
	max := g.Max()
	hist := make([]int, max+1)
	for _, v := range g.data {
		hist[v]++
	}
	for i := 1; i <= max; i++ {
		hist[i] += hist[i-1]
	}
	return hist
}

// Luminance renders the grid to an 8-bit grayscale raster using histogram
// equalization, so that the full 0-255 range is used regardless of how
// sparse or dense the underlying counts are: out = 255 -
// 255*N*(H[v]-H[0])/((N-H[0])*N), where H is the cumulative histogram and
// N is the number of cells. A grid whose every cell is zero renders as
// solid white; a grid whose every cell holds the same nonzero value renders
// as solid black.
func (g *Grid) Luminance() []byte {
	hist := g.Histogram()
	n := len(g.data)
	h0 := hist[0]
	out := make([]byte, n)
	if n == h0 {
		for i := range out {
			out[i] = 255
		}
		return out
	}
	fn := float64(n)
	fh0 := float64(h0)
	for i, v := range g.data {
		hv := float64(hist[v])
		out[i] = byte(255 - 255*fn*(hv-fh0)/((fn-fh0)*fn))
	}
	return out
}
