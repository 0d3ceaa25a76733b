// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dotplot compares two nucleotide sequences and renders the result as a
// dot-matrix heatmap, optionally caching the raw match set to disk between
// runs.
package main

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/golang/snappy"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kortschak/dotplot"
	dpalphabet "github.com/kortschak/dotplot/alphabet"
	"github.com/kortschak/dotplot/dotgrid"
	"github.com/kortschak/dotplot/dotstore"
)

var (
	seq1 = flag.String("seq1", "", "first input fasta sequence file (required)")
	seq2 = flag.String("seq2", "", "second input fasta sequence file; defaults to seq1 for a self comparison")

	k         = flag.Int("k", 10, "tuple size used to seed matches")
	window    = flag.Int("window", 20, "sliding mismatch window used to extend a seed")
	mismatch  = flag.Int("mismatch", 2, "mismatches tolerated within window")
	minMatch  = flag.Int("minmatch", 20, "minimum reported match length (exhaustive comparison only)")
	maxRepeat = flag.Int("maxrepeat", 0, "with -fast, suppress tuples occurring more than this many times; 0 disables suppression")
	fast      = flag.Bool("fast", false, "use the single-pass lockstep comparison instead of exhaustive seed-and-extend")
	revComp   = flag.Bool("rc", false, "with -fast, also compare against the reverse complement of seq2")

	scale = flag.Float64("scale", 1, "sequence positions per output raster cell")

	cacheIn  = flag.String("cache-in", "", "read a cached, snappy-compressed match buffer instead of comparing")
	cacheOut = flag.String("cache-out", "", "write the match buffer to this file, snappy-compressed, after comparing")

	out = flag.String("out", "dotplot.png", "output heatmap PNG file name")
)

func main() {
	flag.Parse()
	if *seq1 == "" && *cacheIn == "" {
		fmt.Fprintln(os.Stderr, "invalid argument: must have seq1 or cache-in set")
		flag.Usage()
		os.Exit(1)
	}

	var (
		comp       *dotplot.Comparison
		lenX, lenY int
	)
	if *cacheIn != "" {
		store, n1, n2, err := loadCache(*cacheIn)
		if err != nil {
			log.Fatalf("failed to load cache %q: %v", *cacheIn, err)
		}
		comp = dotplot.NewComparison(store)
		lenX, lenY = n1, n2
	} else {
		s1, err := readFasta(*seq1)
		if err != nil {
			log.Fatalf("failed to read %q: %v", *seq1, err)
		}
		s2 := s1
		if *seq2 != "" {
			s2, err = readFasta(*seq2)
			if err != nil {
				log.Fatalf("failed to read %q: %v", *seq2, err)
			}
		}
		lenX, lenY = len(s1), len(s2)

		log.Printf("comparing %d bases against %d bases", lenX, lenY)
		if *fast {
			forward, reverse, stats, err := dotplot.FastCompare(s1, s2, dpalphabet.DNA, dotplot.FastOptions{
				Window:            *window,
				Mismatch:          *mismatch,
				MaxK:              *k,
				MaxRepeat:         *maxRepeat,
				ReverseComplement: *revComp,
				SelfCompare:       *seq2 == "",
			})
			if err != nil {
				log.Fatalf("fast comparison failed: %v", err)
			}
			log.Printf("suppressed %d tuple classes, extended %d seeds, emitted %d matches",
				stats.SuppressedClasses, stats.SeedsExtended, stats.MatchesEmitted)
			comp = forward
			if *revComp {
				reverse.Store.Each(func(d dotstore.Dot) {
					comp.Store.Append(d.X, d.Y, d.Length)
				})
			}
		} else {
			var err error
			comp, err = dotplot.Compare(s1, s2, dpalphabet.DNA, dotplot.Options{
				K: *k, Window: *window, Mismatch: *mismatch, MinMatch: *minMatch,
			})
			if err != nil {
				log.Fatalf("comparison failed: %v", err)
			}
		}
		log.Printf("found %d matches", comp.Store.Count())

		if *cacheOut != "" {
			if err := saveCache(*cacheOut, comp.Store); err != nil {
				log.Fatalf("failed to write cache %q: %v", *cacheOut, err)
			}
		}
	}

	comp.CreateIndex()
	defer comp.DestroyIndex()

	grid, err := comp.Grid(0, 0, float64(lenX), float64(lenY), *scale, *window)
	if err != nil {
		log.Fatalf("failed to build raster: %v", err)
	}

	if err := renderHeatmap(grid, *out); err != nil {
		log.Fatalf("failed to render %q: %v", *out, err)
	}
	log.Printf("wrote %q", *out)
}

// readFasta reads the first sequence of a fasta file and returns its bases.
func readFasta(name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA))
	sc := seqio.NewScanner(r)
	if !sc.Next() {
		if err := sc.Error(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("dotplot: %q contains no sequences", name)
	}
	s := sc.Seq().(*linear.Seq)
	return []byte(s.Seq.String()), nil
}

// saveCache writes the comparison's dot buffer to name, snappy-compressed.
// ToBuffer's header already carries the sequence extents the comparison was
// run over, so a later run can rebuild its raster without rereading the
// source fasta files.
func saveCache(name string, store *dotstore.Store) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	w := snappy.NewBufferedWriter(f)
	if err := binary.Write(w, binary.LittleEndian, store.ToBuffer()); err != nil {
		return err
	}
	return w.Close()
}

func loadCache(name string) (store *dotstore.Store, lenX, lenY int, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	r := snappy.NewReader(bufio.NewReader(f))
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, 0, 0, err
	}
	buf := make([]int32, len(raw)/4)
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, buf); err != nil {
		return nil, 0, 0, err
	}

	store = dotstore.New()
	if err := store.FromBuffer(buf); err != nil {
		return nil, 0, 0, err
	}
	return store, store.MaxX(), store.MaxY(), nil
}

// renderHeatmap writes grid as a luminance-equalized PNG using a heat
// palette, the simplest rendering of the dot-matrix the ray intensity
// formula supports.
func renderHeatmap(grid *dotgrid.Grid, name string) error {
	lum := grid.Luminance()

	img := gridImage{grid: grid, lum: lum}
	p := plot.New()
	h := plotter.NewHeatMap(img, palette.Heat(256, 1))
	p.Add(h)
	p.X.Label.Text = "sequence 1 position"
	p.Y.Label.Text = "sequence 2 position"

	return p.Save(8*vg.Inch, 8*vg.Inch, name)
}

// gridImage adapts a dotgrid.Grid to plotter.GridXYZ.
type gridImage struct {
	grid *dotgrid.Grid
	lum  []byte
}

func (g gridImage) Dims() (c, r int) { return g.grid.Width(), g.grid.Height() }
func (g gridImage) X(c int) float64  { return float64(c) }
func (g gridImage) Y(r int) float64  { return float64(r) }
func (g gridImage) Z(c, r int) float64 {
	return float64(g.lum[r*g.grid.Width()+c])
}
