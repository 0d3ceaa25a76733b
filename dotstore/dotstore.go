// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dotstore holds the matches produced by a sequence comparison as
// a flat, append-friendly collection of (x, y, length) dots. Dots are held
// in a doubly linked chain of fixed-capacity chunks so that appending never
// invalidates addresses handed out by previous appends, which lets package
// quadtree index a store by reference rather than by copying every dot.
package dotstore

import "fmt"

// chunkCapacity is the number of dots held per chunk.
const chunkCapacity = 8192

// Dot is a single matching diagonal run: a length-long run of matching (or
// gap-tolerated) symbols starting at (X, Y) in the two compared sequences.
type Dot struct {
	X, Y, Length int
}

type chunk struct {
	dots       [chunkCapacity]Dot
	n          int
	next, prev *chunk
}

func (c *chunk) full() bool { return c.n >= chunkCapacity }

// Store is a chunked arena of dots.
type Store struct {
	head, tail *chunk
	count      int
	maxX, maxY int
}

// New returns an empty Store.
func New() *Store { return &Store{} }

// Count returns the number of dots currently held.
func (s *Store) Count() int { return s.count }

// MaxX returns the largest X coordinate appended, or the value set by
// SetMaxX, whichever is larger.
func (s *Store) MaxX() int { return s.maxX }

// MaxY returns the largest Y coordinate appended, or the value set by
// SetMaxY, whichever is larger.
func (s *Store) MaxY() int { return s.maxY }

// SetMaxX records a lower bound on the store's X extent, for use when the
// compared sequence's length is known even though it may not be reached by
// any dot, such as when priming an index over an empty store.
func (s *Store) SetMaxX(x int) {
	if x > s.maxX {
		s.maxX = x
	}
}

// SetMaxY records a lower bound on the store's Y extent; see SetMaxX.
func (s *Store) SetMaxY(y int) {
	if y > s.maxY {
		s.maxY = y
	}
}

// Ref is a stable reference to a dot held by a Store, valid for as long as
// no Delete is called on the chunk it points into. A quad-tree indexing a
// store holds Refs rather than Dot values so that duplicate-coordinate
// merges (see package quadtree) are visible to every other holder of the
// same Ref.
type Ref struct {
	dot *Dot
}

// X returns the referenced dot's X coordinate.
func (r Ref) X() int { return r.dot.X }

// Y returns the referenced dot's Y coordinate.
func (r Ref) Y() int { return r.dot.Y }

// Length returns the referenced dot's match length.
func (r Ref) Length() int { return r.dot.Length }

// SetLength updates the referenced dot's match length in place.
func (r Ref) SetLength(length int) { r.dot.Length = length }

// Dot returns a copy of the referenced dot's current value.
func (r Ref) Dot() Dot { return *r.dot }

// Append adds a new dot and returns a stable reference to it.
func (s *Store) Append(x, y, length int) Ref {
	s.SetMaxX(x)
	s.SetMaxY(y)

	c := s.tail
	if c == nil || c.full() {
		c = &chunk{prev: s.tail}
		if s.tail != nil {
			s.tail.next = c
		} else {
			s.head = c
		}
		s.tail = c
	}
	c.dots[c.n] = Dot{X: x, Y: y, Length: length}
	ref := Ref{dot: &c.dots[c.n]}
	c.n++
	s.count++
	return ref
}

// locate returns the chunk holding the i-th dot in append order and its
// index within that chunk.
func (s *Store) locate(i int) (*chunk, int) {
	c := s.head
	for c != nil && i >= c.n {
		i -= c.n
		c = c.next
	}
	return c, i
}

// Get returns the i-th dot, in the order dots were appended (accounting for
// any prior deletions), and whether i was in range.
func (s *Store) Get(i int) (Dot, bool) {
	if i < 0 || i >= s.count {
		return Dot{}, false
	}
	c, j := s.locate(i)
	return c.dots[j], true
}

// Delete removes the i-th dot, shifting later dots in the same chunk down
// to close the gap. This invalidates any Ref taken into that chunk at or
// after index i; deleting is expected to happen only while no quad-tree is
// indexing the store. Delete panics if i is out of range, since an
// out-of-range index can only be a programming error.
func (s *Store) Delete(i int) {
	if i < 0 || i >= s.count {
		panic(fmt.Sprintf("dotstore: delete index %d out of range [0,%d)", i, s.count))
	}
	c, j := s.locate(i)
	copy(c.dots[j:c.n-1], c.dots[j+1:c.n])
	c.n--
	s.count--
}

// Empty discards every dot, resetting the store to its initial state.
func (s *Store) Empty() {
	s.head, s.tail = nil, nil
	s.count, s.maxX, s.maxY = 0, 0, 0
}

// Each calls fn once for every dot currently held, in append order.
func (s *Store) Each(fn func(Dot)) {
	for c := s.head; c != nil; c = c.next {
		for i := 0; i < c.n; i++ {
			fn(c.dots[i])
		}
	}
}

// EachRef calls fn once for every dot currently held, passing a stable
// reference rather than a copy. It is used to build a quad-tree index over
// the store.
func (s *Store) EachRef(fn func(Ref)) {
	for c := s.head; c != nil; c = c.next {
		for i := 0; i < c.n; i++ {
			fn(Ref{dot: &c.dots[i]})
		}
	}
}

// Filter returns a new Store holding only the dots at least minLength long,
// inheriting the source store's extent.
func (s *Store) Filter(minLength int) *Store {
	out := New()
	out.maxX, out.maxY = s.maxX, s.maxY
	s.Each(func(d Dot) {
		if d.Length >= minLength {
			out.Append(d.X, d.Y, d.Length)
		}
	})
	return out
}

// Interpolate appends a successor dot for every dot longer than window, at
// (X+window, Y+window) with the remaining length, and so on until the
// remainder is exhausted. It is used to keep long matches from being
// invisible to per-window rendering passes such as package dotgrid's
// area-match counting, which otherwise only sees a match's starting point.
// New dots are collected separately and appended only once every existing
// dot has been examined, so that synthesized dots are never themselves
// re-interpolated in the same call.
func (s *Store) Interpolate(window int) {
	if window <= 0 {
		return
	}
	extra := New()
	s.Each(func(d Dot) {
		for remaining := d.Length - window; remaining > 0; remaining -= window {
			step := (d.Length - remaining) / window
			extra.Append(d.X+step*window, d.Y+step*window, remaining)
		}
	})
	extra.Each(func(d Dot) {
		s.Append(d.X, d.Y, d.Length)
	})
}

// ToBuffer serializes the store to the persistence format shared with
// FromBuffer: [maxX, maxY, N, x0, y0, len0, x1, y1, len1, ...].
func (s *Store) ToBuffer() []int32 {
	buf := make([]int32, 3+3*s.count)
	buf[0] = int32(s.maxX)
	buf[1] = int32(s.maxY)
	buf[2] = int32(s.count)
	i := 3
	s.Each(func(d Dot) {
		buf[i] = int32(d.X)
		buf[i+1] = int32(d.Y)
		buf[i+2] = int32(d.Length)
		i += 3
	})
	return buf
}

// BufferSize returns the number of int32 words a serialized buffer occupies
// given only its header, without needing the rest of the buffer present.
func BufferSize(buf []int32) int {
	return 3 + 3*int(buf[2])
}

// FromBuffer replaces the store's contents with the dots encoded in buf, in
// the format produced by ToBuffer.
func (s *Store) FromBuffer(buf []int32) error {
	if len(buf) < 3 {
		return fmt.Errorf("dotstore: buffer too short for header: %d words", len(buf))
	}
	n := int(buf[2])
	want := 3 + 3*n
	if len(buf) < want {
		return fmt.Errorf("dotstore: buffer declares %d dots but has only %d words", n, len(buf))
	}

	s.Empty()
	s.maxX = int(buf[0])
	s.maxY = int(buf[1])
	for i := 0; i < n; i++ {
		off := 3 + 3*i
		s.Append(int(buf[off]), int(buf[off+1]), int(buf[off+2]))
	}
	return nil
}
