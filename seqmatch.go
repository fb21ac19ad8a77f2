// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package seqmatch

import (
	"unsafe"

	"znkr.io/seqmatch/internal/bindex"
	"znkr.io/seqmatch/internal/blocks"
	"znkr.io/seqmatch/internal/config"
	"znkr.io/seqmatch/internal/gestalt"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal   Op = iota // The elements x[PosX:EndX] and y[PosY:EndY] are identical
	Replace           // x[PosX:EndX] is replaced by y[PosY:EndY]
	Delete            // x[PosX:EndX] is deleted (PosY == EndY)
	Insert            // y[PosY:EndY] is inserted at x[PosX:PosX] (PosX == EndX)
)

// Match describes a run of Len elements that is identical in both inputs:
// x[PosX:PosX+Len] equals y[PosY:PosY+Len] elementwise.
type Match struct {
	PosX, PosY int
	Len        int
}

// Opcode describes one instruction of the edit script that transforms x into y.
//
// The opcodes returned by [Matcher.Opcodes] are ordered and gap-free: the first opcode has
// PosX == PosY == 0, consecutive opcodes share boundaries (PosX of one is EndX of the previous,
// likewise for y), and the last opcode ends at (len(x), len(y)).
type Opcode struct {
	Op         Op
	PosX, EndX int
	PosY, EndY int
}

// Differ is the set of operations a comparison session provides. It is implemented by [Matcher].
type Differ[T comparable] interface {
	SetX(x []T)
	SetY(y []T)
	FindLongestMatch(xlo, xhi, ylo, yhi int) Match
	MatchingBlocks() []Match
	Opcodes() []Opcode
}

// Matcher compares a pair of slices x and y.
//
// A Matcher caches information derived from its inputs: the position index over y is built when y
// is assigned and reused across reassignments of x; matching blocks and opcodes are computed
// lazily on first request and cached until either sequence is reassigned. The junk configuration
// is fixed at construction.
//
// Matcher never mutates its inputs, but it retains them: the caller must not modify the slices
// while the Matcher is in use.
type Matcher[T comparable] struct {
	x, y []T
	cfg  config.Config[T]
	idx  *bindex.Index[T]

	mblocks []blocks.Match // sorted, merged, sentinel-terminated; nil until computed
	matches []Match
	opcodes []Opcode
}

var _ Differ[string] = (*Matcher[string])(nil)

// New creates a Matcher comparing x to y.
//
// The elements of both slices must be hashable. The comparable bound enforces this at compile
// time for concrete types; for interface element types, a dynamically non-comparable value
// panics during assignment rather than during a later search.
//
// The following options are supported: [Junk], [Autojunk]
func New[T comparable](x, y []T, opts ...Option[T]) *Matcher[T] {
	m := &Matcher[T]{
		cfg: config.FromOptions(opts, config.Junk|config.Autojunk),
	}
	m.SetY(y)
	m.SetX(x)
	return m
}

// SetX replaces the first sequence and invalidates cached matching blocks and opcodes. The
// position index depends only on y and stays valid.
//
// If x is the same slice (same backing array and length) as the current first sequence, SetX is a
// no-op.
func (m *Matcher[T]) SetX(x []T) {
	if sameSlice(x, m.x) {
		return
	}
	probe(x)
	m.x = x
	m.invalidate()
}

// SetY replaces the second sequence, rebuilds the position index and the junk classification, and
// invalidates cached matching blocks and opcodes.
//
// If y is the same slice (same backing array and length) as the current second sequence and the
// index has already been built, SetY is a no-op.
//
// [Matcher] computes and caches detailed information about the second sequence, so to compare one
// sequence against many others, assign it with SetY once and reassign the first sequence with
// [Matcher.SetX] repeatedly.
func (m *Matcher[T]) SetY(y []T) {
	if m.idx != nil && sameSlice(y, m.y) {
		return
	}
	m.y = y
	m.idx = bindex.New(y, m.cfg) // hashes every element, fails fast on unhashable values
	m.invalidate()
}

func (m *Matcher[T]) invalidate() {
	m.mblocks = nil
	m.matches = nil
	m.opcodes = nil
}

// sameSlice reports whether a and b share the same backing array and length. Two empty slices are
// considered the same.
func sameSlice[T any](a, b []T) bool {
	return len(a) == len(b) && (len(a) == 0 || unsafe.SliceData(a) == unsafe.SliceData(b))
}

// probe forces every element through the hash function so that a dynamically non-comparable value
// (possible for interface element types) panics at assignment time, not deep inside a search.
func probe[T comparable](s []T) {
	sink := make(map[T]struct{}, 1)
	for _, v := range s {
		sink[v] = struct{}{}
		clear(sink)
	}
}

// FindLongestMatch finds the longest matching block in x[xlo:xhi] and y[ylo:yhi].
//
// Of all maximal matching blocks in the two ranges, the result is the one that starts earliest in
// x, and of all those, the one that starts earliest in y. Junk elements never seed a match but
// may be absorbed at the boundaries of one. If the ranges have no eligible element in common, the
// degenerate match (xlo, ylo, 0) is returned.
//
// The bounds must satisfy 0 <= xlo <= xhi <= len(x) and 0 <= ylo <= yhi <= len(y). This is a
// contract: the bounds are not validated on this hot path and behavior for out-of-range bounds is
// undefined.
func (m *Matcher[T]) FindLongestMatch(xlo, xhi, ylo, yhi int) Match {
	b := gestalt.LongestMatch(m.x, m.y, m.idx, xlo, xhi, ylo, yhi)
	return Match{PosX: b.PosX, PosY: b.PosY, Len: b.Len}
}

// MatchingBlocks returns the ordered list of non-overlapping matching blocks, terminated by the
// zero-length sentinel (len(x), len(y), 0).
//
// Consecutive blocks are strictly increasing in both PosX and PosY, and adjacent equal runs are
// merged into a single block. The result is computed once and cached: repeated calls return the
// same slice until a sequence is reassigned. The caller must not modify it.
func (m *Matcher[T]) MatchingBlocks() []Match {
	if m.matches != nil {
		return m.matches
	}
	m.mblocks = gestalt.Blocks(m.x, m.y, m.idx)
	matches := make([]Match, len(m.mblocks))
	for i, b := range m.mblocks {
		matches[i] = Match{PosX: b.PosX, PosY: b.PosY, Len: b.Len}
	}
	m.matches = matches
	return m.matches
}

// Opcodes returns the edit script that transforms x into y.
//
// The script partitions both inputs into contiguous, ordered, gap-free runs: replacing
// x[PosX:EndX] with y[PosY:EndY] for every replace, delete, and insert opcode rewrites x into y
// exactly. If both inputs are empty, the result is empty. The result is computed once from the
// matching blocks and cached: repeated calls return the same slice until a sequence is
// reassigned. The caller must not modify it.
func (m *Matcher[T]) Opcodes() []Opcode {
	if m.opcodes != nil {
		return m.opcodes
	}
	m.MatchingBlocks()

	// Compute the number of opcodes, this is relatively cheap and allows us to preallocate the
	// return value.
	var n int
	for range blocks.Segments(m.mblocks) {
		n++
	}

	out := make([]Opcode, 0, n)
	for seg := range blocks.Segments(m.mblocks) {
		var op Op
		switch seg.Op {
		case blocks.Equal:
			op = Equal
		case blocks.Replace:
			op = Replace
		case blocks.Delete:
			op = Delete
		case blocks.Insert:
			op = Insert
		default:
			panic("never reached")
		}
		out = append(out, Opcode{
			Op:   op,
			PosX: seg.X0,
			EndX: seg.X1,
			PosY: seg.Y0,
			EndY: seg.Y1,
		})
	}
	m.opcodes = out
	return m.opcodes
}
