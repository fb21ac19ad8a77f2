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

// Package bindex contains the position index and the junk classification for the second sequence
// of a comparison.
//
// The index maps every distinct element of y to the ascending list of positions at which it
// occurs. It is derived from y alone, so it can be reused across reassignments of x. Junk
// elements (declared by the caller's predicate) and popular elements (detected by the autojunk
// heuristic) keep their full occurrence counts, but their positions are removed from the entries
// the matcher consults, so they cannot seed a match.
package bindex

import (
	"znkr.io/seqmatch/internal/config"
)

// Autojunk heuristic constants: for len(y) >= autojunkMinLen, elements occurring strictly more
// than len(y)/autojunkDivisor + 1 times are classified popular. These values are inherited from
// the algorithm's original design; changing them changes which matches are found for borderline
// inputs.
const (
	autojunkMinLen  = 200
	autojunkDivisor = 100
)

// Index holds the position index and the junk/popular classification for y.
type Index[T comparable] struct {
	positions map[T][]int
	counts    map[T]int
	junk      map[T]struct{}
	popular   map[T]struct{}
}

// New builds the index for y in a single left-to-right scan.
func New[T comparable](y []T, cfg config.Config[T]) *Index[T] {
	idx := &Index[T]{
		positions: make(map[T][]int, len(y)),
		counts:    make(map[T]int, len(y)),
	}
	for i, v := range y {
		idx.positions[v] = append(idx.positions[v], i)
		idx.counts[v]++
	}

	// Purge caller-declared junk, evaluating the predicate once per distinct element.
	if cfg.IsJunk != nil {
		idx.junk = make(map[T]struct{})
		for v := range idx.positions {
			if cfg.IsJunk(v) {
				idx.junk[v] = struct{}{}
			}
		}
		for v := range idx.junk {
			delete(idx.positions, v)
		}
	}

	// Purge popular elements: for long sequences, an element occurring in more than 1% of
	// positions would dominate the match search and produce noisy matches. Removing its
	// positions keeps the search fast; the element can still be absorbed at match boundaries
	// during the junk extension phase.
	if cfg.Autojunk && len(y) >= autojunkMinLen {
		ntest := len(y)/autojunkDivisor + 1
		idx.popular = make(map[T]struct{})
		for v, ps := range idx.positions {
			if len(ps) > ntest {
				idx.popular[v] = struct{}{}
			}
		}
		for v := range idx.popular {
			delete(idx.positions, v)
		}
	}
	return idx
}

// Positions returns the ascending positions of v in y that are eligible to seed a match. Junk and
// popular elements have no eligible positions.
func (idx *Index[T]) Positions(v T) []int {
	return idx.positions[v]
}

// Count returns the total number of occurrences of v in y, including junk and popular elements.
func (idx *Index[T]) Count(v T) int {
	return idx.counts[v]
}

// IsJunk reports whether v is classified junk, either by the caller's predicate or by the
// autojunk heuristic.
func (idx *Index[T]) IsJunk(v T) bool {
	if _, ok := idx.junk[v]; ok {
		return true
	}
	_, ok := idx.popular[v]
	return ok
}

// IsPopular reports whether v was classified junk by the autojunk heuristic alone.
func (idx *Index[T]) IsPopular(v T) bool {
	_, ok := idx.popular[v]
	return ok
}
