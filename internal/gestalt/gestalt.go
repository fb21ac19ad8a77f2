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

// Package gestalt contains an implementation of the Ratcliff/Obershelp matching algorithm
// ("gestalt pattern matching") with junk heuristics.
//
// The algorithm decomposes two sequences x and y into an ordered list of non-overlapping matching
// blocks. In contrast to edit-distance algorithms like Myers', it does not minimize the number of
// insertions and deletions. Instead it greedily finds the longest contiguous matching block,
// then applies the same idea recursively to the pieces to the left and to the right of that
// block. The result is not guaranteed to be a shortest edit script, but it tends to produce
// matches that look right to people, because long equal runs are never broken up in favor of a
// slightly shorter overall script.
//
// # Longest match search
//
// The search for the longest matching block between x[xlo:xhi] and y[ylo:yhi] is accelerated by a
// position index over y (see [znkr.io/seqmatch/internal/bindex]): for every element of x we only
// visit the positions in y where that element actually occurs. While scanning x left to right, a
// rolling map j → length tracks, for every position j in y, the length of the matching run ending
// at the current pair of positions: a run ending at (i, j) extends the run ending at (i-1, j-1)
// by one. The best run is replaced only when a strictly longer one is found, so among equal-length
// candidates the first one discovered wins. Discovery order is increasing i, and for fixed i
// increasing j, which makes the tie-break deterministic: earliest position in x, then earliest
// position in y.
//
// Naive Ratcliff/Obershelp is cubic time in the worst case and quadratic expected. With the index
// the expected cost of a search is O(xhi-xlo + matches); the worst case remains quadratic, but
// only when the index returns most positions of y, which the junk heuristics below are designed
// to prevent.
//
// # Junk heuristics
//
// Two kinds of elements never seed a match: elements the caller declared junk (for example,
// whitespace-only lines) and elements the autojunk heuristic classified as popular because they
// occur in more than 1% of a long second sequence. Both have their positions removed from the
// index the search consults. Without this, a sequence dominated by one repeated element (blank
// lines in text) degrades the search to its quadratic worst case and synchronizes matches on
// meaningless content.
//
// Suppressing junk from the index makes the primary search under-count: a run that straddles a
// junk element is found in pieces. Two extension passes fix up the boundaries after the search.
// The first extends the match backward and then forward across equal elements that are not junk,
// recovering under-counted non-junk content so the spine of the match is built from meaningful
// elements first. The second pass is identical in mechanism but extends only across equal junk
// elements, letting an established match absorb adjacent junk without ever letting junk seed a
// match.
//
// # Decomposition
//
// The full matching-block list is computed with an explicit work queue of sub-range pairs rather
// than recursion, which bounds stack depth for adversarial inputs with many tiny alternating
// matches. Every sub-range pushed is strictly smaller than its parent and a zero-length match
// terminates a branch, so the queue always drains. Because queue order does not guarantee overall
// left-to-right order, the recorded blocks are sorted afterwards, and adjacent blocks that the
// junk suppression split artificially are merged.
//
// # References
//
// Ratcliff, J. W., and Metzener, D. E. Pattern Matching: The Gestalt Approach. Dr. Dobb's
// Journal, 13(7), 46 (1988).
package gestalt

import (
	"cmp"
	"slices"

	"znkr.io/seqmatch/internal/bindex"
	"znkr.io/seqmatch/internal/blocks"
)

// LongestMatch finds the longest matching block in x[xlo:xhi] and y[ylo:yhi].
//
// The index idx must have been built from y. If no non-junk element of x[xlo:xhi] occurs in
// y[ylo:yhi], the result is the degenerate match (xlo, ylo, 0). Bounds outside the two sequences
// are not validated.
func LongestMatch[T comparable](x, y []T, idx *bindex.Index[T], xlo, xhi, ylo, yhi int) blocks.Match {
	besti, bestj, bestsize := xlo, ylo, 0

	// j2len maps a position j in y to the length of the matching run ending at (i-1, j). It only
	// holds runs seeded by indexed (non-junk) elements; junk is recovered by the extension passes
	// below.
	j2len := make(map[int]int)
	for i := xlo; i < xhi; i++ {
		newj2len := make(map[int]int)
		for _, j := range idx.Positions(x[i]) {
			if j < ylo {
				continue
			}
			if j >= yhi {
				break // positions are ascending
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	// Extend the best match as far as possible across equal non-junk elements on both sides. The
	// primary search under-counts runs that straddle junk, because junk positions are missing
	// from the index.
	for besti > xlo && bestj > ylo && !idx.IsJunk(y[bestj-1]) && x[besti-1] == y[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < xhi && bestj+bestsize < yhi &&
		!idx.IsJunk(y[bestj+bestsize]) && x[besti+bestsize] == y[bestj+bestsize] {
		bestsize++
	}

	// Now that the match core is established, absorb adjacent equal junk elements at its edges.
	for besti > xlo && bestj > ylo && idx.IsJunk(y[bestj-1]) && x[besti-1] == y[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < xhi && bestj+bestsize < yhi &&
		idx.IsJunk(y[bestj+bestsize]) && x[besti+bestsize] == y[bestj+bestsize] {
		bestsize++
	}

	return blocks.Match{PosX: besti, PosY: bestj, Len: bestsize}
}

// Blocks decomposes x and y into the complete ordered list of non-overlapping matching blocks,
// terminated by the sentinel (len(x), len(y), 0).
func Blocks[T comparable](x, y []T, idx *bindex.Index[T]) []blocks.Match {
	type span struct {
		xlo, xhi int
		ylo, yhi int
	}
	queue := []span{{0, len(x), 0, len(y)}}
	var ms []blocks.Match
	for len(queue) > 0 {
		sp := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		m := LongestMatch(x, y, idx, sp.xlo, sp.xhi, sp.ylo, sp.yhi)
		if m.Len == 0 {
			continue // no match in this span, the branch is done
		}
		ms = append(ms, m)
		if sp.xlo < m.PosX && sp.ylo < m.PosY {
			queue = append(queue, span{sp.xlo, m.PosX, sp.ylo, m.PosY})
		}
		if m.PosX+m.Len < sp.xhi && m.PosY+m.Len < sp.yhi {
			queue = append(queue, span{m.PosX + m.Len, sp.xhi, m.PosY + m.Len, sp.yhi})
		}
	}

	// Queue order is not left-to-right overall.
	slices.SortFunc(ms, func(a, b blocks.Match) int {
		if c := cmp.Compare(a.PosX, b.PosX); c != 0 {
			return c
		}
		return cmp.Compare(a.PosY, b.PosY)
	})
	ms = blocks.Merge(ms)
	return append(ms, blocks.Match{PosX: len(x), PosY: len(y), Len: 0})
}
