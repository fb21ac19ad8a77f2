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

// Package blocks contains the matching-block representation that's used by the gestalt engine and
// is then translated to a user facing API. The internal representation is separate from the
// exported representation because it needs to solve a number of different problems.
package blocks

// Match describes a run of Len elements that is identical in both inputs: x[PosX:PosX+Len] equals
// y[PosY:PosY+Len] elementwise.
//
// A list of matching blocks is ordered strictly increasing in both PosX and PosY, pairwise
// non-overlapping in both coordinates, and terminated by the zero-length sentinel
// (len(x), len(y), 0).
type Match struct {
	PosX, PosY int
	Len        int
}

// Merge combines adjacent blocks in a sorted list of matches.
//
// The recursive decomposition can artificially split one contiguous equal run into several blocks
// when junk or popular elements separate the pieces found by the index-restricted search. Two
// consecutive blocks are adjacent if the first ends exactly where the second begins in both
// coordinates; such pairs describe a single equal run and are combined. Merge overwrites ms in
// place and returns the shortened slice.
func Merge(ms []Match) []Match {
	out := ms[:0]
	var acc Match // zero-length accumulator is never emitted
	for _, m := range ms {
		if acc.PosX+acc.Len == m.PosX && acc.PosY+acc.Len == m.PosY {
			acc.Len += m.Len
			continue
		}
		if acc.Len > 0 {
			out = append(out, acc)
		}
		acc = m
	}
	if acc.Len > 0 {
		out = append(out, acc)
	}
	return out
}
