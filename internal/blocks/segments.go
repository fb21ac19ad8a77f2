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

package blocks

import "iter"

// Op describes the edit operation of a segment.
type Op uint8

const (
	Equal Op = iota
	Replace
	Delete
	Insert
)

func (op Op) String() string {
	switch op {
	case Equal:
		return "equal"
	case Replace:
		return "replace"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		panic("never reached")
	}
}

// Segment describes one tagged span of the edit script: x[X0:X1] is replaced by y[Y0:Y1],
// deleted (Y0 == Y1), inserted after (X0 == X1), or equal to it.
type Segment struct {
	Op     Op
	X0, X1 int
	Y0, Y1 int
}

// Segments walks a sorted, merged, sentinel-terminated list of matching blocks and yields the
// tagged segments of the edit script.
//
// Two cursors track how far the script has accounted for both inputs. For every block, the gap
// between the cursors and the block start becomes a replace, delete, or insert segment, and the
// block itself becomes an equal segment. The sentinel has length zero and never yields an equal
// segment, but its gap covers any trailing difference. The yielded segments are ordered, gap-free,
// and share boundaries: every element of both inputs is accounted for exactly once.
func Segments(ms []Match) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		s, t := 0, 0
		for _, m := range ms {
			var op Op
			switch {
			case s < m.PosX && t < m.PosY:
				op = Replace
			case s < m.PosX:
				op = Delete
			case t < m.PosY:
				op = Insert
			default:
				op = Equal // no gap
			}
			if op != Equal {
				if !yield(Segment{op, s, m.PosX, t, m.PosY}) {
					return
				}
			}
			s, t = m.PosX+m.Len, m.PosY+m.Len
			if m.Len > 0 {
				if !yield(Segment{Equal, m.PosX, s, m.PosY, t}) {
					return
				}
			}
		}
	}
}
