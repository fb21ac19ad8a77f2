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

// Package benchmarks compares this module against other Go diff libraries.
//
// All implementations are reduced to the same metric: the number of deleted and inserted lines
// needed to transform x into y. That makes the comparison independent of each library's output
// format.
package benchmarks

import (
	"strings"

	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/seqmatch"
)

type Impl struct {
	Name string
	// Edits returns the number of deleted and inserted lines to transform x into y.
	Edits func(x, y []string) int
}

var Impls = []Impl{
	{
		Name: "seqmatch",
		Edits: func(x, y []string) int {
			n := 0
			m := seqmatch.New(x, y)
			for _, op := range m.Opcodes() {
				switch op.Op {
				case seqmatch.Delete:
					n += op.EndX - op.PosX
				case seqmatch.Insert:
					n += op.EndY - op.PosY
				case seqmatch.Replace:
					n += (op.EndX - op.PosX) + (op.EndY - op.PosY)
				}
			}
			return n
		},
	},
	{
		Name: "go-difflib",
		Edits: func(x, y []string) int {
			n := 0
			for _, op := range difflib.NewMatcher(x, y).GetOpCodes() {
				switch op.Tag {
				case 'd':
					n += op.I2 - op.I1
				case 'i':
					n += op.J2 - op.J1
				case 'r':
					n += (op.I2 - op.I1) + (op.J2 - op.J1)
				}
			}
			return n
		},
	},
	{
		Name: "diffmatchpatch",
		Edits: func(x, y []string) int {
			dmp := diffmatchpatch.New()
			c1, c2, lines := dmp.DiffLinesToChars(joinLines(x), joinLines(y))
			diffs := dmp.DiffMain(c1, c2, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			n := 0
			for _, d := range diffs {
				if d.Type == diffmatchpatch.DiffEqual {
					continue
				}
				n += strings.Count(d.Text, "\n")
			}
			return n
		},
	},
	{
		Name: "godebug",
		Edits: func(x, y []string) int {
			n := 0
			for _, c := range godebug.DiffChunks(x, y) {
				n += len(c.Deleted) + len(c.Added)
			}
			return n
		},
	},
	{
		Name: "mb0",
		Edits: func(x, y []string) int {
			d := mb0lines{x: x, y: y}
			n := 0
			for _, ch := range mb0.Diff(len(x), len(y), d) {
				n += ch.Del + ch.Ins
			}
			return n
		},
	},
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

type mb0lines struct {
	x []string
	y []string
}

func (d mb0lines) Equal(i, j int) bool { return d.x[i] == d.y[j] }
