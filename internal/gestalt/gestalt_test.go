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

package gestalt

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/seqmatch/internal/bindex"
	"znkr.io/seqmatch/internal/blocks"
	"znkr.io/seqmatch/internal/config"
)

func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}

func TestLongestMatch(t *testing.T) {
	tests := []struct {
		name   string
		x, y   string
		isJunk func(string) bool
		want   blocks.Match
	}{
		{
			name: "single-block",
			x:    "foo bar baz",
			y:    "foo bar qux",
			want: blocks.Match{PosX: 0, PosY: 0, Len: 8},
		},
		{
			name: "middle",
			x:    "xxabyy",
			y:    "zabz",
			want: blocks.Match{PosX: 2, PosY: 1, Len: 2},
		},
		{
			name: "junk-restricted-then-extended",
			x:    " abcd",
			y:    "abcd abcd",
			isJunk: func(s string) bool {
				return s == " "
			},
			want: blocks.Match{PosX: 1, PosY: 0, Len: 4},
		},
		{
			name: "no-match",
			x:    "abc",
			y:    "def",
			want: blocks.Match{PosX: 0, PosY: 0, Len: 0},
		},
		{
			name: "empty",
			x:    "",
			y:    "",
			want: blocks.Match{PosX: 0, PosY: 0, Len: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := split(tt.x), split(tt.y)
			cfg := config.Default[string]()
			cfg.IsJunk = tt.isJunk
			idx := bindex.New(y, cfg)
			got := LongestMatch(x, y, idx, 0, len(x), 0, len(y))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LongestMatch result is different [-want, +got]:\n%s", diff)
			}
		})
	}
}

func TestLongestMatchFirstFoundWins(t *testing.T) {
	// Both candidates have length 2. The rolling search discovers runs in increasing x position
	// and, within one x position, in increasing y position, so the earliest candidate wins.
	x := split("ab ab")
	y := split("ab ab")
	idx := bindex.New(y, config.Default[string]())
	got := LongestMatch(x, y, idx, 0, 2, 0, len(y))
	want := blocks.Match{PosX: 0, PosY: 0, Len: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LongestMatch result is different [-want, +got]:\n%s", diff)
	}

	// Restricting y to the second "ab" moves the match there.
	got = LongestMatch(x, y, idx, 0, 2, 3, len(y))
	want = blocks.Match{PosX: 0, PosY: 3, Len: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LongestMatch result is different [-want, +got]:\n%s", diff)
	}
}

func TestBlocks(t *testing.T) {
	tests := []struct {
		name   string
		x, y   string
		isJunk func(string) bool
		want   []blocks.Match
	}{
		{
			name: "qabxcd_to_abycdf",
			x:    "qabxcd",
			y:    "abycdf",
			want: []blocks.Match{
				{PosX: 1, PosY: 0, Len: 2},
				{PosX: 4, PosY: 3, Len: 2},
				{PosX: 6, PosY: 6, Len: 0},
			},
		},
		{
			name: "empty",
			x:    "",
			y:    "",
			want: []blocks.Match{
				{PosX: 0, PosY: 0, Len: 0},
			},
		},
		{
			name: "identical",
			x:    "abc",
			y:    "abc",
			want: []blocks.Match{
				{PosX: 0, PosY: 0, Len: 3},
				{PosX: 3, PosY: 3, Len: 0},
			},
		},
		{
			name: "interleaved",
			x:    "ABCABBA",
			y:    "CBABAC",
			want: []blocks.Match{
				{PosX: 0, PosY: 2, Len: 2},
				{PosX: 2, PosY: 5, Len: 1},
				{PosX: 7, PosY: 6, Len: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := split(tt.x), split(tt.y)
			cfg := config.Default[string]()
			cfg.IsJunk = tt.isJunk
			idx := bindex.New(y, cfg)
			got := Blocks(x, y, idx)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Blocks result is different [-want, +got]:\n%s", diff)
			}
		})
	}
}
