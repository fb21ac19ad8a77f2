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

package config_test

import (
	"testing"

	"znkr.io/seqmatch"
	"znkr.io/seqmatch/internal/config"
)

func TestFromOptions(t *testing.T) {
	isJunk := func(s string) bool { return s == "" }

	tests := []struct {
		name         string
		opts         []config.Option[string]
		wantJunk     bool
		wantAutojunk bool
	}{
		{
			name:         "default",
			opts:         nil,
			wantJunk:     false,
			wantAutojunk: true,
		},
		{
			name: "junk",
			opts: []config.Option[string]{
				seqmatch.Junk(isJunk),
			},
			wantJunk:     true,
			wantAutojunk: true,
		},
		{
			name: "autojunk-off",
			opts: []config.Option[string]{
				seqmatch.Autojunk[string](false),
			},
			wantJunk:     false,
			wantAutojunk: false,
		},
		{
			name: "junk-and-autojunk-off",
			opts: []config.Option[string]{
				seqmatch.Junk(isJunk),
				seqmatch.Autojunk[string](false),
			},
			wantJunk:     true,
			wantAutojunk: false,
		},
		{
			name: "autojunk-override",
			opts: []config.Option[string]{
				seqmatch.Autojunk[string](false),
				seqmatch.Autojunk[string](true),
			},
			wantJunk:     false,
			wantAutojunk: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.Junk|config.Autojunk)
			if gotJunk := got.IsJunk != nil; gotJunk != tt.wantJunk {
				t.Errorf("IsJunk set = %v, want %v", gotJunk, tt.wantJunk)
			}
			if got.Autojunk != tt.wantAutojunk {
				t.Errorf("Autojunk = %v, want %v", got.Autojunk, tt.wantAutojunk)
			}
		})
	}
}

func TestFromOptionsDisallowed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("FromOptions with a disallowed option did not panic")
		}
	}()
	config.FromOptions([]config.Option[string]{
		seqmatch.Autojunk[string](false),
	}, config.Junk)
}
