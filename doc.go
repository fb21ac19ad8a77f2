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

// Package seqmatch compares two slices using Ratcliff/Obershelp style longest-common-substring
// decomposition and produces the matching blocks and the edit script that transforms one into the
// other.
//
// The entry point is [New], which creates a [Matcher] for a pair of slices. [Matcher.MatchingBlocks]
// returns the ordered non-overlapping equal runs of the two inputs and [Matcher.Opcodes] returns
// the tagged edit script derived from them. A junk predicate ([Junk]) and the autojunk heuristic
// (on by default, see [Autojunk]) keep noisy, frequently repeated elements from dominating the
// match search.
//
// In contrast to edit-distance algorithms, the result is not guaranteed to be a shortest possible
// edit script. The decomposition is greedy and heuristic: it is fast, deterministic for identical
// inputs, usually close to minimal, and tends to produce matches that look right to people.
//
// A Matcher is a purely computational, single-threaded session. Reassigning a sequence invalidates
// the dependent cached results and must not race with reads of those caches; once the caches are
// populated, concurrent read-only use is safe. Independent comparisons should use independent
// Matchers.
package seqmatch
