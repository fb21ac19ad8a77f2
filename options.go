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

import "znkr.io/seqmatch/internal/config"

// Option configures the behavior of a [Matcher].
type Option[T comparable] = config.Option[T]

// Junk declares elements that must never seed a match. isJunk is evaluated once per distinct
// element of the second sequence; elements for which it returns true are excluded from the match
// search, but a match may still absorb them at its boundaries.
//
// A typical use when comparing lines of text is to declare blank and whitespace-only lines junk,
// so that changes do not synchronize on them.
func Junk[T comparable](isJunk func(T) bool) Option[T] {
	return func(cfg *config.Config[T]) config.Flag {
		cfg.IsJunk = isJunk
		return config.Junk
	}
}

// Autojunk controls the popularity heuristic. The heuristic is on by default: when the second
// sequence has at least 200 elements, every element occurring in more than 1% of its positions is
// treated as junk without an explicit [Junk] predicate. This keeps sequences dominated by one
// repeated element (for example, blank lines) from degrading the search to its quadratic worst
// case.
func Autojunk[T comparable](enabled bool) Option[T] {
	return func(cfg *config.Config[T]) config.Flag {
		cfg.Autojunk = enabled
		return config.Autojunk
	}
}
