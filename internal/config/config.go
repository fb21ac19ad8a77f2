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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// seqmatch.Option.
package config

// Config collects all configurable parameters for a matcher. It is generic in the element type
// because the junk predicate operates on elements.
type Config[T comparable] struct {
	// IsJunk reports whether an element should never seed a match. Evaluated once per distinct
	// element of the second sequence. May be nil.
	IsJunk func(T) bool

	// Autojunk enables the popularity heuristic that treats elements occurring in more than 1% of
	// a long second sequence as junk.
	Autojunk bool
}

// Default returns the default configuration.
func Default[T comparable]() Config[T] {
	return Config[T]{
		IsJunk:   nil,
		Autojunk: true,
	}
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by an operation.
type Flag int

const (
	Junk Flag = 1 << iota
	Autojunk
)

// Option is the mechanism used to expose the configuration to users.
type Option[T comparable] func(*Config[T]) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions[T comparable](opts []Option[T], allowed Flag) Config[T] {
	cfg := Default[T]()
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Junk:
		return "seqmatch.Junk"
	case Autojunk:
		return "seqmatch.Autojunk"
	default:
		panic("never reached")
	}
}
