// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index locates the block of a suffix array whose suffixes start with
// a given pattern.
package index

import (
	"bytes"
	"sort"
)

// Range is a half open window [Lo, Hi) into a suffix array.
type Range struct {
	Lo, Hi int
}

// Len returns the number of suffix array entries in the range.
func (r Range) Len() int {
	return r.Hi - r.Lo
}

// Empty reports whether the range holds no entries.
func (r Range) Empty() bool {
	return r.Hi <= r.Lo
}

// comparePrefix compares the suffix suf with pattern, looking at no more
// than len(pattern) bytes of suf. It returns 0 if suf starts with pattern.
// A suffix that is a strict prefix of pattern is less than pattern.
func comparePrefix(suf, pattern []byte) int {
	m := min(len(suf), len(pattern))
	if c := bytes.Compare(suf[:m], pattern[:m]); c != 0 {
		return c
	}
	if len(suf) < len(pattern) {
		return -1
	}
	return 0
}

// Find returns the range of sa whose suffixes of text start with pattern. sa
// must be the suffix array of text. An empty pattern matches nothing.
func Find(text []byte, sa []int32, pattern []byte) Range {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return Range{}
	}

	// Lower bound: the first suffix that is >= pattern.
	lo, found := sort.Find(len(sa), func(i int) int {
		return -comparePrefix(text[sa[i]:], pattern)
	})
	if !found {
		return Range{Lo: lo, Hi: lo}
	}

	// Upper bound: the first suffix after lo that no longer starts with
	// pattern.
	hi := lo + sort.Search(len(sa)-lo, func(i int) bool {
		return comparePrefix(text[sa[lo+i]:], pattern) > 0
	})
	return Range{Lo: lo, Hi: hi}
}
