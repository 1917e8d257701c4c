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

package csi

import (
	"fmt"
	"iter"
	"math"

	"github.com/ianlewis/go-csi/internal/collect"
	"github.com/ianlewis/go-csi/internal/index"
	"github.com/ianlewis/go-csi/suffix"
)

// MaxLen is the size of the largest buffer that can be indexed.
const MaxLen = suffix.MaxLen

// Index is a substring index over an immutable copy of a byte buffer.
type Index struct {
	text   []byte
	sa     []int32
	rounds int
}

// New builds an index over a copy of data. The caller may modify or discard
// data once New returns. A nil or empty data yields an empty index.
func New(data []byte) (*Index, error) {
	if len(data) > MaxLen {
		return nil, fmt.Errorf("%w: %d bytes > %d", ErrTooLarge, len(data), MaxLen)
	}

	text := make([]byte, len(data))
	copy(text, data)

	a := suffix.Build(text)
	return &Index{
		text:   text,
		sa:     a.Offsets,
		rounds: a.Rounds,
	}, nil
}

// Close releases the index's buffer and suffix array. Calling Close on a nil
// Index is a no-op. The index must not be used after Close.
func (x *Index) Close() error {
	if x == nil {
		return nil
	}
	x.text = nil
	x.sa = nil
	return nil
}

// Len returns the length of the indexed buffer.
func (x *Index) Len() int {
	return len(x.text)
}

// Search writes the offsets at which pattern occurs in the buffer into out
// in ascending order and returns the number written. At most len(out)
// offsets are written; when there are more matches the smallest offsets are
// kept. Search does not report the total number of matches, use Count for
// that.
func (x *Index) Search(pattern []byte, out []int) int {
	r := index.Find(x.text, x.sa, pattern)
	return collect.Into(x.sa, r, out)
}

// FindAll returns up to n offsets at which pattern occurs in ascending order.
// If n < 0 all offsets are returned.
func (x *Index) FindAll(pattern []byte, n int) []int {
	if n == 0 {
		return nil
	}
	r := index.Find(x.text, x.sa, pattern)
	if r.Empty() {
		return nil
	}
	if n < 0 || n > r.Len() {
		n = r.Len()
	}
	out := make([]int, n)
	return out[:collect.Into(x.sa, r, out)]
}

// Count returns the number of occurrences of pattern in the buffer.
func (x *Index) Count(pattern []byte) int {
	return index.Find(x.text, x.sa, pattern).Len()
}

// All returns an iterator over the offsets at which pattern occurs in
// ascending order. The matches are computed each time the iterator is
// started.
func (x *Index) All(pattern []byte) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, o := range collect.All(x.sa, index.Find(x.text, x.sa, pattern)) {
			if !yield(o) {
				return
			}
		}
	}
}

// Stats holds statistics about an index.
type Stats struct {
	// Len is the length of the indexed buffer.
	Len int

	// Alphabet is the number of distinct byte values in the buffer.
	Alphabet int

	// Entropy is the Shannon entropy of the buffer in bits per byte.
	Entropy float64

	// Rounds is the number of prefix doubling rounds needed to build the
	// suffix array.
	Rounds int

	// LongestRepeat is the length of the longest substring that occurs at
	// least twice in the buffer.
	LongestRepeat int
}

// Stats computes statistics about the index.
func (x *Index) Stats() Stats {
	s := Stats{
		Len:    len(x.text),
		Rounds: x.rounds,
	}
	if len(x.text) == 0 {
		return s
	}

	var freq [256]int
	for _, c := range x.text {
		freq[c]++
	}
	n := float64(len(x.text))
	for _, c := range freq {
		if c == 0 {
			continue
		}
		s.Alphabet++
		p := float64(c) / n
		s.Entropy -= p * math.Log2(p)
	}

	a := suffix.Array{Offsets: x.sa}
	for _, l := range a.LCP(x.text) {
		s.LongestRepeat = max(s.LongestRepeat, int(l))
	}
	return s
}
