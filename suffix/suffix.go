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

package suffix

import "math"

// MaxLen is the length of the longest text that can be indexed. Offsets are
// stored as int32.
const MaxLen = math.MaxInt32

// Array is a suffix array over a text.
type Array struct {
	// Offsets holds the suffix start offsets in lexicographic suffix order.
	Offsets []int32

	// Rounds is the number of doubling rounds performed after the initial
	// single byte ranking.
	Rounds int
}

// Build returns the suffix array of text. The text is not retained. Build
// panics if len(text) > MaxLen; callers are expected to check the length
// first.
func Build(text []byte) *Array {
	n := len(text)
	if n > MaxLen {
		panic("suffix: text too long")
	}
	if n == 0 {
		return &Array{Offsets: []int32{}}
	}

	sa := make([]int32, n)
	rank := make([]int32, n)
	tmp := make([]int32, n)
	count := make([]int32, max(n, 256)+1)

	// Sort by the first byte.
	for _, c := range text {
		count[int(c)+1]++
	}
	for i := 1; i <= 256; i++ {
		count[i] += count[i-1]
	}
	for i, c := range text {
		sa[count[c]] = int32(i)
		count[c]++
	}

	// Ranks are dense: equal leading bytes share a rank.
	rank[sa[0]] = 0
	for i := 1; i < n; i++ {
		r := rank[sa[i-1]]
		if text[sa[i]] != text[sa[i-1]] {
			r++
		}
		rank[sa[i]] = r
	}
	classes := int(rank[sa[n-1]]) + 1

	a := &Array{Offsets: sa}
	for k := 1; classes < n; k <<= 1 {
		a.Rounds++

		// Order by the second key. Suffixes whose second half is empty sort
		// first, in increasing offset order. The rest follow the order of
		// the previous round shifted back by k.
		p := 0
		for i := n - k; i < n; i++ {
			tmp[p] = int32(i)
			p++
		}
		for _, s := range sa {
			if int(s) >= k {
				tmp[p] = s - int32(k)
				p++
			}
		}

		// Stable counting sort by the first key.
		clear(count[:classes+1])
		for _, r := range rank {
			count[r+1]++
		}
		for i := 1; i <= classes; i++ {
			count[i] += count[i-1]
		}
		for _, s := range tmp {
			r := rank[s]
			sa[count[r]] = s
			count[r]++
		}

		// Re-rank by (rank[i], rank[i+k]) into tmp.
		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			cur, prev := sa[i], sa[i-1]
			r := tmp[prev]
			if rank[cur] != rank[prev] || second(rank, cur, k) != second(rank, prev, k) {
				r++
			}
			tmp[cur] = r
		}
		rank, tmp = tmp, rank
		classes = int(rank[sa[n-1]]) + 1
	}

	return a
}

// second returns the rank of the suffix k bytes after offset i, or -1 if that
// suffix is empty.
func second(rank []int32, i int32, k int) int32 {
	j := int(i) + k
	if j >= len(rank) {
		return -1
	}
	return rank[j]
}

// Len returns the number of suffixes in the array.
func (a *Array) Len() int {
	return len(a.Offsets)
}

// LCP returns the longest common prefix array of the suffix array using
// Kasai's algorithm. lcp[i] is the length of the longest common prefix of
// the suffixes at a.Offsets[i-1] and a.Offsets[i]; lcp[0] is 0.
func (a *Array) LCP(text []byte) []int32 {
	n := len(a.Offsets)
	lcp := make([]int32, n)
	if n == 0 {
		return lcp
	}

	rank := make([]int32, n)
	for i, s := range a.Offsets {
		rank[s] = int32(i)
	}

	h := 0
	for i := 0; i < n; i++ {
		r := rank[i]
		if r == 0 {
			h = 0
			continue
		}
		j := int(a.Offsets[r-1])
		for i+h < n && j+h < n && text[i+h] == text[j+h] {
			h++
		}
		lcp[r] = int32(h)
		if h > 0 {
			h--
		}
	}
	return lcp
}
