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

// Package collect turns a suffix array match range into buffer offsets in
// ascending order.
package collect

import (
	"container/heap"
	"slices"

	"github.com/ianlewis/go-csi/internal/index"
)

// Into writes the smallest len(out) offsets of the range r of sa into out in
// ascending order and returns the number written. The same offsets are
// returned for a given range regardless of len(out).
func Into(sa []int32, r index.Range, out []int) int {
	if len(out) == 0 || r.Empty() {
		return 0
	}

	offs := sa[r.Lo:r.Hi]
	if len(out) >= len(offs) {
		for i, o := range offs {
			out[i] = int(o)
		}
		slices.Sort(out[:len(offs)])
		return len(offs)
	}

	// Keep the len(out) smallest offsets in a max-heap.
	h := make(maxHeap, len(out))
	copy(h, offs[:len(out)])
	heap.Init(&h)
	for _, o := range offs[len(out):] {
		if o < h[0] {
			h[0] = o
			heap.Fix(&h, 0)
		}
	}
	for i, o := range h {
		out[i] = int(o)
	}
	slices.Sort(out)
	return len(out)
}

// All returns every offset in the range r of sa in ascending order.
func All(sa []int32, r index.Range) []int {
	if r.Empty() {
		return nil
	}
	out := make([]int, r.Len())
	Into(sa, r, out)
	return out
}

type maxHeap []int32

func (h maxHeap) Len() int           { return len(h) }
func (h maxHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h maxHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *maxHeap) Push(x any) { *h = append(*h, x.(int32)) }

func (h *maxHeap) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]
	return x
}
