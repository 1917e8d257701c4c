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

package collect

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-csi/internal/index"
)

func TestInto(t *testing.T) {
	t.Parallel()

	// Offsets in suffix order, not position order.
	sa := []int32{9, 4, 7, 0, 2, 8, 1}

	tests := []struct {
		name     string
		r        index.Range
		maxOut   int
		expected []int
	}{
		{
			name:     "all fit",
			r:        index.Range{Lo: 1, Hi: 5},
			maxOut:   10,
			expected: []int{0, 2, 4, 7},
		},
		{
			name:     "exact fit",
			r:        index.Range{Lo: 1, Hi: 5},
			maxOut:   4,
			expected: []int{0, 2, 4, 7},
		},
		{
			name:     "truncated keeps smallest",
			r:        index.Range{Lo: 0, Hi: 7},
			maxOut:   3,
			expected: []int{0, 1, 2},
		},
		{
			name:     "truncated to one",
			r:        index.Range{Lo: 0, Hi: 7},
			maxOut:   1,
			expected: []int{0},
		},
		{
			name:     "zero capacity",
			r:        index.Range{Lo: 0, Hi: 7},
			maxOut:   0,
			expected: []int{},
		},
		{
			name:     "empty range",
			r:        index.Range{Lo: 3, Hi: 3},
			maxOut:   5,
			expected: []int{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			out := make([]int, test.maxOut)
			n := Into(sa, test.r, out)
			if diff := cmp.Diff(test.expected, out[:n]); diff != "" {
				t.Fatalf("Into (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestInto_capacityIndependent(t *testing.T) {
	t.Parallel()

	sa := []int32{13, 2, 11, 5, 0, 8, 3, 12, 1, 6}
	r := index.Range{Lo: 0, Hi: len(sa)}
	all := All(sa, r)

	for maxOut := 0; maxOut <= len(sa)+2; maxOut++ {
		out := make([]int, maxOut)
		n := Into(sa, r, out)
		want := all[:min(maxOut, len(all))]
		if diff := cmp.Diff(want, out[:n]); diff != "" {
			t.Fatalf("Into with capacity %d (-want, +got):\n%s", maxOut, diff)
		}
	}
}

func TestInto_doesNotModifyArray(t *testing.T) {
	t.Parallel()

	sa := []int32{5, 3, 1, 0, 4, 2}
	want := []int32{5, 3, 1, 0, 4, 2}

	Into(sa, index.Range{Lo: 0, Hi: 6}, make([]int, 2))
	Into(sa, index.Range{Lo: 0, Hi: 6}, make([]int, 6))
	if diff := cmp.Diff(want, sa); diff != "" {
		t.Fatalf("suffix array modified (-want, +got):\n%s", diff)
	}
}

func TestAll(t *testing.T) {
	t.Parallel()

	sa := []int32{5, 3, 1, 0, 4, 2}
	if diff := cmp.Diff([]int{1, 3}, All(sa, index.Range{Lo: 1, Hi: 3})); diff != "" {
		t.Errorf("All (-want, +got):\n%s", diff)
	}
	if got := All(sa, index.Range{Lo: 2, Hi: 2}); got != nil {
		t.Errorf("All of empty range: got %v, want nil", got)
	}
}
