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

package suffix_test

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-csi/suffix"
)

// naive sorts suffix offsets with a comparison sort.
func naive(text []byte) []int32 {
	sa := make([]int32, len(text))
	for i := range sa {
		sa[i] = int32(i)
	}
	slices.SortFunc(sa, func(a, b int32) int {
		return bytes.Compare(text[a:], text[b:])
	})
	return sa
}

func TestBuild(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected []int32
	}{
		{
			name:     "empty",
			text:     "",
			expected: []int32{},
		},
		{
			name:     "single byte",
			text:     "x",
			expected: []int32{0},
		},
		{
			name:     "banana",
			text:     "banana",
			expected: []int32{5, 3, 1, 0, 4, 2},
		},
		{
			name:     "repeated byte",
			text:     "aaaa",
			expected: []int32{3, 2, 1, 0},
		},
		{
			name:     "mississippi",
			text:     "mississippi",
			expected: []int32{10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2},
		},
		{
			name:     "zero and high bytes",
			text:     "\xff\x00\xff\x00",
			expected: []int32{3, 1, 2, 0},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			a := suffix.Build([]byte(test.text))
			if diff := cmp.Diff(test.expected, a.Offsets); diff != "" {
				t.Fatalf("Build (-want, +got):\n%s", diff)
			}
			if got, want := a.Len(), len(test.text); got != want {
				t.Errorf("Len: got %d, want %d", got, want)
			}
		})
	}
}

func TestBuild_random(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for _, alphabet := range []int{1, 2, 4, 26, 256} {
		for range 50 {
			text := make([]byte, r.IntN(300))
			for i := range text {
				text[i] = byte(r.IntN(alphabet))
			}

			a := suffix.Build(text)
			if diff := cmp.Diff(naive(text), a.Offsets); diff != "" {
				t.Fatalf("Build(%q) (-want, +got):\n%s", text, diff)
			}
		}
	}
}

func TestBuild_rounds(t *testing.T) {
	t.Parallel()

	// Distinct bytes are fully ranked after the first pass.
	if got := suffix.Build([]byte("abcdef")).Rounds; got != 0 {
		t.Errorf("Rounds for distinct bytes: got %d, want 0", got)
	}

	// A run of n equal bytes needs ceil(log2(n)) rounds.
	if got := suffix.Build(bytes.Repeat([]byte{'a'}, 16)).Rounds; got != 4 {
		t.Errorf("Rounds for run of 16: got %d, want 4", got)
	}
}

func TestArray_LCP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected []int32
	}{
		{
			name:     "empty",
			text:     "",
			expected: []int32{},
		},
		{
			// a, ana, anana, banana, na, nana
			name:     "banana",
			text:     "banana",
			expected: []int32{0, 1, 3, 0, 0, 2},
		},
		{
			name:     "repeated byte",
			text:     "aaaa",
			expected: []int32{0, 1, 2, 3},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			text := []byte(test.text)
			lcp := suffix.Build(text).LCP(text)
			if diff := cmp.Diff(test.expected, lcp); diff != "" {
				t.Fatalf("LCP (-want, +got):\n%s", diff)
			}
		})
	}
}
