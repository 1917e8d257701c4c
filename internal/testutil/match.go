// Copyright 2024 Google LLC
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

package testutil

import (
	"bytes"
	"math/rand/v2"
)

// Naive returns every offset at which pattern occurs in text by comparing
// pattern against each position in turn. An empty pattern matches nothing.
func Naive(text, pattern []byte) []int {
	if len(pattern) == 0 {
		return nil
	}
	var offs []int
	for i := 0; i+len(pattern) <= len(text); i++ {
		if bytes.Equal(text[i:i+len(pattern)], pattern) {
			offs = append(offs, i)
		}
	}
	return offs
}

// RandomBytes returns n pseudo-random bytes drawn from the first alphabet
// byte values. A small alphabet produces many repeats.
func RandomBytes(r *rand.Rand, n, alphabet int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.IntN(alphabet))
	}
	return b
}
