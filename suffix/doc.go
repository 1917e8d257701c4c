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

// Package suffix implements suffix array construction over byte strings.
//
// A suffix array of a text of length N is the permutation of the offsets
// 0..N-1 ordered by the lexicographic order of the suffixes starting at those
// offsets. Bytes are compared as unsigned values and a suffix that is a strict
// prefix of another suffix sorts before it.
//
// Arrays are built by prefix doubling: suffixes are first ranked by their
// leading byte, and then repeatedly re-ranked by the pair
// (rank[i], rank[i+k]) for k = 1, 2, 4, ... until every rank is unique. Each
// round is a pair of counting sorts so construction takes O(N log N) time.
package suffix
