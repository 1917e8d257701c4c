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

// Package csi implements an in-memory exact substring index over a byte
// buffer.
//
// An [Index] is built once from a buffer and then answers repeated queries
// for every offset at which a pattern occurs:
//
//	x, err := csi.New([]byte("banana"))
//	if err != nil {
//		// ...
//	}
//	defer x.Close()
//
//	out := make([]int, 10)
//	n := x.Search([]byte("ana"), out) // out[:n] == []int{1, 3}
//
// The index is a suffix array (see package [github.com/ianlewis/go-csi/suffix])
// together with a private copy of the buffer. Queries run two binary searches
// over the suffix array and so take O(len(pattern) * log N) time plus the
// number of offsets returned.
//
// Data is treated as opaque bytes. Offsets are returned in ascending order.
// An empty pattern matches nothing.
//
// An Index is immutable once built and may be queried from multiple
// goroutines concurrently. Close must not be called while queries are in
// flight.
package csi
