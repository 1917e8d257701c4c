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

// Package abi implements the flat create/destroy/search surface exported to
// C callers. Arguments arrive as raw pointer and length pairs and are checked
// here before any Go slice is formed over them.
package abi

import (
	"fmt"
	"math"
	"runtime/cgo"
	"unsafe"

	"github.com/ianlewis/go-csi"
)

// Handle is an opaque reference to an index. The zero Handle refers to no
// index.
type Handle uintptr

// Create builds an index over a copy of the n bytes at data and returns a
// handle to it. Create returns the zero Handle if data is nil and n is not
// zero, or if n is too large to index.
func Create(data unsafe.Pointer, n uintptr) Handle {
	x, err := newIndex(data, n)
	if err != nil {
		return 0
	}
	return Handle(cgo.NewHandle(x))
}

func newIndex(data unsafe.Pointer, n uintptr) (*csi.Index, error) {
	if data == nil && n > 0 {
		return nil, fmt.Errorf("%w: nil data with length %d", csi.ErrInvalidArgument, n)
	}
	if n > csi.MaxLen {
		return nil, fmt.Errorf("%w: %d bytes > %d", csi.ErrTooLarge, n, csi.MaxLen)
	}

	var b []byte
	if n > 0 {
		b = unsafe.Slice((*byte)(data), n)
	}
	return csi.New(b)
}

// Destroy releases the index referred to by h. Destroying the zero Handle is
// a no-op. h must not be used after Destroy and must not be destroyed twice.
func Destroy(h Handle) {
	if h == 0 {
		return
	}
	ch := cgo.Handle(h)
	//nolint:forcetypeassert // handles are only created by Create.
	_ = ch.Value().(*csi.Index).Close()
	ch.Delete()
}

// Search writes up to maxOut ascending offsets at which the patLen bytes at
// pattern occur into the size_t array out and returns the number written.
// Search returns 0 for the zero Handle, for a nil pattern with non-zero
// patLen and for a nil out with non-zero maxOut.
func Search(h Handle, pattern unsafe.Pointer, patLen uintptr, out unsafe.Pointer, maxOut uintptr) uintptr {
	if h == 0 {
		return 0
	}
	if pattern == nil && patLen > 0 {
		return 0
	}
	if out == nil && maxOut > 0 {
		return 0
	}

	//nolint:forcetypeassert // handles are only created by Create.
	x := cgo.Handle(h).Value().(*csi.Index)

	var p []byte
	if patLen > 0 {
		p = unsafe.Slice((*byte)(pattern), patLen)
	}

	// FindAll allocates no more than the number of matches so a large
	// maxOut does not cost memory.
	offs := x.FindAll(p, int(min(maxOut, math.MaxInt)))
	if len(offs) == 0 {
		return 0
	}
	dst := unsafe.Slice((*uintptr)(out), len(offs))
	for i, o := range offs {
		dst[i] = uintptr(o)
	}
	return uintptr(len(offs))
}
