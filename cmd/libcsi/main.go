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

// Command libcsi builds the index as a C shared library:
//
//	go build -buildmode=c-shared -o libcsi.so ./cmd/libcsi
//
// C callers use the declarations in csi.h.
package main

/*
#include "handle.h"
*/
import "C"

import (
	"unsafe"

	"github.com/ianlewis/go-csi/internal/abi"
)

//export csi_new
func csi_new(data *C.uint8_t, n C.size_t) *C.CSIHandle {
	h := abi.Create(unsafe.Pointer(data), uintptr(n))
	return C.csi_handle_from_id(C.uintptr_t(h))
}

//export csi_free
func csi_free(h *C.CSIHandle) {
	abi.Destroy(abi.Handle(C.csi_handle_id(h)))
}

//export csi_search
func csi_search(h *C.CSIHandle, pattern *C.uint8_t, patLen C.size_t, out *C.size_t, maxOut C.size_t) C.size_t {
	n := abi.Search(
		abi.Handle(C.csi_handle_id(h)),
		unsafe.Pointer(pattern), uintptr(patLen),
		unsafe.Pointer(out), uintptr(maxOut),
	)
	return C.size_t(n)
}

func main() {}
