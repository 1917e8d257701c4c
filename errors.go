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
	"errors"
	"fmt"
)

// ErrCSI is a parent error for all index errors.
var ErrCSI = errors.New("csi")

// ErrInvalidArgument indicates that an argument was invalid.
var ErrInvalidArgument = fmt.Errorf("%w: invalid argument", ErrCSI)

// ErrTooLarge indicates that the buffer is too large to be indexed.
var ErrTooLarge = fmt.Errorf("%w: buffer too large", ErrCSI)
