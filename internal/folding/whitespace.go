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

// Package folding implements byte level input normalization for csiutil.
package folding

import (
	"golang.org/x/text/transform"
)

// isSpace reports whether c is an ASCII whitespace byte.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// WhitespaceFolder folds whitespace in its input. Leading and trailing ASCII
// whitespace is removed and each internal run of ASCII whitespace is
// replaced with a single space. Other bytes, including non-ASCII ones, are
// passed through unchanged.
type WhitespaceFolder struct {
	// notStart is true after the first non-whitespace byte.
	notStart bool

	// wsSpan is true while inside a whitespace run.
	wsSpan bool
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceFolder) Transform(dst, src []byte, _ bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c := src[nSrc]
		if isSpace(c) {
			nSrc++
			if w.notStart {
				w.wsSpan = true
			}
			continue
		}

		need := 1
		if w.wsSpan {
			need = 2
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if w.wsSpan {
			dst[nDst] = ' '
			nDst++
			w.wsSpan = false
		}
		w.notStart = true
		dst[nDst] = c
		nDst++
		nSrc++
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceFolder) Reset() {
	*w = WhitespaceFolder{}
}

// Whitespace returns b with whitespace folded.
func Whitespace(b []byte) ([]byte, error) {
	out, _, err := transform.Bytes(&WhitespaceFolder{}, b)
	if err != nil {
		return nil, err
	}
	return out, nil
}
