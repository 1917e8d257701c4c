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
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Encoding is a file encoding understood by csiutil.
type Encoding int

const (
	// Plain files are written as is.
	Plain Encoding = iota

	// Gzip files are gzip compressed.
	Gzip

	// Zstd files are zstandard compressed.
	Zstd

	// DictZip files are compressed with dictzip.
	DictZip
)

// Ext returns the file extension used for the encoding.
func (e Encoding) Ext() string {
	switch e {
	case Gzip:
		return ".txt.gz"
	case Zstd:
		return ".txt.zst"
	case DictZip:
		return ".txt.dz"
	default:
		return ".txt"
	}
}

// MakeTempFile writes data to a new file in a temporary directory using the
// given encoding and returns the file's path. The directory is removed when
// the test completes.
func MakeTempFile(t *testing.T, name string, data []byte, enc Encoding) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name+enc.Ext())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var w io.WriteCloser
	switch enc {
	case Gzip:
		w = gzip.NewWriter(f)
	case Zstd:
		w, err = zstd.NewWriter(f)
	case DictZip:
		w, err = dictzip.NewWriter(f)
	default:
		w = nopCloser{f}
	}
	if err != nil {
		t.Fatal(err)
	}

	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
