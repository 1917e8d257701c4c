// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ianlewis/go-dictzip"
	"github.com/k3a/html2text"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-csi"
	"github.com/ianlewis/go-csi/internal/folding"
)

// stdinPath is the input path that reads from standard input.
const stdinPath = "-"

// indexedFile is an input and its index.
type indexedFile struct {
	path  string
	data  []byte
	index *csi.Index
}

func (f *indexedFile) Close() error {
	return f.index.Close()
}

// readInput reads and decodes the input at path. stdin is used when path is
// stdinPath.
func readInput(path string, stdin io.Reader, o options) ([]byte, error) {
	var r io.Reader
	if path == stdinPath {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error opening %q: %w", path, err)
		}
		defer f.Close()
		r = f

		switch strings.ToLower(filepath.Ext(path)) {
		case ".gz":
			z, err := gzip.NewReader(f)
			if err != nil {
				return nil, fmt.Errorf("error opening %q: %w", path, err)
			}
			defer z.Close()
			r = z
		case ".zst":
			z, err := zstd.NewReader(f)
			if err != nil {
				return nil, fmt.Errorf("error opening %q: %w", path, err)
			}
			defer z.Close()
			r = z
		case ".dz":
			z, err := dictzip.NewReader(f)
			if err != nil {
				return nil, fmt.Errorf("error opening %q: %w", path, err)
			}
			r = z
		}
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}

	if o.html {
		b = []byte(html2text.HTML2Text(string(b)))
	}
	if o.foldWhitespace {
		b, err = folding.Whitespace(b)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", path, err)
		}
	}
	return b, nil
}

// normalizePattern applies the same transformations to a pattern that
// readInput applies to input text.
func normalizePattern(p []byte, o options) ([]byte, error) {
	if !o.foldWhitespace {
		return p, nil
	}
	return folding.Whitespace(p)
}

// indexFiles reads and indexes each path, up to o.jobs at a time. The
// results are in the same order as paths. On error every index already
// built is closed.
func indexFiles(ctx context.Context, paths []string, stdin io.Reader, o options, logger *slog.Logger) ([]*indexedFile, error) {
	files := make([]*indexedFile, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			b, err := readInput(path, stdin, o)
			if err != nil {
				return err
			}

			start := time.Now()
			x, err := csi.New(b)
			if err != nil {
				return fmt.Errorf("error indexing %q: %w", path, err)
			}
			logger.Debug("built index",
				"path", path,
				"bytes", len(b),
				"elapsed", time.Since(start),
			)

			files[i] = &indexedFile{
				path:  path,
				data:  b,
				index: x,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		closeFiles(files)
		return nil, err
	}
	return files, nil
}

func closeFiles(files []*indexedFile) {
	for _, f := range files {
		if f != nil {
			_ = f.Close()
		}
	}
}
