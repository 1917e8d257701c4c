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
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/urfave/cli/v2"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "index FILE once and answer newline separated patterns read from stdin",
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "max",
			Usage:   "print at most `N` offsets per pattern",
			Aliases: []string{"m"},
			Value:   defaultConfig().Max,
		},
		&cli.BoolFlag{
			Name:               "null",
			Usage:              "read NUL terminated patterns instead of lines",
			Aliases:            []string{"0"},
			DisableDefaultText: true,
		},
		&cli.IntFlag{
			Name:  "cache-size",
			Usage: "cache the results of up to `N` patterns",
			Value: defaultConfig().CacheSize,
		},
		&cli.BoolFlag{
			Name:               "fold-whitespace",
			Usage:              "fold whitespace runs in FILE and patterns to a single space",
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "html",
			Usage:              "index the text content of an HTML FILE",
			DisableDefaultText: true,
		},
	},
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected exactly one FILE", ErrFlagParse)
		}
		path := c.Args().First()
		if path == stdinPath {
			return fmt.Errorf("%w: patterns are read from stdin, FILE must be a file", ErrFlagParse)
		}

		o, err := resolveOptions(c)
		if err != nil {
			return err
		}
		logger := appLogger(c)

		files, err := indexFiles(c.Context, []string{path}, nil, o, logger)
		if err != nil {
			return err
		}
		defer closeFiles(files)
		x := files[0].index

		cache, err := lru.New[string, queryResult](o.cacheSize)
		if err != nil {
			return err
		}

		out := make([]int, o.max)
		s := bufio.NewScanner(c.App.Reader)
		s.Buffer(nil, maxPatternLen)
		null := c.Bool("null")
		if null {
			s.Split(splitNull)
		}
		for s.Scan() {
			line := s.Text()
			res, ok := cache.Get(line)
			if ok {
				logger.Debug("cache hit", "pattern", line)
			} else {
				pattern, err := normalizePattern([]byte(line), o)
				if err != nil {
					return err
				}
				n := x.Search(pattern, out)
				res = queryResult{
					count:   x.Count(pattern),
					offsets: append([]int(nil), out[:n]...),
				}
				cache.Add(line, res)
			}
			if null {
				line = strconv.Quote(line)
			}
			fmt.Fprintf(c.App.Writer, "%s\t%d\t%s\n", line, res.count, res)
		}
		//nolint:wrapcheck // error should not be wrapped
		return s.Err()
	},
}

// maxPatternLen is the length of the longest pattern accepted by query.
const maxPatternLen = 16 << 20

// splitNull splits NUL terminated patterns. A final pattern without a
// terminator is returned as is.
func splitNull(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		// Found zero byte.
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}

// queryResult is the answer to one pattern.
type queryResult struct {
	// count is the total number of matches.
	count int

	// offsets holds up to --max match offsets.
	offsets []int
}

// String returns the offsets as a comma separated list.
func (r queryResult) String() string {
	strs := make([]string, len(r.offsets))
	for i, o := range r.offsets {
		strs[i] = strconv.Itoa(o)
	}
	return strings.Join(strs, ",")
}
