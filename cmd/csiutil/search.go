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
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var searchCommand = &cli.Command{
	Name:      "search",
	Usage:     "print the offsets at which PATTERN occurs in each FILE",
	ArgsUsage: "PATTERN FILE...",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "max",
			Usage:   "print at most `N` offsets per file",
			Aliases: []string{"m"},
			Value:   defaultConfig().Max,
		},
		&cli.BoolFlag{
			Name:               "count",
			Usage:              "print the number of matches per file instead of offsets",
			Aliases:            []string{"n"},
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "table",
			Usage:              "print matches as a table with surrounding bytes",
			Aliases:            []string{"t"},
			DisableDefaultText: true,
		},
		&cli.IntFlag{
			Name:  "context",
			Usage: "show `N` bytes either side of a match in table output",
			Value: 8,
		},
		&cli.IntFlag{
			Name:  "jobs",
			Usage: "index up to `N` files at once",
			Value: defaultConfig().Jobs,
		},
		&cli.BoolFlag{
			Name:               "fold-whitespace",
			Usage:              "fold whitespace runs in inputs and PATTERN to a single space",
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "html",
			Usage:              "search the text content of HTML inputs",
			DisableDefaultText: true,
		},
	},
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		args := c.Args().Slice()
		if len(args) < 2 {
			return fmt.Errorf("%w: expected PATTERN and at least one FILE", ErrFlagParse)
		}
		if err := checkPaths(args[1:]); err != nil {
			return err
		}
		if c.Int("context") < 0 {
			return fmt.Errorf("%w: --context must not be negative", ErrFlagParse)
		}

		o, err := resolveOptions(c)
		if err != nil {
			return err
		}

		pattern, err := normalizePattern([]byte(args[0]), o)
		if err != nil {
			return err
		}

		files, err := indexFiles(c.Context, args[1:], c.App.Reader, o, appLogger(c))
		if err != nil {
			return err
		}
		defer closeFiles(files)

		w := c.App.Writer
		if c.Bool("count") {
			for _, f := range files {
				fmt.Fprintf(w, "%s:%d\n", f.path, f.index.Count(pattern))
			}
			return nil
		}

		out := make([]int, o.max)
		if !c.Bool("table") {
			for _, f := range files {
				n := f.index.Search(pattern, out)
				for _, off := range out[:n] {
					fmt.Fprintf(w, "%s:%d\n", f.path, off)
				}
			}
			return nil
		}

		ctxLen := c.Int("context")
		tbl := table.New("File", "Offset", "Context").WithWriter(w)
		for _, f := range files {
			n := f.index.Search(pattern, out)
			for _, off := range out[:n] {
				tbl.AddRow(f.path, off, fmt.Sprintf("%q", snippet(f.data, off, len(pattern), ctxLen)))
			}
		}
		tbl.Print()
		return nil
	},
}

// snippet returns the match at off of length n with up to ctx bytes either
// side.
func snippet(data []byte, off, n, ctx int) []byte {
	start := max(0, off-ctx)
	end := min(len(data), off+n+ctx)
	return data[start:end]
}

// checkPaths returns an error if standard input is named more than once.
func checkPaths(paths []string) error {
	n := 0
	for _, p := range paths {
		if p == stdinPath {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("%w: %q may only be given once", ErrFlagParse, stdinPath)
	}
	return nil
}
