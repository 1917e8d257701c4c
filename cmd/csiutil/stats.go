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

var statsCommand = &cli.Command{
	Name:      "stats",
	Usage:     "print index statistics for each FILE",
	ArgsUsage: "FILE...",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "jobs",
			Usage: "index up to `N` files at once",
			Value: defaultConfig().Jobs,
		},
		&cli.BoolFlag{
			Name:               "fold-whitespace",
			Usage:              "fold whitespace runs in inputs to a single space",
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "html",
			Usage:              "index the text content of HTML inputs",
			DisableDefaultText: true,
		},
	},
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		paths := c.Args().Slice()
		if len(paths) == 0 {
			return fmt.Errorf("%w: expected at least one FILE", ErrFlagParse)
		}
		if err := checkPaths(paths); err != nil {
			return err
		}

		o, err := resolveOptions(c)
		if err != nil {
			return err
		}

		files, err := indexFiles(c.Context, paths, c.App.Reader, o, appLogger(c))
		if err != nil {
			return err
		}
		defer closeFiles(files)

		tbl := table.New("File", "Bytes", "Alphabet", "Entropy", "Rounds", "Longest Repeat").WithWriter(c.App.Writer)
		for _, f := range files {
			s := f.index.Stats()
			tbl.AddRow(f.path, s.Len, s.Alphabet, fmt.Sprintf("%.3f", s.Entropy), s.Rounds, s.LongestRepeat)
		}
		tbl.Print()
		return nil
	},
}
