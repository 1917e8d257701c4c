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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrCSIUtil is a parent error for all command errors.
var ErrCSIUtil = errors.New("csiutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrCSIUtil)

// ErrConfig indicates that the config file could not be loaded.
var ErrConfig = fmt.Errorf("%w: config", ErrCSIUtil)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

const (
	metadataConfig = "config"
	metadataLogger = "logger"
)

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

func newCSIUtilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search files for exact byte strings.",
		Description: strings.Join([]string{
			"Builds an in-memory substring index over each input and queries it.",
			"Inputs ending in .gz, .zst or .dz are decompressed first.",
			"http://github.com/ianlewis/go-csi",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read defaults from the YAML config file `PATH`",
				Aliases: []string{"c"},
				EnvVars: []string{"CSIUTIL_CONFIG"},
			},
			&cli.BoolFlag{
				Name:               "verbose",
				Usage:              "log debug information to stderr",
				Aliases:            []string{"v"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		Before: func(c *cli.Context) error {
			cfg, err := loadConfig(c.String("config"), configLocations())
			if err != nil {
				return err
			}
			c.App.Metadata[metadataConfig] = cfg
			c.App.Metadata[metadataLogger] = newLogger(c.App.ErrWriter, c.Bool("verbose"))
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		OnUsageError: usageError,
		// Errors are mapped to exit codes in main.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			searchCommand,
			statsCommand,
			queryCommand,
		},
	}
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

%s
`, c.App.Name, versionInfo.GitVersion, c.App.Copyright, versionInfo.String())
	return err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func appConfig(c *cli.Context) *config {
	if cfg, ok := c.App.Metadata[metadataConfig].(*config); ok {
		return cfg
	}
	return defaultConfig()
}

func appLogger(c *cli.Context) *slog.Logger {
	if l, ok := c.App.Metadata[metadataLogger].(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
