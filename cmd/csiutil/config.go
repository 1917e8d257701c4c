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
	"io/fs"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// config holds defaults that can be set in a config file. Command line flags
// take precedence over config file values.
type config struct {
	// Max is the maximum number of offsets printed per file and pattern.
	Max int `yaml:"max"`

	// Jobs is the number of inputs indexed concurrently.
	Jobs int `yaml:"jobs"`

	// CacheSize is the number of query results cached by the query command.
	CacheSize int `yaml:"cache-size"`

	// FoldWhitespace folds whitespace runs in inputs and patterns.
	FoldWhitespace bool `yaml:"fold-whitespace"`

	// HTML indexes the text content of inputs rather than their markup.
	HTML bool `yaml:"html"`
}

func defaultConfig() *config {
	return &config{
		Max:       100,
		Jobs:      4,
		CacheSize: 128,
	}
}

// loadConfig reads the config file at path. If path is empty the first
// existing file in locations is used. Missing default locations are not an
// error.
func loadConfig(path string, locations []string) (*config, error) {
	cfg := defaultConfig()

	if path == "" {
		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q not found", ErrConfig, path)
		}
		return nil, fmt.Errorf("%w: error reading %q: %w", ErrConfig, path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("%w: error parsing %q: %w", ErrConfig, path, err)
	}

	switch {
	case cfg.Max < 0:
		return nil, fmt.Errorf("%w: max must not be negative: %d", ErrConfig, cfg.Max)
	case cfg.Jobs < 1:
		return nil, fmt.Errorf("%w: jobs must be positive: %d", ErrConfig, cfg.Jobs)
	case cfg.CacheSize < 1:
		return nil, fmt.Errorf("%w: cache-size must be positive: %d", ErrConfig, cfg.CacheSize)
	}

	return cfg, nil
}

// options are the effective settings for a command.
type options struct {
	max            int
	jobs           int
	cacheSize      int
	foldWhitespace bool
	html           bool
}

// resolveOptions merges the command's flags over the loaded config.
func resolveOptions(c *cli.Context) (options, error) {
	cfg := appConfig(c)
	o := options{
		max:            cfg.Max,
		jobs:           cfg.Jobs,
		cacheSize:      cfg.CacheSize,
		foldWhitespace: cfg.FoldWhitespace,
		html:           cfg.HTML,
	}

	if c.IsSet("max") {
		o.max = c.Int("max")
		if o.max < 0 {
			return o, fmt.Errorf("%w: --max must not be negative: %d", ErrFlagParse, o.max)
		}
	}
	if c.IsSet("jobs") {
		o.jobs = c.Int("jobs")
		if o.jobs < 1 {
			return o, fmt.Errorf("%w: --jobs must be positive: %d", ErrFlagParse, o.jobs)
		}
	}
	if c.IsSet("cache-size") {
		o.cacheSize = c.Int("cache-size")
		if o.cacheSize < 1 {
			return o, fmt.Errorf("%w: --cache-size must be positive: %d", ErrFlagParse, o.cacheSize)
		}
	}
	if c.IsSet("fold-whitespace") {
		o.foldWhitespace = c.Bool("fold-whitespace")
	}
	if c.IsSet("html") {
		o.html = c.Bool("html")
	}

	return o, nil
}
