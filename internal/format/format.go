// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package format lays out generated source text before it is written.
package format

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedParser indicates the formatter cannot handle the requested parser.
var ErrUnsupportedParser = errors.New("unsupported parser")

// Formatter turns source text into formatted source text.
type Formatter interface {
	Format(ctx context.Context, src []byte, opts Options) ([]byte, error)
}

// Options mirrors the prettier options the generator relies on.
type Options struct {
	Parser        string
	TabWidth      int
	UseTabs       bool
	SingleQuote   bool
	TrailingComma string // "all", "es5" or "none"
	Semi          bool
	EndOfLine     string // "lf" or "crlf"
}

// DefaultOptions is used when no prettier configuration is found.
func DefaultOptions() Options {
	return Options{
		Parser:        "typescript",
		TabWidth:      2,
		SingleQuote:   true,
		TrailingComma: "all",
		Semi:          true,
		EndOfLine:     "lf",
	}
}

// configNames are the prettier configuration files looked up, in order.
var configNames = []string{".prettierrc", ".prettierrc.json", ".prettierrc.yaml", ".prettierrc.yml"}

// Overrides holds the option keys set in a configuration file. Nil fields
// are unset.
type Overrides struct {
	Parser        *string `yaml:"parser"`
	TabWidth      *int    `yaml:"tabWidth"`
	UseTabs       *bool   `yaml:"useTabs"`
	SingleQuote   *bool   `yaml:"singleQuote"`
	TrailingComma *string `yaml:"trailingComma"`
	Semi          *bool   `yaml:"semi"`
	EndOfLine     *string `yaml:"endOfLine"`
}

// ResolveOptions looks for a prettier configuration file in dir and its
// parents. Keys missing from a found file take prettier's own defaults.
// It returns DefaultOptions and an empty path when nothing is found.
func ResolveOptions(dir string) (Options, string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return Options{}, "", fmt.Errorf("failed to resolve directory: %w", err)
	}

	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			opts, err := LoadOptions(path)
			if err != nil {
				return Options{}, "", err
			}
			return opts, path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return DefaultOptions(), "", nil
		}
		dir = parent
	}
}

// LoadOptions reads a prettier configuration file (JSON or YAML).
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return Options{}, err
	}

	var raw Overrides
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Options{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	opts := Options{
		Parser:        "typescript",
		TabWidth:      2,
		TrailingComma: "all",
		Semi:          true,
		EndOfLine:     "lf",
	}
	raw.apply(&opts)
	return opts, nil
}

func (r Overrides) apply(opts *Options) {
	if r.Parser != nil {
		opts.Parser = *r.Parser
	}
	if r.TabWidth != nil {
		opts.TabWidth = *r.TabWidth
	}
	if r.UseTabs != nil {
		opts.UseTabs = *r.UseTabs
	}
	if r.SingleQuote != nil {
		opts.SingleQuote = *r.SingleQuote
	}
	if r.TrailingComma != nil {
		opts.TrailingComma = *r.TrailingComma
	}
	if r.Semi != nil {
		opts.Semi = *r.Semi
	}
	if r.EndOfLine != nil {
		opts.EndOfLine = *r.EndOfLine
	}
}

// Override returns o with the keys set in ov replaced, such as the
// formatter.options section of typestack.yaml.
func (o Options) Override(ov Overrides) Options {
	ov.apply(&o)
	return o
}
