// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles typestack project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexandermendes/prisma-typestack/internal/format"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Defaults applied to keys left out of typestack.yaml.
const (
	DefaultModels = "models"
	DefaultEnums  = "enums"
	DefaultTarget = "class-validator"
)

// Config represents the typestack.yaml project configuration file.
type Config struct {
	Version     int       `yaml:"version"`
	Schema      string    `yaml:"schema"`
	Output      string    `yaml:"output"`
	Models      string    `yaml:"models,omitempty"`
	Enums       string    `yaml:"enums,omitempty"`
	Target      string    `yaml:"target,omitempty"`
	Concurrency int       `yaml:"concurrency,omitempty"`
	Formatter   Formatter `yaml:"formatter,omitempty"`
}

// Formatter selects how generated sources are laid out.
type Formatter struct {
	// Command is the argv of an external formatter. Empty selects the
	// built-in formatter.
	Command []string `yaml:"command,omitempty"`

	// Options overrides the options resolved from prettier configuration.
	Options format.Overrides `yaml:"options,omitempty"`
}

// Load reads a Config from a file path and fills in defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// ApplyDefaults fills unset optional keys.
func (c *Config) ApplyDefaults() {
	if c.Models == "" {
		c.Models = DefaultModels
	}
	if c.Enums == "" {
		c.Enums = DefaultEnums
	}
	if c.Target == "" {
		c.Target = DefaultTarget
	}
}

// Expand replaces ${VAR} and $VAR references in path values using lookup.
func (c *Config) Expand(lookup func(string) string) {
	c.Schema = os.Expand(c.Schema, lookup)
	c.Output = os.Expand(c.Output, lookup)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Schema == "" {
		return errors.New("schema is required")
	}
	if c.Output == "" {
		return errors.New("output is required")
	}
	if c.Target == "" {
		return errors.New("target is required")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	if err := checkSubDir("models", c.Models); err != nil {
		return err
	}
	if err := checkSubDir("enums", c.Enums); err != nil {
		return err
	}
	if overlaps(c.Models, c.Enums) {
		return fmt.Errorf("models %q and enums %q must be separate directories, neither inside the other", c.Models, c.Enums)
	}
	return nil
}

// checkSubDir requires dir to name a directory strictly below the output root.
func checkSubDir(key, dir string) error {
	if filepath.IsAbs(dir) {
		return fmt.Errorf("%s must be relative to output, got %q", key, dir)
	}
	clean := filepath.Clean(dir)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%s must be a directory below output, got %q", key, dir)
	}
	return nil
}

func overlaps(a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	sep := string(filepath.Separator)
	return a == b || strings.HasPrefix(a, b+sep) || strings.HasPrefix(b, a+sep)
}
