// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/alexandermendes/prisma-typestack/internal/config"
	"github.com/alexandermendes/prisma-typestack/internal/schema"
	"github.com/alexandermendes/prisma-typestack/internal/translate"
)

var (
	// ErrNotInitialized indicates no typestack.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a typestack project (typestack.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchemaNotFound indicates the schema file referenced by config doesn't exist.
	ErrSchemaNotFound = errors.New("schema file not found")
)

const (
	// ConfigFileName is the name of the typestack configuration file.
	ConfigFileName = "typestack.yaml"

	// EnvFileName holds variables available to ${VAR} references in the config.
	EnvFileName = ".env"
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and loaded schema.
type Context struct {
	// Dir is the project directory holding typestack.yaml.
	Dir string

	// Config is the configuration with defaults applied and variables expanded.
	Config *config.Config

	// SchemaPath is the absolute path of the schema document.
	SchemaPath string

	// Schema is the loaded and checked schema.
	Schema *schema.Schema
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the typestack Context stored in it.
// getenv is consulted before the project's .env file.
func Load(ctx context.Context, getenv func(string) string) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	tsCtx, err := LoadDir(cwd, getenv)
	if err != nil {
		return nil, err
	}
	return context.WithValue(ctx, contextKey{}, tsCtx), nil
}

// LoadDir loads the project rooted at dir.
func LoadDir(dir string, getenv func(string) string) (*Context, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	lookup, err := envLookup(dir, getenv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.Expand(lookup)

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	schemaPath := resolvePath(dir, cfg.Schema)
	if _, statErr := os.Stat(schemaPath); statErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, schemaPath)
	}

	s, err := schema.Load(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", schemaPath, err)
	}

	return &Context{
		Dir:        dir,
		Config:     cfg,
		SchemaPath: schemaPath,
		Schema:     s,
	}, nil
}

// Layout returns the output directories for output, or for the configured
// output when output is empty. Relative paths are resolved against Dir.
func (c *Context) Layout(output string) translate.Layout {
	if output == "" {
		output = c.Config.Output
	}
	return translate.NewLayout(resolvePath(c.Dir, output), c.Config.Models, c.Config.Enums)
}

// envLookup resolves variables from getenv first, then from the .env file in
// dir when one exists.
func envLookup(dir string, getenv func(string) string) (func(string) string, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	path := filepath.Join(dir, EnvFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return getenv, nil
	}

	dotenv, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", EnvFileName, err)
	}
	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}, nil
}

func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// From extracts the typestack Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if tsCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return tsCtx
	}
	return nil
}
