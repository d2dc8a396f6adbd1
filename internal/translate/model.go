// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrMissingOutput indicates an output root was not provided.
	ErrMissingOutput = errors.New("missing output directory")

	// ErrOverlappingOutput indicates the models and enums directories are the
	// same or one contains the other. Each is cleared before generation.
	ErrOverlappingOutput = errors.New("overlapping output directories")
)

// Layout holds the two output roots of a generation run.
type Layout struct {
	ModelsDir string // directory receiving one file per entity
	EnumsDir  string // directory receiving one file per enum
}

// NewLayout places the models and enums directories under output.
func NewLayout(output, models, enums string) Layout {
	return Layout{
		ModelsDir: filepath.Join(output, models),
		EnumsDir:  filepath.Join(output, enums),
	}
}

// Validate fails when either output root is unset or the two overlap.
func (l Layout) Validate() error {
	if l.ModelsDir == "" {
		return fmt.Errorf("%w: models", ErrMissingOutput)
	}
	if l.EnumsDir == "" {
		return fmt.Errorf("%w: enums", ErrMissingOutput)
	}
	if within(l.ModelsDir, l.EnumsDir) || within(l.EnumsDir, l.ModelsDir) {
		return fmt.Errorf("%w: models %s, enums %s", ErrOverlappingOutput, l.ModelsDir, l.EnumsDir)
	}
	return nil
}

// within reports whether path is dir or lies below it.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// EnumsImportPath returns the slash-separated import path from the models
// directory to the enums directory, e.g. "../enums".
func (l Layout) EnumsImportPath() (string, error) {
	rel, err := filepath.Rel(l.ModelsDir, l.EnumsDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve enums import path: %w", err)
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return rel, nil
	}
	return "./" + rel, nil
}
