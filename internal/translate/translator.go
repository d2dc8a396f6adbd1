// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate provides the translator abstraction shared by all
// source generators.
package translate

import (
	"fmt"
	"sort"

	"github.com/alexandermendes/prisma-typestack/internal/schema"
)

// Translator defines the interface all source translators must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "class-validator")
	Name() string

	// TranslateEntity renders the source unit for one entity.
	// layout locates the models and enums directories relative to each other.
	TranslateEntity(entity schema.Entity, layout Layout) ([]byte, error)

	// TranslateEnum renders the source unit for one enum.
	TranslateEnum(enum schema.Enum) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".ts")
	FileExtension() string
}

// Register maps translator names to translators.
type Register map[string]Translator

// Add registers t under its own name.
func (r Register) Add(t Translator) {
	r[t.Name()] = t
}

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
