// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package generate writes the source units of a schema to a sink.
package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/alexandermendes/prisma-typestack/internal/format"
	"github.com/alexandermendes/prisma-typestack/internal/schema"
	"github.com/alexandermendes/prisma-typestack/internal/translate"
)

// DefaultConcurrency bounds the number of units processed at once when
// Generator.Concurrency is unset.
const DefaultConcurrency = 8

// ErrNoTranslator indicates the generator was not given a translator.
var ErrNoTranslator = errors.New("no translator configured")

// Generator renders every enum and entity of a schema, formats the result
// and hands it to a sink.
type Generator struct {
	Translator translate.Translator
	Formatter  format.Formatter // nil writes units unformatted
	Options    format.Options
	Sink       Sink

	// Concurrency bounds the units in flight. Zero means DefaultConcurrency.
	Concurrency int

	// FailFast stops scheduling units after the first failure. By default
	// every unit is attempted and all failures are reported.
	FailFast bool
}

// Result lists the files written by a run.
type Result struct {
	Files []string // enums first, then models, in declaration order
}

// UnitError locates the enum or entity whose generation failed.
type UnitError struct {
	Kind string // "enum" or "model"
	Name string
	Path string
	Err  error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("%s %s (%s): %v", e.Kind, e.Name, e.Path, e.Err)
}

func (e *UnitError) Unwrap() error {
	return e.Err
}

type unit struct {
	kind   string
	name   string
	path   string
	render func() ([]byte, error)
}

// WriteAll prepares the enums and models directories of layout and writes
// one file per enum and per entity of s.
//
// Layout and directory preparation errors abort the run before any file is
// written. Unit failures are returned as *UnitError values joined together;
// Result holds the files that were written regardless.
func (g *Generator) WriteAll(ctx context.Context, s *schema.Schema, layout translate.Layout) (*Result, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if g.Translator == nil {
		return nil, ErrNoTranslator
	}

	sink := g.Sink
	if sink == nil {
		sink = FSSink{}
	}
	if err := sink.EnsureEmptyDir(layout.EnumsDir); err != nil {
		return nil, err
	}
	if err := sink.EnsureEmptyDir(layout.ModelsDir); err != nil {
		return nil, err
	}

	units := g.units(s, layout)
	written := make([]bool, len(units))
	errs := make([]error, len(units))

	group := &errgroup.Group{}
	gctx := ctx
	if g.FailFast {
		group, gctx = errgroup.WithContext(ctx)
	}
	group.SetLimit(g.concurrency())

	for i, u := range units {
		group.Go(func() error {
			err := gctx.Err()
			if err == nil {
				err = g.write(gctx, sink, u)
			}
			if err != nil {
				errs[i] = &UnitError{Kind: u.kind, Name: u.name, Path: u.path, Err: err}
				if g.FailFast {
					return errs[i]
				}
				return nil
			}
			written[i] = true
			return nil
		})
	}
	firstErr := group.Wait()

	result := &Result{}
	for i, u := range units {
		if written[i] {
			result.Files = append(result.Files, u.path)
		}
	}

	if g.FailFast {
		return result, firstErr
	}
	return result, errors.Join(errs...)
}

func (g *Generator) units(s *schema.Schema, layout translate.Layout) []unit {
	ext := g.Translator.FileExtension()
	units := make([]unit, 0, len(s.Enums)+len(s.Entities))

	for _, e := range s.Enums {
		units = append(units, unit{
			kind:   "enum",
			name:   e.Name,
			path:   filepath.Join(layout.EnumsDir, e.Name+ext),
			render: func() ([]byte, error) { return g.Translator.TranslateEnum(e) },
		})
	}
	for _, e := range s.Entities {
		units = append(units, unit{
			kind:   "model",
			name:   e.Name,
			path:   filepath.Join(layout.ModelsDir, e.Name+ext),
			render: func() ([]byte, error) { return g.Translator.TranslateEntity(e, layout) },
		})
	}
	return units
}

func (g *Generator) write(ctx context.Context, sink Sink, u unit) error {
	src, err := u.render()
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	if g.Formatter != nil {
		src, err = g.Formatter.Format(ctx, src, g.Options)
		if err != nil {
			return fmt.Errorf("failed to format: %w", err)
		}
	}
	return sink.WriteFile(u.path, src)
}

func (g *Generator) concurrency() int {
	if g.Concurrency > 0 {
		return g.Concurrency
	}
	return DefaultConcurrency
}
