// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package classvalidator

import (
	"strings"

	"github.com/alexandermendes/prisma-typestack/internal/schema"
)

// ImportSet holds the import statements of one entity.
type ImportSet struct {
	External []PackageImport // decorator packages, in order of first use
	Internal []SymbolImport  // sibling entities and enums, in order of first use
}

// PackageImport imports decorators from an npm package.
type PackageImport struct {
	Package string
	Names   []string
}

func (p PackageImport) String() string {
	return "import { " + strings.Join(p.Names, ", ") + " } from '" + p.Package + "';"
}

// SymbolImport imports a generated entity or enum.
type SymbolImport struct {
	Symbol string
	Path   string
}

func (s SymbolImport) String() string {
	return "import { " + s.Symbol + " } from '" + s.Path + "';"
}

// ResolveImports computes the imports required by an entity's rendered
// fields. enumsPath is the import path from the models directory to the
// enums directory.
func ResolveImports(entity schema.Entity, enumsPath string) ImportSet {
	return ImportSet{
		External: externalImports(entity),
		Internal: internalImports(entity, enumsPath),
	}
}

// externalImports groups the distinct decorator names used by the entity
// by owning package.
func externalImports(entity schema.Entity) []PackageImport {
	var imports []PackageImport
	seen := make(map[string]bool)
	bucket := make(map[string]int)

	for _, f := range entity.Fields {
		for _, d := range Decorators(f) {
			if seen[d.Name] {
				continue
			}
			seen[d.Name] = true

			pkg := d.Package()
			i, ok := bucket[pkg]
			if !ok {
				i = len(imports)
				bucket[pkg] = i
				imports = append(imports, PackageImport{Package: pkg})
			}
			imports[i].Names = append(imports[i].Names, d.Name)
		}
	}

	return imports
}

// internalImports imports each referenced type once, at the position of the
// first field using it. A field typed as the entity itself produces no
// import: the class is declared in the same file, and a file importing
// itself is a circular module reference.
func internalImports(entity schema.Entity, enumsPath string) []SymbolImport {
	var imports []SymbolImport
	seen := make(map[string]bool)

	for _, f := range entity.Fields {
		if f.IsPrimitive() || seen[f.Type] {
			continue
		}
		seen[f.Type] = true

		if f.Type == entity.Name {
			continue
		}

		path := "./" + f.Type
		if f.Kind == schema.KindEnum {
			path = enumsPath + "/" + f.Type
		}
		imports = append(imports, SymbolImport{Symbol: f.Type, Path: path})
	}

	return imports
}
