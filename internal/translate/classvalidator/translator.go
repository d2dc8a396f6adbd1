// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package classvalidator

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/alexandermendes/prisma-typestack/internal/schema"
	"github.com/alexandermendes/prisma-typestack/internal/translate"
)

//go:embed class.ts.tmpl enum.ts.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("classvalidator").
	Funcs(template.FuncMap{"indent": indent}).
	ParseFS(tmplFS, "class.ts.tmpl", "enum.ts.tmpl"))

// Translator translates schema entities and enums to TypeScript sources.
type Translator struct{}

type classData struct {
	Name    string
	Imports ImportSet
	Fields  []string
}

// Name returns the translator identifier.
func (t *Translator) Name() string {
	return "class-validator"
}

// FileExtension returns the file extension for TypeScript files.
func (t *Translator) FileExtension() string {
	return ".ts"
}

// TranslateEntity renders an entity as an exported class.
func (t *Translator) TranslateEntity(entity schema.Entity, layout translate.Layout) ([]byte, error) {
	enumsPath, err := layout.EnumsImportPath()
	if err != nil {
		return nil, err
	}

	data := classData{
		Name:    entity.Name,
		Imports: ResolveImports(entity, enumsPath),
		Fields:  make([]string, 0, len(entity.Fields)),
	}
	for _, f := range entity.Fields {
		data.Fields = append(data.Fields, RenderField(f))
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "class.ts.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// TranslateEnum renders an enum whose members map each value to itself.
func (t *Translator) TranslateEnum(enum schema.Enum) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "enum.ts.tmpl", enum); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// indent prefixes every line of s with two spaces.
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}
