// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidSchema indicates the document could not be decoded or does not
	// match the document format.
	ErrInvalidSchema = errors.New("invalid schema document")

	// ErrUnsupportedFormat indicates no parser handles the file extension.
	ErrUnsupportedFormat = errors.New("unsupported schema format")
)

// Parser decodes a Schema from an io.Reader.
type Parser struct {
	name     string
	toJSON   func(io.Reader) ([]byte, error)
	document func([]byte) (*rawDocument, error)
}

var (
	// YAML parses YAML schema documents.
	YAML = Parser{"yaml", yamlToJSON, decodeDocument}
	// JSON parses JSON schema documents.
	JSON = Parser{"json", io.ReadAll, decodeDocument}
	// CUE parses CUE schema documents. The value must be concrete.
	CUE = Parser{"cue", cueToJSON, decodeDocument}
	// DMMF parses a Prisma DMMF document dump.
	DMMF = Parser{"dmmf", io.ReadAll, decodeDMMF}
)

// Name returns the parser's format name.
func (p Parser) Name() string {
	return p.name
}

// Parse decodes a schema document from r and checks its referential integrity.
func (p Parser) Parse(r io.Reader) (*Schema, error) {
	data, err := p.toJSON(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	raw, err := p.document(data)
	if err != nil {
		return nil, err
	}

	s := raw.build()
	if err := Check(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ParserFor selects a parser from the file name.
// Files ending in ".dmmf.json" are Prisma DMMF dumps.
func ParserFor(path string) (Parser, error) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".dmmf.json"):
		return DMMF, nil
	case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		return YAML, nil
	case strings.HasSuffix(name, ".json"):
		return JSON, nil
	case strings.HasSuffix(name, ".cue"):
		return CUE, nil
	}
	return Parser{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads and parses the schema document at path.
func Load(path string) (*Schema, error) {
	parser, err := ParserFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	return parser.Parse(f)
}

func yamlToJSON(r io.Reader) ([]byte, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func cueToJSON(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	v := cuecontext.New().CompileBytes(data)
	if err := v.Err(); err != nil {
		return nil, err
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, err
	}
	return v.MarshalJSON()
}

//go:embed document.schema.json
var documentSchemaJSON []byte

var documentSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	var s jsonschema.Schema
	if err := json.Unmarshal(documentSchemaJSON, &s); err != nil {
		return nil, err
	}
	return s.Resolve(nil)
})

// validateDocument checks a JSON-encoded document against the embedded
// document JSON Schema.
func validateDocument(data []byte) error {
	rs, err := documentSchema()
	if err != nil {
		return fmt.Errorf("failed to load document schema: %w", err)
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if err := rs.Validate(instance); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return nil
}

func decodeDocument(data []byte) (*rawDocument, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return &raw, nil
}

type rawDocument struct {
	Entities []rawEntity `yaml:"entities" json:"entities"`
	Enums    []rawEnum   `yaml:"enums,omitempty" json:"enums,omitempty"`
}

type rawEntity struct {
	Name   string     `yaml:"name" json:"name"`
	Fields []rawField `yaml:"fields" json:"fields"`
}

type rawField struct {
	Name     string    `yaml:"name" json:"name"`
	Type     string    `yaml:"type" json:"type"`
	Required *bool     `yaml:"required,omitempty" json:"required,omitempty"`
	List     bool      `yaml:"list,omitempty" json:"list,omitempty"`
	Kind     FieldKind `yaml:"kind,omitempty" json:"kind,omitempty"`
}

type rawEnum struct {
	Name   string   `yaml:"name" json:"name"`
	Values []string `yaml:"values,flow" json:"values"`
}

// build converts the raw document into a Schema. Fields are required unless
// marked otherwise; a missing kind is inferred from the type name.
func (d *rawDocument) build() *Schema {
	enumNames := make(map[string]bool, len(d.Enums))
	for _, e := range d.Enums {
		enumNames[e.Name] = true
	}

	s := &Schema{
		Entities: make([]Entity, 0, len(d.Entities)),
		Enums:    make([]Enum, 0, len(d.Enums)),
	}

	for _, re := range d.Entities {
		entity := Entity{Name: re.Name, Fields: make([]Field, 0, len(re.Fields))}
		for _, rf := range re.Fields {
			required := true
			if rf.Required != nil {
				required = *rf.Required
			}

			kind := rf.Kind
			if kind == "" {
				switch {
				case IsPrimitive(rf.Type):
					kind = KindScalar
				case enumNames[rf.Type]:
					kind = KindEnum
				default:
					kind = KindObject
				}
			}

			entity.Fields = append(entity.Fields, Field{
				Name:     rf.Name,
				Type:     rf.Type,
				Required: required,
				List:     rf.List,
				Kind:     kind,
			})
		}
		s.Entities = append(s.Entities, entity)
	}

	for _, re := range d.Enums {
		s.Enums = append(s.Enums, Enum{Name: re.Name, Values: append([]string(nil), re.Values...)})
	}

	return s
}

// Save writes the schema as a YAML document.
func Save(path string, s *Schema) error {
	doc := rawDocument{
		Entities: make([]rawEntity, 0, len(s.Entities)),
		Enums:    make([]rawEnum, 0, len(s.Enums)),
	}
	for _, e := range s.Entities {
		re := rawEntity{Name: e.Name, Fields: make([]rawField, 0, len(e.Fields))}
		for _, f := range e.Fields {
			rf := rawField{Name: f.Name, Type: f.Type, List: f.List, Kind: f.Kind}
			if !f.Required {
				required := false
				rf.Required = &required
			}
			re.Fields = append(re.Fields, rf)
		}
		doc.Entities = append(doc.Entities, re)
	}
	for _, e := range s.Enums {
		doc.Enums = append(doc.Enums, rawEnum(e))
	}

	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}
