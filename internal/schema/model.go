// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema defines the data model consumed by the generator and the
// parsers that build it from schema documents.
package schema

// FieldKind classifies what a field's type name refers to.
type FieldKind string

const (
	// KindScalar marks a field whose type is a primitive tag.
	KindScalar FieldKind = "scalar"
	// KindEnum marks a field whose type names an Enum.
	KindEnum FieldKind = "enum"
	// KindObject marks a field whose type names another Entity.
	KindObject FieldKind = "object"
)

// Primitive is one of the closed set of scalar type tags.
type Primitive string

// Primitive type tags understood directly by translators.
const (
	Int      Primitive = "Int"
	String   Primitive = "String"
	DateTime Primitive = "DateTime"
	Boolean  Primitive = "Boolean"
	Json     Primitive = "Json"
	BigInt   Primitive = "BigInt"
	Float    Primitive = "Float"
	Decimal  Primitive = "Decimal"
	Bytes    Primitive = "Bytes"
)

// Primitives lists every primitive tag.
var Primitives = []Primitive{BigInt, Boolean, Bytes, DateTime, Decimal, Float, Int, Json, String}

// IsPrimitive reports whether typeName is a primitive tag.
func IsPrimitive(typeName string) bool {
	switch Primitive(typeName) {
	case Int, String, DateTime, Boolean, Json, BigInt, Float, Decimal, Bytes:
		return true
	}
	return false
}

// Schema is the root container of entities and enums, both in declaration order.
type Schema struct {
	Entities []Entity
	Enums    []Enum
}

// Entity is a named record type with ordered fields.
type Entity struct {
	Name   string
	Fields []Field
}

// Field is one named, typed member of an Entity.
type Field struct {
	Name     string
	Type     string // primitive tag or the name of an Entity/Enum
	Required bool
	List     bool
	Kind     FieldKind
}

// Enum is a named set of string values; each value is both key and literal.
type Enum struct {
	Name   string
	Values []string
}

// IsPrimitive reports whether the field's type is a primitive tag.
func (f Field) IsPrimitive() bool {
	return IsPrimitive(f.Type)
}

// Entity returns the entity with the given name.
func (s *Schema) Entity(name string) (*Entity, bool) {
	for i := range s.Entities {
		if s.Entities[i].Name == name {
			return &s.Entities[i], true
		}
	}
	return nil, false
}

// Enum returns the enum with the given name.
func (s *Schema) Enum(name string) (*Enum, bool) {
	for i := range s.Enums {
		if s.Enums[i].Name == name {
			return &s.Enums[i], true
		}
	}
	return nil, false
}

// FieldCount returns the total number of fields across all entities.
func (s *Schema) FieldCount() int {
	n := 0
	for _, e := range s.Entities {
		n += len(e.Fields)
	}
	return n
}
