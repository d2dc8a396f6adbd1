// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package classvalidator translates schema entities into TypeScript classes
// annotated with class-validator and class-transformer decorators, and enums
// into TypeScript string enums.
package classvalidator

import (
	"github.com/alexandermendes/prisma-typestack/internal/schema"
)

// scalarTypes maps every primitive tag to its TypeScript type.
var scalarTypes = map[schema.Primitive]string{
	schema.Int:      "number",
	schema.String:   "string",
	schema.DateTime: "Date",
	schema.Boolean:  "boolean",
	schema.Json:     "object",
	schema.BigInt:   "BigInt",
	schema.Float:    "number",
	schema.Decimal:  "number",
	schema.Bytes:    "Buffer",
}

// validators maps every primitive tag to its class-validator decorator.
var validators = map[schema.Primitive]string{
	schema.Int:      "IsInt",
	schema.String:   "IsString",
	schema.DateTime: "IsISO8601",
	schema.Boolean:  "IsBoolean",
	schema.Json:     "IsObject",
	schema.BigInt:   "IsInt",
	schema.Float:    "IsNumber",
	schema.Decimal:  "IsNumber",
	schema.Bytes:    "IsString",
}

// scalarType returns the TypeScript type of a primitive tag.
// Callers classify with schema.IsPrimitive first.
func scalarType(p schema.Primitive) string {
	return scalarTypes[p]
}

// validatorName returns the validator decorator of a primitive tag.
func validatorName(p schema.Primitive) string {
	return validators[p]
}

// isOptional reports whether the field renders as optional and nullable.
// References to other entities are always optional; enum references follow
// the required flag like primitives do.
func isOptional(f schema.Field) bool {
	return !f.Required || (!f.IsPrimitive() && f.Kind != schema.KindEnum)
}

// fieldType returns the element type of a field, without list or null markers.
// Enum list elements are parenthesized, rendering (keyof typeof Role)[], since
// keyof typeof Role[] would take the keys of the array type instead.
func fieldType(f schema.Field) string {
	switch {
	case f.IsPrimitive():
		return scalarType(schema.Primitive(f.Type))
	case f.Kind == schema.KindEnum:
		if f.List {
			return "(keyof typeof " + f.Type + ")"
		}
		return "keyof typeof " + f.Type
	default:
		return f.Type
	}
}
