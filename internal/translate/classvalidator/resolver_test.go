// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package classvalidator

import (
	"testing"

	"github.com/alexandermendes/prisma-typestack/internal/schema"
	"github.com/stretchr/testify/assert"
)

func TestTypeMapping(t *testing.T) {
	tests := []struct {
		tag       schema.Primitive
		wantType  string
		validator string
	}{
		{schema.Int, "number", "IsInt"},
		{schema.String, "string", "IsString"},
		{schema.DateTime, "Date", "IsISO8601"},
		{schema.Boolean, "boolean", "IsBoolean"},
		{schema.Json, "object", "IsObject"},
		{schema.BigInt, "BigInt", "IsInt"},
		{schema.Float, "number", "IsNumber"},
		{schema.Decimal, "number", "IsNumber"},
		{schema.Bytes, "Buffer", "IsString"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			assert.Equal(t, tt.wantType, scalarType(tt.tag))
			assert.Equal(t, tt.validator, validatorName(tt.tag))
		})
	}
}

func TestTypeMapping_Total(t *testing.T) {
	for _, p := range schema.Primitives {
		assert.NotEmpty(t, scalarType(p), "%s", p)
		assert.NotEmpty(t, validatorName(p), "%s", p)
	}
	assert.Len(t, scalarTypes, len(schema.Primitives))
	assert.Len(t, validators, len(schema.Primitives))
}

func TestIsOptional(t *testing.T) {
	tests := []struct {
		name  string
		field schema.Field
		want  bool
	}{
		{"required primitive", schema.Field{Type: "Int", Required: true, Kind: schema.KindScalar}, false},
		{"optional primitive", schema.Field{Type: "Int", Kind: schema.KindScalar}, true},
		{"required primitive list", schema.Field{Type: "String", Required: true, List: true, Kind: schema.KindScalar}, false},
		{"required enum", schema.Field{Type: "Status", Required: true, Kind: schema.KindEnum}, false},
		{"optional enum", schema.Field{Type: "Status", Kind: schema.KindEnum}, true},
		{"required object", schema.Field{Type: "Customer", Required: true, Kind: schema.KindObject}, true},
		{"optional object", schema.Field{Type: "Customer", Kind: schema.KindObject}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isOptional(tt.field))
		})
	}
}

func TestIsOptional_PrimitiveFollowsRequired(t *testing.T) {
	for _, p := range schema.Primitives {
		for _, required := range []bool{false, true} {
			for _, list := range []bool{false, true} {
				f := schema.Field{Type: string(p), Required: required, List: list, Kind: schema.KindScalar}
				assert.Equal(t, !required, isOptional(f), "%s required=%v list=%v", p, required, list)
			}
		}
	}
}

func TestRenderField(t *testing.T) {
	tests := []struct {
		name  string
		field schema.Field
		want  string
	}{
		{
			name:  "required primitive",
			field: schema.Field{Name: "id", Type: "Int", Required: true, Kind: schema.KindScalar},
			want:  "@IsInt()\nid: number;",
		},
		{
			name:  "optional date",
			field: schema.Field{Name: "deletedAt", Type: "DateTime", Kind: schema.KindScalar},
			want:  "@IsOptional()\n@IsISO8601()\ndeletedAt?: Date | null;",
		},
		{
			name:  "optional enum",
			field: schema.Field{Name: "status", Type: "Status", Kind: schema.KindEnum},
			want:  "@IsOptional()\n@IsEnum(Status)\nstatus?: keyof typeof Status | null;",
		},
		{
			name:  "object list",
			field: schema.Field{Name: "posts", Type: "Post", Required: true, List: true, Kind: schema.KindObject},
			want:  "@IsOptional()\n@Type(() => Post)\n@ValidateNested({ each: true })\nposts?: Post[] | null;",
		},
		{
			name:  "bytes list",
			field: schema.Field{Name: "chunks", Type: "Bytes", Required: true, List: true, Kind: schema.KindScalar},
			want:  "@IsString({ each: true })\nchunks: Buffer[];",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderField(tt.field))
		})
	}
}
