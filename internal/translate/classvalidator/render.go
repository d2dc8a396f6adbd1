// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package classvalidator

import (
	"strings"

	"github.com/alexandermendes/prisma-typestack/internal/schema"
)

// RenderField renders a field declaration preceded by its decorators, one
// per line, e.g.
//
//	@IsOptional()
//	@IsString()
//	nickname?: string | null;
func RenderField(f schema.Field) string {
	var sb strings.Builder

	for _, d := range Decorators(f) {
		sb.WriteString(d.String())
		sb.WriteByte('\n')
	}

	optional := isOptional(f)

	sb.WriteString(f.Name)
	if optional {
		sb.WriteByte('?')
	}
	sb.WriteString(": ")
	sb.WriteString(fieldType(f))
	if f.List {
		sb.WriteString("[]")
	}
	if optional {
		sb.WriteString(" | null")
	}
	sb.WriteByte(';')

	return sb.String()
}
