// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package format

import (
	"context"
	"fmt"
	"strings"
)

// Builtin lays out generated TypeScript without an external tool. It relies on
// the line-oriented shape of generated declarations: one statement, member or
// decorator per line.
type Builtin struct{}

// Format re-indents src by brace depth and applies opts.
func (Builtin) Format(_ context.Context, src []byte, opts Options) ([]byte, error) {
	if opts.Parser != "" && opts.Parser != "typescript" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedParser, opts.Parser)
	}
	switch opts.TrailingComma {
	case "", "all", "es5", "none":
	default:
		return nil, fmt.Errorf("invalid trailingComma %q", opts.TrailingComma)
	}

	lines := normalizeLines(string(src))
	if len(lines) == 0 {
		return nil, nil
	}

	for i, line := range lines {
		if line == "" {
			continue
		}
		if i+1 < len(lines) && strings.HasPrefix(lines[i+1], "}") && isMember(line) {
			line = strings.TrimSuffix(line, ",")
			if opts.TrailingComma != "none" {
				line += ","
			}
		}
		if !opts.Semi {
			line = strings.TrimSuffix(line, ";")
		}
		if !opts.SingleQuote {
			line = strings.ReplaceAll(line, "'", `"`)
		}
		lines[i] = line
	}

	unit := "\t"
	if !opts.UseTabs {
		width := opts.TabWidth
		if width <= 0 {
			width = 2
		}
		unit = strings.Repeat(" ", width)
	}

	depth := 0
	for i, line := range lines {
		if line == "" {
			continue
		}
		closesFirst := strings.HasPrefix(line, "}")
		if closesFirst && depth > 0 {
			depth--
		}
		lines[i] = strings.Repeat(unit, depth) + line
		depth += braceDelta(line)
		if closesFirst {
			depth++
		}
		if depth < 0 {
			depth = 0
		}
	}

	eol := "\n"
	if opts.EndOfLine == "crlf" {
		eol = "\r\n"
	}
	return []byte(strings.Join(lines, eol) + eol), nil
}

// normalizeLines trims every line and keeps at most one blank line between
// statements, none at the edges of a block or of the file.
func normalizeLines(src string) []string {
	raw := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	lines := make([]string, 0, len(raw))
	blank := false
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			blank = len(lines) > 0
			continue
		}
		if blank && !strings.HasSuffix(lines[len(lines)-1], "{") && !strings.HasPrefix(line, "}") {
			lines = append(lines, "")
		}
		blank = false
		lines = append(lines, line)
	}
	return lines
}

// isMember reports whether line is the last element of a comma separated
// block, such as an enum member, rather than a statement or a decorator.
func isMember(line string) bool {
	if strings.HasPrefix(line, "@") || strings.HasPrefix(line, "//") {
		return false
	}
	return !strings.HasSuffix(line, ";") && !strings.HasSuffix(line, "{") && !strings.HasSuffix(line, "}")
}

// braceDelta counts opening minus closing braces outside string literals.
func braceDelta(line string) int {
	delta := 0
	var quote rune
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"' || r == '`':
			quote = r
		case r == '{':
			delta++
		case r == '}':
			delta--
		}
	}
	return delta
}
