// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package format

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Command pipes source text through an external formatter such as
// `npx prettier --stdin-filepath model.ts`. Options are appended as prettier
// command line flags.
type Command struct {
	Argv []string
}

// Format runs the command with src on stdin and returns its stdout.
func (c Command) Format(ctx context.Context, src []byte, opts Options) ([]byte, error) {
	if len(c.Argv) == 0 {
		return nil, errors.New("formatter command is empty")
	}

	args := append(append([]string(nil), c.Argv[1:]...), prettierFlags(opts)...)
	cmd := exec.CommandContext(ctx, c.Argv[0], args...) //nolint:gosec // command comes from project config

	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(src)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("formatter %s failed: %w", c.Argv[0], err)
		}
		return nil, fmt.Errorf("formatter %s failed: %w: %s", c.Argv[0], err, msg)
	}
	return stdout.Bytes(), nil
}

func prettierFlags(opts Options) []string {
	var flags []string
	if opts.Parser != "" {
		flags = append(flags, "--parser", opts.Parser)
	}
	if opts.TabWidth > 0 {
		flags = append(flags, "--tab-width", strconv.Itoa(opts.TabWidth))
	}
	if opts.UseTabs {
		flags = append(flags, "--use-tabs")
	}
	if opts.SingleQuote {
		flags = append(flags, "--single-quote")
	}
	if opts.TrailingComma != "" {
		flags = append(flags, "--trailing-comma", opts.TrailingComma)
	}
	if !opts.Semi {
		flags = append(flags, "--no-semi")
	}
	if opts.EndOfLine != "" {
		flags = append(flags, "--end-of-line", opts.EndOfLine)
	}
	return flags
}
