// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTranslators(t *testing.T) {
	assert.Equal(t, []string{"class-validator"}, RegisterTranslators().Available())
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	getenv := func(string) string { return "" }
	require.NoError(t, Run(context.Background(), getenv, []string{"init", "--non-interactive", "--output", "generated"}))
	require.NoError(t, Run(context.Background(), getenv, []string{"generate"}))

	_, err := os.Stat(filepath.Join(dir, "generated", "models", "User.ts"))
	assert.NoError(t, err)
}

func TestRun_UnknownCommand(t *testing.T) {
	err := Run(context.Background(), func(string) string { return "" }, []string{"publish"})
	assert.Error(t, err)
}
