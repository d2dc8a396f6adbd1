// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSSink_EnsureEmptyDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	sink := FSSink{}

	require.NoError(t, sink.EnsureEmptyDir(dir))
	require.NoError(t, sink.WriteFile(filepath.Join(dir, "X.ts"), []byte("x")))

	require.NoError(t, sink.EnsureEmptyDir(dir))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, sink.EnsureEmptyDir(dir), "idempotent")
}

func TestFSSink_WriteFileMissingDir(t *testing.T) {
	err := FSSink{}.WriteFile(filepath.Join(t.TempDir(), "missing", "X.ts"), []byte("x"))
	assert.Error(t, err)
}

func TestMemSink(t *testing.T) {
	sink := NewMemSink()

	err := sink.WriteFile("out/models/A.ts", []byte("a"))
	require.Error(t, err, "directory must be prepared first")

	require.NoError(t, sink.EnsureEmptyDir("out/models"))
	require.NoError(t, sink.EnsureEmptyDir("out/enums"))
	require.NoError(t, sink.WriteFile("out/models/A.ts", []byte("a")))
	require.NoError(t, sink.WriteFile("out/enums/E.ts", []byte("e")))

	data, ok := sink.Read("out/models/A.ts")
	require.True(t, ok)
	assert.Equal(t, "a", string(data))
	assert.Equal(t, []string{filepath.Clean("out/enums/E.ts"), filepath.Clean("out/models/A.ts")}, sink.Files())

	require.NoError(t, sink.EnsureEmptyDir("out/models"))
	assert.Equal(t, []string{filepath.Clean("out/enums/E.ts")}, sink.Files())
}

func TestMemSink_ClearingParentDropsPreparedDirs(t *testing.T) {
	sink := NewMemSink()
	require.NoError(t, sink.EnsureEmptyDir("out/enums"))
	require.NoError(t, sink.EnsureEmptyDir("out"))

	assert.Equal(t, []string{"out"}, sink.Dirs())
	err := sink.WriteFile("out/enums/Color.ts", []byte("x"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	require.NoError(t, sink.WriteFile("out/User.ts", []byte("x")))
}

func TestMemSink_Concurrent(t *testing.T) {
	sink := NewMemSink()
	require.NoError(t, sink.EnsureEmptyDir("out"))

	var wg sync.WaitGroup
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, sink.WriteFile(filepath.Join("out", name+".ts"), []byte(name)))
		}()
	}
	wg.Wait()

	assert.Len(t, sink.Files(), 6)
}
