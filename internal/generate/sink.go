// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
)

// Sink receives generated source units.
type Sink interface {
	// EnsureEmptyDir clears path and recreates it. Calling it twice is harmless.
	EnsureEmptyDir(path string) error
	// WriteFile stores data at path, replacing any previous content.
	WriteFile(path string, data []byte) error
}

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FSSink writes units to the local filesystem.
type FSSink struct{}

// EnsureEmptyDir removes path and everything below it, then recreates it.
func (FSSink) EnsureEmptyDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to clear %s: %w", path, err)
	}
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	return nil
}

// WriteFile writes data to path.
func (FSSink) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, filePerm) //nolint:gosec // generated sources are meant to be readable
}

// MemSink keeps units in memory. It is safe for concurrent use.
type MemSink struct {
	mu    sync.Mutex
	dirs  []string
	files map[string][]byte
}

// NewMemSink returns an empty MemSink.
func NewMemSink() *MemSink {
	return &MemSink{files: make(map[string][]byte)}
}

// EnsureEmptyDir drops every file and prepared directory below path, as
// FSSink does on disk.
func (m *MemSink) EnsureEmptyDir(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	for name := range m.files {
		if isBelow(name, path) {
			delete(m.files, name)
		}
	}
	m.dirs = slices.DeleteFunc(m.dirs, func(d string) bool { return d == path || isBelow(d, path) })
	m.dirs = append(m.dirs, path)
	return nil
}

// WriteFile stores a copy of data under path. The parent directory must have
// been prepared with EnsureEmptyDir.
func (m *MemSink) WriteFile(path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if !m.hasDir(filepath.Dir(path)) {
		return fmt.Errorf("failed to write %s: %w", path, os.ErrNotExist)
	}
	m.files[path] = append([]byte(nil), data...)
	return nil
}

// Dirs returns the directories currently prepared, in call order.
func (m *MemSink) Dirs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.dirs...)
}

// Files returns the stored paths, sorted.
func (m *MemSink) Files() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Read returns the content stored at path.
func (m *MemSink) Read(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[filepath.Clean(path)]
	return data, ok
}

func (m *MemSink) hasDir(dir string) bool {
	for _, d := range m.dirs {
		if d == dir || isBelow(dir, d) {
			return true
		}
	}
	return false
}

func isBelow(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
