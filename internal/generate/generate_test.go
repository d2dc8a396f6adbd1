// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandermendes/prisma-typestack/internal/format"
	"github.com/alexandermendes/prisma-typestack/internal/schema"
	"github.com/alexandermendes/prisma-typestack/internal/translate"
	"github.com/alexandermendes/prisma-typestack/internal/translate/classvalidator"
)

func shop() *schema.Schema {
	return &schema.Schema{
		Entities: []schema.Entity{
			{Name: "User", Fields: []schema.Field{
				{Name: "id", Type: "Int", Required: true, Kind: schema.KindScalar},
				{Name: "role", Type: "Role", Required: true, Kind: schema.KindEnum},
			}},
			{Name: "Post", Fields: []schema.Field{
				{Name: "author", Type: "User", Required: true, Kind: schema.KindObject},
			}},
		},
		Enums: []schema.Enum{
			{Name: "Role", Values: []string{"ADMIN", "MEMBER"}},
		},
	}
}

var errBoom = errors.New("boom")

// failingTranslator fails for the entity or enum named in fail.
type failingTranslator struct {
	classvalidator.Translator
	fail  string
	calls atomic.Int32
}

func (f *failingTranslator) TranslateEntity(e schema.Entity, l translate.Layout) ([]byte, error) {
	f.calls.Add(1)
	if e.Name == f.fail {
		return nil, errBoom
	}
	return f.Translator.TranslateEntity(e, l)
}

func (f *failingTranslator) TranslateEnum(e schema.Enum) ([]byte, error) {
	f.calls.Add(1)
	if e.Name == f.fail {
		return nil, errBoom
	}
	return f.Translator.TranslateEnum(e)
}

type failingFormatter struct{}

func (failingFormatter) Format(context.Context, []byte, format.Options) ([]byte, error) {
	return nil, errBoom
}

func TestWriteAll_MemSink(t *testing.T) {
	sink := NewMemSink()
	layout := translate.NewLayout("out", "models", "enums")
	g := &Generator{
		Translator: &classvalidator.Translator{},
		Formatter:  format.Builtin{},
		Options:    format.DefaultOptions(),
		Sink:       sink,
	}

	result, err := g.WriteAll(context.Background(), shop(), layout)
	require.NoError(t, err)

	enumPath := filepath.Join("out", "enums", "Role.ts")
	userPath := filepath.Join("out", "models", "User.ts")
	postPath := filepath.Join("out", "models", "Post.ts")

	assert.Equal(t, []string{enumPath, userPath, postPath}, result.Files)
	assert.Equal(t, []string{filepath.Join("out", "enums"), filepath.Join("out", "models")}, sink.Dirs())
	assert.Len(t, sink.Files(), 3)

	enum, ok := sink.Read(enumPath)
	require.True(t, ok)
	assert.Equal(t, "export enum Role {\n  ADMIN = 'ADMIN',\n  MEMBER = 'MEMBER',\n}\n", string(enum))

	user, ok := sink.Read(userPath)
	require.True(t, ok)
	assert.Contains(t, string(user), "import { Role } from '../enums/Role';")
	assert.Contains(t, string(user), "role: keyof typeof Role;")

	post, ok := sink.Read(postPath)
	require.True(t, ok)
	assert.Contains(t, string(post), "import { User } from './User';")
}

func TestWriteAll_FSSink(t *testing.T) {
	out := t.TempDir()
	layout := translate.NewLayout(out, "models", "enums")

	stale := filepath.Join(layout.ModelsDir, "Stale.ts")
	require.NoError(t, os.MkdirAll(layout.ModelsDir, 0o750))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o600))

	g := &Generator{Translator: &classvalidator.Translator{}, Concurrency: 1}
	result, err := g.WriteAll(context.Background(), shop(), layout)
	require.NoError(t, err)
	assert.Len(t, result.Files, 3)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale file should be removed")

	content, err := os.ReadFile(filepath.Join(layout.EnumsDir, "Role.ts")) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(content), "export enum Role")
}

func TestWriteAll_MissingOutput(t *testing.T) {
	sink := NewMemSink()
	g := &Generator{Translator: &classvalidator.Translator{}, Sink: sink}

	_, err := g.WriteAll(context.Background(), shop(), translate.Layout{ModelsDir: "models"})
	require.Error(t, err)
	assert.ErrorIs(t, err, translate.ErrMissingOutput)
	assert.Empty(t, sink.Dirs(), "nothing is prepared when the layout is invalid")
}

func TestWriteAll_OverlappingOutput(t *testing.T) {
	tests := []struct {
		name   string
		layout translate.Layout
	}{
		{"models is the output root", translate.NewLayout("out", ".", "enums")},
		{"models above the output root", translate.NewLayout("out", "..", "enums")},
		{"enums inside models", translate.NewLayout("out", "models", "models/enums")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := NewMemSink()
			g := &Generator{Translator: &classvalidator.Translator{}, Sink: sink}

			result, err := g.WriteAll(context.Background(), shop(), tt.layout)
			require.Error(t, err)
			assert.ErrorIs(t, err, translate.ErrOverlappingOutput)
			assert.Nil(t, result)
			assert.Empty(t, sink.Dirs(), "nothing is cleared for an overlapping layout")
		})
	}
}

func TestWriteAll_NoTranslator(t *testing.T) {
	_, err := (&Generator{Sink: NewMemSink()}).WriteAll(context.Background(), shop(), translate.NewLayout("out", "models", "enums"))
	assert.ErrorIs(t, err, ErrNoTranslator)
}

func TestWriteAll_CollectsUnitFailures(t *testing.T) {
	sink := NewMemSink()
	tr := &failingTranslator{fail: "User"}
	g := &Generator{Translator: tr, Sink: sink, Concurrency: 2}

	result, err := g.WriteAll(context.Background(), shop(), translate.NewLayout("out", "models", "enums"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)

	var unitErr *UnitError
	require.True(t, errors.As(err, &unitErr))
	assert.Equal(t, "model", unitErr.Kind)
	assert.Equal(t, "User", unitErr.Name)
	assert.Equal(t, filepath.Join("out", "models", "User.ts"), unitErr.Path)
	assert.Contains(t, err.Error(), "model User")

	assert.Equal(t, []string{
		filepath.Join("out", "enums", "Role.ts"),
		filepath.Join("out", "models", "Post.ts"),
	}, result.Files)
	assert.Equal(t, int32(3), tr.calls.Load())
}

func TestWriteAll_FailFast(t *testing.T) {
	tr := &failingTranslator{fail: "Role"}
	g := &Generator{Translator: tr, Sink: NewMemSink(), Concurrency: 1, FailFast: true}

	result, err := g.WriteAll(context.Background(), shop(), translate.NewLayout("out", "models", "enums"))
	require.Error(t, err)

	var unitErr *UnitError
	require.True(t, errors.As(err, &unitErr))
	assert.Equal(t, "enum", unitErr.Kind)
	assert.Equal(t, "Role", unitErr.Name)
	assert.Empty(t, result.Files)
	assert.Equal(t, int32(1), tr.calls.Load(), "remaining units are skipped")
}

func TestWriteAll_FormatterFailureIsNotMasked(t *testing.T) {
	sink := NewMemSink()
	g := &Generator{Translator: &classvalidator.Translator{}, Formatter: failingFormatter{}, Sink: sink}

	result, err := g.WriteAll(context.Background(), shop(), translate.NewLayout("out", "models", "enums"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "failed to format")
	assert.Empty(t, result.Files)
	assert.Empty(t, sink.Files(), "unformatted text is never written")
}

func TestWriteAll_EmptySchema(t *testing.T) {
	sink := NewMemSink()
	g := &Generator{Translator: &classvalidator.Translator{}, Sink: sink}

	result, err := g.WriteAll(context.Background(), &schema.Schema{}, translate.NewLayout("out", "models", "enums"))
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Len(t, sink.Dirs(), 2)
}

func TestWriteAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &Generator{Translator: &classvalidator.Translator{}, Sink: NewMemSink()}
	result, err := g.WriteAll(ctx, shop(), translate.NewLayout("out", "models", "enums"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Files)
}
