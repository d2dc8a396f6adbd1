// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierValidator(t *testing.T) {
	validate := identifierValidator(map[string]bool{"User": true})

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"valid", "Order", ""},
		{"underscore", "_Order2", ""},
		{"empty", "", "name is required"},
		{"leading digit", "1Order", "must start with letter"},
		{"dash", "Order-Item", "only letters"},
		{"non ascii", "Ordér", "ASCII"},
		{"taken", "User", "already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestRequiredValidator(t *testing.T) {
	validate := requiredValidator("output directory")
	assert.NoError(t, validate("out"))
	assert.EqualError(t, validate(""), "output directory is required")
}

func TestFprintResult(t *testing.T) {
	var buf bytes.Buffer
	FprintResult(&buf, []ResultField{
		{Label: "Entities", Value: "2"},
		{Label: "Enums", Value: "1"},
	}, "Done")

	out := buf.String()
	assert.Contains(t, out, "Entities:")
	assert.Contains(t, out, "2")
	assert.Contains(t, out, "Enums:")
	assert.Contains(t, out, "Done")
}
