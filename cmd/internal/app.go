// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/alexandermendes/prisma-typestack/internal/commands"
	"github.com/alexandermendes/prisma-typestack/internal/translate"
	"github.com/alexandermendes/prisma-typestack/internal/translate/classvalidator"
)

// RegisterTranslators returns every translator the CLI can target.
func RegisterTranslators() translate.Register {
	translators := make(translate.Register)
	translators.Add(&classvalidator.Translator{})
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup, args).
func Run(ctx context.Context, getenv func(string) string, args []string) error {
	rootCmd := commands.NewRootCmd(RegisterTranslators(), getenv)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
