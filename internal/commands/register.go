// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/alexandermendes/prisma-typestack/internal/session"
	"github.com/alexandermendes/prisma-typestack/internal/translate"
)

// NewRootCmd creates and returns the root command for the CLI.
// getenv resolves ${VAR} references in typestack.yaml.
func NewRootCmd(translators translate.Register, getenv func(string) string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "typestack",
		Short: "Generate validated TypeScript classes from a schema",
		Long: `Generate TypeScript classes decorated with class-validator and
class-transformer from a schema of entities and enums.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newInitCmd(translators))
	rootCmd.AddCommand(newGenerateCmd(translators, getenv))
	registerSchemaCmd(rootCmd, getenv)
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func registerSchemaCmd(parent *cobra.Command, getenv func(string) string) {
	cmd := &cobra.Command{
		Use:               "schema",
		Short:             "Inspect the project schema",
		PersistentPreRunE: session.PreRunLoad(getenv),
	}

	cmd.AddCommand(newSchemaValidateCmd())
	cmd.AddCommand(newSchemaListCmd())

	parent.AddCommand(cmd)
}
