// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexandermendes/prisma-typestack/internal/prompts"
	"github.com/alexandermendes/prisma-typestack/internal/schema"
	"github.com/alexandermendes/prisma-typestack/internal/session"
)

func newSchemaValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the project schema",
		Long: `Load the schema referenced by typestack.yaml and check that names are
unique and every field type resolves to a primitive, an enum or an entity.`,
		Example: `  # Validate the schema
  typestack schema validate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runSchemaValidate(cmd, ctx)
		},
	}
}

func runSchemaValidate(cmd *cobra.Command, ctx *session.Context) error {
	parser, err := schema.ParserFor(ctx.SchemaPath)
	if err != nil {
		return err
	}

	prompts.FprintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Schema", Value: relPath(ctx.Dir, ctx.SchemaPath)},
		{Label: "Format", Value: parser.Name()},
		{Label: "Entities", Value: strconv.Itoa(len(ctx.Schema.Entities))},
		{Label: "Enums", Value: strconv.Itoa(len(ctx.Schema.Enums))},
		{Label: "Fields", Value: strconv.Itoa(ctx.Schema.FieldCount())},
	}, "Schema is valid")
	return nil
}

func newSchemaListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the entities and enums of the project schema",
		Example: `  # List entities and enums
  typestack schema list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runSchemaList(cmd, ctx)
		},
	}
}

func runSchemaList(cmd *cobra.Command, ctx *session.Context) error {
	out := cmd.OutOrStdout()
	if len(ctx.Schema.Entities) == 0 && len(ctx.Schema.Enums) == 0 {
		_, err := fmt.Fprintln(out, "No entities or enums defined.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tKIND\tMEMBERS")
	for _, e := range ctx.Schema.Entities {
		_, _ = fmt.Fprintf(w, "%s\tentity\t%d\n", e.Name, len(e.Fields))
	}
	for _, e := range ctx.Schema.Enums {
		_, _ = fmt.Fprintf(w, "%s\tenum\t%d\n", e.Name, len(e.Values))
	}
	return w.Flush()
}

// relPath shortens path for display when it lies below dir.
func relPath(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
