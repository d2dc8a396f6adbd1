// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/alexandermendes/prisma-typestack/internal/format"
	"github.com/alexandermendes/prisma-typestack/internal/generate"
	"github.com/alexandermendes/prisma-typestack/internal/prompts"
	"github.com/alexandermendes/prisma-typestack/internal/session"
	"github.com/alexandermendes/prisma-typestack/internal/translate"
)

type generateOptions struct {
	target      string
	output      string
	concurrency int
	dryRun      bool
	failFast    bool
	dump        bool
}

func newGenerateCmd(translators translate.Register, getenv func(string) string) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate TypeScript classes and enums from the schema",
		Long: fmt.Sprintf(`Generate one source file per entity into the models directory and one
per enum into the enums directory. Both directories are cleared first.

Available targets: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Generate using typestack.yaml
  typestack generate

  # Generate into another directory
  typestack generate --output build/dto

  # Show what would be written
  typestack generate --dry-run`,
		Args:    cobra.NoArgs,
		PreRunE: session.PreRunLoad(getenv),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd, ctx, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", "", fmt.Sprintf("Target (%s), overrides typestack.yaml", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory, overrides typestack.yaml")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 0, "Files generated in parallel, overrides typestack.yaml")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Generate in memory and list the files without writing them")
	cmd.Flags().BoolVar(&opts.failFast, "fail-fast", false, "Stop at the first file that fails")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Print the loaded schema before generating")

	return cmd
}

func runGenerate(cmd *cobra.Command, ctx *session.Context, translators translate.Register, opts *generateOptions) error {
	out := cmd.OutOrStdout()

	target := ctx.Config.Target
	if opts.target != "" {
		target = opts.target
	}
	translator, err := translators.Get(target)
	if err != nil {
		return fmt.Errorf("unsupported target %q. Available targets: %s",
			target, strings.Join(translators.Available(), ", "))
	}

	concurrency := ctx.Config.Concurrency
	if cmd.Flags().Changed("concurrency") {
		if opts.concurrency < 0 {
			return fmt.Errorf("--concurrency must not be negative, got %d", opts.concurrency)
		}
		concurrency = opts.concurrency
	}
	if concurrency == 0 {
		concurrency = generate.DefaultConcurrency
	}

	if opts.dump {
		spew.Fdump(out, ctx.Schema)
	}

	layout := ctx.Layout(opts.output)
	formatter, fmtOpts, fmtSource, err := resolveFormatter(ctx, layout)
	if err != nil {
		return err
	}

	var sink generate.Sink = generate.FSSink{}
	if opts.dryRun {
		sink = generate.NewMemSink()
	}

	g := &generate.Generator{
		Translator:  translator,
		Formatter:   formatter,
		Options:     fmtOpts,
		Sink:        sink,
		Concurrency: concurrency,
		FailFast:    opts.failFast,
	}

	_, _ = fmt.Fprintf(out, "Generating %d model(s) and %d enum(s) with %s...\n",
		len(ctx.Schema.Entities), len(ctx.Schema.Enums), translator.Name())

	result, err := g.WriteAll(cmd.Context(), ctx.Schema, layout)
	if result != nil {
		for _, f := range result.Files {
			_, _ = fmt.Fprintf(out, "  %s\n", relPath(ctx.Dir, f))
		}
	}
	if err != nil {
		return reportUnitErrors(out, err)
	}

	successMsg := fmt.Sprintf("Successfully generated %d file(s)", len(result.Files))
	if opts.dryRun {
		successMsg = fmt.Sprintf("Dry run: %d file(s) generated, none written", len(result.Files))
	}
	prompts.FprintResult(out, []prompts.ResultField{
		{Label: "Models", Value: relPath(ctx.Dir, layout.ModelsDir)},
		{Label: "Enums", Value: relPath(ctx.Dir, layout.EnumsDir)},
		{Label: "Formatter", Value: fmtSource},
		{Label: "Concurrency", Value: strconv.Itoa(g.Concurrency)},
	}, successMsg)
	return nil
}

// resolveFormatter picks the formatter and its options for layout. The
// returned description names the formatter and where its options came from.
func resolveFormatter(ctx *session.Context, layout translate.Layout) (format.Formatter, format.Options, string, error) {
	opts, path, err := format.ResolveOptions(layout.ModelsDir)
	if err != nil {
		return nil, format.Options{}, "", err
	}
	opts = opts.Override(ctx.Config.Formatter.Options)

	source := "defaults"
	if path != "" {
		source = relPath(ctx.Dir, path)
	}

	if argv := ctx.Config.Formatter.Command; len(argv) > 0 {
		return format.Command{Argv: argv}, opts, fmt.Sprintf("%s (%s)", argv[0], source), nil
	}
	return format.Builtin{}, opts, fmt.Sprintf("builtin (%s)", source), nil
}

// reportUnitErrors lists the failed files and summarizes them. Errors that
// do not belong to a single file are returned unchanged.
func reportUnitErrors(out io.Writer, err error) error {
	var failed []*generate.UnitError
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		var unitErr *generate.UnitError
		if errors.As(e, &unitErr) {
			failed = append(failed, unitErr)
		}
	}
	if len(failed) == 0 {
		return err
	}

	_, _ = fmt.Fprintln(out, "\nErrors:")
	for _, unitErr := range failed {
		_, _ = fmt.Fprintf(out, "  - %v\n", unitErr)
	}
	return fmt.Errorf("failed to generate %d file(s): %w", len(failed), failed[0])
}
