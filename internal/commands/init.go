// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexandermendes/prisma-typestack/internal/config"
	"github.com/alexandermendes/prisma-typestack/internal/prompts"
	"github.com/alexandermendes/prisma-typestack/internal/schema"
	"github.com/alexandermendes/prisma-typestack/internal/session"
	"github.com/alexandermendes/prisma-typestack/internal/translate"
)

type initOptions struct {
	schema         string
	output         string
	target         string
	entity         string
	nonInteractive bool
}

func newInitCmd(translators translate.Register) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new typestack project",
		Long: `Initialize a new typestack project with a typestack.yaml configuration file.
When the schema document does not exist yet, a starter YAML schema is created.`,
		Example: `  # Interactive mode
  typestack init

  # Non-interactive
  typestack init --schema prisma/schema.dmmf.json --output src/generated --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "schema.yaml", "Path to the schema document")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "src/generated", "Output directory")
	cmd.Flags().StringVarP(&opts.target, "target", "t", config.DefaultTarget, "Target to generate")
	cmd.Flags().StringVarP(&opts.entity, "entity", "e", "User", "Entity of the starter schema")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, translators translate.Register, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("typestack.yaml already exists; project already initialized")
	}

	answers := prompts.InitAnswers{
		Schema: opts.schema,
		Output: opts.output,
		Target: opts.target,
		Entity: opts.entity,
	}
	_, statErr := os.Stat(resolveIn(cwd, answers.Schema))
	answers.CreateSchema = os.IsNotExist(statErr)

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&answers, translators.Available()); err != nil {
			return err
		}
	}

	if _, err := translators.Get(answers.Target); err != nil {
		return err
	}
	if _, err := schema.ParserFor(answers.Schema); err != nil {
		return err
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Schema:  answers.Schema,
		Output:  answers.Output,
		Target:  answers.Target,
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	schemaPath := resolveIn(cwd, answers.Schema)
	_, statErr = os.Stat(schemaPath)
	switch {
	case answers.CreateSchema && statErr == nil:
		return fmt.Errorf("schema file already exists: %s", answers.Schema)
	case answers.CreateSchema:
		if err := writeStarterSchema(schemaPath, answers.Entity); err != nil {
			return err
		}
	case statErr != nil:
		return fmt.Errorf("schema file not found: %s", answers.Schema)
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	fields := []prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Schema", Value: cfg.Schema},
		{Label: "Output", Value: cfg.Output},
		{Label: "Target", Value: cfg.Target},
	}
	prompts.FprintResult(cmd.OutOrStdout(), fields, "Initialization completed")
	return nil
}

// writeStarterSchema writes a YAML schema holding a single entity.
func writeStarterSchema(path, entity string) error {
	parser, err := schema.ParserFor(path)
	if err != nil {
		return err
	}
	if parser.Name() != schema.YAML.Name() {
		return fmt.Errorf("starter schema must be a YAML document, got %s", filepath.Base(path))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create schema directory: %w", err)
	}

	s := &schema.Schema{
		Entities: []schema.Entity{{
			Name: entity,
			Fields: []schema.Field{
				{Name: "id", Type: string(schema.Int), Required: true, Kind: schema.KindScalar},
				{Name: "createdAt", Type: string(schema.DateTime), Required: true, Kind: schema.KindScalar},
			},
		}},
	}
	if err := schema.Check(s); err != nil {
		return fmt.Errorf("invalid starter schema: %w", err)
	}
	if err := schema.Save(path, s); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}

func resolveIn(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
