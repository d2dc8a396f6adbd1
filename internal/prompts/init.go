// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// InitAnswers holds the values collected by RunInitForm. Fields already set
// are used as defaults.
type InitAnswers struct {
	Schema       string
	Output       string
	Target       string
	CreateSchema bool
	Entity       string
}

// RunInitForm runs the interactive form for the init command.
func RunInitForm(answers *InitAnswers, targets []string) error {
	targetOptions := make([]huh.Option[string], 0, len(targets))
	for _, t := range targets {
		targetOptions = append(targetOptions, huh.NewOption(t, t))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path to schema document").
				Description("YAML, JSON, CUE or Prisma DMMF (.dmmf.json)").
				Placeholder("schema.yaml").
				Validate(requiredValidator("schema path")).
				Value(&answers.Schema),
			huh.NewInput().
				Title("Output directory").
				Placeholder("src/generated").
				Validate(requiredValidator("output directory")).
				Value(&answers.Output),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Target").
				Options(targetOptions...).
				Value(&answers.Target),
		).WithHideFunc(func() bool { return len(targets) < 2 }),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create a starter schema?").
				Affirmative("Yes").
				Negative("No, it already exists").
				Value(&answers.CreateSchema),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("First entity name").
				Placeholder("e.g., User").
				Validate(identifierValidator(map[string]struct{}{})).
				Value(&answers.Entity),
		).WithHideFunc(func() bool { return !answers.CreateSchema }),
	).WithTheme(Theme()).Run()
}
