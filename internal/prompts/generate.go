// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// RunGenerateForm prompts for the generate values that are still empty.
// Nothing is shown when every value is already set.
func RunGenerateForm(schemaPath, target *string, targets []string) error {
	askSchema := *schemaPath == ""
	askTarget := *target == ""
	if !askSchema && !askTarget {
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema model document").
				Placeholder("schemas/monster.yaml").
				Validate(requiredValidator("schema path")).
				Value(schemaPath),
		).WithHideFunc(func() bool { return !askSchema }),
		huh.NewGroup(
			RunTargetSelect(target, targets),
		).WithHideFunc(func() bool { return !askTarget }),
	).WithTheme(Theme()).Run()
}

// RunTargetSelect returns a select field for choosing the target language.
func RunTargetSelect(value *string, targets []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(targets))
	for i, t := range targets {
		options[i] = huh.NewOption(t, t)
	}
	return huh.NewSelect[string]().
		Title("Target language").
		Options(options...).
		Value(value)
}

// ConfirmOverwrite asks whether an existing generated file with different
// content may be replaced.
func ConfirmOverwrite(path string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s differs from the new output. Overwrite?", path)).
				Affirmative("Overwrite").
				Negative("Keep").
				Value(&ok),
		),
	).WithTheme(Theme()).Run()
	return ok, err
}
