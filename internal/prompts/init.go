// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// InitValues are the settings collected by RunInitForm.
type InitValues struct {
	Schema       string
	OutputDir    string
	Package      string
	ObjectAPI    bool
	ObjectSuffix string
}

// RunInitForm runs the interactive form for the init command.
// It fills v with user input, keeping existing values as defaults.
func RunInitForm(v *InitValues) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema model document").
				Placeholder("schemas/monster.yaml").
				Validate(requiredValidator("schema path")).
				Value(&v.Schema),
			huh.NewInput().
				Title("Output directory").
				Placeholder(".").
				Value(&v.OutputDir),
			huh.NewInput().
				Title("Cangjie package").
				Placeholder("std.ast").
				Validate(packageValidator).
				Value(&v.Package),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Use object API type names?").
				Value(&v.ObjectAPI),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Object API suffix").
				Placeholder("T").
				Value(&v.ObjectSuffix),
		).WithHideFunc(func() bool { return !v.ObjectAPI }),
	).WithTheme(Theme()).Run()
}
