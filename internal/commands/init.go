// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dacolabs/flatcj/internal/config"
	"github.com/dacolabs/flatcj/internal/prompts"
	"github.com/dacolabs/flatcj/internal/session"
)

type initOptions struct {
	prompts.InitValues
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new flatcj project",
		Long:  `Initialize a new flatcj project with a flatcj.yaml configuration file.`,
		Example: `  # Interactive mode
  flatcj init

  # Non-interactive
  flatcj init --schema schemas/monster.yaml --package game.model --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Schema, "schema", "s", "", "Path to the schema model document")
	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "", "Output directory for generated code")
	cmd.Flags().StringVarP(&opts.Package, "package", "p", config.DefaultPackage, "Package of the generated file")
	cmd.Flags().BoolVar(&opts.ObjectAPI, "object-api", false, "Use object API type names")
	cmd.Flags().StringVar(&opts.ObjectSuffix, "object-suffix", config.DefaultObjectSuffix, "Object API name suffix")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --schema)")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists; project already initialized", session.ConfigFileName)
	}

	if opts.nonInteractive {
		if opts.Schema == "" {
			return errors.New("non-interactive mode requires --schema")
		}
	} else if err := prompts.RunInitForm(&opts.InitValues); err != nil {
		return err
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Schema:  opts.Schema,
		Output:  config.OutputConfig{Dir: opts.OutputDir},
		Package: opts.Package,
	}
	if opts.ObjectAPI {
		cfg.ObjectAPI = config.ObjectAPIConfig{Enabled: true, Suffix: opts.ObjectSuffix}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.FprintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Schema", Value: cfg.Schema},
		{Label: "Package", Value: cfg.Package},
	}, "Initialization completed")
	return nil
}
