// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/flatcj/internal/config"
	"github.com/dacolabs/flatcj/internal/prompts"
	"github.com/dacolabs/flatcj/internal/session"
	"github.com/dacolabs/flatcj/internal/translate"
)

type generateOptions struct {
	schema         string
	output         string
	target         string
	pkg            string
	objectAPI      bool
	force          bool
	dryRun         bool
	nonInteractive bool
}

func newGenerateCmd(translators translate.Register) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate reader code from a schema model",
		Long: fmt.Sprintf(`Generate reader code from a schema model document.

Values not given as flags come from flatcj.yaml. Available targets: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Use flatcj.yaml
  flatcj generate

  # Flags only
  flatcj generate --schema monster.yaml --output gen --package game.model --non-interactive

  # Print instead of writing
  flatcj generate --schema monster.yaml --dry-run`,
		PersistentPreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Schema model document (overrides flatcj.yaml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (overrides flatcj.yaml)")
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", fmt.Sprintf("Target language (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Package of the generated file")
	cmd.Flags().BoolVar(&opts.objectAPI, "object-api", false, "Use object API type names")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite differing output without asking")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the generated code instead of writing it")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runGenerate(cmd *cobra.Command, translators translate.Register, opts *generateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	log := logger(cmd)

	schemaPath := opts.schema
	if schemaPath == "" {
		schemaPath = ctx.Config.Schema
	}
	target := opts.target
	if target == "" {
		target = ctx.Config.Target
	}
	if !opts.nonInteractive {
		if err := prompts.RunGenerateForm(&schemaPath, &target, translators.Available()); err != nil {
			return err
		}
	}

	translator, err := translators.Get(target)
	if err != nil {
		return fmt.Errorf("unsupported target %q. Available targets: %s",
			target, strings.Join(translators.Available(), ", "))
	}

	path, err := ctx.SchemaPath(schemaPath)
	if err != nil {
		return err
	}
	s, err := session.LoadSchema(path)
	if err != nil {
		return err
	}

	data, err := translator.Translate(s, translateOptions(ctx.Config, opts, log))
	if err != nil {
		return fmt.Errorf("failed to generate %s code: %w", translator.Name(), err)
	}

	if opts.dryRun {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	outFile := translate.GeneratedFileName(ctx.OutputDir(opts.output), path, ctx.Config.Output.Suffix, ctx.Config.Output.Extension)

	if !opts.force && !opts.nonInteractive && differs(outFile, data) {
		ok, err := prompts.ConfirmOverwrite(outFile)
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Kept %s\n", outFile)
			return nil
		}
	}

	status, err := translate.WriteFile(outFile, data)
	if err != nil {
		return err
	}
	log.Debug("output", "path", outFile, "status", status)

	prompts.FprintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Schema", Value: path},
		{Label: "Target", Value: translator.Name()},
		{Label: "Output", Value: fmt.Sprintf("%s (%s)", outFile, status)},
	}, "Generation completed")
	return nil
}

// translateOptions builds generator options from the configuration, with
// command flags taking precedence.
func translateOptions(cfg config.Config, opts *generateOptions, log *slog.Logger) translate.Options {
	o := translate.DefaultOptions()
	o.Package = cfg.Package
	if opts.pkg != "" {
		o.Package = opts.pkg
	}
	o.Imports = cfg.Imports
	o.Indent = cfg.IndentString()
	o.ObjectAPI = cfg.ObjectAPI.Enabled || opts.objectAPI
	o.ObjectPrefix = cfg.ObjectAPI.Prefix
	o.ObjectSuffix = cfg.ObjectAPI.Suffix
	o.Logger = log
	return o
}

// differs reports whether path holds content other than data.
func differs(path string, data []byte) bool {
	existing, err := os.ReadFile(path) //nolint:gosec // path is built from the project config
	return err == nil && !bytes.Equal(existing, data)
}
