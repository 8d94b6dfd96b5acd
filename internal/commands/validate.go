// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dacolabs/flatcj/internal/prompts"
	"github.com/dacolabs/flatcj/internal/session"
	"github.com/dacolabs/flatcj/internal/translate"
)

func newValidateCmd() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a schema model document",
		Long:  `Load a schema model document, resolve its references and check every layout it implies.`,
		Example: `  # Validate the configured schema
  flatcj validate

  # Validate a specific document
  flatcj validate --schema schemas/monster.yaml`,
		PersistentPreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runValidate(cmd, ctx, schemaPath)
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "Schema model document (overrides flatcj.yaml)")

	return cmd
}

func runValidate(cmd *cobra.Command, ctx *session.Context, schemaPath string) error {
	path, err := ctx.SchemaPath(schemaPath)
	if err != nil {
		return err
	}
	s, err := session.LoadSchema(path)
	if err != nil {
		return err
	}

	plan := translate.Prepare(s)
	prompts.FprintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Namespace", Value: s.Namespace.String()},
		{Label: "Enums", Value: strconv.Itoa(len(plan.Enums))},
		{Label: "Structs", Value: strconv.Itoa(len(plan.Structs))},
		{Label: "Tables", Value: strconv.Itoa(len(plan.Tables))},
		{Label: "Skipped", Value: strconv.Itoa(len(plan.Skipped))},
	}, "Schema is valid")
	return nil
}
