// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacolabs/flatcj/internal/translate"
)

func newTargetsCmd(translators translate.Register) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the available target languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range translators.Available() {
				t, err := translators.Get(name)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, t.FileExtension())
			}
			return nil
		},
	}
}
