// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dacolabs/flatcj/internal/translate"
	"github.com/dacolabs/flatcj/internal/version"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flatcj",
		Short: "Generate Cangjie zero-copy readers from FlatBuffers schema models",
		Long: `flatcj turns a resolved FlatBuffers schema model into source code that
reads values straight out of a binary buffer without unpacking it.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Bool("verbose", false, "Log every emitted definition")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGenerateCmd(translators))
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newTargetsCmd(translators))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// logger returns a text logger on the command's stderr. The level is Debug
// with --verbose and Warn otherwise.
func logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
