// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/flatcj/internal/config"
	"github.com/dacolabs/flatcj/internal/session"
	"github.com/dacolabs/flatcj/internal/translate"
	"github.com/dacolabs/flatcj/internal/translate/cangjie"
)

// project creates a temporary project directory holding the given testdata
// files and makes it the working directory.
func project(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join("testdata", f))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), data, 0o600))
	}

	origDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(dir))
	return dir
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	translators := make(translate.Register)
	cangjie.Register(translators)

	root := NewRootCmd(translators)
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestGenerate_Flags(t *testing.T) {
	dir := project(t, "model.yaml")

	out, _, err := execute(t, "generate", "--schema", "model.yaml", "--output", "gen", "--package", "app.model", "--non-interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Generation completed")
	assert.Contains(t, out, "(written)")

	data, err := os.ReadFile(filepath.Join(dir, "gen", "model_generated.cj"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package app.model")
	assert.Contains(t, string(data), "public class Shape <: FlatBufferObject {")
	assert.Contains(t, string(data), "public struct Point {")
}

func TestGenerate_Unchanged(t *testing.T) {
	dir := project(t, "model.yaml")
	args := []string{"generate", "--schema", "model.yaml", "--non-interactive"}

	_, _, err := execute(t, args...)
	require.NoError(t, err)
	out, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "(unchanged)")

	outFile := filepath.Join(dir, "model_generated.cj")
	require.NoError(t, os.WriteFile(outFile, []byte("stale"), 0o600))
	out, _, err = execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "(written)")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))
}

func TestGenerate_FromConfig(t *testing.T) {
	dir := project(t, "model.yaml")
	cfg := config.Config{
		Version:   config.CurrentConfigVersion,
		Schema:    "model.yaml",
		Output:    config.OutputConfig{Dir: "out", Suffix: "_reader"},
		Package:   "game.data",
		Imports:   []string{"std.collection.*"},
		ObjectAPI: config.ObjectAPIConfig{Enabled: true, Suffix: "Obj"},
		Indent:    2,
	}
	require.NoError(t, cfg.Save(filepath.Join(dir, session.ConfigFileName)))

	_, _, err := execute(t, "generate", "--non-interactive")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out", "model_reader.cj"))
	require.NoError(t, err)
	code := string(data)
	assert.Contains(t, code, "package game.data\nimport std.collection.*\n")
	assert.Contains(t, code, "public class ShapeObj <: FlatBufferObject {\n  public static let KIND: UInt16 = 4\n")
}

func TestGenerate_DryRun(t *testing.T) {
	dir := project(t, "model.yaml")

	out, _, err := execute(t, "generate", "--schema", "model.yaml", "--dry-run", "--non-interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "package std.ast")
	assert.Contains(t, out, "public enum Kind {")

	_, err = os.Stat(filepath.Join(dir, "model_generated.cj"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerate_Verbose(t *testing.T) {
	project(t, "model.yaml")

	_, stderr, err := execute(t, "generate", "--schema", "model.yaml", "--dry-run", "--non-interactive", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "emitting enum")
	assert.Contains(t, stderr, "name=Shape")

	_, stderr, err = execute(t, "generate", "--schema", "model.yaml", "--dry-run", "--non-interactive")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestGenerate_Errors(t *testing.T) {
	project(t, "model.yaml", "broken.yaml")

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{"no schema", []string{"generate", "--non-interactive"}, session.ErrSchemaNotFound, ""},
		{"missing schema file", []string{"generate", "--schema", "nope.yaml", "--non-interactive"}, session.ErrSchemaNotFound, ""},
		{"broken schema", []string{"generate", "--schema", "broken.yaml", "--non-interactive"}, session.ErrInvalidSchema, "expected 4"},
		{"unknown target", []string{"generate", "--schema", "model.yaml", "--target", "cobol", "--non-interactive"}, nil, `unsupported target "cobol"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	project(t, "model.yaml", "broken.yaml")

	out, _, err := execute(t, "validate", "--schema", "model.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Namespace: App")
	assert.Contains(t, out, "Enums: 1")
	assert.Contains(t, out, "Structs: 1")
	assert.Contains(t, out, "Tables: 1")
	assert.Contains(t, out, "Schema is valid")

	_, _, err = execute(t, "validate", "--schema", "broken.yaml")
	assert.ErrorIs(t, err, session.ErrInvalidSchema)
}

func TestValidate_InvalidConfig(t *testing.T) {
	dir := project(t, "model.yaml")
	require.NoError(t, os.WriteFile(filepath.Join(dir, session.ConfigFileName), []byte("version: 99\n"), 0o600))

	_, _, err := execute(t, "validate", "--schema", "model.yaml")
	assert.ErrorIs(t, err, session.ErrInvalidConfig)
}

func TestTargets(t *testing.T) {
	out, _, err := execute(t, "targets")
	require.NoError(t, err)
	assert.Equal(t, "cangjie\t.cj\n", out)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "flatcj version")
}

func TestInit_NonInteractive(t *testing.T) {
	dir := project(t)

	out, _, err := execute(t, "init", "--schema", "model.yaml", "--output", "gen", "--package", "app.model", "--object-api", "--non-interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialization completed")

	cfg, err := config.Load(filepath.Join(dir, session.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, config.CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "model.yaml", cfg.Schema)
	assert.Equal(t, "gen", cfg.Output.Dir)
	assert.Equal(t, "app.model", cfg.Package)
	assert.True(t, cfg.ObjectAPI.Enabled)
	assert.Equal(t, "T", cfg.ObjectAPI.Suffix)

	_, _, err = execute(t, "init", "--schema", "model.yaml", "--non-interactive")
	assert.ErrorContains(t, err, "already initialized")
}

func TestInit_RequiresSchema(t *testing.T) {
	project(t)

	_, _, err := execute(t, "init", "--non-interactive")
	assert.EqualError(t, err, "non-interactive mode requires --schema")
}
