// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedFileName(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "monster_generated.cj"),
		GeneratedFileName("out", "schemas/monster.yaml", "_generated", ".cj"))
	assert.Equal(t, filepath.Join("out", "model.cj"),
		GeneratedFileName("out", "model.json", "", ".cj"))
	assert.Equal(t, "plain.cj", GeneratedFileName("", "plain", "", ".cj"))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "monster_generated.cj")

	status, err := WriteFile(path, []byte("one"))
	require.NoError(t, err)
	assert.Equal(t, Written, status)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))

	status, err = WriteFile(path, []byte("one"))
	require.NoError(t, err)
	assert.Equal(t, Unchanged, status)
	assert.Equal(t, "unchanged", status.String())

	status, err = WriteFile(path, []byte("two"))
	require.NoError(t, err)
	assert.Equal(t, "written", status.String())

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestWriteFile_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := WriteFile(filepath.Join(blocker, "out.cj"), []byte("data"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteFailed)
}
