// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteStatus reports what WriteFile did.
type WriteStatus int

const (
	// Written means the file was created or replaced.
	Written WriteStatus = iota
	// Unchanged means an identical file already existed and was left alone.
	Unchanged
)

func (s WriteStatus) String() string {
	if s == Unchanged {
		return "unchanged"
	}
	return "written"
}

// GeneratedFileName builds the output path for a schema file name:
// dir/<base name without extension><suffix><ext>.
func GeneratedFileName(dir, schemaFile, suffix, ext string) string {
	base := filepath.Base(schemaFile)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+suffix+ext)
}

// WriteFile writes data to path unless the file already holds exactly data.
// The content goes to a temporary file in the same directory that is then
// renamed over path, so a failed write never leaves a partial file.
func WriteFile(path string, data []byte) (status WriteStatus, err error) {
	if existing, readErr := os.ReadFile(path); readErr == nil && bytes.Equal(existing, data) { //nolint:gosec // path is provided by caller
		return Unchanged, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return Written, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return Written, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return Written, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err = tmp.Close(); err != nil {
		return Written, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil { //nolint:gosec // generated sources are world-readable
		return Written, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return Written, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return Written, nil
}
