// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate provides the target-neutral parts of code generation:
// naming, ordering, configuration, code writing and output handling.
package translate

import (
	"fmt"
	"sort"

	"github.com/dacolabs/flatcj/internal/schema"
)

// Translator defines the interface all target language generators must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "cangjie").
	Name() string

	// Translate converts a resolved schema model into one source file.
	// Nothing is returned when generation fails.
	Translate(s *schema.Schema, opts Options) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".cj").
	FileExtension() string
}

// Register maps translator names to translators.
type Register map[string]Translator

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
