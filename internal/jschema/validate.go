// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema validates schema model documents against the JSON Schema
// that describes them.
package jschema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed model.schema.json
var modelSchemaJSON []byte

var (
	resolveOnce sync.Once
	resolved    *jsonschema.Resolved
	resolveErr  error
)

// ModelSchema returns the resolved JSON Schema for model documents.
func ModelSchema() (*jsonschema.Resolved, error) {
	resolveOnce.Do(func() {
		var s jsonschema.Schema
		if err := json.Unmarshal(modelSchemaJSON, &s); err != nil {
			resolveErr = fmt.Errorf("failed to parse model schema: %w", err)
			return
		}
		resolved, resolveErr = s.Resolve(nil)
	})
	return resolved, resolveErr
}

// ToJSON converts a document to JSON bytes. The format is determined from
// the file extension; JSON input is returned unchanged.
func ToJSON(data []byte, filePath string) ([]byte, error) {
	switch {
	case strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml"):
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return json.Marshal(doc)
	case strings.HasSuffix(filePath, ".json"):
		return data, nil
	default:
		return nil, fmt.Errorf("format not supported: %s", filePath)
	}
}

// Validate checks JSON document bytes against the model schema.
func Validate(data []byte) error {
	rs, err := ModelSchema()
	if err != nil {
		return err
	}
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return err
	}
	return rs.Validate(instance)
}
