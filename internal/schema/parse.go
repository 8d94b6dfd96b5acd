// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"

	"github.com/dacolabs/flatcj/internal/jschema"
)

var (
	// ErrInvalidModel indicates a model document that is malformed or breaks a model invariant.
	ErrInvalidModel = errors.New("invalid schema model")

	// ErrUnknownReference indicates a type reference to an undeclared definition.
	ErrUnknownReference = errors.New("unknown type reference")
)

type rawSchema struct {
	Namespace string       `json:"namespace"`
	Enums     []*rawEnum   `json:"enums"`
	Structs   []*rawStruct `json:"structs"`
}

type rawType struct {
	Base    string `json:"base"`
	Element string `json:"element"`
	Ref     string `json:"ref"`
	Enum    string `json:"enum"`
}

type rawValue struct {
	Name      string   `json:"name"`
	Value     int64    `json:"value"`
	UnionType *rawType `json:"union_type"`
	Doc       []string `json:"doc"`
}

type rawEnum struct {
	Name       string      `json:"name"`
	Namespace  *string     `json:"namespace"`
	Underlying string      `json:"underlying"`
	Union      bool        `json:"union"`
	Generated  bool        `json:"generated"`
	Doc        []string    `json:"doc"`
	Values     []*rawValue `json:"values"`
}

type rawField struct {
	Name       string          `json:"name"`
	Type       rawType         `json:"type"`
	Offset     *int            `json:"offset"`
	Default    json.RawMessage `json:"default"`
	Deprecated bool            `json:"deprecated"`
	Key        bool            `json:"key"`
	Doc        []string        `json:"doc"`
}

type rawStruct struct {
	Name      string      `json:"name"`
	Namespace *string     `json:"namespace"`
	Fixed     bool        `json:"fixed"`
	MinAlign  int         `json:"minalign"`
	Private   bool        `json:"private"`
	Generated bool        `json:"generated"`
	Doc       []string    `json:"doc"`
	Fields    []*rawField `json:"fields"`
}

// Parser decodes a schema model document from an io.Reader.
type Parser struct {
	ext string
}

var (
	// JSON parses model documents from JSON.
	JSON = Parser{".json"}
	// YAML parses model documents from YAML.
	YAML = Parser{".yaml"}
)

// ParserFor returns the parser matching a file name's extension.
func ParserFor(filePath string) (Parser, error) {
	switch path.Ext(filePath) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return Parser{}, fmt.Errorf("format not supported: %s", filePath)
}

// Parse decodes, validates and resolves a model document.
func (p Parser) Parse(r io.Reader) (*Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc, err := jschema.ToJSON(data, "model"+p.ext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	if err := jschema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}

	var raw rawSchema
	dec := json.NewDecoder(bytes.NewReader(doc))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	return resolve(&raw)
}

// LoadFile reads and parses a model document from fsys.
func LoadFile(fsys fs.FS, filePath string) (*Schema, error) {
	p, err := ParserFor(filePath)
	if err != nil {
		return nil, err
	}
	f, err := fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	s, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return s, nil
}

// defaultLiteral turns a JSON default (string, number or boolean) into the
// literal text generators expect. Booleans become "1" or "0".
func defaultLiteral(msg json.RawMessage) (string, error) {
	if len(msg) == 0 || string(msg) == "null" {
		return "", nil
	}
	switch msg[0] {
	case '"':
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return "", err
		}
		return s, nil
	case 't', 'f':
		b, err := strconv.ParseBool(string(msg))
		if err != nil {
			return "", err
		}
		if b {
			return "1", nil
		}
		return "0", nil
	}
	return string(msg), nil
}
