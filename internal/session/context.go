// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/flatcj/internal/config"
	"github.com/dacolabs/flatcj/internal/layout"
	"github.com/dacolabs/flatcj/internal/schema"
)

var (
	// ErrNotInitialized indicates no flatcj.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a flatcj project (flatcj.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchemaNotFound indicates no schema model document was given or it doesn't exist.
	ErrSchemaNotFound = errors.New("schema model not found")

	// ErrInvalidSchema indicates the schema model document exists but couldn't be loaded.
	ErrInvalidSchema = errors.New("invalid schema model")
)

// ConfigFileName is the name of the flatcj configuration file.
const ConfigFileName = "flatcj.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration.
type Context struct {
	// Config is the configuration with defaults applied.
	Config config.Config

	// Dir is the project directory; relative paths resolve against it.
	Dir string

	// Initialized reports whether a flatcj.yaml was found.
	Initialized bool
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the flatcj Context stored in it. A
// missing flatcj.yaml is not an error; defaults are used instead.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	fctx := &Context{Dir: cwd, Initialized: true}
	cfg, err := LoadConfig(cwd)
	switch {
	case errors.Is(err, ErrNotInitialized):
		cfg = &config.Config{}
		fctx.Initialized = false
	case err != nil:
		return nil, err
	}
	fctx.Config = cfg.WithDefaults()

	return context.WithValue(ctx, contextKey{}, fctx), nil
}

// LoadConfig reads and validates flatcj.yaml from dir.
func LoadConfig(dir string) (*config.Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}
	return cfg, nil
}

// SchemaPath returns the model document path to use: override when set,
// otherwise the configured one, resolved against the project directory.
func (c *Context) SchemaPath(override string) (string, error) {
	p := override
	if p == "" {
		p = c.Config.Schema
	}
	if p == "" {
		return "", fmt.Errorf("%w: pass --schema or set schema in %s", ErrSchemaNotFound, ConfigFileName)
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.Dir, p)
	}
	return p, nil
}

// OutputDir returns the configured output directory resolved against the
// project directory, or override when set.
func (c *Context) OutputDir(override string) string {
	d := override
	if d == "" {
		d = c.Config.Output.Dir
	}
	if !filepath.IsAbs(d) {
		d = filepath.Join(c.Dir, d)
	}
	return d
}

// LoadSchema loads a model document and checks every layout it implies.
func LoadSchema(path string) (*schema.Schema, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaNotFound, err)
	}

	s, err := schema.LoadFile(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	if err := layout.Check(s); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSchema, filepath.Base(path), err)
	}
	return s, nil
}

// From extracts the flatcj Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if fctx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return fctx
	}
	return nil
}
