// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles flatcj project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Defaults applied by WithDefaults.
const (
	DefaultSuffix       = "_generated"
	DefaultExtension    = ".cj"
	DefaultPackage      = "std.ast"
	DefaultObjectSuffix = "T"
	DefaultIndent       = 4
	DefaultTarget       = "cangjie"
)

// Config represents the flatcj.yaml project configuration file.
type Config struct {
	Version   int             `yaml:"version"`
	Schema    string          `yaml:"schema,omitempty"`
	Output    OutputConfig    `yaml:"output,omitempty"`
	Package   string          `yaml:"package,omitempty"`
	Imports   []string        `yaml:"imports,omitempty"`
	ObjectAPI ObjectAPIConfig `yaml:"object_api,omitempty"`
	Indent    int             `yaml:"indent,omitempty"`
	Target    string          `yaml:"target,omitempty"`
}

// OutputConfig controls where the generated file is written.
type OutputConfig struct {
	Dir       string `yaml:"dir,omitempty"`
	Suffix    string `yaml:"suffix,omitempty"`
	Extension string `yaml:"extension,omitempty"`
}

// ObjectAPIConfig controls object API naming of structures and tables.
type ObjectAPIConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Prefix  string `yaml:"prefix,omitempty"`
	Suffix  string `yaml:"suffix,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	if strings.ContainsAny(c.Output.Suffix, `/\`) {
		return fmt.Errorf("output suffix %q must not contain path separators", c.Output.Suffix)
	}
	if strings.ContainsAny(c.Output.Extension, `/\`) {
		return fmt.Errorf("output extension %q must not contain path separators", c.Output.Extension)
	}
	if c.Package != "" && strings.TrimSpace(c.Package) == "" {
		return errors.New("package must not be blank")
	}
	return nil
}

// WithDefaults returns a copy of the configuration with every unset value
// filled in.
func (c Config) WithDefaults() Config {
	if c.Version == 0 {
		c.Version = CurrentConfigVersion
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Output.Suffix == "" {
		c.Output.Suffix = DefaultSuffix
	}
	if c.Output.Extension == "" {
		c.Output.Extension = DefaultExtension
	}
	if c.Package == "" {
		c.Package = DefaultPackage
	}
	if c.ObjectAPI.Suffix == "" && c.ObjectAPI.Prefix == "" {
		c.ObjectAPI.Suffix = DefaultObjectSuffix
	}
	if c.Indent == 0 {
		c.Indent = DefaultIndent
	}
	if c.Target == "" {
		c.Target = DefaultTarget
	}
	return c
}

// IndentString returns one level of indentation as spaces.
func (c Config) IndentString() string {
	return strings.Repeat(" ", c.Indent)
}
