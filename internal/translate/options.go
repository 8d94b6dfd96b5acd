// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "log/slog"

// Options configures a generation run. It is built once by the caller and
// passed by value; translators never modify it.
type Options struct {
	// Package is the package declaration of the generated file.
	Package string
	// Imports are emitted after the package declaration, in order.
	Imports []string
	// Indent is one level of indentation.
	Indent string
	// Access is the expression that reaches the buffer-access object
	// from inside a generated table method.
	Access string

	// ObjectAPI switches structure and table names to their object API
	// variants, built from ObjectPrefix and ObjectSuffix.
	ObjectAPI    bool
	ObjectPrefix string
	ObjectSuffix string

	// Logger receives debug records for each emitted entity. Nil discards.
	Logger *slog.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Package:      "std.ast",
		Indent:       "    ",
		Access:       "this.table",
		ObjectSuffix: "T",
	}
}

// ObjectName applies the object API prefix and suffix to name when enabled.
func (o Options) ObjectName(name string) string {
	if !o.ObjectAPI {
		return name
	}
	return o.ObjectPrefix + name + o.ObjectSuffix
}

// Log returns the configured logger, or one that discards everything.
func (o Options) Log() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
