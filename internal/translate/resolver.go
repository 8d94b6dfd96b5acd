// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/flatcj/internal/schema"

// TypeResolver maps schema types to target-language type names and widths.
// Each translator implements this interface to control how schemas map to its output.
type TypeResolver interface {
	// ScalarType maps a scalar kind to its target type name and byte width.
	ScalarType(b schema.BaseType) (name string, width int)

	// EnumName returns the qualified target name of an enumeration or union.
	EnumName(e *schema.EnumDef) string

	// StructName returns the qualified target name of a structure or table.
	StructName(sd *schema.StructDef) string

	// TypeName maps any field type. Vectors map to their element type name;
	// unions map to the shared polymorphic object type.
	TypeName(t schema.Type) string

	// FieldName returns the escaped identifier used for a field member.
	FieldName(name string) string
}
