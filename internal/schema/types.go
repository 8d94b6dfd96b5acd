// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema holds the resolved, language-neutral schema model that code
// generators read. The model is produced by a front end; this package only
// decodes it from a document and checks the invariants generators rely on.
package schema

import (
	"fmt"
	"strings"
)

// BaseType is the wire-level kind of a type.
type BaseType int

// Base types. The scalar kinds are contiguous between BaseUType and BaseFloat64.
const (
	BaseNone BaseType = iota
	BaseUType
	BaseBool
	BaseInt8
	BaseUInt8
	BaseInt16
	BaseUInt16
	BaseInt32
	BaseUInt32
	BaseInt64
	BaseUInt64
	BaseFloat32
	BaseFloat64
	BaseString
	BaseVector
	BaseStruct
	BaseUnion
)

var baseTypeNames = [...]string{
	BaseNone:    "none",
	BaseUType:   "utype",
	BaseBool:    "bool",
	BaseInt8:    "int8",
	BaseUInt8:   "uint8",
	BaseInt16:   "int16",
	BaseUInt16:  "uint16",
	BaseInt32:   "int32",
	BaseUInt32:  "uint32",
	BaseInt64:   "int64",
	BaseUInt64:  "uint64",
	BaseFloat32: "float32",
	BaseFloat64: "float64",
	BaseString:  "string",
	BaseVector:  "vector",
	BaseStruct:  "struct",
	BaseUnion:   "union",
}

// aliases accepted in model documents in addition to the canonical names.
var baseTypeAliases = map[string]BaseType{
	"byte":   BaseInt8,
	"ubyte":  BaseUInt8,
	"short":  BaseInt16,
	"ushort": BaseUInt16,
	"int":    BaseInt32,
	"uint":   BaseUInt32,
	"long":   BaseInt64,
	"ulong":  BaseUInt64,
	"float":  BaseFloat32,
	"double": BaseFloat64,
	"table":  BaseStruct,
}

// ParseBaseType maps a document type name to a BaseType.
func ParseBaseType(s string) (BaseType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range baseTypeNames {
		if name == s {
			return BaseType(i), nil
		}
	}
	if b, ok := baseTypeAliases[s]; ok {
		return b, nil
	}
	return BaseNone, fmt.Errorf("unknown base type %q", s)
}

func (b BaseType) String() string {
	if b < 0 || int(b) >= len(baseTypeNames) {
		return fmt.Sprintf("BaseType(%d)", int(b))
	}
	return baseTypeNames[b]
}

// IsScalar reports whether values of b are stored inline as a fixed-width number.
func (b BaseType) IsScalar() bool { return b >= BaseUType && b <= BaseFloat64 }

// IsInteger reports whether b is an integer kind (including bool and utype).
func (b BaseType) IsInteger() bool { return b >= BaseUType && b <= BaseUInt64 }

// IsFloat reports whether b is a floating-point kind.
func (b BaseType) IsFloat() bool { return b == BaseFloat32 || b == BaseFloat64 }

// IsUnsigned reports whether b is an unsigned integer kind.
func (b BaseType) IsUnsigned() bool {
	switch b {
	case BaseUType, BaseUInt8, BaseUInt16, BaseUInt32, BaseUInt64:
		return true
	}
	return false
}

// Size returns the inline byte width of a scalar kind, and 4 for the offset
// stored inline for strings, vectors, tables and unions. Fixed structures
// have no intrinsic size here; see the layout package.
func (b BaseType) Size() int {
	switch b {
	case BaseUType, BaseBool, BaseInt8, BaseUInt8:
		return 1
	case BaseInt16, BaseUInt16:
		return 2
	case BaseInt32, BaseUInt32, BaseFloat32:
		return 4
	case BaseInt64, BaseUInt64, BaseFloat64:
		return 8
	case BaseString, BaseVector, BaseStruct, BaseUnion:
		return 4
	}
	return 0
}

// ScalarKinds lists every scalar kind a field may declare, in wire order.
func ScalarKinds() []BaseType {
	return []BaseType{
		BaseBool,
		BaseInt8, BaseUInt8,
		BaseInt16, BaseUInt16,
		BaseInt32, BaseUInt32,
		BaseInt64, BaseUInt64,
		BaseFloat32, BaseFloat64,
	}
}

// Type is a resolved field type. For vectors, Element holds the element kind
// and Struct/Enum describe the element.
type Type struct {
	Base    BaseType
	Element BaseType
	Struct  *StructDef // struct or table reference
	Enum    *EnumDef   // enum, union discriminant, or union reference
}

// VectorType returns the element type of a vector type.
func (t Type) VectorType() Type {
	return Type{Base: t.Element, Struct: t.Struct, Enum: t.Enum}
}

// IsEnum reports whether t is an integer typed by an enumeration.
func (t Type) IsEnum() bool {
	return t.Enum != nil && t.Base.IsInteger()
}

// IsFixedStruct reports whether t refers to a fixed-layout structure.
func (t Type) IsFixedStruct() bool {
	return t.Base == BaseStruct && t.Struct != nil && t.Struct.Fixed
}

// IsTable reports whether t refers to a variable-layout table.
func (t Type) IsTable() bool {
	return t.Base == BaseStruct && t.Struct != nil && !t.Struct.Fixed
}

func (t Type) String() string {
	switch {
	case t.Base == BaseVector:
		return "[" + t.VectorType().String() + "]"
	case t.Struct != nil:
		return t.Struct.Name
	case t.Enum != nil:
		return t.Enum.Name
	}
	return t.Base.String()
}
