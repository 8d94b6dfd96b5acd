// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import "strings"

// Namespace is a dotted namespace split into components.
type Namespace []string

// ParseNamespace splits a dotted namespace such as "MyGame.Example".
func ParseNamespace(s string) Namespace {
	if s == "" {
		return nil
	}
	return strings.Split(s, ".")
}

// Equal reports whether two namespaces have the same components.
func (n Namespace) Equal(o Namespace) bool {
	if len(n) != len(o) {
		return false
	}
	for i := range n {
		if n[i] != o[i] {
			return false
		}
	}
	return true
}

func (n Namespace) String() string { return strings.Join(n, ".") }

// Schema is a complete resolved model. Enums and Structs keep declaration order.
type Schema struct {
	Namespace Namespace
	Enums     []*EnumDef
	Structs   []*StructDef
}

// Enum returns the enumeration or union with the given name, or nil.
func (s *Schema) Enum(name string) *EnumDef {
	for _, e := range s.Enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Struct returns the structure or table with the given name, or nil.
func (s *Schema) Struct(name string) *StructDef {
	for _, sd := range s.Structs {
		if sd.Name == name {
			return sd
		}
	}
	return nil
}

// EnumVal is one variant of an enumeration.
type EnumVal struct {
	Name  string
	Value int64
	// UnionType is the payload type for union variants; BaseNone for the
	// "none" variant and for plain enumerations.
	UnionType Type
	Doc       []string
}

// EnumDef is an enumeration or, when IsUnion is set, a union.
type EnumDef struct {
	Name       string
	Namespace  Namespace
	Underlying BaseType
	IsUnion    bool
	Generated  bool
	Doc        []string
	Values     []*EnumVal
}

// Default returns the first declared variant.
func (e *EnumDef) Default() *EnumVal {
	if len(e.Values) == 0 {
		return nil
	}
	return e.Values[0]
}

// FieldDef is a field of a structure or table.
type FieldDef struct {
	Name string
	Type Type
	// Offset is the byte offset inside a fixed structure, or the vtable slot
	// of a table field. NoOffset when the document leaves it to the layout.
	Offset     int
	Default    string
	Deprecated bool
	Key        bool
	Doc        []string
}

// NoOffset marks a field whose offset was not declared.
const NoOffset = -1

// StructDef is a fixed-layout structure (Fixed) or a variable-layout table.
type StructDef struct {
	Name      string
	Namespace Namespace
	Fixed     bool
	MinAlign  int
	Private   bool
	Generated bool
	Doc       []string
	Fields    []*FieldDef
}

// Field returns the field with the given name, or nil.
func (sd *StructDef) Field(name string) *FieldDef {
	for _, f := range sd.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// KeyField returns the single field flagged as key. It returns nil when no
// field or more than one field carries the flag.
func (sd *StructDef) KeyField() *FieldDef {
	var key *FieldDef
	for _, f := range sd.Fields {
		if !f.Key {
			continue
		}
		if key != nil {
			return nil
		}
		key = f
	}
	return key
}

// UnionTypeField returns the discriminant field paired with a union field
// (or vector of unions), named "<field>_type".
func (sd *StructDef) UnionTypeField(f *FieldDef) *FieldDef {
	return sd.Field(f.Name + UnionTypeSuffix)
}

// UnionTypeSuffix names the discriminant sibling of a union field.
const UnionTypeSuffix = "_type"
