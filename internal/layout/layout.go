// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package layout computes where field bytes live in a buffer: vtable slots for
// tables, cumulative byte offsets for fixed structures, and element strides
// for vectors.
package layout

import (
	"fmt"

	"github.com/dacolabs/flatcj/internal/schema"
)

const (
	// VTableFieldsStart is the slot id of a table's first field.
	VTableFieldsStart = 4
	// SlotStride is the byte distance between consecutive vtable slots.
	SlotStride = 2
	// OffsetSize is the width of a stored relative offset.
	OffsetSize = 4
	// LengthPrefixSize is the width of a vector or string length prefix.
	LengthPrefixSize = 4
)

// Slot returns the vtable slot id of the field at index.
func Slot(index int) int {
	return VTableFieldsStart + SlotStride*index
}

// FieldSlot returns the vtable slot of a table field: the declared one when
// present, otherwise the slot of its declaration index.
func FieldSlot(sd *schema.StructDef, f *schema.FieldDef) int {
	if f.Offset != schema.NoOffset {
		return f.Offset
	}
	for i, sf := range sd.Fields {
		if sf == f {
			return Slot(i)
		}
	}
	panic(fmt.Sprintf("field %q does not belong to %q", f.Name, sd.Name))
}

// FieldLayout places one field of a fixed structure.
type FieldLayout struct {
	Field  *schema.FieldDef
	Offset int
	Width  int
}

// StructLayout is the computed layout of a fixed structure.
type StructLayout struct {
	Fields []FieldLayout
	// Size is the cumulative width of all fields.
	Size int
	// Align is the declared minimum alignment, or the widest field alignment.
	Align int
	// PaddedSize is Size rounded up to Align; it is the stride of the
	// structure inside vectors and enclosing structures.
	PaddedSize int
}

// Struct computes the layout of a fixed structure. Field offsets are the
// running sum of prior widths; a declared offset that disagrees is an error.
func Struct(sd *schema.StructDef) (StructLayout, error) {
	return structLayout(sd, make(map[*schema.StructDef]bool))
}

func structLayout(sd *schema.StructDef, visiting map[*schema.StructDef]bool) (StructLayout, error) {
	if !sd.Fixed {
		return StructLayout{}, fmt.Errorf("%w: %q is a table, not a fixed structure", schema.ErrInvalidModel, sd.Name)
	}
	if visiting[sd] {
		return StructLayout{}, fmt.Errorf("%w: structure %q contains itself", schema.ErrInvalidModel, sd.Name)
	}
	visiting[sd] = true
	defer delete(visiting, sd)

	l := StructLayout{Align: 1}
	for _, f := range sd.Fields {
		width, align, err := inline(f.Type, visiting)
		if err != nil {
			return StructLayout{}, fmt.Errorf("%s.%s: %w", sd.Name, f.Name, err)
		}
		if f.Offset != schema.NoOffset && f.Offset != l.Size {
			return StructLayout{}, fmt.Errorf("%w: %s.%s declared at offset %d, expected %d",
				schema.ErrInvalidModel, sd.Name, f.Name, f.Offset, l.Size)
		}
		l.Fields = append(l.Fields, FieldLayout{Field: f, Offset: l.Size, Width: width})
		l.Size += width
		l.Align = max(l.Align, align)
	}
	if sd.MinAlign > 0 {
		l.Align = sd.MinAlign
	}
	l.PaddedSize = roundUp(l.Size, l.Align)
	return l, nil
}

// InlineSize returns the number of bytes a value of t occupies where it is
// stored: the scalar width, the padded size of a fixed structure, or the
// width of a relative offset for every pointer type.
func InlineSize(t schema.Type) (int, error) {
	width, _, err := inline(t, make(map[*schema.StructDef]bool))
	return width, err
}

func inline(t schema.Type, visiting map[*schema.StructDef]bool) (width, align int, err error) {
	switch {
	case t.Base.IsScalar():
		return t.Base.Size(), t.Base.Size(), nil
	case t.IsFixedStruct():
		l, err := structLayout(t.Struct, visiting)
		if err != nil {
			return 0, 0, err
		}
		return l.PaddedSize, l.Align, nil
	case t.Base == schema.BaseString, t.Base == schema.BaseVector, t.Base == schema.BaseStruct, t.Base == schema.BaseUnion:
		return OffsetSize, OffsetSize, nil
	}
	return 0, 0, fmt.Errorf("%w: no inline size for %s", schema.ErrInvalidModel, t)
}

// Check computes every fixed structure layout and validates table slots.
func Check(s *schema.Schema) error {
	for _, sd := range s.Structs {
		if sd.Fixed {
			if _, err := Struct(sd); err != nil {
				return err
			}
			continue
		}
		slots := make(map[int]string, len(sd.Fields))
		for _, f := range sd.Fields {
			slot := FieldSlot(sd, f)
			if slot < VTableFieldsStart || slot%SlotStride != 0 {
				return fmt.Errorf("%w: %s.%s has invalid slot %d", schema.ErrInvalidModel, sd.Name, f.Name, slot)
			}
			if other, ok := slots[slot]; ok {
				return fmt.Errorf("%w: %s.%s and %s.%s share slot %d", schema.ErrInvalidModel, sd.Name, other, sd.Name, f.Name, slot)
			}
			slots[slot] = f.Name
		}
	}
	return nil
}

func roundUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}
