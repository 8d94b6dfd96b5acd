// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/flatcj/internal/schema"
)

func scalar(name string, b schema.BaseType) *schema.FieldDef {
	return &schema.FieldDef{Name: name, Type: schema.Type{Base: b}, Offset: schema.NoOffset}
}

func TestSlot(t *testing.T) {
	assert.Equal(t, 4, Slot(0))
	assert.Equal(t, 6, Slot(1))
	assert.Equal(t, 24, Slot(10))
}

func TestFieldSlot(t *testing.T) {
	a := scalar("a", schema.BaseInt32)
	b := scalar("b", schema.BaseInt32)
	c := scalar("c", schema.BaseInt32)
	c.Offset = 12
	sd := &schema.StructDef{Name: "T", Fields: []*schema.FieldDef{a, b, c}}

	assert.Equal(t, 4, FieldSlot(sd, a))
	assert.Equal(t, 6, FieldSlot(sd, b))
	assert.Equal(t, 12, FieldSlot(sd, c))
	assert.Panics(t, func() { FieldSlot(sd, scalar("x", schema.BaseInt8)) })
}

func TestStruct(t *testing.T) {
	test := &schema.StructDef{Name: "Test", Fixed: true, Fields: []*schema.FieldDef{
		scalar("a", schema.BaseInt16),
		scalar("b", schema.BaseInt8),
	}}
	vec := &schema.StructDef{Name: "Vec3", Fixed: true, Fields: []*schema.FieldDef{
		scalar("x", schema.BaseFloat32),
		scalar("y", schema.BaseFloat32),
		scalar("z", schema.BaseFloat32),
		scalar("w", schema.BaseFloat64),
		{Name: "t", Type: schema.Type{Base: schema.BaseStruct, Struct: test}, Offset: schema.NoOffset},
	}}

	l, err := Struct(test)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Size)
	assert.Equal(t, 2, l.Align)
	assert.Equal(t, 4, l.PaddedSize)

	l, err = Struct(vec)
	require.NoError(t, err)
	offsets := make([]int, 0, len(l.Fields))
	widths := make([]int, 0, len(l.Fields))
	for _, fl := range l.Fields {
		offsets = append(offsets, fl.Offset)
		widths = append(widths, fl.Width)
	}
	assert.Equal(t, []int{0, 4, 8, 12, 20}, offsets)
	assert.Equal(t, []int{4, 4, 4, 8, 4}, widths)
	assert.Equal(t, 24, l.Size)
	assert.Equal(t, 8, l.Align)
	assert.Equal(t, 24, l.PaddedSize)

	vec.MinAlign = 16
	l, err = Struct(vec)
	require.NoError(t, err)
	assert.Equal(t, 16, l.Align)
	assert.Equal(t, 32, l.PaddedSize)
}

func TestStruct_Errors(t *testing.T) {
	table := &schema.StructDef{Name: "Monster"}
	_, err := Struct(table)
	assert.ErrorIs(t, err, schema.ErrInvalidModel)

	self := &schema.StructDef{Name: "Loop", Fixed: true}
	self.Fields = []*schema.FieldDef{{Name: "l", Type: schema.Type{Base: schema.BaseStruct, Struct: self}, Offset: schema.NoOffset}}
	_, err = Struct(self)
	assert.ErrorContains(t, err, "contains itself")

	misplaced := scalar("b", schema.BaseInt32)
	misplaced.Offset = 8
	bad := &schema.StructDef{Name: "Bad", Fixed: true, Fields: []*schema.FieldDef{scalar("a", schema.BaseInt32), misplaced}}
	_, err = Struct(bad)
	assert.ErrorContains(t, err, "declared at offset 8, expected 4")
}

func TestInlineSize(t *testing.T) {
	tests := []struct {
		typ  schema.Type
		want int
	}{
		{schema.Type{Base: schema.BaseBool}, 1},
		{schema.Type{Base: schema.BaseUType}, 1},
		{schema.Type{Base: schema.BaseInt16}, 2},
		{schema.Type{Base: schema.BaseFloat64}, 8},
		{schema.Type{Base: schema.BaseString}, OffsetSize},
		{schema.Type{Base: schema.BaseVector, Element: schema.BaseInt8}, OffsetSize},
		{schema.Type{Base: schema.BaseStruct, Struct: &schema.StructDef{Name: "T"}}, OffsetSize},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got, err := InlineSize(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := InlineSize(schema.Type{Base: schema.BaseNone})
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	a := scalar("a", schema.BaseInt32)
	b := scalar("b", schema.BaseInt32)
	ok := &schema.Schema{Structs: []*schema.StructDef{{Name: "T", Fields: []*schema.FieldDef{a, b}}}}
	assert.NoError(t, Check(ok))

	b.Offset = 4
	assert.ErrorContains(t, Check(ok), "share slot 4")

	b.Offset = 7
	assert.ErrorContains(t, Check(ok), "invalid slot 7")

	b.Offset = 2
	assert.ErrorContains(t, Check(ok), "invalid slot 2")

	misplaced := scalar("y", schema.BaseInt16)
	misplaced.Offset = 0
	fixed := &schema.Schema{Structs: []*schema.StructDef{{
		Name: "S", Fixed: true,
		Fields: []*schema.FieldDef{scalar("x", schema.BaseInt16), misplaced},
	}}}
	assert.ErrorIs(t, Check(fixed), schema.ErrInvalidModel)
}
