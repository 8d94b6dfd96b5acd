// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Parser
		wantErr bool
	}{
		{"model.yaml", YAML, false},
		{"dir/model.yml", YAML, false},
		{"model.json", JSON, false},
		{"model.fbs", Parser{}, true},
		{"model", Parser{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ParserFor(tt.path)
			if tt.wantErr {
				assert.ErrorContains(t, err, "format not supported")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFile_YAML(t *testing.T) {
	s, err := LoadFile(os.DirFS("testdata"), "sample.yaml")
	require.NoError(t, err)

	assert.Equal(t, Namespace{"MyGame", "Sample"}, s.Namespace)
	require.Len(t, s.Enums, 2)
	require.Len(t, s.Structs, 3)

	color := s.Enum("Color")
	require.NotNil(t, color)
	assert.Equal(t, BaseInt8, color.Underlying)
	assert.Equal(t, "Red", color.Default().Name)
	assert.Equal(t, "Blue", color.Values[2].Name)

	equipment := s.Enum("Equipment")
	require.NotNil(t, equipment)
	assert.True(t, equipment.IsUnion)
	assert.Equal(t, BaseUType, equipment.Underlying)
	assert.Equal(t, s.Struct("Weapon"), equipment.Values[1].UnionType.Struct)

	monster := s.Struct("Monster")
	require.NotNil(t, monster)
	assert.False(t, monster.Fixed)
	assert.Equal(t, []string{"A monster."}, monster.Doc)
	assert.Equal(t, Namespace{"MyGame", "Sample"}, monster.Namespace)

	hp := monster.Field("hp")
	assert.Equal(t, BaseInt16, hp.Type.Base)
	assert.Equal(t, "100", hp.Default)
	assert.Equal(t, NoOffset, hp.Offset)
	assert.Equal(t, "1", monster.Field("alive").Default)
	assert.Equal(t, 20, monster.Field("equipped").Offset)

	pos := monster.Field("pos")
	assert.True(t, pos.Type.IsFixedStruct())

	weapons := monster.Field("weapons")
	assert.Equal(t, BaseVector, weapons.Type.Base)
	assert.True(t, weapons.Type.VectorType().IsTable())
	assert.Equal(t, "[Weapon]", weapons.Type.String())

	color2 := monster.Field("color")
	assert.True(t, color2.Type.IsEnum())
	assert.Same(t, color, color2.Type.Enum)

	assert.Equal(t, monster.Field("name"), monster.KeyField())
	assert.Equal(t, monster.Field("equipped_type"), monster.UnionTypeField(monster.Field("equipped")))

	weapon := s.Struct("Weapon")
	assert.Equal(t, Namespace{"MyGame", "Armory"}, weapon.Namespace)
	assert.Nil(t, weapon.KeyField())
}

func TestLoadFile_JSON(t *testing.T) {
	s, err := LoadFile(os.DirFS("testdata"), "sample.json")
	require.NoError(t, err)

	point := s.Struct("Point")
	require.NotNil(t, point)
	assert.True(t, point.Fixed)
	assert.Equal(t, 4, point.MinAlign)
	assert.Equal(t, NoOffset, point.Field("x").Offset)
	assert.Equal(t, 4, point.Field("y").Offset)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(os.DirFS("testdata"), "missing.yaml")
	assert.Error(t, err)

	_, err = LoadFile(os.DirFS("testdata"), "sample.txt")
	assert.ErrorContains(t, err, "format not supported")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		msg     string
	}{
		{
			name:    "schema violation",
			doc:     "tables: []\n",
			wantErr: ErrInvalidModel,
		},
		{
			name: "duplicate definition",
			doc: `
enums: [{name: Color, underlying: byte, values: [{name: Red, value: 0}]}]
structs: [{name: Color}]
`,
			wantErr: ErrInvalidModel,
			msg:     `duplicate definition "Color"`,
		},
		{
			name:    "unknown base type",
			doc:     "structs: [{name: T, fields: [{name: a, type: {base: quad}}]}]\n",
			wantErr: ErrInvalidModel,
			msg:     `unknown base type "quad"`,
		},
		{
			name:    "unknown struct reference",
			doc:     "structs: [{name: T, fields: [{name: a, type: {base: struct, ref: Nope}}]}]\n",
			wantErr: ErrUnknownReference,
		},
		{
			name:    "unknown enum reference",
			doc:     "structs: [{name: T, fields: [{name: a, type: {base: int, enum: Nope}}]}]\n",
			wantErr: ErrUnknownReference,
		},
		{
			name:    "enum without underlying type",
			doc:     "enums: [{name: E, values: [{name: A, value: 0}]}]\n",
			wantErr: ErrInvalidModel,
			msg:     "missing underlying type",
		},
		{
			name:    "bool enum",
			doc:     "enums: [{name: E, underlying: bool, values: [{name: A, value: 0}]}]\n",
			wantErr: ErrInvalidModel,
			msg:     "not an integer",
		},
		{
			name: "enum width mismatch",
			doc: `
enums: [{name: E, underlying: byte, values: [{name: A, value: 0}]}]
structs: [{name: T, fields: [{name: a, type: {base: int, enum: E}}]}]
`,
			wantErr: ErrInvalidModel,
			msg:     "is int8, not int32",
		},
		{
			name:    "payload on plain enum",
			doc:     "enums: [{name: E, underlying: byte, values: [{name: A, value: 0, union_type: {base: string}}]}]\n",
			wantErr: ErrInvalidModel,
			msg:     "is not a union",
		},
		{
			name:    "union first variant has payload",
			doc:     "enums: [{name: U, union: true, values: [{name: S, value: 0, union_type: {base: string}}]}]\n",
			wantErr: ErrInvalidModel,
			msg:     "must be the none variant",
		},
		{
			name:    "union variant without payload",
			doc:     "enums: [{name: U, union: true, values: [{name: NONE, value: 0}, {name: X, value: 1}]}]\n",
			wantErr: ErrInvalidModel,
			msg:     "has no payload type",
		},
		{
			name: "union without discriminant",
			doc: `
enums: [{name: U, union: true, values: [{name: NONE, value: 0}, {name: S, value: 1, union_type: {base: string}}]}]
structs: [{name: T, fields: [{name: u, type: {base: union, enum: U}}]}]
`,
			wantErr: ErrInvalidModel,
			msg:     `"u_type" discriminant`,
		},
		{
			name:    "string in fixed struct",
			doc:     "structs: [{name: T, fixed: true, fields: [{name: s, type: {base: string}}]}]\n",
			wantErr: ErrInvalidModel,
			msg:     "cannot be stored inline",
		},
		{
			name:    "vector of vectors",
			doc:     "structs: [{name: T, fields: [{name: v, type: {base: vector, element: vector}}]}]\n",
			wantErr: ErrInvalidModel,
			msg:     "vector of vector",
		},
		{
			name:    "duplicate field",
			doc:     "structs: [{name: T, fields: [{name: a, type: {base: int}}, {name: a, type: {base: int}}]}]\n",
			wantErr: ErrInvalidModel,
			msg:     `duplicate field "a"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := YAML.Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestParseBaseType(t *testing.T) {
	tests := map[string]BaseType{
		"bool":    BaseBool,
		"ubyte":   BaseUInt8,
		"UINT16":  BaseUInt16,
		" long ":  BaseInt64,
		"double":  BaseFloat64,
		"table":   BaseStruct,
		"utype":   BaseUType,
		"float32": BaseFloat32,
	}
	for in, want := range tests {
		got, err := ParseBaseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseBaseType("decimal")
	assert.Error(t, err)
}

func TestBaseType_Properties(t *testing.T) {
	assert.True(t, BaseUType.IsScalar())
	assert.False(t, BaseString.IsScalar())
	assert.True(t, BaseBool.IsInteger())
	assert.False(t, BaseFloat32.IsInteger())
	assert.True(t, BaseFloat64.IsFloat())
	assert.True(t, BaseUInt16.IsUnsigned())
	assert.False(t, BaseInt16.IsUnsigned())
	assert.Equal(t, 8, BaseUInt64.Size())
	assert.Equal(t, 4, BaseVector.Size())
	assert.Equal(t, 0, BaseNone.Size())
	assert.Equal(t, "BaseType(99)", BaseType(99).String())
	assert.Len(t, ScalarKinds(), 11)
}

func TestNamespace(t *testing.T) {
	assert.Nil(t, ParseNamespace(""))
	ns := ParseNamespace("MyGame.Example")
	assert.Equal(t, "MyGame.Example", ns.String())
	assert.True(t, ns.Equal(Namespace{"MyGame", "Example"}))
	assert.False(t, ns.Equal(Namespace{"MyGame"}))
	assert.False(t, ns.Equal(Namespace{"MyGame", "Other"}))
}

func TestEnumDef_Default(t *testing.T) {
	sparse := &EnumDef{Values: []*EnumVal{{Name: "A", Value: 1}, {Name: "B", Value: 2}}}
	assert.Equal(t, "A", sparse.Default().Name)
	assert.Nil(t, (&EnumDef{}).Default())
}

func TestStructDef_KeyFieldAmbiguous(t *testing.T) {
	sd := &StructDef{Fields: []*FieldDef{{Name: "a", Key: true}, {Name: "b", Key: true}}}
	assert.Nil(t, sd.KeyField())
}
