// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCamel(t *testing.T) {
	tests := []struct {
		in    string
		first bool
		want  string
	}{
		{"min_align", true, "MinAlign"},
		{"min_align", false, "minAlign"},
		{"monster", true, "Monster"},
		{"Monster", false, "Monster"},
		{"test_type", true, "TestType"},
		{"trailing_", true, "Trailing_"},
		{"a__b", true, "A_b"},
		{"uint8_field", true, "UInt8Field"},
		{"UINT32", true, "UInt32"},
		{"uint", true, "UInt"},
		{"uint_value", true, "UIntValue"},
		{"uintptr", true, "Uintptr"},
		{"uint8_field", false, "uint8Field"},
		{"", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCamel(tt.in, tt.first))
		})
	}
}

func TestToScreamingCase(t *testing.T) {
	assert.Equal(t, "FIELD_ONE", ToScreamingCase("field_one"))
	assert.Equal(t, "TESTARRAYOFSTRING2", ToScreamingCase("testarrayofstring2"))
	assert.Equal(t, "MIN_ALIGN", ToScreamingCase("Min_Align"))
	assert.Equal(t, "", ToScreamingCase(""))
}

func TestKeywords_Escape(t *testing.T) {
	k := NewKeywords("match", "Int8")
	assert.Equal(t, "match_", k.Escape("match"))
	assert.Equal(t, "Int8_", k.Escape("Int8"))
	assert.Equal(t, "int8", k.Escape("int8"))
	assert.Equal(t, "value", k.Escape("value"))
}
