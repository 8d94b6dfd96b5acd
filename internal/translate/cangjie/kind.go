// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package cangjie

import (
	"fmt"

	"github.com/dacolabs/flatcj/internal/schema"
	"github.com/dacolabs/flatcj/internal/translate"
)

// fieldKind is the closed set of table field shapes an accessor is emitted for.
type fieldKind int

const (
	kindScalar fieldKind = iota
	kindBool
	kindEnum
	kindStruct
	kindTable
	kindString
	kindUnion
	kindScalarVector
	kindStructVector
	kindStringVector
	kindTableVector
	kindUnionVector
	numFieldKinds
)

var fieldKindNames = [numFieldKinds]string{
	kindScalar:       "scalar",
	kindBool:         "bool",
	kindEnum:         "enum",
	kindStruct:       "struct",
	kindTable:        "table",
	kindString:       "string",
	kindUnion:        "union",
	kindScalarVector: "scalar vector",
	kindStructVector: "struct vector",
	kindStringVector: "string vector",
	kindTableVector:  "table vector",
	kindUnionVector:  "union vector",
}

func (k fieldKind) String() string {
	if k < 0 || k >= numFieldKinds {
		return fmt.Sprintf("fieldKind(%d)", int(k))
	}
	return fieldKindNames[k]
}

// classify maps a field type to its accessor shape.
func classify(t schema.Type) fieldKind {
	switch t.Base {
	case schema.BaseBool:
		return kindBool
	case schema.BaseString:
		return kindString
	case schema.BaseUnion:
		return kindUnion
	case schema.BaseStruct:
		switch {
		case t.IsFixedStruct():
			return kindStruct
		case t.IsTable():
			return kindTable
		}
	case schema.BaseVector:
		switch el := t.VectorType(); {
		case el.Base.IsScalar():
			return kindScalarVector
		case el.IsFixedStruct():
			return kindStructVector
		case el.IsTable():
			return kindTableVector
		case el.Base == schema.BaseString:
			return kindStringVector
		case el.Base == schema.BaseUnion:
			return kindUnionVector
		}
	default:
		if t.IsEnum() {
			return kindEnum
		}
		if t.Base.IsScalar() {
			return kindScalar
		}
	}
	translate.Inconsistent("no accessor shape for field type %s", t)
	return numFieldKinds
}

// emitCtx is everything one accessor emitter needs. It is passed by value.
type emitCtx struct {
	r      *resolver
	w      *translate.Writer
	owner  *schema.StructDef
	field  *schema.FieldDef
	access string
	vis    string
}

// fieldEmitter writes the accessor methods of one table field.
type fieldEmitter func(c emitCtx)

// accessorEmitters holds one emitter per field kind; every kind must have one.
var accessorEmitters = [numFieldKinds]fieldEmitter{
	kindScalar:       emitScalar,
	kindBool:         emitBool,
	kindEnum:         emitEnum,
	kindStruct:       emitStruct,
	kindTable:        emitTable,
	kindString:       emitString,
	kindUnion:        emitUnion,
	kindScalarVector: emitScalarVector,
	kindStructVector: emitStructVector,
	kindStringVector: emitStringVector,
	kindTableVector:  emitTableVector,
	kindUnionVector:  emitUnionVector,
}

func (c emitCtx) name() string { return c.r.accessorName(c.field.Name) }

func (c emitCtx) slot() string { return c.r.slotName(c.field.Name) }

// method writes one accessor method around body, preceded by a blank line
// and the field documentation.
func (c emitCtx) method(signature string, body func()) {
	c.w.Blank()
	c.w.Comment(c.field.Doc)
	c.w.Block(fmt.Sprintf("%sfunc %s {", c.vis, signature), "}", body)
}
