// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package cangjie

import (
	"fmt"

	"github.com/dacolabs/flatcj/internal/layout"
	"github.com/dacolabs/flatcj/internal/schema"
)

// Vector accessors return the whole vector as an array. An absent vector is
// an empty array. Elements stored by offset come back as Option so that an
// absent element can be told apart.

func emitScalarVector(c emitCtx) {
	el := c.field.Type.VectorType()
	typ := c.r.TypeName(el)
	width := inlineSize(el)

	var read string
	pos := elementPos("vectorStart", width)
	switch {
	case el.IsEnum():
		read = fmt.Sprintf("%s(%s)", c.r.valueOfName(el.Enum), c.read(el.Base, pos))
	case el.Base == schema.BaseBool:
		read = c.read(el.Base, pos) + " != 0"
	default:
		read = c.read(el.Base, pos)
	}
	c.inlineVector(typ, read)
}

func emitStructVector(c emitCtx) {
	el := c.field.Type.VectorType()
	typ := c.r.TypeName(el)
	read := fmt.Sprintf("%s(%s.bytes, %s)", typ, c.access, elementPos("vectorStart", inlineSize(el)))
	c.inlineVector(typ, read)
}

// inlineVector writes an accessor over elements stored inline at a fixed stride.
func (c emitCtx) inlineVector(typ, read string) {
	arr := fmt.Sprintf("Array<%s>", typ)
	c.method(fmt.Sprintf("%s(): %s", c.name(), arr), func() {
		c.vectorHeader(arr + "()")
		c.w.Block("return "+arr+"(Int64(vectorLength)) { i =>", "}", func() {
			c.w.Line(read)
		})
	})
}

func emitStringVector(c emitCtx) {
	c.offsetVector("String", func(p string) string {
		return fmt.Sprintf("%s.getString(%s)", c.access, c.indirect(p))
	})
}

func emitTableVector(c emitCtx) {
	el := c.field.Type.VectorType()
	typ := c.r.TypeName(el)
	c.offsetVector(typ, func(p string) string {
		return fmt.Sprintf("%s(%s.bytes, %s)", typ, c.access, c.indirect(p))
	})
	if key := el.Struct.KeyField(); key != nil {
		c.keyLookup(el.Struct, key)
	}
}

// offsetVector writes an accessor over elements stored as relative offsets.
// An element whose offset resolves to its own position is absent.
func (c emitCtx) offsetVector(typ string, value func(p string) string) {
	arr := fmt.Sprintf("Array<Option<%s>>", typ)
	c.method(fmt.Sprintf("%s(): %s", c.name(), arr), func() {
		c.w.Linef("let length: Int64 = %s.getVectorLenBySlot(%s)", c.access, c.slot())
		c.w.Linef("let start: UInt32 = %s.getVectorStartBySlot(%s)", c.access, c.slot())
		c.w.Block("return "+arr+"(length) { i =>", "}", func() {
			c.w.Linef("let p: UInt32 = %s", elementPos("start", layout.OffsetSize))
			ifExpr(c.w, "", c.indirect("p")+" == p",
				fmt.Sprintf("None<%s>", typ),
				fmt.Sprintf("Some<%s>(%s)", typ, value("p")))
		})
	})
}

// keyLookup writes <Accessor>By(key), a binary search over a vector of tables
// sorted by their key field.
func (c emitCtx) keyLookup(el *schema.StructDef, key *schema.FieldDef) {
	typ := c.r.StructName(el)
	keyType := c.r.TypeName(key.Type)
	none := fmt.Sprintf("None<%s>", typ)
	c.method(fmt.Sprintf("%sBy(key: %s): Option<%s>", c.name(), keyType, typ), func() {
		c.w.Line(c.offsetDecl())
		c.w.Block("if (o == 0) {", "}", func() {
			c.w.Linef("return %s", none)
		})
		c.w.Linef("let vectorLoc: UInt32 = %s", c.indirect(c.fieldPos()))
		c.w.Block(fmt.Sprintf("return match (%s.lookupByKey(vectorLoc, %s.%s, key)) {",
			c.access, typ, c.r.slotName(key.Name)), "}", func() {
			c.w.Linef("case Some(p) => Some<%s>(%s(%s.bytes, p))", typ, typ, c.access)
			c.w.Linef("case None => %s", none)
		})
	})
}
