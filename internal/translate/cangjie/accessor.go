// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package cangjie

import "fmt"

// Single-valued table field accessors. Each reads the field's vtable entry
// and falls back when the entry is 0: scalars to their declared default,
// booleans to false, enumerations to their first variant, structures to the
// zero structure and references to None.

func emitScalar(c emitCtx) {
	t := c.field.Type
	typ := c.r.TypeName(t)
	c.method(fmt.Sprintf("%s(): %s", c.name(), typ), func() {
		c.w.Line(c.offsetDecl())
		returnIf(c.w, "o == 0",
			c.r.scalarLiteral(t.Base, c.field.Default),
			c.read(t.Base, c.fieldPos()))
	})
}

func emitBool(c emitCtx) {
	c.method(fmt.Sprintf("%s(): Bool", c.name()), func() {
		c.w.Line(c.offsetDecl())
		returnIf(c.w, "o == 0",
			"false",
			c.read(c.field.Type.Base, c.fieldPos())+" != 0")
	})
}

func emitEnum(c emitCtx) {
	t := c.field.Type
	c.method(fmt.Sprintf("%s(): %s", c.name(), c.r.EnumName(t.Enum)), func() {
		c.w.Line(c.offsetDecl())
		returnIf(c.w, "o == 0",
			c.r.variantRef(t.Enum, t.Enum.Default()),
			fmt.Sprintf("%s(%s)", c.r.valueOfName(t.Enum), c.read(t.Base, c.fieldPos())))
	})
}

func emitStruct(c emitCtx) {
	typ := c.r.TypeName(c.field.Type)
	c.method(fmt.Sprintf("%s(): %s", c.name(), typ), func() {
		c.w.Line(c.offsetDecl())
		returnIf(c.w, "o == 0",
			typ+"()",
			fmt.Sprintf("%s(%s.bytes, %s)", typ, c.access, c.fieldPos()))
	})
}

func emitTable(c emitCtx) {
	typ := c.r.TypeName(c.field.Type)
	c.method(fmt.Sprintf("%s(): Option<%s>", c.name(), typ), func() {
		c.w.Line(c.offsetDecl())
		returnIf(c.w, "o == 0",
			fmt.Sprintf("None<%s>", typ),
			fmt.Sprintf("Some<%s>(%s(%s.bytes, %s))", typ, typ, c.access, c.indirect(c.fieldPos())))
	})
}

func emitString(c emitCtx) {
	c.method(fmt.Sprintf("%s(): Option<String>", c.name()), func() {
		c.w.Line(c.offsetDecl())
		returnIf(c.w, "o == 0",
			"None<String>",
			fmt.Sprintf("Some<String>(%s.getString(%s))", c.access, c.indirect(c.fieldPos())))
	})
}
