// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package cangjie

import (
	"fmt"

	"github.com/dacolabs/flatcj/internal/layout"
	"github.com/dacolabs/flatcj/internal/schema"
	"github.com/dacolabs/flatcj/internal/translate"
)

// A union field is read through its "<name>_type" discriminant sibling. The
// generic accessor returns the payload as the polymorphic base; one typed
// accessor per variant returns it only when the discriminant matches.

func emitUnion(c emitCtx) {
	union := c.field.Type.Enum
	disc := c.discriminant()
	payload := c.indirect(c.fieldPos())

	c.method(fmt.Sprintf("%s(): Option<%s>", c.name(), objectType), func() {
		c.w.Line(c.offsetDecl())
		returnIf(c.w, "o == 0",
			fmt.Sprintf("None<%s>", objectType),
			fmt.Sprintf("Some<%s>(%s(%s.bytes, %s))", objectType, objectType, c.access, payload))
	})

	for _, ev := range variants(union) {
		typ, value := c.payload(ev, payload)
		none := fmt.Sprintf("None<%s>", typ)
		c.method(fmt.Sprintf("%sAs%s(): Option<%s>", c.name(), translate.ToCamel(ev.Name, true), typ), func() {
			c.w.Line(c.offsetDecl())
			c.w.Block("if (o == 0) {", "}", func() {
				c.w.Linef("return %s", none)
			})
			c.w.Block(fmt.Sprintf("return match (this.%s()) {", c.r.accessorName(disc.Name)), "}", func() {
				c.w.Linef("case %s => Some<%s>(%s)", c.r.variantRef(union, ev), typ, value)
				c.w.Linef("case _ => %s", none)
			})
		})
	}
}

func emitUnionVector(c emitCtx) {
	union := c.field.Type.Enum
	disc := c.discriminant()
	discSlot := c.r.slotName(disc.Name)
	unionName := c.r.EnumName(union)
	outOfRange := fmt.Sprintf("index < 0 || index >= %s.getVectorLenBySlot(%s)", c.access, c.slot())
	elemPos := fmt.Sprintf("%s.getVectorStartBySlot(%s) + UInt32(index) * %d", c.access, c.slot(), layout.OffsetSize)
	payload := c.indirect("p")

	c.method(fmt.Sprintf("%sSize(): Int64", c.name()), func() {
		c.w.Linef("return %s.getVectorLenBySlot(%s)", c.access, discSlot)
	})

	c.method(fmt.Sprintf("%sType(index: Int64): %s", c.name(), unionName), func() {
		c.w.Block(fmt.Sprintf("if (index < 0 || index >= %s.getVectorLenBySlot(%s)) {", c.access, discSlot), "}", func() {
			c.w.Linef("return %s", c.r.variantRef(union, union.Default()))
		})
		c.w.Linef("let start: UInt32 = %s.getVectorStartBySlot(%s)", c.access, discSlot)
		c.w.Linef("return %s(%s)", c.r.valueOfName(union), c.read(schema.BaseUType, "start + UInt32(index)"))
	})

	c.method(fmt.Sprintf("%s(index: Int64): Option<%s>", c.name(), objectType), func() {
		c.w.Block(fmt.Sprintf("if (%s) {", outOfRange), "}", func() {
			c.w.Linef("return None<%s>", objectType)
		})
		c.w.Linef("let p: UInt32 = %s", elemPos)
		c.w.Linef("return Some<%s>(%s(%s.bytes, %s))", objectType, objectType, c.access, payload)
	})

	for _, ev := range variants(union) {
		typ, value := c.payload(ev, payload)
		none := fmt.Sprintf("None<%s>", typ)
		c.method(fmt.Sprintf("%sAs%s(index: Int64): Option<%s>", c.name(), translate.ToCamel(ev.Name, true), typ), func() {
			c.w.Block(fmt.Sprintf("if (%s) {", outOfRange), "}", func() {
				c.w.Linef("return %s", none)
			})
			c.w.Block(fmt.Sprintf("return match (this.%sType(index)) {", c.name()), "}", func() {
				c.w.Linef("case %s =>", c.r.variantRef(union, ev))
				c.w.Indent()
				c.w.Linef("let p: UInt32 = %s", elemPos)
				c.w.Linef("Some<%s>(%s)", typ, value)
				c.w.Outdent()
				c.w.Linef("case _ => %s", none)
			})
		})
	}
}

// discriminant returns the live "<name>_type" sibling of the current field.
func (c emitCtx) discriminant() *schema.FieldDef {
	disc := c.owner.UnionTypeField(c.field)
	if disc == nil || disc.Deprecated {
		translate.Inconsistent("union field %s.%s has no discriminant field", c.owner.Name, c.field.Name)
	}
	return disc
}

// payload returns the Cangjie type of a variant and the expression building
// it from the payload position pos.
func (c emitCtx) payload(ev *schema.EnumVal, pos string) (typ, value string) {
	t := ev.UnionType
	switch {
	case t.Base == schema.BaseString:
		return "String", fmt.Sprintf("%s.getString(%s)", c.access, pos)
	case t.Base == schema.BaseStruct && t.Struct != nil:
		typ = c.r.StructName(t.Struct)
		return typ, fmt.Sprintf("%s(%s.bytes, %s)", typ, c.access, pos)
	}
	translate.Inconsistent("union variant %s has payload type %s", ev.Name, t)
	return "", ""
}

// variants lists the union variants that carry a payload.
func variants(e *schema.EnumDef) []*schema.EnumVal {
	out := make([]*schema.EnumVal, 0, len(e.Values))
	for _, ev := range e.Values {
		if ev.UnionType.Base != schema.BaseNone {
			out = append(out, ev)
		}
	}
	return out
}
