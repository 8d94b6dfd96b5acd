// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package cangjie

import (
	"fmt"

	"github.com/dacolabs/flatcj/internal/layout"
	"github.com/dacolabs/flatcj/internal/schema"
	"github.com/dacolabs/flatcj/internal/translate"
)

// Expressions locating field bytes inside the buffer. Table accessors work on
// absolute positions: o is the field's vtable entry, relative to the table.

// offsetDecl reads the vtable entry of the current field into o.
func (c emitCtx) offsetDecl() string {
	return fmt.Sprintf("let o: UInt32 = UInt32(%s.offset(%s))", c.access, c.slot())
}

// fieldPos is the absolute position of the field's inline bytes.
func (c emitCtx) fieldPos() string {
	return "o + " + c.access + ".pos"
}

// indirect follows the relative offset stored at pos.
func (c emitCtx) indirect(pos string) string {
	return fmt.Sprintf("%s.getIndirect(%s)", c.access, pos)
}

// read reads one scalar of kind b at pos.
func (c emitCtx) read(b schema.BaseType, pos string) string {
	return fmt.Sprintf("%s.%s(%s)", c.access, c.r.reader(b), pos)
}

// vectorHeader declares vectorLoc, vectorLength and vectorStart for the
// current field. It returns early with empty when the field is absent.
func (c emitCtx) vectorHeader(empty string) {
	c.w.Line(c.offsetDecl())
	c.w.Block("if (o == 0) {", "}", func() {
		c.w.Linef("return %s", empty)
	})
	c.w.Linef("let vectorLoc: UInt32 = %s", c.indirect(c.fieldPos()))
	c.w.Linef("let vectorLength: UInt32 = %s.getUInt32(vectorLoc)", c.access)
	c.w.Linef("let vectorStart: UInt32 = vectorLoc + %d", layout.LengthPrefixSize)
}

// elementPos is the position of element i of a vector with the given stride.
func elementPos(start string, stride int) string {
	return fmt.Sprintf("%s + UInt32(i) * %d", start, stride)
}

// fixedRange is the byte range of a fixed structure member at off.
func fixedRange(buf, pos string, off, width int) string {
	return fmt.Sprintf("%s[Int64(%s)..Int64(%s)]", buf, plus(pos, off), plus(pos, off+width))
}

func plus(pos string, off int) string {
	if off == 0 {
		return pos
	}
	return fmt.Sprintf("%s + %d", pos, off)
}

// inlineSize is the stride of a vector element or the width of a member.
func inlineSize(t schema.Type) int {
	n, err := layout.InlineSize(t)
	if err != nil {
		translate.Inconsistent("%v", err)
	}
	return n
}

// structLayout computes a fixed structure layout or aborts generation.
func structLayout(sd *schema.StructDef) layout.StructLayout {
	l, err := layout.Struct(sd)
	if err != nil {
		translate.Inconsistent("%v", err)
	}
	return l
}
