// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package cangjie

import (
	"fmt"

	"github.com/dacolabs/flatcj/internal/schema"
	"github.com/dacolabs/flatcj/internal/translate"
)

// genEnum writes an enumeration (or union discriminant) declaration followed
// by its value conversion function.
func (g *generator) genEnum(w *translate.Writer, e *schema.EnumDef) {
	if len(e.Values) == 0 {
		translate.Inconsistent("enumeration %q has no variants", e.Name)
	}
	name := g.r.EnumName(e)

	w.Comment(e.Doc)
	w.Block(fmt.Sprintf("public enum %s {", name), "}", func() {
		for i, ev := range e.Values {
			w.Comment(ev.Doc)
			sep := " |"
			if i == len(e.Values)-1 {
				sep = ""
			}
			w.Linef("%s%s", g.r.variantName(e, ev), sep)
		}
	})
	w.Blank()
	g.genValueOf(w, e)
	w.Blank()
}

// genValueOf writes EnumValues<Name>, which indexes the declared variants by
// position. Any index outside [0, N) yields the first variant.
func (g *generator) genValueOf(w *translate.Writer, e *schema.EnumDef) {
	name := g.r.EnumName(e)
	raw, _ := g.r.ScalarType(e.Underlying)
	fallback := g.r.variantRef(e, e.Default())

	w.Block(fmt.Sprintf("public func %s(e: %s): %s {", g.r.valueOfName(e), raw, name), "}", func() {
		w.Block(fmt.Sprintf("let values: Array<%s> = [", name), "]", func() {
			for i, ev := range e.Values {
				sep := ","
				if i == len(e.Values)-1 {
					sep = ""
				}
				w.Linef("%s%s", g.r.variantRef(e, ev), sep)
			}
		})
		cond := fmt.Sprintf("e >= 0 && e < %d", len(e.Values))
		if e.Underlying.IsUnsigned() {
			cond = fmt.Sprintf("e < %d", len(e.Values))
		}
		returnIf(w, cond, "values[Int64(e)]", fallback)
	})
}

// returnIf writes "return if (cond) { then } else { other }".
func returnIf(w *translate.Writer, cond, then, other string) {
	ifExpr(w, "return ", cond, then, other)
}

// ifExpr writes a two-branch if expression preceded by prefix.
func ifExpr(w *translate.Writer, prefix, cond, then, other string) {
	w.Linef("%sif (%s) {", prefix, cond)
	w.Indent()
	w.Line(then)
	w.Outdent()
	w.Line("} else {")
	w.Indent()
	w.Line(other)
	w.Outdent()
	w.Line("}")
}
