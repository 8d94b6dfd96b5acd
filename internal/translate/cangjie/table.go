// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package cangjie

import (
	"fmt"

	"github.com/dacolabs/flatcj/internal/layout"
	"github.com/dacolabs/flatcj/internal/schema"
	"github.com/dacolabs/flatcj/internal/translate"
)

// genTable writes a table as a class over the shared buffer-access object,
// with one slot constant and one accessor group per live field.
func (g *generator) genTable(w *translate.Writer, sd *schema.StructDef) {
	name := g.r.StructName(sd)
	vis := visibility(sd)

	w.Comment(sd.Doc)
	w.Block(fmt.Sprintf("%sclass %s <: %s {", vis, name, objectType), "}", func() {
		live := 0
		for _, f := range sd.Fields {
			if f.Deprecated {
				continue
			}
			live++
			w.Linef("%sstatic let %s: UInt16 = %d", vis, g.r.slotName(f.Name), layout.FieldSlot(sd, f))
		}
		if live > 0 {
			w.Blank()
		}

		w.Block(fmt.Sprintf("%sinit(buf: Array<UInt8>, offset: UInt32) {", vis), "}", func() {
			w.Line("super(buf, offset)")
		})

		for _, f := range sd.Fields {
			if f.Deprecated {
				continue
			}
			accessorEmitters[classify(f.Type)](emitCtx{
				r:      g.r,
				w:      w,
				owner:  sd,
				field:  f,
				access: g.opts.Access,
				vis:    vis,
			})
		}
	})
	w.Blank()
}
